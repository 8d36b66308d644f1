package burrow

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a burrow from r. The input is either the puzzle's drawing
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// (which may show amphipods in the hallway and empty room spaces as '.'),
// or just the amphipod labels in row order, such as "BCBD ADCA".
func Parse(r io.Reader) (State, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return State{}, err
	}
	if len(lines) == 0 {
		return State{}, fmt.Errorf("%w: empty input", ErrMalformedInput)
	}
	if strings.Contains(lines[0], "#") {
		return parseDrawing(lines)
	}
	return parseLabels(strings.Join(lines, ""))
}

func parseLabels(s string) (State, error) {
	var labels []Amphipod
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == ',' {
			continue
		}
		a, err := ParseAmphipod(c)
		if err != nil {
			return State{}, err
		}
		labels = append(labels, a)
	}
	return New(labels)
}

// roomCols are the columns of the room spaces within a drawing line.
var roomCols = [NumRooms]int{3, 5, 7, 9}

func parseDrawing(lines []string) (State, error) {
	// Top wall, hallway, rooms, bottom wall.
	if len(lines) < 4 {
		return State{}, fmt.Errorf("%w: drawing has %d lines", ErrMalformedInput, len(lines))
	}
	if !isWall(lines[0]) || !isWall(lines[len(lines)-1]) {
		return State{}, fmt.Errorf("%w: drawing is not enclosed by walls", ErrMalformedInput)
	}
	var s State
	switch depth := len(lines) - 3; depth {
	case 2, MaxDepth:
		s.depth = uint8(depth)
	default:
		return State{}, fmt.Errorf("%w: rooms are %d deep; want 2 or %d",
			ErrMalformedInput, depth, MaxDepth)
	}

	hall := lines[1]
	if len(hall) != HallLen+2 || hall[0] != '#' || hall[HallLen+1] != '#' {
		return State{}, fmt.Errorf("%w: bad hallway line %q", ErrMalformedInput, hall)
	}
	for col := range HallLen {
		a, err := parseSpace(hall[col+1])
		if err != nil {
			return State{}, err
		}
		s.hall[col] = a
	}

	for i, line := range lines[2 : len(lines)-1] {
		if len(line) <= roomCols[NumRooms-1] {
			return State{}, fmt.Errorf("%w: bad room line %q", ErrMalformedInput, line)
		}
		for r, col := range roomCols {
			a, err := parseSpace(line[col])
			if err != nil {
				return State{}, err
			}
			s.rooms[r][i] = a
		}
	}
	if err := s.validate(); err != nil {
		return State{}, err
	}
	return s, nil
}

func parseSpace(c byte) (Amphipod, error) {
	if c == '.' {
		return Empty, nil
	}
	return ParseAmphipod(c)
}

func isWall(line string) bool {
	line = strings.TrimSpace(line)
	return line != "" && strings.Trim(line, "#") == ""
}
