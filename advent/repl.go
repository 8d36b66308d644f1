package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/amphipod/burrow"
	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
)

func init() {
	register("23i", "solve burrows typed or pasted at a prompt", day23i)
}

func day23i(name string, args []string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	unfold := fs.Bool("unfold", false, "unfold each diagram before solving")
	history := fs.String("history", filepath.Join(os.TempDir(), "amphipod_history"), "readline history `file`")
	fs.Parse(args)

	l, err := readline.NewEx(&readline.Config{
		Prompt:      "burrow> ",
		HistoryFile: *history,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	// One solver for the whole session: states are keyed by their full
	// contents, so answers carry over between burrows.
	sv := burrow.NewSolver(burrow.Options{})
	var r lineReader
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			r.reset()
			l.SetPrompt("burrow> ")
			continue
		case io.EOF:
			return
		default:
			log.Println("Readline error:", err)
			continue
		}
		input, ok := r.add(line)
		if !ok {
			if r.pending() {
				l.SetPrompt("      > ")
			}
			continue
		}
		l.SetPrompt("burrow> ")
		fmt.Println(solveLine(sv, input, *unfold))
	}
}

// A lineReader gathers a burrow from prompt lines: either a single line of
// labels or a whole diagram, from its top wall through its bottom wall.
type lineReader struct {
	lines []string
}

func (r *lineReader) reset()        { r.lines = nil }
func (r *lineReader) pending() bool { return len(r.lines) > 0 }

// add adds a line and reports whether a complete burrow is ready.
func (r *lineReader) add(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}
	if !r.pending() && !strings.Contains(trimmed, "#") {
		return trimmed, true
	}
	r.lines = append(r.lines, line)
	// The top wall, hallway, at least one room row, and the bottom wall.
	if len(r.lines) < 4 || strings.Trim(trimmed, "#") != "" {
		return "", false
	}
	input := strings.Join(r.lines, "\n")
	r.reset()
	return input, true
}

func solveLine(sv *burrow.Solver, input string, unfold bool) string {
	s, err := burrow.Parse(strings.NewReader(input))
	if err != nil {
		return err.Error()
	}
	if unfold {
		if s, err = s.Unfold(); err != nil {
			return err.Error()
		}
	}
	start := time.Now()
	before := sv.Stats().Expanded
	cost, err := sv.MinimumCost(s)
	if errors.Is(err, burrow.ErrUnsolvable) {
		return "no solution"
	}
	if err != nil {
		return err.Error()
	}
	expanded := sv.Stats().Expanded - before
	return fmt.Sprintf("%d (%s new states, %s)",
		cost, humanize.Comma(int64(expanded)), time.Since(start).Round(time.Millisecond))
}
