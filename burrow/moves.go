package burrow

import "iter"

// A Move is a single amphipod moving from one resting place to another.
type Move struct {
	Next   State
	Energy int
}

// Moves yields every state reachable from s by moving one amphipod, along
// with the energy that move takes.
//
// An amphipod leaves a room only if it is not already settled (in its own
// room with only its own kind below), and it stops in the hallway anywhere
// it can reach except a doorway. An amphipod leaves the hallway only to go
// all the way into its own room, and only once that room holds no other
// kind of amphipod.
func (s State) Moves() iter.Seq2[State, int] {
	return func(yield func(State, int) bool) {
		for r := range NumRooms {
			if !s.roomToHall(r, yield) {
				return
			}
		}
		for col := range HallLen {
			if !s.hallToRoom(col, yield) {
				return
			}
		}
	}
}

// MoveList collects Moves.
func (s State) MoveList() []Move {
	var moves []Move
	for next, e := range s.Moves() {
		moves = append(moves, Move{Next: next, Energy: e})
	}
	return moves
}

func (s State) roomToHall(r int, yield func(State, int) bool) bool {
	i := s.top(r)
	if i < 0 || s.settled(r, i) {
		return true
	}
	a := s.rooms[r][i]
	door := doorways[r]
	for _, dir := range [...]int{-1, 1} {
		for col := door + dir; col >= 0 && col < HallLen; col += dir {
			if s.hall[col] != Empty {
				break
			}
			if isDoorway(col) {
				continue
			}
			steps := i + 1 + abs(col-door)
			next := s.with(roomEdit(r, i, Empty), hallEdit(col, a))
			if !yield(next, steps*a.Energy()) {
				return false
			}
		}
	}
	return true
}

func (s State) hallToRoom(col int, yield func(State, int) bool) bool {
	a := s.hall[col]
	if a == Empty {
		return true
	}
	r := a.Room()
	// Find the deepest free space; the room may only hold a's kind.
	dest := int(s.depth) - 1
	for ; dest >= 0 && s.rooms[r][dest] != Empty; dest-- {
		if s.rooms[r][dest] != a {
			return true
		}
	}
	if dest < 0 {
		return true
	}
	door := doorways[r]
	if !s.hallClear(col, door) {
		return true
	}
	steps := abs(col-door) + dest + 1
	next := s.with(hallEdit(col, Empty), roomEdit(r, dest, a))
	return yield(next, steps*a.Energy())
}

// top returns the index of the topmost amphipod in room r, or -1 if the
// room is empty.
func (s State) top(r int) int {
	for i := range int(s.depth) {
		if s.rooms[r][i] != Empty {
			return i
		}
	}
	return -1
}

// settled reports whether slot i of room r and every slot below it hold
// amphipods that belong in r.
func (s State) settled(r, i int) bool {
	for _, a := range s.rooms[r][i:s.depth] {
		if a.Room() != r {
			return false
		}
	}
	return true
}

// hallClear reports whether the hallway is empty after column from up to
// and including column to.
func (s State) hallClear(from, to int) bool {
	step := 1
	if to < from {
		step = -1
	}
	for col := from; col != to; {
		col += step
		if s.hall[col] != Empty {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
