package burrow

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsolvable is wrapped by *UnsolvableError.
	ErrUnsolvable = errors.New("burrow: no sequence of moves sorts the burrow")
	// ErrTooDeep is returned when the search follows a longer sequence of
	// moves than Options.MaxDepth allows.
	ErrTooDeep = errors.New("burrow: search exceeded maximum depth")
	// ErrCycle is returned if a state is reachable from itself.
	ErrCycle = errors.New("burrow: move graph has a cycle")
)

// An UnsolvableError reports a burrow from which the target cannot be
// reached.
type UnsolvableError struct {
	State State
	// DeadEnds is the number of states without moves that the solver has
	// found so far.
	DeadEnds int
}

func (e *UnsolvableError) Error() string {
	return fmt.Sprintf("%s (%d dead ends explored) from\n%s", ErrUnsolvable, e.DeadEnds, e.State)
}

func (e *UnsolvableError) Unwrap() error { return ErrUnsolvable }

// DefaultMaxDepth is the MaxDepth used when Options leaves it unset.
// Every amphipod moves at most twice, so real searches stay far below it.
const DefaultMaxDepth = 256

// Options configure a Solver.
type Options struct {
	// MaxDepth bounds the number of moves the search follows from the
	// starting state. If zero, DefaultMaxDepth is used.
	MaxDepth int
}

// Stats describe the work a Solver has done.
type Stats struct {
	Expanded  int // states whose moves were generated
	CacheHits int // lookups answered from the cache
	DeadEnds  int // non-target states with no moves
	CacheSize int
}

// noPath is cached for states from which the target cannot be reached.
const noPath = -1

// A Solver computes minimum energies, remembering the answer for every
// state it has explored. A Solver is not safe for concurrent use.
type Solver struct {
	maxDepth int
	cache    map[State]int
	onStack  map[State]bool
	stats    Stats
}

// NewSolver returns a Solver with an empty cache.
func NewSolver(opts Options) *Solver {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Solver{
		maxDepth: opts.MaxDepth,
		cache:    make(map[State]int),
		onStack:  make(map[State]bool),
	}
}

// Solve returns the minimum energy needed to sort s using a new Solver.
func Solve(s State) (int, error) {
	return NewSolver(Options{}).MinimumCost(s)
}

// Stats returns counters describing the work done so far.
func (sv *Solver) Stats() Stats {
	st := sv.stats
	st.CacheSize = len(sv.cache)
	return st
}

// MinimumCost returns the least total energy needed to move from s to the
// target state. If no sequence of moves gets there, the error is an
// *UnsolvableError.
func (sv *Solver) MinimumCost(s State) (int, error) {
	cost, ok := sv.lookup(s)
	if !ok {
		var err error
		if cost, err = sv.explore(s); err != nil {
			return 0, err
		}
	}
	if cost == noPath {
		return 0, &UnsolvableError{State: s, DeadEnds: sv.stats.DeadEnds}
	}
	return cost, nil
}

func (sv *Solver) lookup(s State) (int, bool) {
	if cost, ok := sv.cache[s]; ok {
		sv.stats.CacheHits++
		return cost, true
	}
	if s.IsTarget() {
		sv.cache[s] = 0
		return 0, true
	}
	return 0, false
}

// A frame is a state whose moves are being explored.
type frame struct {
	state State
	moves []Move
	next  int // index into moves of the next move to resolve
	best  int
}

// explore computes the minimum cost from start, which is not cached, by a
// depth-first walk that keeps its own stack rather than recursing. A frame
// is popped once every move from it leads to a cached state; its result is
// then cached, so the parent finds it on its next lookup.
func (sv *Solver) explore(start State) (int, error) {
	defer clear(sv.onStack)
	stack := []*frame{sv.expand(start)}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.next < len(f.moves) {
			m := f.moves[f.next]
			cost, ok := sv.lookup(m.Next)
			if !ok {
				if sv.onStack[m.Next] {
					return 0, fmt.Errorf("%w through\n%s", ErrCycle, m.Next)
				}
				if len(stack) >= sv.maxDepth {
					return 0, fmt.Errorf("%w of %d moves", ErrTooDeep, sv.maxDepth)
				}
				stack = append(stack, sv.expand(m.Next))
				continue
			}
			f.next++
			if cost != noPath && (f.best == noPath || m.Energy+cost < f.best) {
				f.best = m.Energy + cost
			}
			continue
		}
		stack = stack[:len(stack)-1]
		delete(sv.onStack, f.state)
		if len(f.moves) == 0 {
			sv.stats.DeadEnds++
		}
		sv.cache[f.state] = f.best
	}
	return sv.cache[start], nil
}

func (sv *Solver) expand(s State) *frame {
	sv.stats.Expanded++
	sv.onStack[s] = true
	return &frame{state: s, moves: s.MoveList(), best: noPath}
}
