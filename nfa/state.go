// Package nfa implements Thompson construction and simulation over a
// caller-supplied element type, generalizing the teacher's nfa.go from
// byte strings to generic token sequences.
package nfa

import "github.com/mishumausam/openregex/token"

// StateID indexes into a Builder's state arena. Unlike the teacher's
// *State pointers (threaded through a package-global stateCounter),
// states live in one slice per build so that compiling two patterns
// concurrently never shares mutable state.
type StateID int

// Invalid marks an edge or start/accept field that has not been patched
// yet, mirroring coregx-coregex's InvalidState sentinel.
const Invalid StateID = -1

// EdgeKind tags what a State's outgoing Edge represents.
type EdgeKind int

const (
	// EdgeEpsilon consumes no input.
	EdgeEpsilon EdgeKind = iota
	// EdgeToken consumes exactly one input element if Predicate accepts it.
	EdgeToken
	// EdgeSplit is an unlabeled branch to two successor states, used for
	// alternation and quantifiers; priority is Left-then-Right.
	EdgeSplit
	// EdgeCapture records a capture-group boundary as a zero-width move.
	EdgeCapture
	// EdgeAnchorStart only passes when the current index is 0.
	EdgeAnchorStart
	// EdgeAnchorEnd only passes when the current index is the input length.
	EdgeAnchorEnd
	// EdgeMatch marks an accepting state; it has no outgoing edge.
	EdgeMatch
)

// GroupBoundary distinguishes the open vs. close half of a capture edge.
type GroupBoundary int

const (
	GroupOpen GroupBoundary = iota
	GroupClose
)

// State is one node of the NFA graph. Exactly one of the edge shapes
// below is meaningful, selected by Kind:
//
//	EdgeEpsilon, EdgeToken, EdgeCapture, EdgeAnchorStart, EdgeAnchorEnd: Next
//	EdgeSplit: Left, Right (Left is always tried before Right)
//	EdgeMatch: neither
type State[T any] struct {
	Kind EdgeKind

	Predicate token.Predicate[T] // EdgeToken

	Left, Right StateID // EdgeSplit
	Next        StateID // EdgeEpsilon, EdgeToken, EdgeCapture, EdgeAnchor*

	GroupIndex int           // EdgeCapture
	Boundary   GroupBoundary // EdgeCapture
}

// Builder accumulates States for a single compilation. Forward
// references (a state whose Next isn't known yet, e.g. the second half
// of a loop) are resolved with Patch once the target exists.
type Builder[T any] struct {
	states []State[T]
}

func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{states: make([]State[T], 0, 16)}
}

func (b *Builder[T]) add(s State[T]) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, s)
	return id
}

func (b *Builder[T]) AddMatch() StateID {
	return b.add(State[T]{Kind: EdgeMatch})
}

func (b *Builder[T]) AddEpsilon(next StateID) StateID {
	return b.add(State[T]{Kind: EdgeEpsilon, Next: next})
}

func (b *Builder[T]) AddToken(pred token.Predicate[T], next StateID) StateID {
	return b.add(State[T]{Kind: EdgeToken, Predicate: pred, Next: next})
}

func (b *Builder[T]) AddSplit(left, right StateID) StateID {
	return b.add(State[T]{Kind: EdgeSplit, Left: left, Right: right})
}

func (b *Builder[T]) AddCapture(groupIndex int, boundary GroupBoundary, next StateID) StateID {
	return b.add(State[T]{Kind: EdgeCapture, GroupIndex: groupIndex, Boundary: boundary, Next: next})
}

func (b *Builder[T]) AddAnchorStart(next StateID) StateID {
	return b.add(State[T]{Kind: EdgeAnchorStart, Next: next})
}

func (b *Builder[T]) AddAnchorEnd(next StateID) StateID {
	return b.add(State[T]{Kind: EdgeAnchorEnd, Next: next})
}

// Patch rewires a placeholder state's successor, resolving a forward
// reference left Invalid at construction time (e.g. a loop's exit edge).
func (b *Builder[T]) Patch(id, target StateID) {
	s := &b.states[id]
	switch s.Kind {
	case EdgeSplit:
		if s.Left == Invalid {
			s.Left = target
		} else {
			s.Right = target
		}
	default:
		s.Next = target
	}
}

func (b *Builder[T]) State(id StateID) *State[T] {
	return &b.states[id]
}

func (b *Builder[T]) Len() int {
	return len(b.states)
}
