package nfa

// Range is a half-open [Start, End) span of input indices.
type Range struct {
	Start, End int
}

// Capture tracks in-progress and finished group boundaries for one
// simulation thread. Generalized from the teacher's ExecutionContext:
// Pos becomes an index into a generic slice rather than a byte offset,
// and groups are keyed by index (plus name, via Automaton.GroupNames)
// instead of there being a single implicit whole match.
type Capture struct {
	Open map[int]int
	Done map[int]Range
}

func newCapture() *Capture {
	return &Capture{Open: map[int]int{}, Done: map[int]Range{}}
}

func (c *Capture) clone() *Capture {
	nc := &Capture{
		Open: make(map[int]int, len(c.Open)),
		Done: make(map[int]Range, len(c.Done)),
	}
	for k, v := range c.Open {
		nc.Open[k] = v
	}
	for k, v := range c.Done {
		nc.Done[k] = v
	}
	return nc
}

// apply records a capture boundary. Closing a group that traversed
// again overwrites its previous Done entry: the most recent traversal
// wins, matching spec.md's semantics for groups inside a repetition.
func (c *Capture) apply(groupIndex int, boundary GroupBoundary, index int) {
	if boundary == GroupOpen {
		c.Open[groupIndex] = index
		return
	}
	if start, ok := c.Open[groupIndex]; ok {
		c.Done[groupIndex] = Range{Start: start, End: index}
		delete(c.Open, groupIndex)
	}
}

// thread is one live path through the automaton, paused at a
// token-consuming or accepting state.
type thread[T any] struct {
	State StateID
	Cap   *Capture
}

// epsilonClosure follows every epsilon, split, capture, and anchor edge
// reachable from threads without consuming input, in priority order. The
// teacher's epsilonClosure uses a LIFO stack popped from the end, which
// explores the most-recently-pushed branch first — backwards from the
// alternative-order priority spec.md §4.5 rule 2 requires. This instead recurses
// depth-first in edge-insertion order, so the first state to reach a
// given StateID is the only one kept (first-arrival-wins), and Split's
// Left branch is always explored before its Right branch.
func epsilonClosure[T any](b *Builder[T], seeds []thread[T], index, length int) []thread[T] {
	visited := make(map[StateID]bool)
	var out []thread[T]

	var visit func(id StateID, cap *Capture)
	visit = func(id StateID, cap *Capture) {
		if visited[id] {
			return
		}
		visited[id] = true

		s := b.State(id)
		switch s.Kind {
		case EdgeEpsilon:
			visit(s.Next, cap)
		case EdgeSplit:
			visit(s.Left, cap)
			visit(s.Right, cap)
		case EdgeCapture:
			nc := cap.clone()
			nc.apply(s.GroupIndex, s.Boundary, index)
			visit(s.Next, nc)
		case EdgeAnchorStart:
			if index == 0 {
				visit(s.Next, cap)
			}
		case EdgeAnchorEnd:
			if index == length {
				visit(s.Next, cap)
			}
		case EdgeToken, EdgeMatch:
			out = append(out, thread[T]{State: id, Cap: cap})
		}
	}

	for _, t := range seeds {
		visit(t.State, t.Cap)
	}
	return out
}

// stepThreads advances every EdgeToken thread whose Predicate accepts
// elem, dropping the rest. EdgeMatch threads are terminal and never step.
func stepThreads[T any](b *Builder[T], threads []thread[T], elem T) []thread[T] {
	var out []thread[T]
	for _, t := range threads {
		s := b.State(t.State)
		if s.Kind == EdgeToken && s.Predicate(elem) {
			out = append(out, thread[T]{State: s.Next, Cap: t.Cap})
		}
	}
	return out
}

// run simulates the automaton starting at index `start`, implementing
// spec.md §4.3/§4.5: rule 1 (longer endIndex wins) is primary, so an
// accepting thread only records a candidate best match — it never
// discards lower-priority threads still in flight, since one of them may
// yet produce a longer match. Rule 2 (earlier-listed alternative wins)
// only breaks ties among matches of equal length, which falls out of
// updating best on strict length improvement: among threads accepting at
// the same index, the first in priority order is recorded and later ties
// are not overwritten.
func (a *Automaton[T]) run(input []T, start int) (*Capture, bool) {
	length := len(input)
	threads := epsilonClosure(a.builder, []thread[T]{{State: a.start, Cap: newCapture()}}, start, length)

	var best *Capture
	bestLen := -1
	index := start

	for {
		var remaining []thread[T]
		for _, t := range threads {
			if a.builder.State(t.State).Kind == EdgeMatch {
				if index-start > bestLen {
					best = t.Cap
					bestLen = index - start
				}
				continue
			}
			remaining = append(remaining, t)
		}
		threads = remaining

		if index >= length || len(threads) == 0 {
			break
		}

		next := stepThreads(a.builder, threads, input[index])
		index++
		threads = epsilonClosure(a.builder, next, index, length)
	}

	return best, best != nil
}

// MatchResult is the public outcome of a successful match: the overall
// span plus every capturing group that participated.
type MatchResult struct {
	Range  Range
	Groups map[int]Range
}

func extractResult(cap *Capture) *MatchResult {
	whole := cap.Done[0]
	return &MatchResult{Range: whole, Groups: cap.Done}
}

// LookingAt reports whether the automaton matches starting exactly at
// start, without requiring the match to consume the rest of input
// (spec.md's anchored-at-start search, mirroring Java's Matcher.lookingAt).
func (a *Automaton[T]) LookingAt(input []T, start int) (*MatchResult, bool) {
	cap, ok := a.run(input, start)
	if !ok {
		return nil, false
	}
	return extractResult(cap), true
}

// Matches reports whether the automaton matches the entire input, start
// to end, with no leftover unmatched suffix.
func (a *Automaton[T]) Matches(input []T) bool {
	result, ok := a.LookingAt(input, 0)
	return ok && result.Range.End == len(input)
}

// Find searches input for the first match starting at or after from,
// returning nil if none exists.
func (a *Automaton[T]) Find(input []T, from int) (*MatchResult, bool) {
	for cursor := from; cursor <= len(input); cursor++ {
		if len(input)-cursor < a.minLen {
			break
		}
		if result, ok := a.LookingAt(input, cursor); ok {
			return result, true
		}
	}
	return nil, false
}

// FindAll returns every non-overlapping match in input, left to right.
// An empty match advances the cursor by one element past it rather than
// re-matching at the same position forever (spec.md §9's resolution of
// the empty-match termination question).
func (a *Automaton[T]) FindAll(input []T) []*MatchResult {
	var results []*MatchResult
	cursor := 0

	for cursor <= len(input) {
		result, ok := a.Find(input, cursor)
		if !ok {
			break
		}
		results = append(results, result)

		if result.Range.End > result.Range.Start {
			cursor = result.Range.End
		} else {
			cursor = result.Range.End + 1
		}
	}

	return results
}
