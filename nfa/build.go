package nfa

import (
	"fmt"

	"github.com/mishumausam/openregex/ast"
)

// BuildOptions bounds the cost of compiling a pattern to an NFA
// (functional-options pattern, grounded on coregx-coregex's BuildOption).
type BuildOptions struct {
	// MaxExpansion caps how many copies a {m,n} quantifier may expand to.
	// Compile rejects a pattern whose Max exceeds this.
	MaxExpansion int
}

// BuildOption configures a BuildOptions.
type BuildOption func(*BuildOptions)

// WithMaxExpansion overrides the default {m,n} expansion bound.
func WithMaxExpansion(n int) BuildOption {
	return func(o *BuildOptions) { o.MaxExpansion = n }
}

func defaultBuildOptions() BuildOptions {
	return BuildOptions{MaxExpansion: 1000}
}

// ExpansionError reports that a {m,n} quantifier's Max exceeded the
// configured MaxExpansion bound.
type ExpansionError struct {
	Max   int
	Limit int
}

func (e *ExpansionError) Error() string {
	return fmt.Sprintf("openregex: {m,%d} exceeds max expansion limit %d", e.Max, e.Limit)
}

// fragment is a Thompson NFA piece with exactly one entry and one exit
// state, per the teacher's nfa.NFA{Start, Accept} shape.
type fragment struct {
	Start, Accept StateID
	MinLen        int
}

// Build compiles the entire expression tree for a pattern into an
// Automaton, wrapping the root in an implicit whole-match capture
// (group 0), matching spec.md §4.2/§4.4.
func Build[T any](root *ast.Expr[T], groupCount int, groupNames map[string]int, opts ...BuildOption) (*Automaton[T], error) {
	options := defaultBuildOptions()
	for _, opt := range opts {
		opt(&options)
	}

	b := NewBuilder[T]()

	body, err := buildExpr(b, root, options)
	if err != nil {
		return nil, err
	}

	matchState := b.AddMatch()
	closeWhole := b.AddCapture(0, GroupClose, matchState)
	b.Patch(body.Accept, closeWhole)
	openWhole := b.AddCapture(0, GroupOpen, body.Start)

	return &Automaton[T]{
		builder:    b,
		start:      openWhole,
		minLen:     body.MinLen,
		groupCount: groupCount,
		groupNames: groupNames,
	}, nil
}

func buildExpr[T any](b *Builder[T], e *ast.Expr[T], opts BuildOptions) (fragment, error) {
	switch e.Kind {
	case ast.KindLeaf:
		return buildLeaf(b, e), nil
	case ast.KindStartAnchor:
		return buildAnchor(b, true), nil
	case ast.KindEndAnchor:
		return buildAnchor(b, false), nil
	case ast.KindSequence:
		return buildSequence(b, e.Body, opts)
	case ast.KindGroup, ast.KindNamedGroup:
		return buildCapturingGroup(b, e, opts)
	case ast.KindNonCapGroup:
		return buildSequence(b, e.Body, opts)
	case ast.KindAlternation:
		return buildAlternation(b, e, opts)
	case ast.KindOption:
		return buildOptionKind(b, e.Child, opts)
	case ast.KindStar:
		return buildStar(b, e.Child, opts)
	case ast.KindPlus:
		return buildPlus(b, e.Child, opts)
	case ast.KindMinMax:
		return buildMinMax(b, e, opts)
	default:
		return fragment{}, fmt.Errorf("openregex: unhandled expression kind %v", e.Kind)
	}
}

func buildLeaf[T any](b *Builder[T], e *ast.Expr[T]) fragment {
	exit := b.AddEpsilon(Invalid)
	start := b.AddToken(e.Predicate, exit)
	return fragment{Start: start, Accept: exit, MinLen: 1}
}

func buildAnchor[T any](b *Builder[T], isStart bool) fragment {
	exit := b.AddEpsilon(Invalid)
	var entry StateID
	if isStart {
		entry = b.AddAnchorStart(exit)
	} else {
		entry = b.AddAnchorEnd(exit)
	}
	return fragment{Start: entry, Accept: exit, MinLen: 0}
}

// buildEpsilonFragment produces a zero-width, always-matching fragment,
// used for an empty pattern or an empty group body.
func buildEpsilonFragment[T any](b *Builder[T]) fragment {
	exit := b.AddEpsilon(Invalid)
	return fragment{Start: exit, Accept: exit, MinLen: 0}
}

func buildSequence[T any](b *Builder[T], atoms []*ast.Expr[T], opts BuildOptions) (fragment, error) {
	if len(atoms) == 0 {
		return buildEpsilonFragment(b), nil
	}

	first, err := buildExpr(b, atoms[0], opts)
	if err != nil {
		return fragment{}, err
	}
	result := first

	for _, atom := range atoms[1:] {
		next, err := buildExpr(b, atom, opts)
		if err != nil {
			return fragment{}, err
		}
		b.Patch(result.Accept, next.Start)
		result = fragment{Start: result.Start, Accept: next.Accept, MinLen: result.MinLen + next.MinLen}
	}

	return result, nil
}

func buildCapturingGroup[T any](b *Builder[T], e *ast.Expr[T], opts BuildOptions) (fragment, error) {
	body, err := buildSequence(b, e.Body, opts)
	if err != nil {
		return fragment{}, err
	}

	exit := b.AddEpsilon(Invalid)
	closeEdge := b.AddCapture(e.GroupIndex, GroupClose, exit)
	b.Patch(body.Accept, closeEdge)
	openEdge := b.AddCapture(e.GroupIndex, GroupOpen, body.Start)

	return fragment{Start: openEdge, Accept: exit, MinLen: body.MinLen}, nil
}

// buildAlternation follows the teacher's Alternate: a new start state
// splits into both operands, which rejoin at a new accept state. Left is
// tried before Right (spec.md §4.5 rule 2: first-listed alternative wins
// ties).
func buildAlternation[T any](b *Builder[T], e *ast.Expr[T], opts BuildOptions) (fragment, error) {
	left, err := buildExpr(b, e.Left, opts)
	if err != nil {
		return fragment{}, err
	}
	right, err := buildExpr(b, e.Right, opts)
	if err != nil {
		return fragment{}, err
	}

	exit := b.AddEpsilon(Invalid)
	b.Patch(left.Accept, exit)
	b.Patch(right.Accept, exit)
	start := b.AddSplit(left.Start, right.Start)

	minLen := left.MinLen
	if right.MinLen < minLen {
		minLen = right.MinLen
	}
	return fragment{Start: start, Accept: exit, MinLen: minLen}, nil
}

// buildOptionKind implements a?: try entering the atom first, fall back
// to skipping it (spec.md §4.5 rule 3: greedy quantifiers prefer more
// repetitions).
func buildOptionKind[T any](b *Builder[T], child *ast.Expr[T], opts BuildOptions) (fragment, error) {
	atom, err := buildExpr(b, child, opts)
	if err != nil {
		return fragment{}, err
	}

	exit := b.AddEpsilon(Invalid)
	b.Patch(atom.Accept, exit)
	start := b.AddSplit(atom.Start, exit)

	return fragment{Start: start, Accept: exit, MinLen: 0}, nil
}

// buildStar implements a*: enter-or-skip at the top, loop-back-or-exit
// after each repetition, so that greedy priority (try another repetition
// before exiting) is preserved through the split ordering.
func buildStar[T any](b *Builder[T], child *ast.Expr[T], opts BuildOptions) (fragment, error) {
	atom, err := buildExpr(b, child, opts)
	if err != nil {
		return fragment{}, err
	}

	exit := b.AddEpsilon(Invalid)
	entry := b.AddSplit(atom.Start, exit)
	loop := b.AddSplit(atom.Start, exit)
	b.Patch(atom.Accept, loop)

	return fragment{Start: entry, Accept: exit, MinLen: 0}, nil
}

// buildPlus implements a+ as the child built once, with a loop-back edge
// from its own accept state to its own start state: the same fragment
// doubles as "keep matching" and "final accept" target, avoiding a
// separate Concat(atom, Star(atom)) expansion.
func buildPlus[T any](b *Builder[T], child *ast.Expr[T], opts BuildOptions) (fragment, error) {
	atom, err := buildExpr(b, child, opts)
	if err != nil {
		return fragment{}, err
	}

	exit := b.AddEpsilon(Invalid)
	loop := b.AddSplit(atom.Start, exit)
	b.Patch(atom.Accept, loop)

	return fragment{Start: atom.Start, Accept: exit, MinLen: atom.MinLen}, nil
}

// buildMinMax implements {m,n} by invoking buildExpr on the same
// *ast.Expr child m times (required copies), then n-m more times wrapped
// in buildOptionKind (optional copies), chained in sequence. Re-invoking
// the builder on the same AST pointer naturally yields fresh NFA states
// each time, so no AST cloning is needed.
func buildMinMax[T any](b *Builder[T], e *ast.Expr[T], opts BuildOptions) (fragment, error) {
	if e.Max > opts.MaxExpansion {
		return fragment{}, &ExpansionError{Max: e.Max, Limit: opts.MaxExpansion}
	}

	if e.Max == 0 {
		return buildEpsilonFragment(b), nil
	}

	var result fragment
	have := false

	for i := 0; i < e.Min; i++ {
		piece, err := buildExpr(b, e.Child, opts)
		if err != nil {
			return fragment{}, err
		}
		result = appendFragment(b, result, piece, have)
		have = true
	}

	for i := e.Min; i < e.Max; i++ {
		piece, err := buildOptionKind(b, e.Child, opts)
		if err != nil {
			return fragment{}, err
		}
		result = appendFragment(b, result, piece, have)
		have = true
	}

	if !have {
		return buildEpsilonFragment(b), nil
	}
	return result, nil
}

func appendFragment[T any](b *Builder[T], acc, next fragment, haveAcc bool) fragment {
	if !haveAcc {
		return next
	}
	b.Patch(acc.Accept, next.Start)
	return fragment{Start: acc.Start, Accept: next.Accept, MinLen: acc.MinLen + next.MinLen}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
