// Package openregex compiles patterns over a caller-chosen token
// vocabulary into Thompson NFAs and matches them against sequences of
// that vocabulary's element type, generalizing the line-oriented regex
// engine this module is descended from to any []T.
package openregex

import (
	"github.com/mishumausam/openregex/ast"
	"github.com/mishumausam/openregex/nfa"
	"github.com/mishumausam/openregex/token"
)

// Options configures compilation (functional-options pattern, grounded
// on coregx-coregex's BuildOption).
type Options struct {
	maxExpansion int
}

// Option mutates an Options value.
type Option func(*Options)

// WithMaxExpansion bounds how many copies a {m,n} quantifier may expand
// to; Compile rejects patterns whose upper bound exceeds it. Defaults to
// 1000.
func WithMaxExpansion(n int) Option {
	return func(o *Options) { o.maxExpansion = n }
}

func resolveOptions(opts []Option) Options {
	o := Options{maxExpansion: 1000}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) buildOpts() []nfa.BuildOption {
	return []nfa.BuildOption{nfa.WithMaxExpansion(o.maxExpansion)}
}

// RegularExpression is a compiled pattern ready to match against []T.
type RegularExpression[T any] struct {
	source  string // empty when compiled via CompileExpr
	opts    Options
	factory token.Factory[T]

	root       *ast.Expr[T]
	automaton  *nfa.Automaton[T]
	groupNames map[string]int
}

// Compile parses source using factory to resolve token bodies into
// predicates, then builds the matching automaton.
func Compile[T any](source string, factory token.Factory[T], opts ...Option) (*RegularExpression[T], error) {
	root, groupCount, groupNames, err := ast.Parse(source, factory)
	if err != nil {
		return nil, err
	}

	options := resolveOptions(opts)
	automaton, err := nfa.Build(root, groupCount, groupNames, options.buildOpts()...)
	if err != nil {
		return nil, err
	}

	return &RegularExpression[T]{
		source:     source,
		opts:       options,
		factory:    factory,
		root:       root,
		automaton:  automaton,
		groupNames: groupNames,
	}, nil
}

// CompileExpr builds an automaton directly from an already-parsed
// expression tree, bypassing the tokenizer entirely. Because no pattern
// text exists to re-run a factory over, the resulting expression installs
// token.Refuse as its factory: Recompile on it always fails with
// token.ErrNoFactory.
func CompileExpr[T any](root *ast.Expr[T], groupCount int, groupNames map[string]int, opts ...Option) (*RegularExpression[T], error) {
	options := resolveOptions(opts)
	automaton, err := nfa.Build(root, groupCount, groupNames, options.buildOpts()...)
	if err != nil {
		return nil, err
	}

	return &RegularExpression[T]{
		opts:       options,
		factory:    token.Refuse[T](),
		root:       root,
		automaton:  automaton,
		groupNames: groupNames,
	}, nil
}

// Recompile re-parses the original pattern text against a new factory,
// producing fresh predicates without changing the pattern's syntax. It
// fails with token.ErrNoFactory for expressions built via CompileExpr,
// which have no pattern text to re-tokenize.
func (re *RegularExpression[T]) Recompile(factory token.Factory[T]) (*RegularExpression[T], error) {
	if re.source == "" {
		return nil, token.ErrNoFactory
	}
	return Compile(re.source, factory, optionsAsOpts(re.opts)...)
}

func optionsAsOpts(o Options) []Option {
	return []Option{WithMaxExpansion(o.maxExpansion)}
}

// String renders the expression's canonical textual form (spec.md §4.6).
func (re *RegularExpression[T]) String() string {
	return ast.Render(re.root)
}

// Equal reports whether re and other parse to the same canonical form.
func (re *RegularExpression[T]) Equal(other *RegularExpression[T]) bool {
	return re.String() == other.String()
}

// GroupCount returns the number of capturing groups in the pattern, not
// counting the implicit whole-match group 0.
func (re *RegularExpression[T]) GroupCount() int {
	return re.automaton.GroupCount()
}

// Group is one capturing group's span within a Match. Matched is false
// if the group never participated (e.g. an alternative branch that
// didn't run).
type Group struct {
	Start, End int
	Matched    bool
}

// Match is one successful match against an input sequence.
type Match struct {
	Start, End int
	groups     map[int]nfa.Range
	names      map[string]int
}

func newMatch(r *nfa.MatchResult, names map[string]int) *Match {
	return &Match{Start: r.Range.Start, End: r.Range.End, groups: r.Groups, names: names}
}

// Group returns the span captured by the i-th group (1-based; 0 is the
// whole match), and whether it participated.
func (m *Match) Group(i int) Group {
	r, ok := m.groups[i]
	if !ok {
		return Group{}
	}
	return Group{Start: r.Start, End: r.End, Matched: true}
}

// Named returns the span captured by a named group.
func (m *Match) Named(name string) (Group, bool) {
	idx, ok := m.names[name]
	if !ok {
		return Group{}, false
	}
	return m.Group(idx), true
}

// LookingAt reports whether the pattern matches starting at index 0 of
// input, without requiring the match to reach the end.
func (re *RegularExpression[T]) LookingAt(input []T) (*Match, bool) {
	r, ok := re.automaton.LookingAt(input, 0)
	if !ok {
		return nil, false
	}
	return newMatch(r, re.groupNames), true
}

// Matches reports whether the pattern matches the entirety of input.
func (re *RegularExpression[T]) Matches(input []T) bool {
	return re.automaton.Matches(input)
}

// Find returns the first match in input starting at or after from.
func (re *RegularExpression[T]) Find(input []T, from int) (*Match, bool) {
	r, ok := re.automaton.Find(input, from)
	if !ok {
		return nil, false
	}
	return newMatch(r, re.groupNames), true
}

// FindAll returns every non-overlapping match in input, left to right.
func (re *RegularExpression[T]) FindAll(input []T) []*Match {
	results := re.automaton.FindAll(input)
	matches := make([]*Match, len(results))
	for i, r := range results {
		matches[i] = newMatch(r, re.groupNames)
	}
	return matches
}

// Apply reports whether the pattern matches anywhere in input; sugar for
// Find(input, 0) succeeding.
func (re *RegularExpression[T]) Apply(input []T) bool {
	_, ok := re.Find(input, 0)
	return ok
}
