// Package ast holds the expression tree produced by parsing a pattern's
// surface syntax, and the tokenizer/parser that builds it.
//
// The tree is a tagged struct rather than one interface implementation per
// variant (compare the teacher's LiteralNode/SequenceNode/... hierarchy in
// ast_parser.go): a generic type parameter can't carry extra type
// parameters on a per-variant method set, so one Expr[T] with a Kind tag
// plays the role Go's own regexp/syntax.Regexp plays for the standard
// library's regex compiler.
package ast

import "github.com/mishumausam/openregex/token"

// Kind tags which variant of spec.md §3 an Expr represents.
type Kind int

const (
	KindLeaf Kind = iota
	KindStartAnchor
	KindEndAnchor
	KindSequence    // plain concatenation, no capture (top level / alternation operand)
	KindGroup       // capturing, anonymous
	KindNamedGroup  // capturing, named
	KindNonCapGroup // non-capturing
	KindAlternation
	KindOption
	KindStar
	KindPlus
	KindMinMax
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindStartAnchor:
		return "StartAnchor"
	case KindEndAnchor:
		return "EndAnchor"
	case KindSequence:
		return "Sequence"
	case KindGroup:
		return "Group"
	case KindNamedGroup:
		return "NamedGroup"
	case KindNonCapGroup:
		return "NonMatchingGroup"
	case KindAlternation:
		return "Alternation"
	case KindOption:
		return "Option"
	case KindStar:
		return "Star"
	case KindPlus:
		return "Plus"
	case KindMinMax:
		return "MinMax"
	default:
		return "Unknown"
	}
}

// Expr is one node of the expression tree (spec.md §3). Only the fields
// relevant to Kind are populated; the rest stay zero.
type Expr[T any] struct {
	Kind Kind

	// KindLeaf
	Source    string // original bracketed token text, for round-tripping
	Predicate token.Predicate[T]

	// KindGroup / KindNamedGroup
	Name       string // KindNamedGroup only
	GroupIndex int    // 1-based parse-order index; 0 if not a capturing group

	// KindSequence / KindGroup / KindNamedGroup / KindNonCapGroup
	Body []*Expr[T]

	// KindAlternation
	Left, Right *Expr[T]

	// KindOption / KindStar / KindPlus / KindMinMax
	Child *Expr[T]

	// KindMinMax
	Min, Max int
}

// IsCapturing reports whether e introduces a numbered capture group.
func (e *Expr[T]) IsCapturing() bool {
	return e.Kind == KindGroup || e.Kind == KindNamedGroup
}
