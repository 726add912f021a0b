package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Render produces the canonical textual form of e (spec.md §4.6). For
// any two parsed expressions, Render(a) == Render(b) iff a and b are
// equal up to alternation associativity (which is never rebalanced).
func Render[T any](e *Expr[T]) string {
	if e == nil {
		return ""
	}

	switch e.Kind {
	case KindLeaf:
		return e.Source
	case KindStartAnchor:
		return "^"
	case KindEndAnchor:
		return "$"
	case KindSequence:
		return renderBody(e.Body)
	case KindGroup:
		return "(" + renderBody(e.Body) + ")"
	case KindNamedGroup:
		return "(<" + e.Name + ">:" + renderBody(e.Body) + ")"
	case KindNonCapGroup:
		return "(?:" + renderBody(e.Body) + ")"
	case KindAlternation:
		return Render(e.Left) + " | " + Render(e.Right)
	case KindOption:
		return Render(e.Child) + "?"
	case KindStar:
		return Render(e.Child) + "*"
	case KindPlus:
		return Render(e.Child) + "+"
	case KindMinMax:
		return Render(e.Child) + "{" + strconv.Itoa(e.Min) + "," + strconv.Itoa(e.Max) + "}"
	default:
		return ""
	}
}

func renderBody[T any](body []*Expr[T]) string {
	parts := make([]string, len(body))
	for i, c := range body {
		parts[i] = Render(c)
	}
	return strings.Join(parts, " ")
}

// Dump pretty-prints e as an indented tree, generalized from the
// teacher's ast/ast_parser.go printAST/prettyPrint.
func Dump[T any](e *Expr[T]) string {
	return dump(e, "", true)
}

func dump[T any](e *Expr[T], prefix string, isLast bool) string {
	if e == nil {
		return ""
	}

	connector := "├─ "
	if isLast {
		connector = "└─ "
	}

	var b strings.Builder
	childPrefix := prefix
	if isLast {
		childPrefix += "   "
	} else {
		childPrefix += "│  "
	}

	switch e.Kind {
	case KindLeaf:
		fmt.Fprintf(&b, "%s%sLeaf(%s)\n", prefix, connector, e.Source)
	case KindStartAnchor:
		fmt.Fprintf(&b, "%s%sStartAnchor\n", prefix, connector)
	case KindEndAnchor:
		fmt.Fprintf(&b, "%s%sEndAnchor\n", prefix, connector)
	case KindSequence:
		fmt.Fprintf(&b, "%s%sSequence\n", prefix, connector)
		dumpChildren(&b, e.Body, childPrefix)
	case KindGroup:
		fmt.Fprintf(&b, "%s%sGroup(%d)\n", prefix, connector, e.GroupIndex)
		dumpChildren(&b, e.Body, childPrefix)
	case KindNamedGroup:
		fmt.Fprintf(&b, "%s%sNamedGroup(%d:%s)\n", prefix, connector, e.GroupIndex, e.Name)
		dumpChildren(&b, e.Body, childPrefix)
	case KindNonCapGroup:
		fmt.Fprintf(&b, "%s%sNonMatchingGroup\n", prefix, connector)
		dumpChildren(&b, e.Body, childPrefix)
	case KindAlternation:
		fmt.Fprintf(&b, "%s%sAlternation\n", prefix, connector)
		b.WriteString(dump(e.Left, childPrefix, false))
		b.WriteString(dump(e.Right, childPrefix, true))
	case KindOption, KindStar, KindPlus:
		fmt.Fprintf(&b, "%s%s%s\n", prefix, connector, e.Kind)
		b.WriteString(dump(e.Child, childPrefix, true))
	case KindMinMax:
		fmt.Fprintf(&b, "%s%sMinMax(%d,%d)\n", prefix, connector, e.Min, e.Max)
		b.WriteString(dump(e.Child, childPrefix, true))
	}

	return b.String()
}

func dumpChildren[T any](b *strings.Builder, children []*Expr[T], prefix string) {
	for i, c := range children {
		b.WriteString(dump(c, prefix, i == len(children)-1))
	}
}
