package ast

import "fmt"

// TokenizationError is a parse-time failure in the pattern's surface
// syntax (spec.md §7 family 1): unmatched brackets, unknown symbols,
// dangling alternation, a quantifier with no preceding atom, or an
// out-of-range {m,n}.
type TokenizationError struct {
	Offset   int    // byte offset into the source pattern
	Fragment string // the offending text, trimmed to a short window
	Msg      string
}

func (e *TokenizationError) Error() string {
	return fmt.Sprintf("openregex: %s at offset %d near %q", e.Msg, e.Offset, e.Fragment)
}

// FactoryError wraps a token factory's rejection of a token body
// (spec.md §7 family 2). Unwrap reaches the factory's underlying cause.
type FactoryError struct {
	Token  string // the raw text inside the token delimiters
	Offset int
	Err    error
}

func (e *FactoryError) Error() string {
	return fmt.Sprintf("openregex: token factory rejected %q at offset %d: %v", e.Token, e.Offset, e.Err)
}

func (e *FactoryError) Unwrap() error { return e.Err }
