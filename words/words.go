// Package words supplies a token.Factory[string] for patterns that match
// over whitespace-split words, the vocabulary the cmd/openregex and
// cmd/openregex-repl binaries use.
package words

import (
	"fmt"
	"regexp"

	"github.com/mishumausam/openregex/token"
)

// Factory turns the text inside a <...> or [...] token pattern into a
// predicate over whole words:
//
//   - "*" matches any word.
//   - "/re/" compiles re with the standard regexp package and matches a
//     word iff re matches it in full, generalizing the teacher's
//     isDigit/isAlphaNumeric character-class helpers from single bytes
//     to whole words.
//   - anything else matches a word iff it is exactly equal to the body.
func Factory(raw string) (token.Predicate[string], error) {
	if raw == "*" {
		return func(string) bool { return true }, nil
	}

	if len(raw) >= 2 && raw[0] == '/' && raw[len(raw)-1] == '/' {
		body := raw[1 : len(raw)-1]
		re, err := regexp.Compile(`^(?:` + body + `)$`)
		if err != nil {
			return nil, fmt.Errorf("words: invalid /regex/ token %q: %w", raw, err)
		}
		return func(word string) bool { return re.MatchString(word) }, nil
	}

	literal := raw
	return func(word string) bool { return word == literal }, nil
}
