package openregex

import "strings"

// Split breaks a line into the whitespace-delimited words the words
// package's token vocabulary matches against (spec.md §1's word-sequence
// input model), generalizing the teacher's byte-oriented tokenize.
func Split(line string) []string {
	return strings.Fields(line)
}
