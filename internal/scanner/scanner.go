// Package scanner extracts tags and matches queries in raw note content.
package scanner

import (
	"bytes"
	"regexp"
	"unicode/utf8"
)

// tagRe matches '#' followed by one or more word characters, where word
// characters include non-ASCII letters and digits.
var tagRe = regexp.MustCompile(`#[\p{L}\p{M}\p{Nd}\p{Pc}]+`)

// Tags returns every tag in data in order of appearance. Duplicates are kept.
func Tags(data []byte) []string {
	matches := tagRe.FindAll(data, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, string(m))
	}
	return out
}

// Contains reports whether data contains query as a literal, case-sensitive substring.
func Contains(data []byte, query string) bool {
	return bytes.Contains(data, []byte(query))
}

// IsText reports whether data can be treated as note text (valid UTF-8).
func IsText(data []byte) bool {
	return utf8.Valid(data)
}
