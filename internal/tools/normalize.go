// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tools exposes the fixed set of PubMed lookup operations the
// language model can invoke, each with a declared name, description, and
// a single string argument.
package tools

import "strings"

// honorifics are the leading tokens stripped from free-text author names
// before they are used as search keys. Matching is case-insensitive, with
// or without the trailing period.
var honorifics = map[string]bool{
	"dr":        true,
	"prof":      true,
	"professor": true,
	"mr":        true,
	"mrs":       true,
	"ms":        true,
}

// NormalizeAuthor returns the canonical form of a free-text author name:
// leading honorific tokens are removed, repeated whitespace collapsed, and
// the result trimmed. It never fails; malformed input yields "".
func NormalizeAuthor(name string) string {
	fields := strings.Fields(name)
	for len(fields) > 0 {
		token := strings.ToLower(strings.TrimSuffix(fields[0], "."))
		if !honorifics[token] {
			break
		}
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}
