// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import "testing"

func TestNormalizeAuthor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"doctor with period", "Dr. Jane Doe", "Jane Doe"},
		{"doctor without period", "Dr Jane Doe", "Jane Doe"},
		{"professor abbreviated lowercase", "prof  John Smith", "John Smith"},
		{"professor full word", "Professor Gitanjali Yadav", "Gitanjali Yadav"},
		{"mister", "Mr. Bob Jones", "Bob Jones"},
		{"missus", "Mrs Alice Jones", "Alice Jones"},
		{"ms", "Ms. Carol White", "Carol White"},
		{"stacked honorifics", "Prof. Dr. Debasisa Mohanty", "Debasisa Mohanty"},
		{"no honorific untouched", "Jane Doe", "Jane Doe"},
		{"honorific-like surname kept", "Jane Drake", "Jane Drake"},
		{"internal whitespace collapsed", "  Jane   Doe  ", "Jane Doe"},
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
		{"honorific only", "Dr.", ""},
		{"case-insensitive", "DR. Jane Doe", "Jane Doe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAuthor(tt.in); got != tt.want {
				t.Errorf("NormalizeAuthor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
