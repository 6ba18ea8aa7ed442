// seehuhn.de/go/localboost - scan reports for local businesses
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tinypdf

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestEscape(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"", ""},
		{"hello", "hello"},
		{`a(b)c\d`, `a\(b\)c\\d`},
		{`\`, `\\`},
		{`\(`, `\\\(`},
		{`)(`, `\)\(`},
		{"(unbalanced", `\(unbalanced`},
		{"ein Bär", "ein Bär"},
		{"tab\there", "tab\there"},
	}
	for _, test := range cases {
		out := Escape(test.in)
		if out != test.out {
			t.Errorf("Escape(%q): expected %q but got %q", test.in, test.out, out)
		}
	}
}

func FuzzEscape(f *testing.F) {
	f.Add("")
	f.Add("ABC")
	f.Add(`a(b)c\d`)
	f.Add(`\\)`)
	f.Add("Bär (Köln)")
	f.Fuzz(func(t *testing.T, s string) {
		enc := Escape(s)
		if strings.ContainsAny(unescapedDelimiters(enc), "()") {
			t.Fatalf("unescaped delimiter in %q", enc)
		}
		dec := unescape(enc)
		if dec != s {
			t.Errorf("wrong round trip: %q != %q", dec, s)
		}
		if utf8.ValidString(s) && !utf8.ValidString(enc) {
			t.Errorf("escaping broke UTF-8: %q", enc)
		}
	})
}

// unescape decodes the body of a PDF literal string, for the escape
// sequences produced by Escape.
func unescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			i++
			c = s[i]
		}
		b.WriteByte(c)
	}
	return b.String()
}

// unescapedDelimiters returns the parentheses of s which are not preceded
// by an escaping backslash.
func unescapedDelimiters(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '(', ')':
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
