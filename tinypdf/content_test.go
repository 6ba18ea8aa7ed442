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

	"github.com/google/go-cmp/cmp"
)

func TestContentStream(t *testing.T) {
	cases := []struct {
		lines []string
		out   string
	}{
		{nil, "BT\n/F1 12 Tf\n14 TL\n72 740 Td\nET\n"},
		{[]string{""}, "BT\n/F1 12 Tf\n14 TL\n72 740 Td\n() Tj\nT*\nET\n"},
		{
			[]string{"", `a(b)c\d`},
			"BT\n/F1 12 Tf\n14 TL\n72 740 Td\n() Tj\nT*\n" + `(a\(b\)c\\d) Tj` + "\nT*\nET\n",
		},
		{
			[]string{"Score: 62/100", "Bär"},
			"BT\n/F1 12 Tf\n14 TL\n72 740 Td\n(Score: 62/100) Tj\nT*\n(Bär) Tj\nT*\nET\n",
		},
	}
	for i, test := range cases {
		out := string(ContentStream(test.lines))
		if d := cmp.Diff(test.out, out); d != "" {
			t.Errorf("%d: content stream mismatch (-want +got):\n%s", i, d)
		}
	}
}

func TestContentStreamLineOrder(t *testing.T) {
	lines := []string{"first", "", "third", "", "fifth"}
	out := string(ContentStream(lines))

	var shown []string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasSuffix(l, ") Tj") {
			shown = append(shown, strings.TrimSuffix(strings.TrimPrefix(l, "("), ") Tj"))
		}
	}
	if d := cmp.Diff(lines, shown); d != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", d)
	}
	if n := strings.Count(out, "\nT*\n"); n != len(lines) {
		t.Errorf("expected %d T* operators, got %d", len(lines), n)
	}
}

func TestCapacity(t *testing.T) {
	n := Capacity()
	if n != 48 {
		t.Errorf("expected 48 lines, got %d", n)
	}

	// The baseline of the last line must stay above the bottom margin,
	// one more line must not.
	last := StartY - float64(n-1)*Leading
	if last < Letter.LLy+BottomMargin {
		t.Errorf("line %d at %g is below the margin", n, last)
	}
	if next := last - Leading; next >= Letter.LLy+BottomMargin {
		t.Errorf("line %d at %g would still fit", n+1, next)
	}
}
