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
	"bytes"
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// Letter is the media box of the generated page, in PDF units.
var Letter = rect.Rect{URx: 612, URy: 792}

// Text geometry of the content stream.
const (
	FontName     = "F1" // resource name of the font
	FontSize     = 12
	Leading      = 14
	StartX       = 72
	StartY       = 740
	BottomMargin = 72
)

// Capacity returns the number of lines which fit on the page before the
// text crosses the bottom margin.  Longer inputs are not an error, the
// remaining lines are placed below the visible area.
func Capacity() int {
	avail := StartY - (Letter.LLy + BottomMargin)
	if avail < 0 {
		return 0
	}
	return int(avail/Leading) + 1
}

// ContentStream returns the page content for the given lines.
//
// The result is a single text object.  Each line is escaped using [Escape]
// and shown at the current position, followed by a move to the start of the
// next line.  The operators are separated by newlines, and the stream ends
// with a newline.
func ContentStream(lines []string) []byte {
	buf := &bytes.Buffer{}
	fmt.Fprintln(buf, "BT")
	fmt.Fprintf(buf, "/%s %d Tf\n", FontName, FontSize)
	fmt.Fprintf(buf, "%d TL\n", Leading)
	fmt.Fprintf(buf, "%d %d Td\n", StartX, StartY)
	for _, line := range lines {
		buf.WriteString("(")
		buf.WriteString(Escape(line))
		buf.WriteString(") Tj\n")
		buf.WriteString("T*\n")
	}
	fmt.Fprintln(buf, "ET")
	return buf.Bytes()
}
