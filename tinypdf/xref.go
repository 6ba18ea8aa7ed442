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

import "fmt"

// writeXRef writes the cross-reference table, the trailer and the
// end-of-file marker.  The xref section starts at the current position of w.
func writeXRef(w *posWriter, offsets *offsetTable) error {
	xRefPos := w.pos

	_, err := fmt.Fprintf(w, "xref\n0 %d\n", NumObjects+1)
	if err != nil {
		return err
	}
	// Each entry is exactly 20 bytes long, including the two-character
	// end-of-line marker " \n".
	_, err = w.WriteString("0000000000 65535 f \n")
	if err != nil {
		return err
	}
	for i := 1; i <= NumObjects; i++ {
		_, err = fmt.Fprintf(w, "%010d 00000 n \n", offsets[i])
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "trailer\n<< /Size %d /Root %s >>\n", NumObjects+1, Catalog.Ref())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "startxref\n%d\n%%%%EOF\n", xRefPos)
	return err
}
