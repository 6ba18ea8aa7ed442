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
	"io"
)

// Assemble returns a complete PDF file which shows the given lines of text
// on a single page.
//
// Empty strings produce empty lines.  Assemble never fails; the result is
// rebuilt from scratch on every call.
func Assemble(lines []string) []byte {
	buf := &bytes.Buffer{}
	// Writes to a bytes.Buffer cannot fail.
	_, _ = Write(buf, lines)
	return buf.Bytes()
}

// Write writes the PDF file for the given lines to w.  It returns the
// number of bytes written.  Any error is an error returned by w.
func Write(w io.Writer, lines []string) (int64, error) {
	pw := &posWriter{w: w}

	objs := buildObjects(ContentStream(lines))
	offsets, err := writeBody(pw, objs)
	if err != nil {
		return pw.pos, err
	}
	err = writeXRef(pw, offsets)
	return pw.pos, err
}
