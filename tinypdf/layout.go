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

import "io"

// header is the first line of every generated file.
const header = "%PDF-1.4\n"

// posWriter keeps track of the number of bytes written so far.
type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}

func (w *posWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// offsetTable maps object numbers to the byte offset of the object in the
// file.  Entry 0 stands for the head of the free list and is never set.
type offsetTable [NumObjects + 1]int64

// writeBody writes the file header and the objects.  The position of every
// object is recorded immediately before the object is written.
func writeBody(w *posWriter, objs []object) (*offsetTable, error) {
	_, err := w.WriteString(header)
	if err != nil {
		return nil, err
	}

	offsets := &offsetTable{}
	for _, obj := range objs {
		offsets[obj.Role] = w.pos
		_, err = w.Write(obj.Data)
		if err != nil {
			return nil, err
		}
	}
	return offsets, nil
}
