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

package inspect

import (
	"bytes"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Check scans data and verifies that the file is consistent.  See
// [FileInfo.Check] for the list of checks.
func Check(data []byte) error {
	info, err := ScanBytes(data)
	if err != nil {
		return err
	}
	return info.Check(data)
}

// Check verifies that the parts of the file fit together:
//   - the file starts with the header and ends with %%EOF,
//   - startxref gives the position of the xref keyword,
//   - the trailer /Size matches the number of xref entries,
//   - entry 0 is the head of the free list,
//   - every in-use xref entry points at "<num> <gen> obj",
//   - every object of the body is listed in the xref table,
//   - the /Length of every stream matches the stream data,
//   - the trailer /Root refers to a catalog.
//
// The returned error, if any, is a [*MalformedFileError] describing the
// first problem found.  data must be the data info was scanned from.
func (info *FileInfo) Check(data []byte) error {
	if info.HeaderPos != 0 {
		return malformed(info.HeaderPos, "header not at start of file")
	}
	for _, obj := range info.Objects {
		if obj.Broken {
			return malformed(obj.Pos, "cannot parse object %d", obj.Number)
		}
	}

	switch {
	case info.XRefPos < 0:
		return &MalformedFileError{Err: errNoXRef}
	case info.TrailerPos < 0:
		return &MalformedFileError{Err: errNoTrailer}
	case info.StartXRefPos < 0:
		return &MalformedFileError{Err: errNoStartXRef}
	case info.EOFPos < 0:
		return &MalformedFileError{Err: errNoEOF}
	}
	tail := data[info.EOFPos+int64(len("%%EOF")):]
	if len(bytes.TrimLeft(tail, "\r\n")) > 0 {
		return malformed(info.EOFPos, "data after %%%%EOF")
	}

	if info.StartXRef != info.XRefPos {
		return malformed(info.StartXRefPos,
			"startxref gives %d, but the xref table is at %d",
			info.StartXRef, info.XRefPos)
	}
	if info.Trailer.Size != len(info.XRef) {
		return malformed(info.TrailerPos,
			"/Size is %d, but the xref table has %d entries",
			info.Trailer.Size, len(info.XRef))
	}
	if head, ok := info.XRef[0]; !ok || head.InUse || head.Generation != 65535 {
		return malformed(info.XRefPos, "xref entry 0 is not the head of the free list")
	}

	size := int64(len(data))
	keys := maps.Keys(info.XRef)
	slices.Sort(keys)
	for _, num := range keys {
		entry := info.XRef[num]
		if !entry.InUse {
			continue
		}
		want := fmt.Sprintf("%d %d obj", num, entry.Generation)
		if entry.Offset < 0 || entry.Offset >= size ||
			!bytes.HasPrefix(data[entry.Offset:], []byte(want)) {
			return malformed(entry.Offset,
				"xref entry for object %d does not point to %q", num, want)
		}
	}

	for _, obj := range info.Objects {
		entry, ok := info.XRef[obj.Number]
		if !ok || !entry.InUse || entry.Offset != obj.Pos {
			return malformed(obj.Pos, "object %d is missing from the xref table", obj.Number)
		}
		if obj.StreamPos < 0 {
			continue
		}
		if obj.Length < 0 {
			return malformed(obj.Pos, "stream object %d without /Length", obj.Number)
		}
		end := skipEOL(data, int(min(obj.StreamPos+obj.Length, size)))
		if int64(end) != obj.EndStreamPos {
			return malformed(obj.StreamPos,
				"object %d: /Length is %d, but the stream has %d bytes",
				obj.Number, obj.Length, obj.EndStreamPos-obj.StreamPos)
		}
	}

	root := info.Object(info.Trailer.Root)
	if root == nil || root.Generation != info.Trailer.RootGen || root.Type != "Catalog" {
		return malformed(info.TrailerPos, "/Root does not refer to a catalog")
	}

	return nil
}
