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
	"io"
	"regexp"
	"strconv"
)

// FileInfo describes the structure of a PDF file, as found by a
// sequential scan through the file.
type FileInfo struct {
	HeaderPos     int64
	HeaderVersion string
	Size          int64

	Objects []*FileObject

	XRefPos      int64
	XRef         map[uint32]XRefEntry
	TrailerPos   int64
	Trailer      Trailer
	StartXRefPos int64
	StartXRef    int64
	EOFPos       int64
}

// FileObject is an indirect object found in the body of a file.
type FileObject struct {
	Pos        int64
	End        int64
	Number     uint32
	Generation uint16
	Broken     bool

	// Type is the value of the /Type entry of the object dictionary, or
	// the empty string if there is no such entry.
	Type string

	// Length is the value of the /Length entry, or -1 if there is no such
	// entry.
	Length int64

	// StreamPos is the position of the first byte of stream data, or -1 if
	// the object is not a stream.  EndStreamPos is the position of the
	// "endstream" keyword.
	StreamPos    int64
	EndStreamPos int64
}

// XRefEntry is one entry of a cross-reference table.
type XRefEntry struct {
	Offset     int64
	Generation uint16
	InUse      bool
}

// Trailer holds the trailer entries used by tinypdf.
type Trailer struct {
	Size    int
	Root    uint32
	RootGen uint16
}

// Scan reads a PDF file sequentially and locates the indirect objects,
// the cross-reference table and the trailer.
//
// Scan only reports errors which prevent it from making sense of the file
// structure.  Use [FileInfo.Check] to verify that the parts fit together.
func Scan(r io.ReadSeeker) (*FileInfo, error) {
	_, err := r.Seek(0, io.SeekStart)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ScanBytes(data)
}

// ScanBytes is like [Scan], but takes the file contents as a byte slice.
func ScanBytes(data []byte) (*FileInfo, error) {
	ss := &seqScanner{
		data: data,
		info: &FileInfo{
			Size:         int64(len(data)),
			XRefPos:      -1,
			XRef:         make(map[uint32]XRefEntry),
			TrailerPos:   -1,
			StartXRefPos: -1,
			StartXRef:    -1,
			EOFPos:       -1,
		},
	}
	err := ss.scan()
	if err != nil {
		return nil, err
	}
	return ss.info, nil
}

// Object returns the first object with the given number, or nil if there
// is no such object.
func (info *FileInfo) Object(number uint32) *FileObject {
	for _, obj := range info.Objects {
		if obj.Number == number {
			return obj
		}
	}
	return nil
}

// StreamData returns the stream data of obj, as delimited by the "stream"
// and "endstream" keywords.  The result is nil if obj is not a stream.
func (info *FileInfo) StreamData(data []byte, obj *FileObject) []byte {
	if obj.StreamPos < 0 || obj.EndStreamPos < obj.StreamPos {
		return nil
	}
	return data[obj.StreamPos:obj.EndStreamPos]
}

type seqScanner struct {
	data []byte
	info *FileInfo
}

func (ss *seqScanner) scan() error {
	data := ss.data
	info := ss.info

	m := startRegexp.FindSubmatchIndex(data)
	if m == nil {
		return ErrNoPDF
	}
	info.HeaderPos = int64(m[0])
	info.HeaderVersion = string(data[m[2]:m[3]])

	// The marker pattern starts with an end-of-line, so we resume the
	// search at the character following the version number.
	pos := m[1] - 1
	for pos < len(data) {
		loc := markerRegexp.FindSubmatchIndex(data[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[2]
		matchEnd := pos + loc[1]

		var end int
		var err error
		switch {
		case loc[4] >= 0:
			// We found an indirect object.
			n, err1 := strconv.ParseUint(string(data[pos+loc[4]:pos+loc[5]]), 10, 32)
			g, err2 := strconv.ParseUint(string(data[pos+loc[6]:pos+loc[7]]), 10, 16)
			if err1 != nil || err2 != nil {
				pos = matchEnd
				continue
			}
			obj := &FileObject{
				Pos:          int64(start),
				Number:       uint32(n),
				Generation:   uint16(g),
				Length:       -1,
				StreamPos:    -1,
				EndStreamPos: -1,
			}
			end = ss.readObject(obj, matchEnd)
			info.Objects = append(info.Objects, obj)
		case bytes.Equal(data[start:matchEnd], []byte("xref")):
			info.XRefPos = int64(start)
			end, err = ss.readXRef(matchEnd)
		case bytes.Equal(data[start:matchEnd], []byte("trailer")):
			info.TrailerPos = int64(start)
			end, err = ss.readTrailer(matchEnd)
		case bytes.Equal(data[start:matchEnd], []byte("startxref")):
			info.StartXRefPos = int64(start)
			end, err = ss.readStartXRef(matchEnd)
		default: // %%EOF
			info.EOFPos = int64(start)
			end = matchEnd
		}
		if err != nil {
			return err
		}

		pos = ss.resume(end)
	}
	return nil
}

// resume returns the position where the search for the next marker
// continues.  Markers must be preceded by an end-of-line, so a line break
// consumed while reading the previous part is given back.
func (ss *seqScanner) resume(end int) int {
	if end > 0 && end <= len(ss.data) && isEOL(ss.data[end-1]) {
		return end - 1
	}
	return end
}

// readObject reads the object whose "obj" keyword ends at pos.  The return
// value is the position after the object.
func (ss *seqScanner) readObject(obj *FileObject, pos int) int {
	data := ss.data

	p := skipSpace(data, pos)
	end, ok := dictEnd(data, p)
	if !ok {
		obj.Broken = true
		return pos
	}
	dict := data[p:end]
	if m := typeRegexp.FindSubmatch(dict); m != nil {
		obj.Type = string(m[1])
	}
	if m := lengthRegexp.FindSubmatch(dict); m != nil {
		obj.Length, _ = strconv.ParseInt(string(m[1]), 10, 64)
	}

	p = skipSpace(data, end)
	if bytes.HasPrefix(data[p:], []byte("stream")) {
		q := p + len("stream")
		if bytes.HasPrefix(data[q:], []byte("\r\n")) {
			q += 2
		} else if q < len(data) && data[q] == '\n' {
			q++
		}
		obj.StreamPos = int64(q)

		if obj.Length >= 0 && int64(q)+obj.Length <= int64(len(data)) {
			e := skipEOL(data, q+int(obj.Length))
			if bytes.HasPrefix(data[e:], []byte("endstream")) {
				obj.EndStreamPos = int64(e)
			}
		}
		if obj.EndStreamPos < 0 {
			// The /Length is wrong.  Text lines never start with the
			// keyword, so the first "endstream" at the start of a line
			// ends the stream.
			k := bytes.Index(data[q:], []byte("\nendstream"))
			if k < 0 {
				obj.Broken = true
				return q
			}
			obj.EndStreamPos = int64(q + k + 1)
		}
		p = int(obj.EndStreamPos) + len("endstream")
	}

	k := bytes.Index(data[p:], []byte("endobj"))
	if k < 0 {
		obj.Broken = true
		return p
	}
	obj.End = int64(p + k + len("endobj"))
	return int(obj.End)
}

// readXRef reads the subsections of a cross-reference table.  The "xref"
// keyword ends at pos.
func (ss *seqScanner) readXRef(pos int) (int, error) {
	data := ss.data

	p := skipEOL(data, pos)
	if p == pos {
		return 0, malformed(int64(pos), "missing end-of-line after xref")
	}
	for {
		m := subsectionRegexp.FindSubmatch(data[p:])
		if m == nil {
			break
		}
		first, err1 := strconv.ParseUint(string(m[1]), 10, 32)
		count, err2 := strconv.ParseUint(string(m[2]), 10, 32)
		if err1 != nil || err2 != nil {
			return 0, malformed(int64(p), "invalid xref subsection header")
		}
		p += len(m[0])

		for i := uint64(0); i < count; i++ {
			if p+xRefEntryLen > len(data) {
				return 0, malformed(int64(p), "xref table truncated")
			}
			e := entryRegexp.FindSubmatch(data[p : p+xRefEntryLen])
			if e == nil {
				return 0, malformed(int64(p), "invalid xref entry %q", data[p:p+xRefEntryLen])
			}
			offs, _ := strconv.ParseInt(string(e[1]), 10, 64)
			gen, _ := strconv.ParseUint(string(e[2]), 10, 16)
			ss.info.XRef[uint32(first+i)] = XRefEntry{
				Offset:     offs,
				Generation: uint16(gen),
				InUse:      e[3][0] == 'n',
			}
			p += xRefEntryLen
		}
	}
	return p, nil
}

// readTrailer reads the trailer dictionary following the "trailer" keyword,
// which ends at pos.
func (ss *seqScanner) readTrailer(pos int) (int, error) {
	data := ss.data

	p := skipSpace(data, pos)
	end, ok := dictEnd(data, p)
	if !ok {
		return 0, malformed(int64(p), "invalid trailer dictionary")
	}
	dict := data[p:end]

	m := sizeRegexp.FindSubmatch(dict)
	if m == nil {
		return 0, malformed(int64(p), "trailer without /Size")
	}
	size, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return 0, malformed(int64(p), "invalid /Size in trailer")
	}
	ss.info.Trailer.Size = size

	m = rootRegexp.FindSubmatch(dict)
	if m == nil {
		return 0, malformed(int64(p), "trailer without /Root")
	}
	root, err1 := strconv.ParseUint(string(m[1]), 10, 32)
	gen, err2 := strconv.ParseUint(string(m[2]), 10, 16)
	if err1 != nil || err2 != nil {
		return 0, malformed(int64(p), "invalid /Root in trailer")
	}
	ss.info.Trailer.Root = uint32(root)
	ss.info.Trailer.RootGen = uint16(gen)

	return end, nil
}

// readStartXRef reads the integer following the "startxref" keyword, which
// ends at pos.
func (ss *seqScanner) readStartXRef(pos int) (int, error) {
	data := ss.data

	p := skipSpace(data, pos)
	m := integerRegexp.Find(data[p:])
	if m == nil {
		return 0, malformed(int64(p), "missing xref position after startxref")
	}
	x, err := strconv.ParseInt(string(m), 10, 64)
	if err != nil {
		return 0, malformed(int64(p), "invalid xref position %q", m)
	}
	ss.info.StartXRef = x
	return p + len(m), nil
}

// dictEnd returns the position after the dictionary which starts at pos.
// Nested dictionaries are allowed, strings inside the dictionary are not.
func dictEnd(data []byte, pos int) (int, bool) {
	if !bytes.HasPrefix(data[pos:], []byte("<<")) {
		return 0, false
	}
	level := 0
	for i := pos; i+1 < len(data); i++ {
		switch {
		case data[i] == '<' && data[i+1] == '<':
			level++
			i++
		case data[i] == '>' && data[i+1] == '>':
			level--
			i++
			if level == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

func skipSpace(data []byte, pos int) int {
	for pos < len(data) && isSpace[data[pos]] {
		pos++
	}
	return pos
}

func skipEOL(data []byte, pos int) int {
	if pos < len(data) && data[pos] == '\r' {
		pos++
	}
	if pos < len(data) && data[pos] == '\n' {
		pos++
	}
	return pos
}

func isEOL(c byte) bool {
	return c == '\r' || c == '\n'
}

var isSpace = [256]bool{
	0:    true,
	'\t': true,
	'\n': true,
	'\f': true,
	'\r': true,
	' ':  true,
}

// xRefEntryLen is the length of a cross-reference table entry, including
// the end-of-line marker.
const xRefEntryLen = 20

var (
	startRegexp = regexp.MustCompile(`%PDF-([12]\.[0-9])[^0-9]`)

	whiteSpacePat = `[\000\011\014 ]+`
	eolPat        = `(?:\r\n|\r|\n)`
	objectPat     = `([0-9]+)` + whiteSpacePat + `([0-9]+)` + whiteSpacePat + `obj`
	markerPat     = eolPat + `(` + objectPat + `|xref|trailer|startxref|%%EOF)\b`
	markerRegexp  = regexp.MustCompile(markerPat)

	subsectionRegexp = regexp.MustCompile(`^([0-9]+) ([0-9]+)[ \t]*` + eolPat)
	entryRegexp      = regexp.MustCompile(`^([0-9]{10}) ([0-9]{5}) ([fn])(?: \r| \n|\r\n)$`)

	typeRegexp    = regexp.MustCompile(`/Type\s*/([A-Za-z0-9]+)`)
	lengthRegexp  = regexp.MustCompile(`/Length\s+([0-9]+)`)
	sizeRegexp    = regexp.MustCompile(`/Size\s+([0-9]+)`)
	rootRegexp    = regexp.MustCompile(`/Root\s+([0-9]+)\s+([0-9]+)\s+R`)
	integerRegexp = regexp.MustCompile(`^[0-9]+`)
)
