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
	"strconv"

	"seehuhn.de/go/geom/rect"
)

// ObjectRole identifies one of the indirect objects of a generated file.
// The numeric value of a role is its object number.
type ObjectRole int

// These are the objects of a generated file, in the order in which they
// appear in the file.  Adding a role here shifts the numbers of all
// following objects.
const (
	Catalog ObjectRole = iota + 1
	PageTree
	Page
	Contents
	Font

	// NumObjects is the number of indirect objects in a generated file.
	NumObjects = int(Font)
)

func (r ObjectRole) String() string {
	switch r {
	case Catalog:
		return "Catalog"
	case PageTree:
		return "Pages"
	case Page:
		return "Page"
	case Contents:
		return "Contents"
	case Font:
		return "Font"
	default:
		return "ObjectRole(" + strconv.Itoa(int(r)) + ")"
	}
}

// Ref returns the indirect reference to the object, e.g. "1 0 R".
func (r ObjectRole) Ref() string {
	return strconv.Itoa(int(r)) + " 0 R"
}

// object is one serialized indirect object, including the "obj" and
// "endobj" keywords.
type object struct {
	Role ObjectRole
	Data []byte
}

// buildObjects serializes the objects of a document with the given page
// content.  The objects are returned in ascending order of object number.
func buildObjects(content []byte) []object {
	objs := make([]object, 0, NumObjects)
	add := func(role ObjectRole, dict string) {
		objs = append(objs, object{Role: role, Data: indirect(role, dict, nil)})
	}

	add(Catalog, fmt.Sprintf("<< /Type /Catalog /Pages %s >>", PageTree.Ref()))
	add(PageTree, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count 1 >>", Page.Ref()))
	add(Page, fmt.Sprintf("<< /Type /Page /Parent %s /MediaBox %s /Contents %s /Resources << /Font << /%s %s >> >> >>",
		PageTree.Ref(), formatRect(Letter), Contents.Ref(), FontName, Font.Ref()))
	objs = append(objs, object{
		Role: Contents,
		Data: indirect(Contents, fmt.Sprintf("<< /Length %d >>", len(content)), content),
	})
	add(Font, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	return objs
}

// indirect wraps a dictionary, and optionally stream data, into an
// indirect object.  If stream is non-nil, the dictionary must contain the
// correct /Length entry.
func indirect(role ObjectRole, dict string, stream []byte) []byte {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "%d 0 obj\n", int(role))
	buf.WriteString(dict)
	buf.WriteString("\n")
	if stream != nil {
		buf.WriteString("stream\n")
		buf.Write(stream)
		buf.WriteString("endstream\n")
	}
	buf.WriteString("endobj\n")
	return buf.Bytes()
}

// formatRect formats r as a PDF rectangle array, e.g. "[0 0 612 792]".
func formatRect(r rect.Rect) string {
	f := func(x float64) string {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return "[" + f(r.LLx) + " " + f(r.LLy) + " " + f(r.URx) + " " + f(r.URy) + "]"
}
