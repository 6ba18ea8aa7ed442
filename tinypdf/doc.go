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

// Package tinypdf writes single-page, text-only PDF files.
//
// The package does not use a general PDF object model.  Instead, it emits a
// fixed set of five indirect objects:
//
//	1 0 obj  catalog
//	2 0 obj  page tree
//	3 0 obj  page (US Letter, 612x792)
//	4 0 obj  content stream
//	5 0 obj  font (Helvetica, one of the standard 14 fonts)
//
// followed by a classic cross-reference table and trailer.  Every line of
// input is shown with one "Tj" operator, and the text position then moves
// down by 14 units.  Lines are not wrapped and there are no page breaks;
// use [Capacity] to find out how many lines fit on the page.
//
// A document is produced either in memory:
//
//	data := tinypdf.Assemble([]string{"Hello", "World"})
//
// or directly into an io.Writer:
//
//	n, err := tinypdf.Write(w, lines)
//
// Both functions use only local state and can be called concurrently.
// Stream data is not compressed.
package tinypdf
