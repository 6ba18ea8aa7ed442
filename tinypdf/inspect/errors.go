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
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrNoPDF is returned if the data does not contain a PDF header.
	ErrNoPDF = errors.New("PDF header not found")

	errNoXRef      = errors.New("missing cross-reference table")
	errNoTrailer   = errors.New("missing trailer")
	errNoStartXRef = errors.New("missing startxref")
	errNoEOF       = errors.New("missing %%EOF marker")
)

// MalformedFileError indicates that a file does not have the structure of
// a file written by tinypdf.
type MalformedFileError struct {
	Pos int64
	Err error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "not a valid PDF file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

func malformed(pos int64, format string, args ...any) error {
	return &MalformedFileError{Pos: pos, Err: fmt.Errorf(format, args...)}
}
