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

package report

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// Default values for fields which are missing from a decoded report.
const (
	DefaultName     = "LocalBoost Client"
	DefaultHeadline = "Monthly Summary"
	DefaultSeverity = Medium
)

// Decode reads a scan result in JSON format from r and returns the
// printable report.
//
// Decoding is lenient: input which is not valid JSON is treated like an
// empty object, scalar values of any JSON type are converted to text, and
// lists which are not JSON arrays are treated as empty.  Missing values
// are replaced by defaults, see [DefaultName], [DefaultHeadline] and
// [DefaultSeverity]; issues without a title are called "Issue <n>".  All
// text is converted to Unicode normal form C.
//
// The only errors returned are errors from reading r.
func Decode(r io.Reader) (*Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	w := &wireResult{}
	if json.Unmarshal(data, w) != nil {
		// Ignore the partial result.
		w = &wireResult{}
	}
	return w.report(), nil
}

// wireResult mirrors the JSON layout of [ScanResult], with every value
// accepting arbitrary JSON input.
type wireResult struct {
	Business lenient[struct {
		Name     lenientText `json:"name"`
		Website  lenientText `json:"website"`
		City     lenientText `json:"city"`
		Category lenientText `json:"category"`
	}] `json:"business"`
	Summary lenient[struct {
		Score    lenientText `json:"score"`
		Headline lenientText `json:"headline"`
	}] `json:"summary"`
	Issues  lenientList[lenient[wireIssue]] `json:"issues"`
	Monthly lenient[struct {
		Wins      lenientList[lenientText] `json:"wins"`
		NextSteps lenientList[lenientText] `json:"nextSteps"`
	}] `json:"monthly"`
}

type wireIssue struct {
	Title    lenientText `json:"title"`
	Severity lenientText `json:"severity"`
	Why      lenientText `json:"why"`
	Fix      lenientText `json:"fix"`
}

func (w *wireResult) report() *Report {
	b := w.Business.V
	s := w.Summary.V
	res := &Report{
		Business: Business{
			Name:     b.Name.Or(DefaultName),
			Website:  b.Website.Or(""),
			City:     b.City.Or(""),
			Category: b.Category.Or(""),
		},
		Score:    s.Score.Or(""),
		Headline: s.Headline.Or(DefaultHeadline),
	}

	for i, x := range w.Issues {
		res.Issues = append(res.Issues, Issue{
			Title:    x.V.Title.Or("Issue " + strconv.Itoa(i+1)),
			Severity: Severity(x.V.Severity.Or(string(DefaultSeverity))),
			Why:      x.V.Why.Or(""),
			Fix:      x.V.Fix.Or(""),
		})
	}
	for _, x := range w.Monthly.V.Wins {
		res.Wins = append(res.Wins, x.Or(""))
	}
	for _, x := range w.Monthly.V.NextSteps {
		res.NextSteps = append(res.NextSteps, x.Or(""))
	}
	return res
}

// lenient decodes a JSON value into V.  Values of the wrong type leave V at
// its zero value instead of causing an error.
type lenient[T any] struct {
	V T
}

func (l *lenient[T]) UnmarshalJSON(data []byte) error {
	var v T
	if json.Unmarshal(data, &v) != nil {
		return nil
	}
	l.V = v
	return nil
}

// lenientList decodes a JSON array.  Any other JSON value gives an empty
// list.
type lenientList[T any] []T

func (l *lenientList[T]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if json.Unmarshal(data, &raw) != nil {
		*l = nil
		return nil
	}
	res := make([]T, len(raw))
	for i, r := range raw {
		// Element types are lenient themselves.
		_ = json.Unmarshal(r, &res[i])
	}
	*l = res
	return nil
}

// lenientText decodes a JSON scalar as text.  Strings are used as they are,
// numbers are written in decimal form (see formatNumber), and booleans
// become "true" or "false".  null, arrays and objects count as missing.
type lenientText struct {
	s  string
	ok bool
}

func (t *lenientText) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if dec.Decode(&v) != nil {
		return nil
	}
	switch v := v.(type) {
	case string:
		t.s, t.ok = norm.NFC.String(v), true
	case json.Number:
		t.s, t.ok = formatNumber(v), true
	case bool:
		t.s, t.ok = strconv.FormatBool(v), true
	}
	return nil
}

// formatNumber writes n without exponent or trailing zeros, e.g. "62"
// for 62.0 and "0.5" for 5e-1.  Numbers which do not fit into a float64
// keep their JSON text.
func formatNumber(n json.Number) string {
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Or returns the decoded text, or def if the value was missing.
func (t lenientText) Or(def string) string {
	if !t.ok {
		return def
	}
	return t.s
}
