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
	"mime"
	"strconv"
	"strings"
)

// Title is the first line of every report.
const Title = "LocalBoost Monthly Report"

// MaxIssues is the maximum number of issues listed in a report.
const MaxIssues = 6

// none is shown in place of an empty list.
const none = "- (none yet)"

// Lines flattens the report into lines of text, in the order in which
// they are printed.  Only the first [MaxIssues] issues are included.
func (r *Report) Lines() []string {
	b := r.Business
	lines := []string{
		Title,
		strings.Repeat("-", 24),
		"Business: " + b.Name,
		"Category: " + b.Category,
		"City: " + b.City,
		"Website: " + b.Website,
		"",
		"Score: " + r.Score + "/100",
		"Summary: " + r.Headline,
		"",
		"Top Issues:",
	}

	for i, issue := range r.Issues {
		if i >= MaxIssues {
			break
		}
		lines = append(lines,
			strconv.Itoa(i+1)+". "+issue.Title+" ("+string(issue.Severity)+")",
			"   Why: "+issue.Why,
			"   Fix: "+issue.Fix,
			"")
	}

	lines = append(lines, "Wins This Month:")
	lines = appendList(lines, r.Wins)
	lines = append(lines, "", "Next Steps:")
	lines = appendList(lines, r.NextSteps)

	return lines
}

func appendList(lines []string, items []string) []string {
	if len(items) == 0 {
		return append(lines, none)
	}
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return lines
}

// Filename returns the suggested file name for the report of the named
// business.  Spaces in the name are replaced by underscores, all other
// characters are kept.
func Filename(name string) string {
	if name == "" {
		name = "Business"
	}
	return "LocalBoost-Report-" + strings.ReplaceAll(name, " ", "_") + ".pdf"
}

// ContentDisposition returns the value of the Content-Disposition header
// for downloading the report of the named business.
func ContentDisposition(name string) string {
	v := mime.FormatMediaType("attachment", map[string]string{
		"filename": Filename(name),
	})
	if v == "" {
		return "attachment"
	}
	return v
}
