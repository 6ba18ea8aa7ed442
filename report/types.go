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

// Package report holds the data of a LocalBoost scan and turns it into the
// lines of the monthly PDF report.
package report

import (
	"slices"
	"strconv"
)

// Severity classifies an issue found by a scan.  Values other than the
// three constants are kept as they are.
type Severity string

// These are the severities used by the scanner.
const (
	High   Severity = "High"
	Medium Severity = "Medium"
	Low    Severity = "Low"
)

// Business identifies the business which was scanned.
type Business struct {
	Name     string `json:"name"`
	Website  string `json:"website"`
	City     string `json:"city"`
	Category string `json:"category"`
}

// Summary is the headline result of a scan.
type Summary struct {
	Score    int      `json:"score"`
	Headline string   `json:"headline"`
	Notes    []string `json:"notes"`
}

// Issue is a problem found by a scan, together with a suggested fix.
type Issue struct {
	Title    string   `json:"title"`
	Severity Severity `json:"severity"`
	Why      string   `json:"why"`
	Fix      string   `json:"fix"`
}

// SEOFix suggests title, meta description and heading for one page of the
// business website.
type SEOFix struct {
	Page     string   `json:"page"`
	Title    string   `json:"title"`
	Meta     string   `json:"meta"`
	H1       string   `json:"h1"`
	Keywords []string `json:"keywords"`
}

// PostDraft is a draft for a Google Business Profile post.
type PostDraft struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// GMB lists suggested Google Business Profile activities.
type GMB struct {
	Actions    []string    `json:"actions"`
	PostDrafts []PostDraft `json:"postDrafts"`
}

// ReviewTemplate is a suggested answer to a review with the given rating.
type ReviewTemplate struct {
	Rating   int    `json:"rating"`
	Response string `json:"response"`
}

// Reviews holds the review response templates.
type Reviews struct {
	ResponseTemplates []ReviewTemplate `json:"responseTemplates"`
}

// Monthly is the progress summary for the current month.
type Monthly struct {
	Wins      []string `json:"wins"`
	NextSteps []string `json:"nextSteps"`
}

// ScanResult is the complete result of a scan, as returned by the scan
// endpoint.
type ScanResult struct {
	Business Business `json:"business"`
	Summary  Summary  `json:"summary"`
	Issues   []Issue  `json:"issues"`
	SEOFixes []SEOFix `json:"seoFixes"`
	GMB      GMB      `json:"gmb"`
	Reviews  Reviews  `json:"reviews"`
	Monthly  Monthly  `json:"monthly"`
}

// Report is the part of a scan result which is printed in the PDF report.
// All values are text, ready for display.
type Report struct {
	Business  Business
	Score     string
	Headline  string
	Issues    []Issue
	Wins      []string
	NextSteps []string
}

// Report returns the printable part of res.
func (res *ScanResult) Report() *Report {
	return &Report{
		Business:  res.Business,
		Score:     strconv.Itoa(res.Summary.Score),
		Headline:  res.Summary.Headline,
		Issues:    slices.Clone(res.Issues),
		Wins:      slices.Clone(res.Monthly.Wins),
		NextSteps: slices.Clone(res.Monthly.NextSteps),
	}
}
