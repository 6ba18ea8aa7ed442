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

// Package scan fabricates the result of a local search scan for a
// business.  No network access takes place: the score is derived from the
// website address, and the suggestions are filled in from templates.
package scan

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seehuhn.de/go/localboost/report"
)

// Request describes the business to scan.
type Request struct {
	Name     string `json:"name"`
	Website  string `json:"website"`
	City     string `json:"city"`
	Category string `json:"category"`
}

// Default values for request fields which are missing from JSON input.
const (
	DefaultName     = "Local Business"
	DefaultWebsite  = "https://example.com"
	DefaultCity     = "Your City"
	DefaultCategory = "Service"
)

// Score limits.
const (
	baseScore = 68
	minScore  = 35
	maxScore  = 92
)

// DefaultRequest returns a request where every field has its default
// value.
func DefaultRequest() Request {
	return Request{
		Name:     DefaultName,
		Website:  DefaultWebsite,
		City:     DefaultCity,
		Category: DefaultCategory,
	}
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.  Fields which
// are missing or null are set to their default values; empty strings are
// kept.
func (req *Request) UnmarshalJSON(data []byte) error {
	type plain Request
	r := plain(DefaultRequest())
	err := json.Unmarshal(data, &r)
	if err != nil {
		return err
	}
	*req = Request(r)
	return nil
}

// MockScore computes the score of a website.  Plain http, placeholder
// domains and very short addresses lower the score.
func MockScore(website string) int {
	s := baseScore
	if !strings.HasPrefix(website, "https://") {
		s -= 10
	}
	if strings.Contains(website, "example") {
		s -= 8
	}
	if len(website) < 10 {
		s -= 5
	}
	return max(minScore, min(maxScore, s))
}

// ShortCity returns the part of city before the first comma, e.g. "Austin"
// for "Austin, TX".
func ShortCity(city string) string {
	short, _, _ := strings.Cut(city, ",")
	short = strings.TrimSpace(short)
	if short == "" {
		return city
	}
	return short
}

// Run performs the mock scan.  The fields of req are used as they are,
// see [DefaultRequest] for a request with all fields set.
func Run(req Request) *report.ScanResult {
	lower := cases.Lower(language.English)
	name := req.Name
	category := req.Category
	cat := lower.String(category)
	cityShort := ShortCity(req.City)
	city := lower.String(cityShort)

	score := MockScore(req.Website)
	headline := "Needs quick optimization to compete locally"
	if score >= 75 {
		headline = "Strong foundation - easy wins available"
	}

	keywords := []string{
		cat + " " + city,
		cat + " near me",
		"best " + cat + " " + city,
		cat + " open now",
		"affordable " + cat + " " + city,
	}

	return &report.ScanResult{
		Business: report.Business{
			Name:     name,
			Website:  req.Website,
			City:     req.City,
			Category: category,
		},
		Summary: report.Summary{
			Score:    score,
			Headline: headline,
			Notes: []string{
				"Your site can rank higher with better titles, meta descriptions, and local keywords.",
				"Google Business Profile activity is a major lever for calls + directions.",
				"A monthly update cycle keeps you competitive without hiring an agency.",
			},
		},
		Issues: []report.Issue{
			{
				Title:    "Weak or missing page titles",
				Severity: report.High,
				Why:      "Google relies on page titles to understand what you offer and where you serve customers.",
				Fix:      "Add service + location keywords to your homepage and main service pages.",
			},
			{
				Title:    "Meta descriptions not optimized",
				Severity: report.Medium,
				Why:      "Better meta descriptions can increase clicks from Google even before rankings improve.",
				Fix:      "Write simple, local, benefit-focused meta descriptions under ~160 characters.",
			},
			{
				Title:    "Low local content depth",
				Severity: report.Medium,
				Why:      "Competitors often outrank you by having more pages targeting local services and neighborhoods.",
				Fix:      "Add 2-4 local service pages and publish a short weekly post.",
			},
			{
				Title:    "Not enough recent Google Business activity",
				Severity: report.Low,
				Why:      "Fresh posts/photos and review responses help visibility in the local map pack.",
				Fix:      "Post weekly and upload 3-5 photos monthly.",
			},
		},
		SEOFixes: []report.SEOFix{
			{
				Page:     "Homepage",
				Title:    name + " | " + category + " in " + cityShort,
				Meta:     "Trusted " + cat + " in " + cityShort + ". Fast service, fair pricing, easy scheduling. Call today.",
				H1:       category + " in " + cityShort + " - " + name,
				Keywords: keywords,
			},
			{
				Page:     "Service Page (Suggested)",
				Title:    category + " Near " + cityShort + " | Fast & Reliable",
				Meta:     "Need " + cat + " near " + cityShort + "? Transparent pricing, quick turnaround, and friendly service.",
				H1:       "Local " + category + " Near " + cityShort,
				Keywords: keywords[:3:3],
			},
		},
		GMB: report.GMB{
			Actions: []string{
				"Add 10-15 photos (interior, exterior, team, work examples)",
				"Update services + business description with local keywords",
				"Enable messaging and add a quick auto-reply",
				"Ask for 2-3 reviews per week (text link makes it easy)",
			},
			PostDrafts: []report.PostDraft{
				{
					Title: "This Week at " + name,
					Body:  "We're serving " + cityShort + " with reliable " + cat + " and fast turnaround. Message us for a quick quote.",
				},
				{
					Title: "Quick Tip",
					Body:  "If you're comparing options, ask about turnaround time and pricing upfront. We keep it simple and transparent - reach out anytime.",
				},
			},
		},
		Reviews: report.Reviews{
			ResponseTemplates: []report.ReviewTemplate{
				{
					Rating:   5,
					Response: "Thank you for the support! We appreciate you choosing " + name + ". If you need anything again, we're here.",
				},
				{
					Rating:   3,
					Response: "Thanks for the feedback - we take it seriously. If you're open to it, message us so we can learn what happened and improve.",
				},
				{
					Rating:   1,
					Response: "We're sorry you had a bad experience. This isn't the standard we aim for. Please contact us directly so we can resolve it quickly.",
				},
			},
		},
		Monthly: report.Monthly{
			Wins: []string{
				"Improved local keyword targeting for titles and service pages",
				"Added a repeatable Google Business posting plan",
				"Created a simple monthly reporting workflow",
			},
			NextSteps: []string{
				"Publish 2 local service pages (service + city keywords)",
				"Post weekly on Google Business Profile",
				"Request 8-12 reviews this month",
			},
		},
	}
}
