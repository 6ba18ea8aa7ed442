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

package scan

// Band is a qualitative rating of a scan score, used for display.
type Band struct {
	Label string
	Color string // CSS color of the text
	Bg    string // CSS color of the background
}

// ScoreBand returns the band for the given score.
func ScoreBand(score int) Band {
	switch {
	case score >= 80:
		return Band{Label: "Strong", Color: "#16a34a", Bg: "rgba(34,197,94,0.14)"}
	case score >= 60:
		return Band{Label: "Good", Color: "#d97706", Bg: "rgba(245,158,11,0.14)"}
	default:
		return Band{Label: "Needs Attention", Color: "#dc2626", Bg: "rgba(239,68,68,0.12)"}
	}
}
