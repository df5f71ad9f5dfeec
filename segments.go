package main

import (
	"sort"
	"strings"
)

// segmentFlagged reports whether a segment gets the warning style.
// The rule is a case-insensitive substring match on "name" and stands
// in for real PII detection; keep it in one place so a detector can
// replace it.
func segmentFlagged(s Segment) bool {
	return strings.Contains(strings.ToLower(s.Text), "name")
}

// sidebarOrder returns segment indices sorted for the sidebar:
// ascending page number, then ascending top within a page. The sort
// is stable so backend order breaks ties. Overlays keep original
// segment order, so everything selection-related maps through these
// indices rather than list positions.
func sidebarOrder(segs []Segment) []int {
	order := make([]int, len(segs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := segs[order[a]], segs[order[b]]
		if sa.PageNumber != sb.PageNumber {
			return sa.PageNumber < sb.PageNumber
		}
		return sa.Top < sb.Top
	})
	return order
}

// Terminal colors per segment type (ANSI 256 palette indices for
// lipgloss). Unknown types fall back to segmentColorDefault; flagged
// segments override everything with segmentColorFlagged.
const (
	segmentColorFlagged = "203"
	segmentColorDefault = "245"
)

var segmentColors = map[string]string{
	"Title":          "213",
	"Text":           "117",
	"Table":          "156",
	"Picture":        "222",
	"Formula":        "183",
	"List item":      "123",
	"Section header": "215",
	"Caption":        "150",
	"Footnote":       "188",
	"Form field":     "111",
	"Checkbox":       "146",
}

func segmentColor(s Segment) string {
	if segmentFlagged(s) {
		return segmentColorFlagged
	}
	if c, ok := segmentColors[s.Type]; ok {
		return c
	}
	return segmentColorDefault
}

// RGB palette for PNG export, same keys as segmentColors.
var segmentRGB = map[string][3]float64{
	"Title":          {0.85, 0.35, 0.85},
	"Text":           {0.35, 0.60, 0.90},
	"Table":          {0.40, 0.80, 0.40},
	"Picture":        {0.90, 0.75, 0.30},
	"Formula":        {0.65, 0.50, 0.90},
	"List item":      {0.30, 0.80, 0.80},
	"Section header": {0.95, 0.55, 0.25},
	"Caption":        {0.55, 0.75, 0.45},
	"Footnote":       {0.65, 0.65, 0.70},
	"Form field":     {0.40, 0.50, 0.90},
	"Checkbox":       {0.60, 0.60, 0.80},
}

var (
	flaggedRGB = [3]float64{0.95, 0.30, 0.30}
	defaultRGB = [3]float64{0.55, 0.55, 0.55}
)

func segmentExportColor(s Segment) (r, g, b float64) {
	if segmentFlagged(s) {
		return flaggedRGB[0], flaggedRGB[1], flaggedRGB[2]
	}
	if c, ok := segmentRGB[s.Type]; ok {
		return c[0], c[1], c[2]
	}
	return defaultRGB[0], defaultRGB[1], defaultRGB[2]
}

// Highlight palette: terminal background colors and export RGBA
// fills, indexed by Annotation.Color.
var highlightColors = [numHighlightColors]string{"228", "120", "217", "153"}

var highlightRGB = [numHighlightColors][3]float64{
	{1.00, 0.95, 0.40},
	{0.45, 0.90, 0.45},
	{1.00, 0.60, 0.60},
	{0.55, 0.75, 1.00},
}
