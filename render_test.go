package main

import (
	"strings"
	"testing"
)

func TestRasterizePageDimensions(t *testing.T) {
	doc := &Document{Segments: []Segment{
		{Text: "Hello", Type: "Text", PageNumber: 1, Top: 100, Left: 100, Width: 200, Height: 100, PageWidth: 600, PageHeight: 800},
	}}
	grid := rasterizePage(doc, 1, 600, 800)
	if len(grid) != 50 {
		t.Fatalf("rows = %d, want 50", len(grid))
	}
	if len(grid[0]) != 75 {
		t.Fatalf("cols = %d, want 75", len(grid[0]))
	}
	// Segment top-left pixel (100, 100) is cell (12, 6).
	if got := string(grid[6][12:17]); got != "Hello" {
		t.Errorf("text at segment origin = %q, want Hello", got)
	}
}

func TestRasterizePageSkipsOtherPages(t *testing.T) {
	doc := &Document{Segments: []Segment{
		{Text: "elsewhere", Type: "Text", PageNumber: 2, Top: 100, Left: 100, Width: 200, Height: 100, PageWidth: 600, PageHeight: 800},
	}}
	grid := rasterizePage(doc, 1, 600, 800)
	for y := range grid {
		if s := strings.TrimSpace(string(grid[y])); s != "" {
			t.Fatalf("row %d has %q, want a blank page", y, s)
		}
	}
}

func TestRasterizePageDegenerateSize(t *testing.T) {
	doc := &Document{}
	if grid := rasterizePage(doc, 1, 0, 800); grid != nil {
		t.Error("zero width must yield no grid")
	}
	if grid := rasterizePage(doc, 1, 600, 0); grid != nil {
		t.Error("zero height must yield no grid")
	}
}

func TestPointerPixel(t *testing.T) {
	m := testModel()
	m.scrollX = 16
	m.scrollY = 32

	px, py, ok := m.pointerPixel(33, 0)
	if !ok {
		t.Fatal("pane origin must map")
	}
	if px != 16 || py != 32 {
		t.Errorf("pane origin = (%v, %v), want scroll offset (16, 32)", px, py)
	}

	px, py, ok = m.pointerPixel(53, 8)
	if !ok || px != 176 || py != 160 {
		t.Errorf("cell (53, 8) = (%v, %v, %v), want (176, 160, true)", px, py, ok)
	}

	if _, _, ok := m.pointerPixel(20, 5); ok {
		t.Error("sidebar cells must not map to page pixels")
	}
	if _, _, ok := m.pointerPixel(40, m.viewerRows()); ok {
		t.Error("status line must not map to page pixels")
	}
}

func TestClampScroll(t *testing.T) {
	m := testModel()
	// Page 1 renders 600x800 into a 640x480 pane: no horizontal
	// slack, 320 px of vertical slack.
	m.scrollX, m.scrollY = 500, 900
	m.clampScroll()
	if m.scrollX != 0 {
		t.Errorf("scrollX = %v, want 0", m.scrollX)
	}
	if m.scrollY != 320 {
		t.Errorf("scrollY = %v, want 320", m.scrollY)
	}
	m.scrollX, m.scrollY = -50, -50
	m.clampScroll()
	if m.scrollX != 0 || m.scrollY != 0 {
		t.Errorf("negative scroll = (%v, %v), want (0, 0)", m.scrollX, m.scrollY)
	}
}

func TestCellRectMinimumOneCell(t *testing.T) {
	m := testModel()
	x0, y0, x1, y1 := m.cellRect(Rect{X: 80, Y: 160, W: 0.5, H: 0.5})
	if x1 < x0 || y1 < y0 {
		t.Fatalf("cell rect (%d,%d)-(%d,%d) collapsed", x0, y0, x1, y1)
	}
	if x0 != 10 || y0 != 10 {
		t.Errorf("origin cell = (%d, %d), want (10, 10)", x0, y0)
	}
}

func TestRenderViewerSmoke(t *testing.T) {
	m := testModel()
	m.selectSegment(1)
	m.store.Add(&Annotation{Kind: KindHighlight, Page: 1, Rel: RelRect{X: 0.2, Y: 0.2, W: 0.2, H: 0.1}})
	m.store.Add(&Annotation{Kind: KindTextbox, Page: 1, Rel: RelRect{X: 0.5, Y: 0.5, W: 0.3, H: 0.2}, Text: "note"})

	rows := m.renderViewer()
	if len(rows) != m.viewerRows() {
		t.Fatalf("rendered %d rows, want %d", len(rows), m.viewerRows())
	}
	joined := strings.Join(rows, "\n")
	if !strings.Contains(joined, "#") {
		t.Error("selected segment border missing")
	}
	if !strings.Contains(joined, "×") {
		t.Error("annotation delete control missing")
	}
	if !strings.Contains(joined, "note") {
		t.Error("textbox text missing")
	}
}

func TestRenderViewerWithoutDocument(t *testing.T) {
	m := initialModel(defaultConfig())
	m.width = 113
	m.height = 31
	rows := m.renderViewer()
	if len(rows) != m.viewerRows() {
		t.Fatalf("rendered %d rows, want %d", len(rows), m.viewerRows())
	}
}
