package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Page rendering. renderPage is the driver: it recomputes the
// rendered surface for the current page and zoom and re-rasterizes
// the page content grid. Overlays and annotations are not part of the
// surface; they are projected against it on every View pass, so they
// re-attach automatically once a new surface exists.

const (
	pageFg    = "236"
	pageBg    = "255"
	textboxFg = "33"
	previewCh = '░'
)

// renderPage recomputes the rendered page surface. Called on document
// load, page switch and zoom change. A missing document leaves a
// zero-sized surface, which every projection treats as "skip".
func (m *model) renderPage() {
	if m.doc == nil {
		m.renderedW, m.renderedH = 0, 0
		m.pageGrid = nil
		return
	}
	if m.page < 1 {
		m.page = 1
	}
	if pc := m.doc.PageCount(); m.page > pc {
		m.page = pc
	}
	nativeW, nativeH := m.doc.PageSize(m.page)
	m.renderedW = nativeW * m.zoom
	m.renderedH = nativeH * m.zoom
	m.pageGrid = rasterizePage(m.doc, m.page, m.renderedW, m.renderedH)
	m.clampScroll()
}

// pageContainer is the container rect annotations are measured
// against: the full rendered page surface. Computed fresh on every
// call; never hold one across events.
func (m *model) pageContainer() Rect {
	return Rect{X: 0, Y: 0, W: m.renderedW, H: m.renderedH}
}

// rasterizePage lays the page's segment text out on a cell grid at
// the rendered size. This is the terminal stand-in for the bitmap
// rasterizer: a blank page with the recognized text at its projected
// positions.
func rasterizePage(doc *Document, page int, renderedW, renderedH float64) [][]rune {
	cols := int(math.Ceil(renderedW / cellWidth))
	rows := int(math.Ceil(renderedH / cellHeight))
	if cols < 1 || rows < 1 {
		return nil
	}
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	for _, seg := range doc.Segments {
		if seg.PageNumber != page {
			continue
		}
		pr, ok := segmentPixelRect(seg, renderedW, renderedH)
		if !ok {
			continue
		}
		x0 := int(pr.X / cellWidth)
		y0 := int(pr.Y / cellHeight)
		x1 := int((pr.X + pr.W) / cellWidth)
		y1 := int((pr.Y + pr.H) / cellHeight)
		y := y0
		for _, line := range strings.Split(seg.Text, "\n") {
			if y > y1 || y < 0 || y >= rows {
				break
			}
			x := x0
			for _, r := range line {
				if x > x1 || x >= cols {
					break
				}
				if x >= 0 && y >= 0 {
					grid[y][x] = r
				}
				x++
			}
			y++
		}
	}
	return grid
}

// Viewer pane geometry. One status line at the bottom; the sidebar
// plus a separator column on the left.
func (m *model) viewerCols() int {
	c := m.width - m.cfg.SidebarWidth - 1
	if c < 1 {
		c = 1
	}
	return c
}

func (m *model) viewerRows() int {
	r := m.height - 1
	if r < 1 {
		r = 1
	}
	return r
}

func (m *model) viewerWidthPx() float64  { return float64(m.viewerCols()) * cellWidth }
func (m *model) viewerHeightPx() float64 { return float64(m.viewerRows()) * cellHeight }

func (m *model) sidebarRows() int {
	r := m.height - 1
	if r < 1 {
		r = 1
	}
	return r
}

// pointerPixel converts a terminal mouse position to page-surface
// pixels. ok is false when the position is outside the viewer pane.
func (m *model) pointerPixel(cellX, cellY int) (px, py float64, ok bool) {
	paneX := m.cfg.SidebarWidth + 1
	if cellX < paneX || cellY >= m.viewerRows() {
		return 0, 0, false
	}
	px = float64(cellX-paneX)*cellWidth + m.scrollX
	py = float64(cellY)*cellHeight + m.scrollY
	return px, py, true
}

func (m *model) clampScroll() {
	m.scrollX = clampFloat(m.scrollX, 0, math.Max(0, m.renderedW-m.viewerWidthPx()))
	m.scrollY = clampFloat(m.scrollY, 0, math.Max(0, m.renderedH-m.viewerHeightPx()))
}

// cellStyle is the per-cell render style; runs of equal style are
// emitted through a single lipgloss style.
type cellStyle struct {
	fg, bg string
	bold   bool
}

var pageCell = cellStyle{fg: pageFg, bg: pageBg}

// renderViewer composes the visible window of the rendered page with
// overlays, annotations, the draw preview and selection affordances,
// and returns one styled string per pane row.
func (m *model) renderViewer() []string {
	rows, cols := m.viewerRows(), m.viewerCols()
	grid := make([][]rune, rows)
	st := make([][]cellStyle, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		st[i] = make([]cellStyle, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	if m.doc != nil && m.pageGrid != nil {
		m.blitPage(grid, st)
		m.drawOverlays(grid, st)
		m.drawAnnotations(grid, st)
		m.drawPreview(grid, st)
	}

	out := make([]string, rows)
	for i := range grid {
		out[i] = styleRow(grid[i], st[i])
	}
	return out
}

func styleRow(runes []rune, styles []cellStyle) string {
	var b strings.Builder
	start := 0
	for start < len(runes) {
		end := start
		for end < len(runes) && styles[end] == styles[start] {
			end++
		}
		run := string(runes[start:end])
		s := styles[start]
		if s == (cellStyle{}) {
			b.WriteString(run)
		} else {
			style := lipgloss.NewStyle()
			if s.fg != "" {
				style = style.Foreground(lipgloss.Color(s.fg))
			}
			if s.bg != "" {
				style = style.Background(lipgloss.Color(s.bg))
			}
			if s.bold {
				style = style.Bold(true)
			}
			b.WriteString(style.Render(run))
		}
		start = end
	}
	return b.String()
}

// cellRect converts a pixel rect on the page surface to a cell rect
// in pane coordinates, keeping at least one cell per axis.
func (m *model) cellRect(pr Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor((pr.X - m.scrollX) / cellWidth))
	y0 = int(math.Floor((pr.Y - m.scrollY) / cellHeight))
	x1 = int(math.Ceil((pr.X+pr.W-m.scrollX)/cellWidth)) - 1
	y1 = int(math.Ceil((pr.Y+pr.H-m.scrollY)/cellHeight)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return
}

func (m *model) blitPage(grid [][]rune, st [][]cellStyle) {
	scrollCol := int(m.scrollX / cellWidth)
	scrollRow := int(m.scrollY / cellHeight)
	for y := range grid {
		srcY := y + scrollRow
		if srcY < 0 || srcY >= len(m.pageGrid) {
			continue
		}
		for x := range grid[y] {
			srcX := x + scrollCol
			if srcX < 0 || srcX >= len(m.pageGrid[srcY]) {
				continue
			}
			grid[y][x] = m.pageGrid[srcY][srcX]
			st[y][x] = pageCell
		}
	}
}

func (m *model) drawOverlays(grid [][]rune, st [][]cellStyle) {
	for i, seg := range m.doc.Segments {
		if seg.PageNumber != m.page {
			continue
		}
		pr, ok := segmentPixelRect(seg, m.renderedW, m.renderedH)
		if !ok {
			continue
		}
		selected := i == m.selectedSegment
		style := cellStyle{fg: segmentColor(seg), bg: pageBg, bold: selected}
		x0, y0, x1, y1 := m.cellRect(pr)
		drawBorder(grid, st, x0, y0, x1, y1, style, selected)
	}
}

func (m *model) drawAnnotations(grid [][]rune, st [][]cellStyle) {
	container := m.pageContainer()
	if container.IsEmpty() {
		return
	}
	for _, a := range m.store.ForPage(m.page) {
		pr := relToPixelRect(a.Rel, container)
		x0, y0, x1, y1 := m.cellRect(pr)
		switch a.Kind {
		case KindHighlight:
			fill := cellStyle{fg: pageFg, bg: highlightColors[a.Color%numHighlightColors]}
			for y := y0; y <= y1; y++ {
				for x := x0; x <= x1; x++ {
					if inGrid(grid, x, y) {
						st[y][x] = fill
					}
				}
			}
		case KindTextbox:
			style := cellStyle{fg: textboxFg, bg: pageBg, bold: a == m.gesture.Selected}
			drawBorder(grid, st, x0, y0, x1, y1, style, false)
			text := a.Text
			cursor := -1
			if m.mode == ModeEditing && a == m.gesture.Selected {
				text = m.editText
				cursor = m.editCursorPos
			}
			drawTextboxText(grid, st, x0, y0, x1, y1, text, cursor, style)
			if a == m.gesture.Selected {
				drawHandles(grid, st, x0, y0, x1, y1)
			}
		}
		// Delete control at the top-right corner.
		if inGrid(grid, x1, y0) {
			grid[y0][x1] = '×'
			st[y0][x1] = cellStyle{fg: segmentColorFlagged, bg: pageBg, bold: true}
		}
	}
}

func (m *model) drawPreview(grid [][]rune, st [][]cellStyle) {
	rel, ok := m.gesture.PreviewRect()
	if !ok {
		return
	}
	pr := relToPixelRect(rel, m.pageContainer())
	x0, y0, x1, y1 := m.cellRect(pr)
	style := cellStyle{fg: highlightColors[m.gesture.HighlightColor%numHighlightColors], bg: pageBg}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if inGrid(grid, x, y) {
				grid[y][x] = previewCh
				st[y][x] = style
			}
		}
	}
}

func inGrid(grid [][]rune, x, y int) bool {
	return y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y])
}

// drawBorder draws a rectangle border in box-drawing characters, or
// '#' for a selected segment overlay.
func drawBorder(grid [][]rune, st [][]cellStyle, x0, y0, x1, y1 int, style cellStyle, hash bool) {
	set := func(x, y int, r rune) {
		if inGrid(grid, x, y) {
			if hash {
				r = '#'
			}
			grid[y][x] = r
			st[y][x] = style
		}
	}
	for x := x0 + 1; x < x1; x++ {
		set(x, y0, '─')
		set(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		set(x0, y, '│')
		set(x1, y, '│')
	}
	set(x0, y0, '┌')
	set(x1, y0, '┐')
	set(x0, y1, '└')
	set(x1, y1, '┘')
}

// drawTextboxText lays the textbox text inside the border, one rune
// per cell, with an optional edit cursor at the given rune offset.
func drawTextboxText(grid [][]rune, st [][]cellStyle, x0, y0, x1, y1 int, text string, cursor int, style cellStyle) {
	y := y0 + 1
	x := x0 + 1
	pos := 0
	place := func(r rune) {
		if x < x1 && y < y1 {
			if inGrid(grid, x, y) {
				grid[y][x] = r
				st[y][x] = style
			}
			x++
		}
	}
	for _, r := range text {
		if pos == cursor {
			place('█')
		}
		if r == '\n' {
			y++
			x = x0 + 1
		} else {
			place(r)
		}
		pos++
	}
	if pos == cursor {
		place('█')
	}
}

func drawHandles(grid [][]rune, st [][]cellStyle, x0, y0, x1, y1 int) {
	style := cellStyle{fg: textboxFg, bg: pageBg, bold: true}
	midX := (x0 + x1) / 2
	midY := (y0 + y1) / 2
	for _, p := range [][2]int{
		{x0, y0}, {midX, y0}, {x1, y0},
		{x0, midY}, {x1, midY},
		{x0, y1}, {midX, y1}, {x1, y1},
	} {
		if inGrid(grid, p[0], p[1]) {
			grid[p[1]][p[0]] = '■'
			st[p[1]][p[0]] = style
		}
	}
}
