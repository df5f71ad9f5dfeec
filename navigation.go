package main

// Keyboard navigation: viewer scrolling, zoom and page switching.
// Scrolling moves in cell-sized pixel steps; shifted keys move 4x.

func (m *model) handleScroll(key string, speed float64) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.scrollX -= cellWidth * speed
	case "l", "right", "L", "shift+right":
		m.scrollX += cellWidth * speed
	case "k", "up", "K", "shift+up":
		m.scrollY -= cellHeight * speed
	case "j", "down", "J", "shift+down":
		m.scrollY += cellHeight * speed
	}
	m.clampScroll()
}

func (m *model) getScrollSpeed(key string) float64 {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 4
	default:
		return 1
	}
}

// setZoom re-renders the page at a new zoom factor. Annotations keep
// their fractional geometry; only the surface they are projected on
// changes.
func (m *model) setZoom(zoom float64) {
	m.zoom = clampFloat(zoom, minZoom, maxZoom)
	m.renderPage()
}

func (m *model) zoomIn()  { m.setZoom(m.zoom + m.cfg.ZoomStep) }
func (m *model) zoomOut() { m.setZoom(m.zoom - m.cfg.ZoomStep) }

// switchPage moves to an adjacent page and resets the scroll to the
// top of the new surface.
func (m *model) switchPage(delta int) {
	if m.doc == nil {
		return
	}
	next := m.page + delta
	if next < 1 || next > m.doc.PageCount() {
		return
	}
	m.page = next
	m.scrollX, m.scrollY = 0, 0
	m.renderPage()
}
