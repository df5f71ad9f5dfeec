package main

// Segment selection is a single optional index into the document's
// segment list, shared by the sidebar and the page overlays. The
// sidebar shows segments sorted by (page, top) while overlays keep
// backend order, so both sides resolve through the segment index and
// never through a list position.

// selectSegment marks segment idx as selected from either side,
// scrolls its sidebar row into view, switches the viewer to its page
// if needed, and scrolls the viewer so the overlay sits below a fixed
// top padding. There is no clear action; the selection stands until
// the next one.
func (m *model) selectSegment(idx int) {
	if m.doc == nil || idx < 0 || idx >= len(m.doc.Segments) {
		return
	}
	m.selectedSegment = idx

	for row, segIdx := range m.order {
		if segIdx == idx {
			m.sidebarScroll = scrollRowIntoView(row, m.sidebarScroll, m.sidebarRows())
			break
		}
	}

	seg := m.doc.Segments[idx]
	if seg.PageNumber != m.page {
		m.page = seg.PageNumber
		m.renderPage()
	}
	pr, ok := segmentPixelRect(seg, m.renderedW, m.renderedH)
	if !ok {
		return
	}
	m.scrollY = viewerScrollTarget(pr.Y, m.cfg.ScrollPadding, m.renderedH, m.viewerHeightPx())
}

// viewerScrollTarget computes the scroll offset that puts an overlay
// top just below the padding, clamped to the scrollable range.
func viewerScrollTarget(overlayTop, padding, scrollHeight, clientHeight float64) float64 {
	maxScroll := scrollHeight - clientHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	return clampFloat(overlayTop-padding, 0, maxScroll)
}

// scrollRowIntoView returns the least scroll adjustment that makes
// the row visible in a window of visible rows.
func scrollRowIntoView(row, scroll, visible int) int {
	if visible < 1 {
		return scroll
	}
	if row < scroll {
		return row
	}
	if row >= scroll+visible {
		return row - visible + 1
	}
	return scroll
}

// clampSidebarScroll keeps the scroll inside the list after a resize
// or document change.
func (m *model) clampSidebarScroll() {
	maxScroll := len(m.order) - m.sidebarRows()
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.sidebarScroll > maxScroll {
		m.sidebarScroll = maxScroll
	}
	if m.sidebarScroll < 0 {
		m.sidebarScroll = 0
	}
}

// moveSelection steps the selection through sidebar order by delta
// rows, wrapping at neither end.
func (m *model) moveSelection(delta int) {
	if len(m.order) == 0 {
		return
	}
	row := 0
	if m.selectedSegment >= 0 {
		for r, segIdx := range m.order {
			if segIdx == m.selectedSegment {
				row = r + delta
				break
			}
		}
	}
	if row < 0 {
		row = 0
	}
	if row >= len(m.order) {
		row = len(m.order) - 1
	}
	m.selectSegment(m.order[row])
}
