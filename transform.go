package main

// Coordinate spaces:
//
//   document-native  — units the backend measured segments in
//   rendered-pixel   — the page surface rasterized at the active zoom
//   container-relative — fractions of the container in [0,1], the
//                        storage representation for annotations
//
// The container rect must be read fresh before every conversion; a
// rect captured on a previous event is stale after scroll, resize or
// zoom.

// pageScale returns the native→pixel scale factors for a page
// rendered at renderedW x renderedH. ok is false when either native
// dimension is zero, in which case the caller skips the render.
func pageScale(renderedW, renderedH, nativeW, nativeH float64) (sx, sy float64, ok bool) {
	if nativeW <= 0 || nativeH <= 0 {
		return 0, 0, false
	}
	return renderedW / nativeW, renderedH / nativeH, true
}

// segmentPixelRect projects a segment's native geometry onto a page
// surface of the given rendered size. ok is false for a degenerate
// page, never for out-of-range segment coordinates: malformed input
// draws wherever the math lands.
func segmentPixelRect(seg Segment, renderedW, renderedH float64) (Rect, bool) {
	sx, sy, ok := pageScale(renderedW, renderedH, seg.PageWidth, seg.PageHeight)
	if !ok {
		return Rect{}, false
	}
	return Rect{
		X: seg.Left * sx,
		Y: seg.Top * sy,
		W: seg.Width * sx,
		H: seg.Height * sy,
	}, true
}

// toRelative converts a pixel point to container-relative fractions.
// ok is false for a zero-sized container (hidden or not yet rendered
// page); callers treat that as a no-op.
func toRelative(px, py float64, container Rect) (rx, ry float64, ok bool) {
	if container.IsEmpty() {
		return 0, 0, false
	}
	return (px - container.X) / container.W, (py - container.Y) / container.H, true
}

// toPixel is the inverse of toRelative.
func toPixel(rx, ry float64, container Rect) (px, py float64) {
	return rx*container.W + container.X, ry*container.H + container.Y
}

// relToPixelRect converts a stored annotation rect to pixels against
// the current container.
func relToPixelRect(r RelRect, container Rect) Rect {
	x, y := toPixel(r.X, r.Y, container)
	return Rect{X: x, Y: y, W: r.W * container.W, H: r.H * container.H}
}
