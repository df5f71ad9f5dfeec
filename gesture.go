package main

import "math"

// Gesture holds every piece of pointer-interaction state in one
// place: the armed tool, the selected annotation, and whatever
// drag/draw/resize is in flight. The model owns a single Gesture and
// routes all viewer pointer events through it.
//
// All pointer positions arrive in rendered-pixel units together with
// the container rect current at that event; nothing in here caches a
// container across events.
type Gesture struct {
	State          GestureState
	Tool           Tool
	HighlightColor int

	// Selected is the annotation with the visible affordances (delete
	// control, resize handles and text editing for a textbox). At most
	// one annotation is selected.
	Selected *Annotation

	page int

	// highlight drawing, relative units
	startRX, startRY float64
	curRX, curRY     float64

	// drag/resize target
	active *Annotation

	// drag: pointer offset from the shape origin, relative units
	grabDX, grabDY float64

	// resize: gesture-start pointer and geometry; deltas are always
	// computed from these, not incrementally
	handle           Handle
	startPX, startPY float64
	orig             RelRect
}

// ToggleTool arms a tool, disarms it when it is already armed, and
// replaces any other armed tool. Arming cancels an in-flight draw.
func (g *Gesture) ToggleTool(t Tool) {
	if g.Tool == t {
		g.Tool = ToolNone
	} else {
		g.Tool = t
	}
	g.State = StateIdle
	g.active = nil
}

// CycleHighlightColor advances the color used for the next committed
// highlight.
func (g *Gesture) CycleHighlightColor() {
	g.HighlightColor = (g.HighlightColor + 1) % numHighlightColors
}

// PointerDown starts a gesture at a pixel position on the rendered
// page. With a tool armed it creates (textbox) or starts drawing
// (highlight); otherwise it hit-tests annotations topmost-first for
// the delete control, resize handles and body. Falling through all of
// them clears the textbox selection and reports false so the caller
// can offer the click to the segment overlays.
func (g *Gesture) PointerDown(px, py float64, page int, container Rect, store *AnnotationStore) bool {
	rx, ry, ok := toRelative(px, py, container)
	if !ok {
		return false
	}
	g.page = page

	switch g.Tool {
	case ToolTextbox:
		a := &Annotation{
			Kind: KindTextbox,
			Page: page,
			Rel: RelRect{
				X: rx,
				Y: ry,
				W: defaultTextboxWidth / container.W,
				H: defaultTextboxHeight / container.H,
			},
		}
		store.Add(a)
		g.Selected = a
		// Textbox placement is single-shot per arm.
		g.Tool = ToolNone
		g.State = StateIdle
		return true
	case ToolHighlight:
		g.State = StateDrawingHighlight
		g.startRX, g.startRY = rx, ry
		g.curRX, g.curRY = rx, ry
		return true
	}

	anns := store.ForPage(page)
	for i := len(anns) - 1; i >= 0; i-- {
		a := anns[i]
		pr := relToPixelRect(a.Rel, container)
		if deleteControlRect(pr).Contains(px, py) {
			store.Remove(a)
			g.cancelFor(a)
			return true
		}
		if a == g.Selected && a.Kind == KindTextbox {
			if h := handleAt(pr, px, py); h != HandleNone {
				g.State = StateResizing
				g.active = a
				g.handle = h
				g.startPX, g.startPY = px, py
				g.orig = a.Rel
				return true
			}
		}
		if pr.Contains(px, py) {
			g.Selected = a
			g.State = StateDragging
			g.active = a
			g.grabDX = rx - a.Rel.X
			g.grabDY = ry - a.Rel.Y
			return true
		}
	}
	g.Selected = nil
	return false
}

// PointerMove advances the in-flight gesture. Without one it is a
// no-op.
func (g *Gesture) PointerMove(px, py float64, container Rect) {
	switch g.State {
	case StateDrawingHighlight:
		if rx, ry, ok := toRelative(px, py, container); ok {
			g.curRX, g.curRY = rx, ry
		}
	case StateDragging:
		rx, ry, ok := toRelative(px, py, container)
		if !ok || g.active == nil {
			return
		}
		g.active.Rel.X = clampFloat(rx-g.grabDX, 0, 1-g.active.Rel.W)
		g.active.Rel.Y = clampFloat(ry-g.grabDY, 0, 1-g.active.Rel.H)
	case StateResizing:
		if container.IsEmpty() || g.active == nil {
			return
		}
		g.active.Rel = resizeFrom(g.orig, g.handle,
			(px-g.startPX)/container.W, (py-g.startPY)/container.H,
			minTextboxWidth/container.W, minTextboxHeight/container.H)
	}
}

// PointerUp ends the gesture. A highlight draw commits only when both
// fractional extents exceed the minimum; the highlight tool stays
// armed afterwards. A pointer-up with nothing in flight is a no-op.
func (g *Gesture) PointerUp(store *AnnotationStore) {
	switch g.State {
	case StateDrawingHighlight:
		w := math.Abs(g.curRX - g.startRX)
		h := math.Abs(g.curRY - g.startRY)
		if w > minHighlightRelSize && h > minHighlightRelSize {
			store.Add(&Annotation{
				Kind:  KindHighlight,
				Page:  g.page,
				Rel:   RelRect{X: math.Min(g.startRX, g.curRX), Y: math.Min(g.startRY, g.curRY), W: w, H: h},
				Color: g.HighlightColor,
			})
		}
		g.State = StateIdle
	case StateDragging, StateResizing:
		g.State = StateIdle
		g.active = nil
	}
}

// PreviewRect returns the transient rectangle of an in-progress
// highlight draw, spanning min/max of the start and current points so
// the drag works in any direction.
func (g *Gesture) PreviewRect() (RelRect, bool) {
	if g.State != StateDrawingHighlight {
		return RelRect{}, false
	}
	return RelRect{
		X: math.Min(g.startRX, g.curRX),
		Y: math.Min(g.startRY, g.curRY),
		W: math.Abs(g.curRX - g.startRX),
		H: math.Abs(g.curRY - g.startRY),
	}, true
}

// Delete removes an annotation and cancels any gesture or selection
// involving it.
func (g *Gesture) Delete(a *Annotation, store *AnnotationStore) {
	if a == nil {
		return
	}
	store.Remove(a)
	g.cancelFor(a)
}

func (g *Gesture) cancelFor(a *Annotation) {
	if g.active == a {
		g.State = StateIdle
		g.active = nil
	}
	if g.Selected == a {
		g.Selected = nil
	}
}

// Reset drops all interaction state. Used when a new document loads.
func (g *Gesture) Reset() {
	*g = Gesture{}
}

// resizeFrom applies fractional deltas from the gesture start to the
// starting geometry. East/south handles grow their dimension;
// west/north handles grow it and shift the origin so the opposite
// edge stays fixed. Floors win over the delta: a push past the
// minimum leaves the dimension exactly at the floor.
func resizeFrom(orig RelRect, h Handle, dx, dy, minW, minH float64) RelRect {
	r := orig
	switch h {
	case HandleE, HandleNE, HandleSE:
		r.W = orig.W + dx
	case HandleW, HandleNW, HandleSW:
		r.W = orig.W - dx
		r.X = orig.X + dx
	}
	switch h {
	case HandleS, HandleSE, HandleSW:
		r.H = orig.H + dy
	case HandleN, HandleNE, HandleNW:
		r.H = orig.H - dy
		r.Y = orig.Y + dy
	}
	if r.W < minW {
		switch h {
		case HandleW, HandleNW, HandleSW:
			r.X = orig.X + orig.W - minW
		}
		r.W = minW
	}
	if r.H < minH {
		switch h {
		case HandleN, HandleNE, HandleNW:
			r.Y = orig.Y + orig.H - minH
		}
		r.H = minH
	}
	return r
}

// deleteControlRect is the pixel hit zone of an annotation's delete
// control, centered on its top-right corner.
func deleteControlRect(pr Rect) Rect {
	return Rect{
		X: pr.X + pr.W - deleteControlSize/2,
		Y: pr.Y - deleteControlSize/2,
		W: deleteControlSize,
		H: deleteControlSize,
	}
}

// handleAt returns which of the eight resize handles of the pixel
// rect contains the point, corners taking precedence over edges.
func handleAt(pr Rect, px, py float64) Handle {
	type zone struct {
		h    Handle
		x, y float64
	}
	zones := []zone{
		{HandleNW, pr.X, pr.Y},
		{HandleNE, pr.X + pr.W, pr.Y},
		{HandleSW, pr.X, pr.Y + pr.H},
		{HandleSE, pr.X + pr.W, pr.Y + pr.H},
		{HandleN, pr.X + pr.W/2, pr.Y},
		{HandleS, pr.X + pr.W/2, pr.Y + pr.H},
		{HandleW, pr.X, pr.Y + pr.H/2},
		{HandleE, pr.X + pr.W, pr.Y + pr.H/2},
	}
	for _, z := range zones {
		hit := Rect{
			X: z.x - resizeHandleSize/2,
			Y: z.y - resizeHandleSize/2,
			W: resizeHandleSize,
			H: resizeHandleSize,
		}
		if hit.Contains(px, py) {
			return z.h
		}
	}
	return HandleNone
}
