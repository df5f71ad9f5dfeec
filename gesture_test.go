package main

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func testContainer() Rect {
	return Rect{W: 1000, H: 500}
}

func TestHighlightDrawCommit(t *testing.T) {
	store := NewAnnotationStore()
	g := &Gesture{}
	c := testContainer()

	g.ToggleTool(ToolHighlight)
	g.PointerDown(200, 100, 1, c, store)
	if g.State != StateDrawingHighlight {
		t.Fatalf("state = %v after pointer down with highlight armed", g.State)
	}
	g.PointerMove(400, 150, c)
	g.PointerUp(store)

	if store.Len() != 1 {
		t.Fatalf("store has %d annotations, want 1", store.Len())
	}
	a := store.All()[0]
	if a.Kind != KindHighlight || a.Page != 1 {
		t.Fatalf("committed %+v", a)
	}
	want := RelRect{X: 0.2, Y: 0.2, W: 0.2, H: 0.1}
	if diff := cmp.Diff(want, a.Rel, approx); diff != "" {
		t.Errorf("geometry mismatch (-want +got):\n%s", diff)
	}
	if g.Tool != ToolHighlight {
		t.Error("highlight tool must stay armed after a commit")
	}
}

func TestHighlightDrawAnyDirection(t *testing.T) {
	store := NewAnnotationStore()
	g := &Gesture{}
	c := testContainer()

	g.ToggleTool(ToolHighlight)
	// Drag up-left; the committed rect still spans min/max.
	g.PointerDown(400, 150, 1, c, store)
	g.PointerMove(200, 100, c)
	g.PointerUp(store)

	if store.Len() != 1 {
		t.Fatalf("store has %d annotations, want 1", store.Len())
	}
	want := RelRect{X: 0.2, Y: 0.2, W: 0.2, H: 0.1}
	if diff := cmp.Diff(want, store.All()[0].Rel, approx); diff != "" {
		t.Errorf("geometry mismatch (-want +got):\n%s", diff)
	}
}

func TestHighlightMinimumSizeRejection(t *testing.T) {
	store := NewAnnotationStore()
	g := &Gesture{}
	c := testContainer()

	g.ToggleTool(ToolHighlight)
	g.PointerDown(100, 50, 1, c, store) // (0.10, 0.10)
	g.PointerMove(105, 52.5, c)         // (0.105, 0.105): under threshold on both axes
	g.PointerUp(store)
	if store.Len() != 0 {
		t.Fatalf("accidental click committed %d annotations", store.Len())
	}
	if g.Tool != ToolHighlight {
		t.Fatal("tool must stay armed after a rejected draw")
	}

	g.PointerDown(100, 50, 1, c, store)
	g.PointerMove(120, 60, c) // (0.12, 0.12)
	g.PointerUp(store)
	if store.Len() != 1 {
		t.Fatalf("store has %d annotations, want exactly 1", store.Len())
	}
}

func TestToolToggleSemantics(t *testing.T) {
	g := &Gesture{}
	g.ToggleTool(ToolHighlight)
	if g.Tool != ToolHighlight {
		t.Fatal("tool not armed")
	}
	g.ToggleTool(ToolHighlight)
	if g.Tool != ToolNone {
		t.Fatal("re-selecting the armed tool must disarm it")
	}
	g.ToggleTool(ToolHighlight)
	g.ToggleTool(ToolTextbox)
	if g.Tool != ToolTextbox {
		t.Fatal("selecting the other tool must replace the armed one")
	}
}

func TestTextboxPlacementSingleShot(t *testing.T) {
	store := NewAnnotationStore()
	g := &Gesture{}
	c := testContainer()

	g.ToggleTool(ToolTextbox)
	g.PointerDown(300, 200, 2, c, store)

	if store.Len() != 1 {
		t.Fatalf("store has %d annotations, want 1", store.Len())
	}
	a := store.All()[0]
	if a.Kind != KindTextbox || a.Page != 2 {
		t.Fatalf("placed %+v", a)
	}
	want := RelRect{X: 0.3, Y: 0.4, W: defaultTextboxWidth / 1000, H: defaultTextboxHeight / 500}
	if diff := cmp.Diff(want, a.Rel, approx); diff != "" {
		t.Errorf("geometry mismatch (-want +got):\n%s", diff)
	}
	if g.Tool != ToolNone {
		t.Error("textbox tool must disarm after one placement")
	}
	if g.Selected != a {
		t.Error("placed textbox must be selected")
	}

	// A second click with no tool armed places nothing.
	g.PointerUp(store)
	g.PointerDown(50, 50, 2, c, store)
	if store.Len() != 1 {
		t.Errorf("store has %d annotations after unarmed click", store.Len())
	}
}

func TestDragClamping(t *testing.T) {
	store := NewAnnotationStore()
	g := &Gesture{}
	c := testContainer()

	a := &Annotation{Kind: KindHighlight, Page: 1, Rel: RelRect{X: 0.4, Y: 0.4, W: 0.2, H: 0.2}}
	store.Add(a)

	// Grab the body center and push far past the bottom-right corner.
	g.PointerDown(500, 250, 1, c, store)
	if g.State != StateDragging {
		t.Fatalf("state = %v, want dragging", g.State)
	}
	g.PointerMove(5000, 5000, c)
	if diff := cmp.Diff(RelRect{X: 0.8, Y: 0.8, W: 0.2, H: 0.2}, a.Rel, approx); diff != "" {
		t.Errorf("upper clamp (-want +got):\n%s", diff)
	}

	// And past the top-left corner.
	g.PointerMove(-5000, -5000, c)
	if diff := cmp.Diff(RelRect{X: 0, Y: 0, W: 0.2, H: 0.2}, a.Rel, approx); diff != "" {
		t.Errorf("lower clamp (-want +got):\n%s", diff)
	}
	g.PointerUp(store)
	if g.State != StateIdle {
		t.Errorf("state = %v after release", g.State)
	}
}

func TestDragPreservesGrabOffset(t *testing.T) {
	store := NewAnnotationStore()
	g := &Gesture{}
	c := testContainer()

	a := &Annotation{Kind: KindHighlight, Page: 1, Rel: RelRect{X: 0.4, Y: 0.4, W: 0.2, H: 0.2}}
	store.Add(a)

	// Grab 50px right of the origin; a 100px move shifts the origin
	// by exactly 100px.
	g.PointerDown(450, 220, 1, c, store)
	g.PointerMove(550, 270, c)
	if diff := cmp.Diff(RelRect{X: 0.5, Y: 0.5, W: 0.2, H: 0.2}, a.Rel, approx); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func placeTextbox(t *testing.T, g *Gesture, store *AnnotationStore, rel RelRect) *Annotation {
	t.Helper()
	a := &Annotation{Kind: KindTextbox, Page: 1, Rel: rel}
	store.Add(a)
	g.Selected = a
	return a
}

func TestResizeEastFloor(t *testing.T) {
	store := NewAnnotationStore()
	g := &Gesture{}
	c := testContainer()
	a := placeTextbox(t, g, store, RelRect{X: 0.2, Y: 0.2, W: 0.3, H: 0.3})

	// East handle sits at the right-edge midpoint: (500, 175)px.
	g.PointerDown(500, 175, 1, c, store)
	if g.State != StateResizing {
		t.Fatalf("state = %v, want resizing", g.State)
	}
	g.PointerMove(150, 175, c)
	g.PointerUp(store)

	want := RelRect{X: 0.2, Y: 0.2, W: minTextboxWidth / 1000, H: 0.3}
	if diff := cmp.Diff(want, a.Rel, approx); diff != "" {
		t.Errorf("east floor (-want +got):\n%s", diff)
	}
}

func TestResizeWestKeepsEastEdgeFixed(t *testing.T) {
	store := NewAnnotationStore()
	g := &Gesture{}
	c := testContainer()
	a := placeTextbox(t, g, store, RelRect{X: 0.2, Y: 0.2, W: 0.3, H: 0.3})

	// West handle at (200, 175)px, pushed far past the east edge.
	g.PointerDown(200, 175, 1, c, store)
	g.PointerMove(900, 175, c)
	g.PointerUp(store)

	want := RelRect{X: 0.4, Y: 0.2, W: minTextboxWidth / 1000, H: 0.3}
	if diff := cmp.Diff(want, a.Rel, approx); diff != "" {
		t.Errorf("west floor (-want +got):\n%s", diff)
	}
	if right := a.Rel.X + a.Rel.W; math.Abs(right-0.5) > 1e-9 {
		t.Errorf("east edge moved to %v", right)
	}
}

func TestResizeSouthEastGrows(t *testing.T) {
	store := NewAnnotationStore()
	g := &Gesture{}
	c := testContainer()
	a := placeTextbox(t, g, store, RelRect{X: 0.2, Y: 0.2, W: 0.3, H: 0.3})

	// SE corner handle at (500, 250)px.
	g.PointerDown(500, 250, 1, c, store)
	g.PointerMove(600, 300, c)
	g.PointerUp(store)

	want := RelRect{X: 0.2, Y: 0.2, W: 0.4, H: 0.4}
	if diff := cmp.Diff(want, a.Rel, approx); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestResizeNorthShiftsOrigin(t *testing.T) {
	store := NewAnnotationStore()
	g := &Gesture{}
	c := testContainer()
	a := placeTextbox(t, g, store, RelRect{X: 0.2, Y: 0.2, W: 0.3, H: 0.3})

	// North handle at the top-edge midpoint: (350, 100)px. Moving up
	// grows height and shifts Y so the south edge stays fixed.
	g.PointerDown(350, 100, 1, c, store)
	g.PointerMove(350, 50, c)
	g.PointerUp(store)

	want := RelRect{X: 0.2, Y: 0.1, W: 0.3, H: 0.4}
	if diff := cmp.Diff(want, a.Rel, approx); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestResizeDeltasFromGestureStart(t *testing.T) {
	store := NewAnnotationStore()
	g := &Gesture{}
	c := testContainer()
	a := placeTextbox(t, g, store, RelRect{X: 0.2, Y: 0.2, W: 0.3, H: 0.3})

	// Two moves: the second supersedes the first rather than stacking
	// on it.
	g.PointerDown(500, 250, 1, c, store)
	g.PointerMove(700, 350, c)
	g.PointerMove(550, 275, c)
	g.PointerUp(store)

	want := RelRect{X: 0.2, Y: 0.2, W: 0.35, H: 0.35}
	if diff := cmp.Diff(want, a.Rel, approx); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDeleteControl(t *testing.T) {
	store := NewAnnotationStore()
	g := &Gesture{}
	c := testContainer()

	a := &Annotation{Kind: KindHighlight, Page: 1, Rel: RelRect{X: 0.5, Y: 0.5, W: 0.2, H: 0.2}}
	store.Add(a)
	g.Selected = a

	// Delete control is centered on the top-right corner: (700, 250)px.
	g.PointerDown(700, 250, 1, c, store)
	if store.Len() != 0 {
		t.Fatal("delete control click must remove the annotation")
	}
	if g.Selected != nil {
		t.Error("deleting the selected annotation must clear selection")
	}

	// Deleting mid-gesture cancels the gesture.
	b := &Annotation{Kind: KindTextbox, Page: 1, Rel: RelRect{X: 0.1, Y: 0.1, W: 0.2, H: 0.2}}
	store.Add(b)
	g.PointerDown(150, 100, 1, c, store) // body: starts a drag
	if g.State != StateDragging {
		t.Fatalf("state = %v", g.State)
	}
	g.Delete(b, store)
	if g.State != StateIdle || store.Len() != 0 {
		t.Error("delete must cancel the in-flight drag")
	}
	g.PointerMove(400, 200, c) // must not panic or resurrect anything
	g.PointerUp(store)
}

func TestSelectionSingleAndClear(t *testing.T) {
	store := NewAnnotationStore()
	g := &Gesture{}
	c := testContainer()

	a := &Annotation{Kind: KindTextbox, Page: 1, Rel: RelRect{X: 0.1, Y: 0.1, W: 0.2, H: 0.2}}
	b := &Annotation{Kind: KindTextbox, Page: 1, Rel: RelRect{X: 0.6, Y: 0.6, W: 0.2, H: 0.2}}
	store.Add(a)
	store.Add(b)

	g.PointerDown(150, 100, 1, c, store)
	g.PointerUp(store)
	if g.Selected != a {
		t.Fatal("first textbox not selected")
	}
	g.PointerDown(700, 350, 1, c, store)
	g.PointerUp(store)
	if g.Selected != b {
		t.Fatal("selecting another annotation must move the selection")
	}
	// Click on empty page space clears it.
	if g.PointerDown(10, 480, 1, c, store) {
		t.Fatal("empty-space click must not be consumed")
	}
	if g.Selected != nil {
		t.Error("empty-space click must clear the selection")
	}
}

func TestUnmatchedPointerUpIsNoop(t *testing.T) {
	store := NewAnnotationStore()
	g := &Gesture{}

	g.PointerUp(store)
	if g.State != StateIdle || store.Len() != 0 {
		t.Error("pointer-up with no gesture must change nothing")
	}
}

func TestZOrderTopmostWins(t *testing.T) {
	store := NewAnnotationStore()
	g := &Gesture{}
	c := testContainer()

	bottom := &Annotation{Kind: KindHighlight, Page: 1, Rel: RelRect{X: 0.1, Y: 0.1, W: 0.4, H: 0.4}}
	top := &Annotation{Kind: KindHighlight, Page: 1, Rel: RelRect{X: 0.2, Y: 0.2, W: 0.4, H: 0.4}}
	store.Add(bottom)
	store.Add(top)

	// Point inside both; the later-created annotation is on top.
	g.PointerDown(350, 200, 1, c, store)
	if g.Selected != top {
		t.Errorf("selected %+v, want the topmost", g.Selected)
	}
}

func TestPointerDownDegenerateContainer(t *testing.T) {
	store := NewAnnotationStore()
	g := &Gesture{}
	g.ToggleTool(ToolTextbox)
	if g.PointerDown(100, 100, 1, Rect{}, store) {
		t.Fatal("degenerate container must be a no-op")
	}
	if store.Len() != 0 {
		t.Error("nothing may be created against a zero-sized container")
	}
}
