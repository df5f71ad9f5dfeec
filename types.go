package main

// Segment is one machine-detected layout region as delivered by the
// extraction backend. Geometry is in document-native units for the
// page named by PageNumber; PageWidth/PageHeight are the native page
// size those coordinates were measured against. Segments are
// immutable once loaded.
type Segment struct {
	Text       string  `json:"text"`
	Type       string  `json:"type"`
	PageNumber int     `json:"page_number"`
	Top        float64 `json:"top"`
	Left       float64 `json:"left"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	PageWidth  float64 `json:"page_width"`
	PageHeight float64 `json:"page_height"`
}

// Document is a loaded extraction result: a name plus the segment
// list in original backend order.
type Document struct {
	Name     string    `json:"name"`
	Segments []Segment `json:"segments"`
}

// AnnotationKind distinguishes the two user-drawn shapes.
type AnnotationKind int

const (
	KindHighlight AnnotationKind = iota
	KindTextbox
)

// Annotation is a user-created shape. All geometry is stored as
// container-relative fractions in [0,1], the one representation that
// survives zoom changes. Color is a highlight palette index; Text is
// only meaningful for textboxes.
type Annotation struct {
	Kind  AnnotationKind
	Page  int
	Rel   RelRect
	Color int
	Text  string
}

// RelRect is a rectangle in container-relative fractional units.
type RelRect struct {
	X, Y, W, H float64
}

// Rect is an axis-aligned rectangle in rendered-pixel units.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// IsEmpty reports whether the rect has no usable area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}
