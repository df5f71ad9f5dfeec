package main

type Mode int

const (
	ModeStartup Mode = iota
	ModeNormal
	ModeEditing
	ModeFileInput
	ModeHelp
)

type FileOperation int

const (
	FileOpOpen FileOperation = iota
	FileOpExportPNG
)

// Tool is the armed annotation tool. Arming is toggle-style and
// mutually exclusive: re-selecting the active tool disarms it, and
// selecting the other tool replaces it.
type Tool int

const (
	ToolNone Tool = iota
	ToolHighlight
	ToolTextbox
)

// GestureState tracks the pointer gesture currently in progress.
type GestureState int

const (
	StateIdle GestureState = iota
	StateDrawingHighlight
	StateDragging
	StateResizing
)

// Handle names the eight resize handles of a textbox.
type Handle int

const (
	HandleNone Handle = iota
	HandleN
	HandleS
	HandleE
	HandleW
	HandleNE
	HandleNW
	HandleSE
	HandleSW
)

const (
	// One terminal cell maps to an 8x16 pixel block of the rendered
	// page surface.
	cellWidth  = 8.0
	cellHeight = 16.0

	// A drawn highlight below this fractional extent on either axis is
	// treated as an accidental click and discarded.
	minHighlightRelSize = 0.01

	// Textboxes are placed at this pixel size, converted to fractions
	// against the container at creation time.
	defaultTextboxWidth  = 200.0
	defaultTextboxHeight = 100.0

	// Resize floors, pixel-equivalent, converted against the current
	// container so a textbox never collapses.
	minTextboxWidth  = 100.0
	minTextboxHeight = 50.0

	// Pixel-space hit zones on annotations.
	deleteControlSize = 12.0
	resizeHandleSize  = 10.0

	// Vertical padding left above an overlay when the viewer scrolls
	// to it.
	scrollTopPadding = 32.0

	minZoom = 0.25
	maxZoom = 4.0

	numHighlightColors = 4
)
