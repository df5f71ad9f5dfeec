package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	m := initialModel(loadConfig())
	if len(os.Args) > 1 {
		m.loadDocumentFile(os.Args[1])
	}
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type model struct {
	width  int
	height int
	cfg    *Config
	mode   Mode

	doc     *Document
	docPath string
	order   []int // sidebar row -> segment index

	store   *AnnotationStore
	gesture Gesture

	selectedSegment int

	// current render surface
	page          int
	zoom          float64
	renderedW     float64
	renderedH     float64
	pageGrid      [][]rune
	scrollX       float64
	scrollY       float64
	sidebarScroll int

	mouseDown bool

	// textbox edit mode
	editText         string
	editCursorPos    int
	originalEditText string

	// file input mode
	filename          string
	fileList          []string
	selectedFileIndex int
	fileOp            FileOperation

	helpScroll int

	errorMessage   string
	successMessage string
}

func initialModel(cfg *Config) *model {
	return &model{
		cfg:             cfg,
		mode:            ModeStartup,
		store:           NewAnnotationStore(),
		selectedSegment: -1,
		page:            1,
		zoom:            1.0,
	}
}

// loadDocumentFile replaces the session: a new document discards all
// annotations, the selection and any in-flight gesture.
func (m *model) loadDocumentFile(path string) {
	doc, err := LoadDocument(path)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.doc = doc
	m.docPath = path
	m.order = sidebarOrder(doc.Segments)
	m.store.Clear()
	m.gesture.Reset()
	m.selectedSegment = -1
	m.page = 1
	m.zoom = 1.0
	m.scrollX, m.scrollY = 0, 0
	m.sidebarScroll = 0
	m.mode = ModeNormal
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf("Loaded %s (%d segments, %d pages)", doc.Name, len(doc.Segments), doc.PageCount())
	m.renderPage()
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		m.clampSidebarScroll()
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		switch m.mode {
		case ModeStartup:
			return m.updateStartupKey(msg)
		case ModeNormal:
			return m.updateNormalKey(msg)
		case ModeEditing:
			return m.updateEditingKey(msg)
		case ModeFileInput:
			return m.updateFileInputKey(msg)
		case ModeHelp:
			return m.updateHelpKey(msg)
		}
	}
	return m, nil
}

func (m *model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal {
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollY -= 2 * cellHeight
		m.clampScroll()
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollY += 2 * cellHeight
		m.clampScroll()
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.mouseDown {
			// Missed release; treat as motion so a gesture is not
			// restarted mid-drag.
			m.pointerMove(msg.X, msg.Y)
			return m, nil
		}
		m.mouseDown = true
		m.pointerDown(msg.X, msg.Y)
	case tea.MouseActionMotion:
		if m.mouseDown {
			m.pointerMove(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		m.mouseDown = false
		m.gesture.PointerUp(m.store)
	}
	return m, nil
}

func (m *model) pointerDown(cellX, cellY int) {
	if cellX < m.cfg.SidebarWidth {
		row := cellY + m.sidebarScroll
		if row >= 0 && row < len(m.order) {
			m.selectSegment(m.order[row])
		}
		return
	}
	px, py, ok := m.pointerPixel(cellX, cellY)
	if !ok || m.doc == nil {
		return
	}
	container := m.pageContainer()
	if m.gesture.PointerDown(px, py, m.page, container, m.store) {
		return
	}
	// The click fell through every annotation; offer it to the
	// segment overlays, topmost (last drawn) first.
	for i := len(m.doc.Segments) - 1; i >= 0; i-- {
		seg := m.doc.Segments[i]
		if seg.PageNumber != m.page {
			continue
		}
		pr, ok := segmentPixelRect(seg, m.renderedW, m.renderedH)
		if !ok {
			continue
		}
		if pr.Contains(px, py) {
			m.selectSegment(i)
			return
		}
	}
}

func (m *model) pointerMove(cellX, cellY int) {
	// During a drag the pointer may leave the pane; keep feeding the
	// gesture so it can clamp instead of freezing.
	paneX := m.cfg.SidebarWidth + 1
	px := float64(cellX-paneX)*cellWidth + m.scrollX
	py := float64(cellY)*cellHeight + m.scrollY
	m.gesture.PointerMove(px, py, m.pageContainer())
}

func (m *model) updateStartupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "o":
		m.enterFileInput(FileOpOpen)
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) updateNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEscape {
		// Disarm whatever tool is active and cancel an in-flight draw.
		m.gesture.ToggleTool(m.gesture.Tool)
		return m, nil
	}
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.mode = ModeHelp
		m.helpScroll = 0
		return m, nil
	case "a":
		m.gesture.ToggleTool(ToolHighlight)
		m.successMessage = ""
		return m, nil
	case "t":
		m.gesture.ToggleTool(ToolTextbox)
		m.successMessage = ""
		return m, nil
	case "c":
		m.gesture.CycleHighlightColor()
		return m, nil
	case "e":
		if a := m.gesture.Selected; a != nil && a.Kind == KindTextbox {
			m.mode = ModeEditing
			m.editText = a.Text
			m.originalEditText = a.Text
			m.editCursorPos = len(m.editText)
		}
		return m, nil
	case "d":
		m.gesture.Delete(m.gesture.Selected, m.store)
		return m, nil
	case "y":
		if m.doc != nil && m.selectedSegment >= 0 {
			if err := writeClipboardText(m.doc.Segments[m.selectedSegment].Text); err != nil {
				m.errorMessage = fmt.Sprintf("Clipboard: %s", err.Error())
			} else {
				m.successMessage = "Segment text copied"
			}
		}
		return m, nil
	case "+", "=":
		m.zoomIn()
		return m, nil
	case "-":
		m.zoomOut()
		return m, nil
	case "[", "pgup":
		m.switchPage(-1)
		return m, nil
	case "]", "pgdown":
		m.switchPage(1)
		return m, nil
	case "tab":
		m.moveSelection(1)
		return m, nil
	case "shift+tab":
		m.moveSelection(-1)
		return m, nil
	case "o":
		m.enterFileInput(FileOpOpen)
		return m, nil
	case "S":
		m.enterFileInput(FileOpExportPNG)
		return m, nil
	case "h", "left", "l", "right", "k", "up", "j", "down",
		"H", "shift+left", "L", "shift+right", "K", "shift+up", "J", "shift+down":
		m.handleScroll(key, m.getScrollSpeed(key))
		return m, nil
	}
	return m, nil
}

func (m *model) updateEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.gesture.Selected
	if a == nil || a.Kind != KindTextbox || !m.store.Contains(a) {
		m.mode = ModeNormal
		return m, nil
	}
	switch {
	case msg.Type == tea.KeyEscape:
		a.Text = m.originalEditText
		m.mode = ModeNormal
		m.editText = ""
		m.editCursorPos = 0
		return m, nil
	case msg.Type == tea.KeyCtrlS:
		a.Text = m.editText
		m.mode = ModeNormal
		m.editText = ""
		m.editCursorPos = 0
		return m, nil
	case msg.String() == "left":
		if m.editCursorPos > 0 {
			m.editCursorPos--
		}
	case msg.String() == "right":
		if m.editCursorPos < len(m.editText) {
			m.editCursorPos++
		}
	case msg.Type == tea.KeyEnter:
		m.editText = m.editText[:m.editCursorPos] + "\n" + m.editText[m.editCursorPos:]
		m.editCursorPos++
	case msg.Type == tea.KeyBackspace:
		if m.editCursorPos > 0 {
			m.editText = m.editText[:m.editCursorPos-1] + m.editText[m.editCursorPos:]
			m.editCursorPos--
		}
	case msg.Type == tea.KeyDelete:
		if m.editCursorPos < len(m.editText) {
			m.editText = m.editText[:m.editCursorPos] + m.editText[m.editCursorPos+1:]
		}
	default:
		keyStr := msg.String()
		if len(keyStr) == 1 {
			m.editText = m.editText[:m.editCursorPos] + keyStr + m.editText[m.editCursorPos:]
			m.editCursorPos++
		}
	}
	// Live update so the textbox shows what is typed.
	a.Text = m.editText
	return m, nil
}

func (m *model) enterFileInput(op FileOperation) {
	m.mode = ModeFileInput
	m.fileOp = op
	m.errorMessage = ""
	m.successMessage = ""
	switch op {
	case FileOpOpen:
		m.filename = ""
		m.fileList = scanDocumentFiles()
		if len(m.fileList) > 0 {
			m.selectedFileIndex = 0
			m.filename = m.fileList[0]
		} else {
			m.selectedFileIndex = -1
		}
	case FileOpExportPNG:
		name := "page"
		if m.doc != nil {
			name = strings.TrimSuffix(m.doc.Name, ".json")
		}
		m.filename = fmt.Sprintf("%s-p%d", name, m.page)
		m.fileList = nil
		m.selectedFileIndex = -1
	}
}

func (m *model) updateFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEscape:
		if m.doc == nil {
			m.mode = ModeStartup
		} else {
			m.mode = ModeNormal
		}
		m.filename = ""
		m.errorMessage = ""
		return m, nil
	case msg.String() == "up" && m.fileOp == FileOpOpen && len(m.fileList) > 0:
		if m.selectedFileIndex <= 0 {
			m.selectedFileIndex = len(m.fileList) - 1
		} else {
			m.selectedFileIndex--
		}
		m.filename = m.fileList[m.selectedFileIndex]
		return m, nil
	case msg.String() == "down" && m.fileOp == FileOpOpen && len(m.fileList) > 0:
		if m.selectedFileIndex >= len(m.fileList)-1 {
			m.selectedFileIndex = 0
		} else {
			m.selectedFileIndex++
		}
		m.filename = m.fileList[m.selectedFileIndex]
		return m, nil
	case msg.Type == tea.KeyEnter:
		return m.runFileOp()
	case msg.Type == tea.KeyBackspace:
		if len(m.filename) > 0 {
			m.filename = m.filename[:len(m.filename)-1]
			m.selectedFileIndex = -1
		}
		return m, nil
	default:
		keyStr := msg.String()
		if len(keyStr) == 1 {
			m.filename += keyStr
			m.selectedFileIndex = -1
		}
		return m, nil
	}
}

func (m *model) runFileOp() (tea.Model, tea.Cmd) {
	filename := strings.TrimSpace(m.filename)
	if filename == "" {
		m.errorMessage = "Please enter a filename"
		return m, nil
	}
	switch m.fileOp {
	case FileOpOpen:
		if !strings.HasSuffix(strings.ToLower(filename), ".json") {
			filename += ".json"
		}
		m.loadDocumentFile(filename)
		if m.errorMessage != "" {
			// Stay in the picker so the user can retry.
			return m, nil
		}
	case FileOpExportPNG:
		if !strings.HasSuffix(strings.ToLower(filename), ".png") {
			filename += ".png"
		}
		path := m.cfg.GetExportPath(filename)
		if err := exportPagePNG(path, m.doc, m.page, m.zoom, m.store); err != nil {
			m.errorMessage = fmt.Sprintf("Export failed: %s", err.Error())
			return m, nil
		}
		m.successMessage = fmt.Sprintf("Exported to %s", path)
		m.errorMessage = ""
		m.mode = ModeNormal
	}
	m.filename = ""
	return m, nil
}

func (m *model) updateHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.helpScroll < len(helpLines())-1 {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.mode = ModeNormal
		m.helpScroll = 0
	}
	return m, nil
}
