package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	sidebarRowStyle      = lipgloss.NewStyle()
	sidebarSelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	separatorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

func (m *model) View() string {
	if m.width < 1 || m.height < 1 {
		return ""
	}
	switch m.mode {
	case ModeHelp:
		return m.helpView()
	case ModeStartup:
		return m.startupView()
	}
	if m.mode == ModeFileInput && m.fileOp == FileOpOpen {
		return m.filePickerView()
	}

	sidebar := m.renderSidebar()
	viewer := m.renderViewer()
	sep := separatorStyle.Render("│")

	var result strings.Builder
	rows := m.height - 1
	for i := 0; i < rows; i++ {
		if i < len(sidebar) {
			result.WriteString(sidebar[i])
		}
		result.WriteString(sep)
		if i < len(viewer) {
			result.WriteString(viewer[i])
		}
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine())
	return result.String()
}

// renderSidebar builds one fixed-width line per visible segment row,
// sorted by (page, top). Rows resolve back to segments through
// m.order, never through their on-screen position.
func (m *model) renderSidebar() []string {
	rows := m.sidebarRows()
	width := m.cfg.SidebarWidth
	lines := make([]string, rows)
	for i := 0; i < rows; i++ {
		row := i + m.sidebarScroll
		if m.doc == nil || row < 0 || row >= len(m.order) {
			lines[i] = strings.Repeat(" ", width)
			continue
		}
		segIdx := m.order[row]
		seg := m.doc.Segments[segIdx]
		label := fmt.Sprintf("p%d %s %s", seg.PageNumber, seg.Type, strings.ReplaceAll(seg.Text, "\n", " "))
		label = truncate(label, width)
		label += strings.Repeat(" ", width-len([]rune(label)))
		style := sidebarRowStyle.Foreground(lipgloss.Color(segmentColor(seg)))
		if segIdx == m.selectedSegment {
			style = sidebarSelectedStyle.Foreground(lipgloss.Color(segmentColor(seg)))
		}
		lines[i] = style.Render(label)
	}
	return lines
}

func (m *model) statusLine() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Page %d/%d", m.page, m.pageCount()))
	parts = append(parts, fmt.Sprintf("Zoom %.0f%%", m.zoom*100))

	switch m.gesture.Tool {
	case ToolHighlight:
		parts = append(parts, fmt.Sprintf("Tool: HIGHLIGHT (color %d)", m.gesture.HighlightColor+1))
	case ToolTextbox:
		parts = append(parts, "Tool: TEXTBOX")
	}
	if m.mode == ModeEditing {
		parts = append(parts, "EDIT | Ctrl+S=save, Esc=cancel")
	}
	if m.mode == ModeFileInput && m.fileOp == FileOpExportPNG {
		parts = append(parts, fmt.Sprintf("Export filename: %s█ | Enter=confirm, Esc=cancel", m.filename))
	}
	if n := m.store.Len(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d annotations", n))
	}
	if m.errorMessage != "" {
		parts = append(parts, "ERROR: "+m.errorMessage)
	} else if m.successMessage != "" {
		parts = append(parts, m.successMessage)
	} else if m.mode == ModeNormal {
		parts = append(parts, "? for help")
	}
	line := strings.Join(parts, " | ")
	return statusStyle.Render(truncate(line, m.width))
}

func (m *model) pageCount() int {
	if m.doc == nil {
		return 1
	}
	return m.doc.PageCount()
}

func (m *model) startupView() string {
	lines := []string{
		"",
		"  resyft — document layout viewer",
		"",
		"  'o' Open an extraction result (.json)",
		"  'q' Quit",
		"",
	}
	if m.errorMessage != "" {
		lines = append(lines, "  ERROR: "+m.errorMessage)
	}
	return strings.Join(lines, "\n")
}

func (m *model) filePickerView() string {
	var result strings.Builder
	result.WriteString("Open extraction result:\n")
	result.WriteString(strings.Repeat("─", m.width))
	result.WriteString("\n")

	if len(m.fileList) == 0 {
		result.WriteString("(No .json files found in current directory)\n")
	} else {
		maxFiles := m.height - 4
		if maxFiles < 1 {
			maxFiles = 1
		}
		startIdx := 0
		if m.selectedFileIndex >= maxFiles {
			startIdx = m.selectedFileIndex - maxFiles + 1
		}
		endIdx := startIdx + maxFiles
		if endIdx > len(m.fileList) {
			endIdx = len(m.fileList)
		}
		for i := startIdx; i < endIdx; i++ {
			if i == m.selectedFileIndex {
				result.WriteString("> " + m.fileList[i] + " <")
			} else {
				result.WriteString("  " + m.fileList[i])
			}
			result.WriteString("\n")
		}
	}

	result.WriteString(strings.Repeat("─", m.width))
	result.WriteString("\n")
	result.WriteString("Filename: " + m.filename + "█")
	if m.errorMessage != "" {
		result.WriteString("   ERROR: " + m.errorMessage)
	}
	return result.String()
}

func helpLines() []string {
	return []string{
		"resyft Help",
		"===========",
		"",
		"Viewer:",
		"  h/j/k/l, arrows  Scroll the page (Shift = 4x)",
		"  +/-              Zoom in / out",
		"  [ / ]            Previous / next page",
		"  mouse wheel      Scroll vertically",
		"",
		"Segments:",
		"  click overlay    Select segment (syncs the sidebar)",
		"  click sidebar    Select segment (scrolls the viewer to it)",
		"  tab/shift+tab    Step through segments in sidebar order",
		"  y                Copy selected segment text to clipboard",
		"",
		"Annotations:",
		"  a                Arm/disarm the highlight tool",
		"                   - drag on the page to draw; stays armed",
		"  c                Cycle the highlight color",
		"  t                Arm/disarm the textbox tool",
		"                   - click on the page to place; disarms after one",
		"  drag body        Move an annotation (stays on the page)",
		"  drag ■ handle    Resize a selected textbox (8 handles)",
		"  click ×          Delete an annotation",
		"  e                Edit the selected textbox's text",
		"  d                Delete the selected annotation",
		"  Esc              Disarm the active tool",
		"",
		"Files:",
		"  o                Open an extraction result (.json)",
		"  S                Export current page as PNG",
		"",
		"General:",
		"  ?                Toggle this help",
		"  q/Ctrl+C         Quit",
	}
}

func (m *model) helpView() string {
	lines := helpLines()
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}
	start := m.helpScroll
	if start > len(lines)-visible {
		start = len(lines) - visible
	}
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}
	result := strings.Join(lines[start:end], "\n")
	result += fmt.Sprintf("\nHelp (%d-%d of %d) | j/k to scroll, any other key to close", start+1, end, len(lines))
	return result
}
