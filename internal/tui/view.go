package tui

import (
	"fmt"
	"strings"

	"github.com/michaelscutari/fspath/internal/entry"
	"github.com/michaelscutari/fspath/internal/render"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit, Backspace to go up.", m.err)
	}

	var b strings.Builder
	headerLines := 0

	writeLine := func(line string) {
		b.WriteString(line)
		b.WriteString("\n")
		headerLines++
	}

	// Header
	writeLine(titleStyle.Render("fspath - Directory Browser"))

	// Breadcrumbs / path
	pathLabel := fmt.Sprintf("Path: %s", truncateMiddle(m.currentPath, max(10, m.width-6)))
	writeLine(breadcrumbStyle.Render(pathLabel))

	// Status line
	status := fmt.Sprintf("Items: %s | Sort: %s", render.FormatCount(int64(len(m.entries))), m.sort)
	if m.opts.Kinds != 0 {
		status += fmt.Sprintf(" | Kind: %s", m.opts.Kinds)
	}
	if m.filter != "" {
		status += fmt.Sprintf(" | Filter: %q", m.filter)
	}
	if len(m.entries) > 0 && m.cursor < len(m.entries) {
		sel := m.entries[m.cursor]
		if u, ok := m.urlPath(sel); ok {
			status += fmt.Sprintf(" | URL: %s", u)
		}
	}
	writeLine(statusStyle.Render(status))

	// Filter input
	if m.filterActive {
		writeLine(filterStyle.Render(fmt.Sprintf("Filter: %s_", m.filter)))
	} else if m.filter != "" {
		writeLine(filterStyle.Render(fmt.Sprintf("Filter: %s", m.filter)))
	}

	widths := calcColumnWidths(m.entries)
	header := fmt.Sprintf("%-*s%s%*s%s%-*s%sNAME",
		widths.kind, "KIND",
		gap,
		widths.size, "SIZE",
		gap,
		widths.modified, "MODIFIED",
		gap,
	)
	writeLine(headerStyle.Render(header))

	// Calculate visible rows
	footerLines := 2
	visibleRows := m.height - headerLines - footerLines
	if visibleRows < 5 {
		visibleRows = 5
	}

	// Determine scroll offset
	startIdx := 0
	if m.cursor >= visibleRows {
		startIdx = m.cursor - visibleRows + 1
	}
	endIdx := min(len(m.entries), startIdx+visibleRows)

	for i := startIdx; i < endIdx; i++ {
		b.WriteString(m.formatEntry(m.entries[i], i == m.cursor, widths))
		b.WriteString("\n")
	}

	// Pad if needed
	displayedRows := max(0, endIdx-startIdx)
	for i := displayedRows; i < visibleRows; i++ {
		b.WriteString("\n")
	}

	// Footer
	help := m.helpLine()
	if len(m.entries) > 0 {
		help = fmt.Sprintf("%s [%d/%d]", help, m.cursor+1, len(m.entries))
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

const gap = "  "

type columnWidths struct {
	kind     int
	size     int
	modified int
}

func calcColumnWidths(entries []entry.Entry) columnWidths {
	w := columnWidths{
		kind:     len("KIND"),
		size:     len("SIZE"),
		modified: len("MODIFIED"),
	}

	for _, e := range entries {
		w.kind = max(w.kind, len(e.Kind.String()))
		w.size = max(w.size, len(sizeColumn(e)))
		w.modified = max(w.modified, len(render.FormatTime(e.ModTime)))
	}

	return w
}

func sizeColumn(e entry.Entry) string {
	if e.Kind != entry.KindFile {
		return "-"
	}
	return render.FormatSize(e.Size)
}

func (m *Model) formatEntry(e entry.Entry, selected bool, widths columnWidths) string {
	name := render.Name(e)
	if selected {
		name = e.Name
	}

	line := fmt.Sprintf("%-*s%s%*s%s%-*s%s%s",
		widths.kind, e.Kind,
		gap,
		widths.size, sizeColumn(e),
		gap,
		widths.modified, render.FormatTime(e.ModTime),
		gap,
		name,
	)

	if selected {
		return selectedStyle.Render(line)
	}
	return line
}

func truncateMiddle(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	head := (maxLen - 3) / 2
	tail := maxLen - 3 - head
	return s[:head] + "..." + s[len(s)-tail:]
}
