package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/comalice/layoutfocus/internal/core"
	"github.com/comalice/layoutfocus/internal/primitives"
)

const defaultPaneWidth = 18

var (
	accent = lipgloss.Color("#7D56F4")
	muted  = lipgloss.Color("#626262")
	queued = lipgloss.Color("#E5C07B")
	danger = lipgloss.Color("#E06C75")

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(1, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Underline(true)
	dimStyle    = lipgloss.NewStyle().Foreground(muted)
	errStyle    = lipgloss.NewStyle().Foreground(danger)
)

func (m Model) View() string {
	state := m.store.State()
	focus := core.LayoutFocus(state)

	var panes []string
	highlighted := m.Highlighted()
	for _, area := range visibleAreas(focus.Current) {
		panes = append(panes, m.renderPane(area, area == highlighted, focus))
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panes...))
	b.WriteString("\n")
	fmt.Fprintf(&b, "canonical  current=%s previous=%s next=%s\n", focus.Current, focus.Previous, focus.Next)
	fmt.Fprintf(&b, "legacy     current=%s previous=%s next=%s\n", m.legacy.Current(), m.legacy.Previous(), m.legacy.Pending())
	for _, t := range m.history.entries {
		b.WriteString(dimStyle.Render(t.String()))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// visibleAreas lists the panes to draw. The sidebar gives way to the preview.
func visibleAreas(current primitives.Area) []primitives.Area {
	var out []primitives.Area
	for _, area := range primitives.Areas() {
		if area == primitives.Sidebar && current == primitives.Preview {
			continue
		}
		out = append(out, area)
	}
	return out
}

func (m Model) renderPane(area primitives.Area, highlighted bool, focus primitives.FocusState) string {
	style := paneStyle.Width(m.paneWidth())
	var tags []string
	switch {
	case area == focus.Current:
		style = style.Border(lipgloss.ThickBorder()).BorderForeground(accent)
		tags = append(tags, "focused")
	case area == focus.Next:
		style = style.Border(lipgloss.DoubleBorder()).BorderForeground(queued)
	}
	if area == focus.Next {
		tags = append(tags, "queued")
	}
	if area == focus.Previous {
		tags = append(tags, "previous")
	}

	title := titleStyle.Render(string(area))
	if highlighted {
		title = cursorStyle.Render(title)
	}
	body := title
	if len(tags) > 0 {
		body += "\n" + dimStyle.Render(strings.Join(tags, ", "))
	}
	return style.Render(body)
}

func (m Model) paneWidth() int {
	if m.width <= 0 {
		return defaultPaneWidth
	}
	// four panes, each with two border and two padding columns
	w := m.width/len(primitives.Areas()) - 4
	if w < 8 {
		return 8
	}
	return w
}
