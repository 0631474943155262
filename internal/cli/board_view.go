package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// minColWidth keeps columns readable before a WindowSizeMsg arrives.
const minColWidth = 24

func (m *boardModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeForm:
		return m.form.View()
	case modeConfirmReset:
		return m.confirm.View()
	}

	var b strings.Builder
	b.WriteString(styleHeader.Render("INTAKE BOARD"))
	b.WriteString("\n\n")
	b.WriteString(m.renderColumns())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n" + m.renderHelp())
	return b.String()
}

func (m *boardModel) colWidth() int {
	if m.width == 0 {
		return minColWidth
	}
	w := (m.width - len(domain.StageOrder)) / len(domain.StageOrder)
	if w < minColWidth {
		return minColWidth
	}
	return w
}

func (m *boardModel) renderColumns() string {
	width := m.colWidth()
	rendered := make([]string, 0, len(domain.StageOrder))
	for i, stage := range domain.StageOrder {
		rendered = append(rendered, m.renderColumn(i, stage, width))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *boardModel) renderColumn(idx int, stage domain.Stage, width int) string {
	accent := stageStyle(stage)
	header := fmt.Sprintf("%s (%d)", strings.ToUpper(stage.Label()), len(m.columns[idx]))

	var b strings.Builder
	b.WriteString(accent.Bold(true).Render(truncate(header, width-2)))
	b.WriteString("\n")
	b.WriteString(dim(strings.Repeat("─", width-2)))
	b.WriteString("\n")

	if len(m.columns[idx]) == 0 {
		b.WriteString(dim("  (empty)"))
	}
	for row, member := range m.columns[idx] {
		selected := m.mode == modeBoard && idx == m.col && row == m.row
		b.WriteString(m.renderCard(member, selected, width))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		PaddingRight(1).
		Render(b.String())
}

func (m *boardModel) renderCard(member *domain.Member, selected bool, width int) string {
	cursor := "  "
	nameStyle := styleFg
	if selected {
		cursor = styleHeader.Render("▌ ")
		nameStyle = styleBold
	}

	name := truncate(fmt.Sprintf("%s %s", member.Title, member.Name), width-4)
	meta := truncate(fmt.Sprintf("%d · %s", member.Age, member.Email), width-4)
	id := member.DisplayID()

	return fmt.Sprintf("%s%s\n  %s\n  %s",
		cursor, nameStyle.Render(name), dim(meta), dim(id))
}

func (m *boardModel) renderHelp() string {
	parts := make([]string, 0, 8)
	for _, b := range m.keys.shortHelp() {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", styleFg.Render(h.Key), dim(h.Desc)))
	}
	return dim(strings.Join(parts, dim("  ·  ")))
}

// truncate shortens s to at most width runes, appending an ellipsis.
func truncate(s string, width int) string {
	if width <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
