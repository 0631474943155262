package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorRed    = lipgloss.Color("#fb4934")
	colorBlue   = lipgloss.Color("#83a598")
	colorPurple = lipgloss.Color("#d3869b")
	colorDim    = lipgloss.Color("#928374")
	colorFg     = lipgloss.Color("#ebdbb2")
	colorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	styleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	styleRed    = lipgloss.NewStyle().Foreground(colorRed)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleFg     = lipgloss.NewStyle().Foreground(colorFg)
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	styleBold   = lipgloss.NewStyle().Foreground(colorFg).Bold(true)
)

// stageStyle returns the accent style for a stage column.
func stageStyle(s domain.Stage) lipgloss.Style {
	switch s {
	case domain.StageUnclaimed:
		return lipgloss.NewStyle().Foreground(colorYellow)
	case domain.StageFirstContact:
		return lipgloss.NewStyle().Foreground(colorBlue)
	case domain.StagePreparingOffer:
		return lipgloss.NewStyle().Foreground(colorPurple)
	case domain.StageSendToTherapist:
		return styleGreen
	default:
		return styleDim
	}
}

// dim renders text in the muted color.
func dim(text string) string {
	return styleDim.Render(text)
}

// bold renders text in bold with the foreground color.
func bold(text string) string {
	return styleBold.Render(text)
}

// formatFieldErrors renders one line per failed field, sorted by field
// name so output is stable.
func formatFieldErrors(ferrs domain.FieldErrors) string {
	fields := make([]string, 0, len(ferrs))
	for f := range ferrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString(styleRed.Render("✘ invalid input:"))
	for _, f := range fields {
		b.WriteString(fmt.Sprintf("\n  %s %s", styleRed.Render(f+":"), ferrs[f]))
	}
	return b.String()
}
