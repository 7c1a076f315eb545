// Package formatter provides the terminal color palette and small render
// helpers shared by CLI commands.
package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/admind/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// VerdictIndicator renders a creative's simulation verdict.
func VerdictIndicator(n domain.Node) string {
	switch {
	case n.IsWinning:
		return StyleGreen.Render("● WINNING")
	case n.IsLosing:
		return StyleRed.Render("● LOSING")
	case n.Metrics != nil:
		return StyleYellow.Render("● TESTING")
	default:
		return StyleDim.Render("● FRESH")
	}
}

// PhaseColor returns the style for an analysis phase.
func PhaseColor(phase domain.AnalysisPhase) lipgloss.Style {
	switch phase {
	case domain.Phase1:
		return StyleBlue
	case domain.Phase2:
		return StyleYellow
	case domain.Phase3:
		return StylePurple
	case domain.Phase4:
		return StyleGreen
	default:
		return StyleDim
	}
}

// NodeTypeColor returns the style for a node type badge.
func NodeTypeColor(t domain.NodeType) lipgloss.Style {
	switch t {
	case domain.NodeRoot:
		return StyleHeader
	case domain.NodePersona:
		return StyleBlue
	case domain.NodeAngle:
		return StylePurple
	case domain.NodeCreative:
		return StyleGreen
	default:
		return StyleFg
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Cost renders a dollar amount in the dim style.
func Cost(v float64) string {
	return StyleDim.Render(fmt.Sprintf("$%.4f", v))
}
