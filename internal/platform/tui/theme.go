package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rgballs/internal/engine"
)

// Theme contains the styles of every rgballs screen.
type Theme struct {
	// HUD styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDControls  lipgloss.Style
	HUDSelected  lipgloss.Style
	HUDStatus    lipgloss.Style

	// Ball counters per color
	Balls [engine.ColorCount]lipgloss.Style

	// Overlay styles
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuLevel       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuItemLocked  lipgloss.Style
	MenuDescription lipgloss.Style

	// Rating
	StarOn  lipgloss.Style
	StarOff lipgloss.Style

	// End screens
	WinBanner  lipgloss.Style
	LoseBanner lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDControls:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDSelected:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		HUDStatus:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Italic(true),

		Balls: [engine.ColorCount]lipgloss.Style{
			engine.Red:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			engine.Green: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			engine.Blue:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		},

		OverlayBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("255")).
			Padding(1, 2),
		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuLevel:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
		MenuItemLocked:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),

		StarOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		StarOff: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		WinBanner:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true).Padding(0, 2),
		LoseBanner: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("91")).Bold(true).Padding(0, 2),
	}
}

// RenderStars draws a rating as three star symbols.
func (t Theme) RenderStars(s engine.Stars) string {
	parts := make([]string, len(s))
	for i, earned := range s {
		parts[i] = t.Star(earned)
	}
	return strings.Join(parts, " ")
}

// Star draws one star slot.
func (t Theme) Star(earned bool) string {
	if earned {
		return t.StarOn.Render("★")
	}
	return t.StarOff.Render("☆")
}
