package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	colorBrand   = lipgloss.Color("#EA580C")
	colorAccent  = lipgloss.Color("#FBBF24")
	colorSuccess = lipgloss.Color("#10B981")
	colorDanger  = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorText    = lipgloss.Color("#F3F4F6")
	colorBorder  = lipgloss.Color("#4B5563")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Background(colorBrand).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	priceStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	strikeStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Strikethrough(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#111827")).
			Background(colorAccent).
			Padding(0, 1)

	likedStyle = lipgloss.NewStyle().
			Foreground(colorDanger)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	selectedLineStyle = lipgloss.NewStyle().
				Foreground(colorBrand).
				Bold(true).
				PaddingLeft(1)

	lineStyle = lipgloss.NewStyle().
			Foreground(colorText).
			PaddingLeft(3)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#052E16")).
			Background(colorSuccess).
			Bold(true).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorBrand)
)

// FormatKey formats a help key
func FormatKey(key, description string) string {
	return helpKeyStyle.Render(key) + " " + mutedStyle.Render(description)
}

func formatPrice(effective, original string, discounted bool) string {
	if !discounted {
		return priceStyle.Render(effective)
	}
	return priceStyle.Render(effective) + " " + strikeStyle.Render(original)
}

func heart(liked bool) string {
	if liked {
		return likedStyle.Render("♥")
	}
	return mutedStyle.Render("♡")
}
