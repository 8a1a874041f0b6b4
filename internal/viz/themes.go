package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/glide/internal/anim"
)

// Theme is the palette for the live demo and printed tables.
type Theme struct {
	Name    string
	Title   lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Accent  lipgloss.Color
	Static  lipgloss.Color
	Snap    lipgloss.Color
	Running lipgloss.Color
}

var (
	ThemeNeon = Theme{
		Name:    "neon",
		Title:   lipgloss.Color("#00ffff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Border:  lipgloss.Color("#444466"),
		Accent:  lipgloss.Color("#ff00ff"),
		Static:  lipgloss.Color("#888899"),
		Snap:    lipgloss.Color("#ffaa00"),
		Running: lipgloss.Color("#00ff88"),
	}

	ThemePhosphor = Theme{
		Name:    "phosphor",
		Title:   lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Border:  lipgloss.Color("#007700"),
		Accent:  lipgloss.Color("#ccffcc"),
		Static:  lipgloss.Color("#00aa00"),
		Snap:    lipgloss.Color("#ffff00"),
		Running: lipgloss.Color("#88ff88"),
	}

	ThemePaper = Theme{
		Name:    "paper",
		Title:   lipgloss.Color("#222222"),
		Text:    lipgloss.Color("#333333"),
		Muted:   lipgloss.Color("#999999"),
		Border:  lipgloss.Color("#bbbbbb"),
		Accent:  lipgloss.Color("#0088ff"),
		Static:  lipgloss.Color("#666666"),
		Snap:    lipgloss.Color("#cc6600"),
		Running: lipgloss.Color("#008844"),
	}

	CurrentTheme = ThemeNeon

	Themes = []Theme{ThemeNeon, ThemePhosphor, ThemePaper}
)

// GetTheme returns the theme called name, or ThemeNeon.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNeon
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// StatusColor picks the theme colour for a status kind.
func (t Theme) StatusColor(k anim.StatusKind) lipgloss.Color {
	switch k {
	case anim.StatusRunning:
		return t.Running
	case anim.StatusSnap:
		return t.Snap
	default:
		return t.Static
	}
}

// Hex converts a colour for lipgloss.
func Hex(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}
