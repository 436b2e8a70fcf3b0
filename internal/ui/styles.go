package ui

import "github.com/charmbracelet/lipgloss"

// Palette, readable on light and dark backgrounds
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#1F5FAD", Dark: "#6CB6FF"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#56D364"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#B42318", Dark: "#FF7B72"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#57606A", Dark: "#8B949E"}
)

// Status markers
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
)

var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleSection = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Underline(true)
)
