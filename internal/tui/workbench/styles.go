// ============================================================================
// Frege - Language Front End
// ============================================================================
//
// Package:     workbench
// Description: Styles for the Frege workbench TUI
// Author:      msto63 with Claude
// Created:     2025-08-21
// License:     MIT
// ============================================================================

package workbench

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	// Background colors
	ColorBgPanel  = lipgloss.Color("#1E293B") // Slate 800
	ColorBgSource = lipgloss.Color("#1E3A5F") // Submitted input background
	ColorBgResult = lipgloss.Color("#1E293B") // Parse result background

	// Text colors
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Logo/Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)
)

// Result styles - one bubble for the input, one per parsed item
var (
	SourceStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorBgSource).
			Padding(0, 2).
			MarginBottom(1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary)

	ResultStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorBgResult).
			Padding(0, 2).
			MarginBottom(1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed)

	SystemStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Padding(0, 2).
			MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Padding(0, 2).
			MarginBottom(1)

	SourceLabelStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	KindLabelStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	PositionStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	ContinuationStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Italic(true)
)

// Panel/Box styles
var (
	ResultPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)
)

// Input styles
var (
	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusOnStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StatusOffStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Icons
const (
	IconSource  = "» "
	IconItem    = "✓ "
	IconError   = "✗ "
	IconPending = "… "
)

// Logo
const Logo = "Frege Workbench"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderSourceLabel renders the label above a submitted input
func RenderSourceLabel() string {
	return SourceLabelStyle.Render(IconSource + "Input")
}

// RenderKindLabel renders the label above a parsed item
func RenderKindLabel(kind, name string) string {
	label := IconItem + kind
	if name != "" {
		label += " " + name
	}
	return KindLabelStyle.Render(label)
}
