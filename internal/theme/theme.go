package theme

import "charm.land/lipgloss/v2"

// Styles describes the Lip Gloss styles used by the picker's menus.
type Styles struct {
	Title   *lipgloss.Style
	Section *lipgloss.Style
	Index   *lipgloss.Style
	Item    *lipgloss.Style
	Marker  *lipgloss.Style
	Action  *lipgloss.Style
	Prompt  *lipgloss.Style
	Error   *lipgloss.Style
	Info    *lipgloss.Style
	Success *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Section: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Index: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Marker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Italic(true),
	),
	Action: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
}

var plainStyles = Styles{
	Title:   ptr(lipgloss.NewStyle()),
	Section: ptr(lipgloss.NewStyle()),
	Index:   ptr(lipgloss.NewStyle()),
	Item:    ptr(lipgloss.NewStyle()),
	Marker:  ptr(lipgloss.NewStyle()),
	Action:  ptr(lipgloss.NewStyle()),
	Prompt:  ptr(lipgloss.NewStyle()),
	Error:   ptr(lipgloss.NewStyle()),
	Info:    ptr(lipgloss.NewStyle()),
	Success: ptr(lipgloss.NewStyle()),
}

// Default exposes the colored style set used on terminals.
func Default() *Styles {
	return &defaultStyles
}

// Plain renders text unchanged, for output that is not a terminal.
func Plain() *Styles {
	return &plainStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
