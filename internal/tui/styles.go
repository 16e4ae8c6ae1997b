// ABOUTME: lipgloss styles shared by the console views
// ABOUTME: Dark and light palettes selected from persisted preferences

package tui

import "github.com/charmbracelet/lipgloss"

type styleSet struct {
	title     lipgloss.Style
	tabActive lipgloss.Style
	tab       lipgloss.Style
	header    lipgloss.Style
	row       lipgloss.Style
	rowFailed lipgloss.Style
	selected  lipgloss.Style
	dim       lipgloss.Style
	success   lipgloss.Style
	errored   lipgloss.Style
	pending   lipgloss.Style
	valid     lipgloss.Style
	invalid   lipgloss.Style
	button    lipgloss.Style
	disabled  lipgloss.Style
	panel     lipgloss.Style
	help      lipgloss.Style
}

func newStyles(theme string) styleSet {
	accent := lipgloss.Color("63")
	fail := lipgloss.Color("160")
	ok := lipgloss.Color("35")
	muted := lipgloss.Color("240")
	if theme == "light" {
		accent = lipgloss.Color("19")
		muted = lipgloss.Color("245")
	}
	return styleSet{
		title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		tabActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(accent),
		tab:       lipgloss.NewStyle().Foreground(muted),
		header:    lipgloss.NewStyle().Bold(true),
		row:       lipgloss.NewStyle(),
		rowFailed: lipgloss.NewStyle().Foreground(fail),
		selected:  lipgloss.NewStyle().Reverse(true),
		dim:       lipgloss.NewStyle().Foreground(muted),
		success:   lipgloss.NewStyle().Foreground(ok),
		errored:   lipgloss.NewStyle().Foreground(fail),
		pending:   lipgloss.NewStyle().Foreground(muted).Italic(true),
		valid:     lipgloss.NewStyle().Foreground(ok),
		invalid:   lipgloss.NewStyle().Foreground(fail),
		button:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		disabled:  lipgloss.NewStyle().Foreground(muted),
		panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		help:      lipgloss.NewStyle().Foreground(muted),
	}
}
