package ui

import "github.com/charmbracelet/lipgloss"

// Palette carried over from the dashboard's previous life.
var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808a9f")).Faint(true)
	livedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808a9f"))
	pidStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808a9f")).Italic(true).Faint(true)
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d29dc0")).Faint(true)
	matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5cb0")).Bold(true)
	memStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e280c1"))
	cpuStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#bad29f"))
	readStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8fa7e0"))
	writeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f6ab65"))
	peakStyle  = lipgloss.NewStyle().Faint(true)
)
