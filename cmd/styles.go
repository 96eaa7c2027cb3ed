package cmd

import "github.com/charmbracelet/lipgloss"

// 终端输出样式
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ffff"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Width(20)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)
