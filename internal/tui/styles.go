package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F47A60")).
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FD787"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD75F"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))
)

func kv(label, value string) string {
	return labelStyle.Render(label+": ") + valueStyle.Render(value)
}

func yesNo(v bool) string {
	if v {
		return goodStyle.Render("yes")
	}
	return warnStyle.Render("no")
}
