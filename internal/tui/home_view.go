package tui

import "strings"

func (m model) renderHomeScreen() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("MUNSHI"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("desk-clerk views over the loaded scenario"))
	b.WriteString("\n\n")

	for i, item := range m.viewItems {
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("up/down move · enter open · q quit"))
	return b.String()
}
