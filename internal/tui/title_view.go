package tui

import "strings"

func (m model) renderTitleScreen() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TITLE NORMALIZER"))
	b.WriteString("\n\n")

	b.WriteString(m.titleInput.View())
	b.WriteString("\n\n")

	if m.titleResult != "" {
		b.WriteString(kv("normalized", m.titleResult) + "\n\n")
	}

	b.WriteString(hintStyle.Render("type a title, enter to normalize · esc back"))
	return b.String()
}
