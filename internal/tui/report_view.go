package tui

import (
	"fmt"
	"strings"
)

func (m model) renderReportScreen() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("REPORT CARDS"))
	b.WriteString("\n\n")

	if len(m.sum.cards) == 0 {
		b.WriteString(hintStyle.Render("no students in scenario"))
		return b.String()
	}

	for i, sc := range m.sum.cards {
		marker := "  "
		if i == m.reportCursor {
			marker = selectedStyle.Render("> ")
		}
		b.WriteString(marker + sc.name + "\n")
	}
	b.WriteString("\n")

	sc := m.sum.cards[m.reportCursor]
	if sc.err != nil {
		b.WriteString(errStyle.Render(sc.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("up/down student · esc back · q quit"))
		return b.String()
	}

	card := sc.card
	b.WriteString(kv("total", fmt.Sprintf("%.0f", card.TotalMarks)) + "\n")
	b.WriteString(kv("percentage", fmt.Sprintf("%.2f%%", card.Percentage)) + "\n")
	b.WriteString(kv("grade", card.Grade) + "\n")
	b.WriteString(kv("best subject", card.Highest) + "\n")
	b.WriteString(kv("weakest subject", card.Lowest) + "\n")
	b.WriteString(kv("passed", strings.Join(card.Passed, ", ")) + "\n")
	if len(card.Failed) > 0 {
		b.WriteString(kv("failed", errStyle.Render(strings.Join(card.Failed, ", "))) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("up/down student · esc back · q quit"))
	return b.String()
}
