package tui

import (
	"fmt"
	"strings"
)

func (m model) renderLedgerScreen() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TRANSACTION LOG"))
	b.WriteString("\n\n")

	if m.sum.ledgerErr != nil {
		b.WriteString(errStyle.Render(m.sum.ledgerErr.Error()))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("esc back · q quit"))
		return b.String()
	}
	s := m.sum.ledgerSummary
	if s == nil {
		return b.String()
	}

	b.WriteString(kv("credits", "₹"+s.TotalCredit.String()) + "\n")
	b.WriteString(kv("debits", "₹"+s.TotalDebit.String()) + "\n")
	b.WriteString(kv("net", "₹"+s.Net.String()) + "\n")
	b.WriteString(kv("records", fmt.Sprintf("%d valid", s.Count)) + "\n")
	b.WriteString(kv("average", fmt.Sprintf("₹%d", s.Average)) + "\n")
	b.WriteString(kv("largest", fmt.Sprintf("₹%s %s to %s", s.Largest.Amount, s.Largest.Type, s.Largest.To)) + "\n")
	b.WriteString(kv("frequent contact", s.FrequentContact) + "\n")
	b.WriteString(kv("all above ₹100", yesNo(s.AllAbove100)) + "\n")
	b.WriteString(kv("any ₹5000+", yesNo(s.AnyLarge)) + "\n")

	b.WriteString("\n" + labelStyle.Render("by category") + "\n")
	for _, ct := range s.PerCategory {
		b.WriteString(fmt.Sprintf("  %-12s ₹%s\n", ct.Category, ct.Total))
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("esc back · q quit"))
	return b.String()
}
