package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anugrahn/munshi/internal/rail"
)

func statusStyleFor(status string) string {
	switch status {
	case rail.StatusConfirmed:
		return goodStyle.Render(status)
	case rail.StatusCancelled:
		return errStyle.Render(status)
	default:
		return warnStyle.Render(status)
	}
}

func (m model) renderRailScreen() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("PNR STATUS"))
	b.WriteString("\n\n")

	if m.sum.railErr != nil {
		b.WriteString(errStyle.Render(m.sum.railErr.Error()))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("esc back · q quit"))
		return b.String()
	}
	r := m.sum.railReport
	if r == nil {
		return b.String()
	}

	b.WriteString(kv("pnr", r.PNR) + "\n")
	b.WriteString(valueStyle.Render(r.TrainLine) + "\n\n")

	for _, row := range r.Passengers {
		b.WriteString("  " + row.Display + "  " + statusStyleFor(row.Status) + "\n")
	}

	b.WriteString("\n")
	statuses := make([]string, 0, len(r.StatusCount))
	for status := range r.StatusCount {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	parts := make([]string, 0, len(statuses))
	for _, status := range statuses {
		parts = append(parts, fmt.Sprintf("%s %d", status, r.StatusCount[status]))
	}
	b.WriteString(labelStyle.Render("counts: ") + strings.Join(parts, " · ") + "\n")
	b.WriteString(kv("all confirmed", yesNo(r.AllConfirmed)) + "\n")
	b.WriteString(kv("chart prepared", yesNo(r.ChartPrepared)) + "\n")

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("esc back · q quit"))
	return b.String()
}
