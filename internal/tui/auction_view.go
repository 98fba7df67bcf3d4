package tui

import (
	"fmt"
	"sort"
	"strings"
)

func (m model) renderAuctionScreen() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("AUCTION SQUAD"))
	b.WriteString("\n\n")

	if m.sum.auctionErr != nil {
		b.WriteString(errStyle.Render(m.sum.auctionErr.Error()))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("esc back · q quit"))
		return b.String()
	}
	s := m.sum.auctionSummary
	if s == nil {
		return b.String()
	}

	b.WriteString(kv("team", m.ds.Team.Name) + "\n")
	b.WriteString(kv("purse", "₹"+m.ds.Team.Purse.String()+" L") + "\n")
	b.WriteString(kv("spent", "₹"+s.TotalSpent.String()+" L") + "\n")
	remaining := "₹" + s.Remaining.String() + " L"
	if s.Remaining.IsNegative() {
		remaining = errStyle.Render(remaining)
	}
	b.WriteString(kv("remaining", remaining) + "\n")
	b.WriteString(kv("players", fmt.Sprintf("%d", s.Count)) + "\n")
	b.WriteString(kv("costliest", fmt.Sprintf("%s (₹%s L)", s.Costliest.Name, s.Costliest.Price)) + "\n")
	b.WriteString(kv("cheapest", fmt.Sprintf("%s (₹%s L)", s.Cheapest.Name, s.Cheapest.Price)) + "\n")
	b.WriteString(kv("average", fmt.Sprintf("₹%d L", s.Average)) + "\n")
	b.WriteString(kv("within budget", yesNo(!s.OverBudget)) + "\n")

	b.WriteString("\n" + labelStyle.Render("role counts") + "\n")
	roles := make([]string, 0, len(s.RoleCount))
	for role := range s.RoleCount {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	for _, role := range roles {
		b.WriteString(fmt.Sprintf("  %-12s %d\n", role, s.RoleCount[role]))
	}

	b.WriteString("\n" + labelStyle.Render("squad") + "\n")
	for _, p := range m.ds.Squad {
		b.WriteString(fmt.Sprintf("  %-14s %-12s ₹%s L\n", p.Name, p.Role, p.Price))
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("esc back · q quit"))
	return b.String()
}
