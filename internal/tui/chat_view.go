package tui

import (
	"fmt"
	"strings"
)

func (m model) renderChatScreen() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("CHAT PARSER"))
	b.WriteString("\n\n")

	b.WriteString(m.chatInput.View())
	b.WriteString("\n\n")

	if m.chatErr != "" {
		b.WriteString(errStyle.Render(m.chatErr) + "\n\n")
	}
	if m.chatResult != nil {
		msg := m.chatResult
		b.WriteString(kv("date", msg.Date) + "\n")
		b.WriteString(kv("time", msg.Time) + "\n")
		b.WriteString(kv("sender", msg.Sender) + "\n")
		b.WriteString(kv("text", msg.Text) + "\n")
		b.WriteString(kv("words", fmt.Sprintf("%d", msg.WordCount)) + "\n")
		b.WriteString(kv("sentiment", msg.Sentiment) + "\n\n")
	}

	if len(m.sum.chats) > 0 {
		b.WriteString(labelStyle.Render("scenario lines") + "\n")
		for _, row := range m.sum.chats {
			if row.err != nil {
				b.WriteString("  " + errStyle.Render(row.line) + "\n")
				continue
			}
			b.WriteString(fmt.Sprintf("  %s %s  %s  [%s]\n",
				row.msg.Date, row.msg.Time, row.msg.Sender+": "+row.msg.Text, row.msg.Sentiment))
		}
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("type a line, enter to parse · esc back"))
	return b.String()
}
