package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anugrahn/munshi/internal/auction"
	"github.com/anugrahn/munshi/internal/chat"
	"github.com/anugrahn/munshi/internal/dataset"
	"github.com/anugrahn/munshi/internal/ledger"
	"github.com/anugrahn/munshi/internal/rail"
	"github.com/anugrahn/munshi/internal/report"
	"github.com/anugrahn/munshi/internal/titlecase"
)

type screenMode int

const (
	screenHome screenMode = iota
	screenLedger
	screenAuction
	screenReport
	screenRail
	screenChat
	screenTitle
)

type studentCard struct {
	name string
	card *report.Card
	err  error
}

type chatRow struct {
	line string
	msg  *chat.Message
	err  error
}

type summariesMsg struct {
	ledgerSummary  *ledger.Summary
	ledgerErr      error
	auctionSummary *auction.Summary
	auctionErr     error
	cards          []studentCard
	railReport     *rail.Report
	railErr        error
	chats          []chatRow
}

type model struct {
	ds *dataset.Dataset

	width  int
	height int

	viewItems []string
	selected  int
	screen    screenMode

	sum summariesMsg

	reportCursor int

	chatInput  textinput.Model
	chatResult *chat.Message
	chatErr    string

	titleInput  textinput.Model
	titleResult string

	quitting bool
}

// New builds the dashboard over a loaded scenario.
func New(ds *dataset.Dataset) tea.Model {
	chatInput := textinput.New()
	chatInput.Prompt = "> "
	chatInput.Placeholder = "25/01/2025, 14:30 - Rahul: Bhai party kab hai?"
	chatInput.Width = 72

	titleInput := textinput.New()
	titleInput.Prompt = "> "
	titleInput.Placeholder = "dil ka kya kare"
	titleInput.Width = 72

	return model{
		ds: ds,
		viewItems: []string{
			"transaction log",
			"auction squad",
			"report cards",
			"pnr status",
			"chat parser",
			"title normalizer",
		},
		screen:     screenHome,
		chatInput:  chatInput,
		titleInput: titleInput,
	}
}

func (m model) Init() tea.Cmd {
	return m.computeSummariesCmd()
}

// computeSummariesCmd runs every analyzer over the scenario. The calls are
// pure and cheap; running them in a command keeps errors on the message path
// like every other load in the app.
func (m model) computeSummariesCmd() tea.Cmd {
	ds := m.ds
	return func() tea.Msg {
		var msg summariesMsg

		msg.ledgerSummary, msg.ledgerErr = ledger.Summarize(ds.Transactions)
		msg.auctionSummary, msg.auctionErr = auction.Summarize(ds.Team, ds.Squad)
		for _, student := range ds.Students {
			card, err := report.Compute(student)
			msg.cards = append(msg.cards, studentCard{name: student.Name, card: card, err: err})
		}
		msg.railReport, msg.railErr = rail.Build(ds.Booking)
		for _, line := range ds.ChatLines {
			parsed, err := chat.Parse(line)
			msg.chats = append(msg.chats, chatRow{line: line, msg: parsed, err: err})
		}

		return msg
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chatInput.Width = max(24, msg.Width-16)
		m.titleInput.Width = max(24, msg.Width-16)
		return m, nil

	case summariesMsg:
		m.sum = msg
		if m.reportCursor >= len(m.sum.cards) {
			m.reportCursor = max(0, len(m.sum.cards)-1)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		if m.screen == screenHome {
			m.quitting = true
			return m, tea.Quit
		}
		m.screen = screenHome
		m.chatInput.Blur()
		m.titleInput.Blur()
		return m, nil
	}

	switch m.screen {
	case screenChat:
		if msg.String() == "enter" {
			line := strings.TrimSpace(m.chatInput.Value())
			if line == "" {
				return m, nil
			}
			parsed, err := chat.Parse(line)
			if err != nil {
				m.chatResult = nil
				m.chatErr = err.Error()
				return m, nil
			}
			m.chatResult = parsed
			m.chatErr = ""
			return m, nil
		}
		var cmd tea.Cmd
		m.chatInput, cmd = m.chatInput.Update(msg)
		return m, cmd

	case screenTitle:
		if msg.String() == "enter" {
			m.titleResult = titlecase.Normalize(m.titleInput.Value())
			return m, nil
		}
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd

	case screenReport:
		switch msg.String() {
		case "up", "k":
			if m.reportCursor > 0 {
				m.reportCursor--
			}
			return m, nil
		case "down", "j":
			if m.reportCursor < len(m.sum.cards)-1 {
				m.reportCursor++
			}
			return m, nil
		case "q":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case screenHome:
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.viewItems)-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			return m.enterSelected()
		}
		return m, nil
	}

	// Read-only screens.
	if msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) enterSelected() (tea.Model, tea.Cmd) {
	switch m.viewItems[m.selected] {
	case "transaction log":
		m.screen = screenLedger
	case "auction squad":
		m.screen = screenAuction
	case "report cards":
		m.screen = screenReport
	case "pnr status":
		m.screen = screenRail
	case "chat parser":
		m.screen = screenChat
		m.chatInput.Focus()
		return m, textinput.Blink
	case "title normalizer":
		m.screen = screenTitle
		m.titleInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#F47A60")).
		Padding(1, 2)
	if m.width > 0 {
		frame = frame.Width(max(1, m.width-frame.GetHorizontalBorderSize()))
	}
	if m.height > 0 {
		frame = frame.Height(max(1, m.height-frame.GetVerticalBorderSize()))
	}

	var body string
	switch m.screen {
	case screenLedger:
		body = m.renderLedgerScreen()
	case screenAuction:
		body = m.renderAuctionScreen()
	case screenReport:
		body = m.renderReportScreen()
	case screenRail:
		body = m.renderRailScreen()
	case screenChat:
		body = m.renderChatScreen()
	case screenTitle:
		body = m.renderTitleScreen()
	default:
		body = m.renderHomeScreen()
	}

	return frame.Render(body)
}
