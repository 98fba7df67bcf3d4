package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/anugrahn/munshi/internal/chat"
	"github.com/anugrahn/munshi/internal/dataset"
	"github.com/anugrahn/munshi/internal/titlecase"
	"github.com/anugrahn/munshi/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "parse":
			if err := runParse(os.Args[2:]); err != nil {
				log.Fatal("parse failed", "err", err)
			}
			return
		case "title":
			if len(os.Args) < 3 {
				log.Fatal("usage: munshi title \"<text>\"")
			}
			fmt.Println(titlecase.Normalize(strings.Join(os.Args[2:], " ")))
			return
		}
	}

	ds, err := loadDataset()
	if err != nil {
		log.Fatal("could not load scenario", "err", err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("munshi needs an interactive terminal; use the parse/title subcommands when scripting")
	}

	if _, err := tea.NewProgram(tui.New(ds), tea.WithAltScreen()).Run(); err != nil {
		log.Fatal("dashboard exited with error", "err", err)
	}
}

func runParse(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: munshi parse \"<chat line>\"")
	}
	msg, err := chat.Parse(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("date:      %s\n", msg.Date)
	fmt.Printf("time:      %s\n", msg.Time)
	fmt.Printf("sender:    %s\n", msg.Sender)
	fmt.Printf("text:      %s\n", msg.Text)
	fmt.Printf("words:     %d\n", msg.WordCount)
	fmt.Printf("sentiment: %s\n", msg.Sentiment)
	return nil
}

// loadDataset resolves the scenario in order of precedence:
// 1) MUNSHI_DATASET environment variable.
// 2) A path given as the sole argument.
// 3) The bundled sample.
func loadDataset() (*dataset.Dataset, error) {
	if path := strings.TrimSpace(os.Getenv("MUNSHI_DATASET")); path != "" {
		return dataset.Load(path)
	}
	if len(os.Args) == 2 {
		return dataset.Load(os.Args[1])
	}
	return dataset.Sample(), nil
}
