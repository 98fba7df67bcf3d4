package chat

import (
	"errors"
	"strings"
)

// Message is one parsed line of a WhatsApp-style chat export.
type Message struct {
	Date      string
	Time      string
	Sender    string
	Text      string
	WordCount int
	Sentiment string
}

// Sentiment labels, checked in priority order: funny beats love beats
// neutral.
const (
	SentimentFunny   = "funny"
	SentimentLove    = "love"
	SentimentNeutral = "neutral"
)

// ErrBadLine is returned when a required delimiter is missing.
var ErrBadLine = errors.New("chat: malformed export line")

// Marker lists are matched against the lowercased message text.
var (
	funnyMarkers = []string{"😂", "🤣", ":)", "haha"}
	loveMarkers  = []string{"❤", "love", "pyaar"}
)

// Parse splits an export line of the form
//
//	25/01/2025, 14:30 - Rahul: Bhai party kab hai? 😂
//
// into its four fields by scanning for the first ", ", the first " - ", and
// the first ": " at or after the " - ".
func Parse(line string) (*Message, error) {
	comma := strings.Index(line, ", ")
	if comma == -1 {
		return nil, ErrBadLine
	}
	dash := strings.Index(line, " - ")
	if dash == -1 {
		return nil, ErrBadLine
	}
	colon := strings.Index(line[dash:], ": ")
	if colon == -1 {
		return nil, ErrBadLine
	}
	colon += dash

	msg := &Message{
		Date: line[:comma],
		Text: line[colon+2:],
	}
	// Out-of-order delimiters leave an empty field rather than a panic.
	if comma+2 <= dash {
		msg.Time = line[comma+2 : dash]
	}
	// A ": " overlapping the " - " delimiter leaves no room for a sender.
	if colon > dash+3 {
		msg.Sender = line[dash+3 : colon]
	}

	msg.WordCount = len(strings.Fields(msg.Text))
	msg.Sentiment = classify(msg.Text)
	return msg, nil
}

func classify(text string) string {
	lower := strings.ToLower(text)
	for _, marker := range funnyMarkers {
		if strings.Contains(lower, marker) {
			return SentimentFunny
		}
	}
	for _, marker := range loveMarkers {
		if strings.Contains(lower, marker) {
			return SentimentLove
		}
	}
	return SentimentNeutral
}
