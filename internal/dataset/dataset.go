// Package dataset loads the scenario file the dashboard runs on: one JSON
// document bundling inputs for every analyzer, plus a built-in sample so the
// binary works without any setup.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/anugrahn/munshi/internal/auction"
	"github.com/anugrahn/munshi/internal/ledger"
	"github.com/anugrahn/munshi/internal/rail"
	"github.com/anugrahn/munshi/internal/report"
)

// Dataset is the on-disk scenario shape.
type Dataset struct {
	Transactions []ledger.Transaction `json:"transactions"`
	Team         auction.Team         `json:"team"`
	Squad        []auction.Player     `json:"squad"`
	Students     []report.Student     `json:"students"`
	Booking      rail.Booking         `json:"booking"`
	ChatLines    []string             `json:"chat_lines"`
}

// Load reads and decodes a scenario file.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return &ds, nil
}

// Sample returns the bundled demo scenario.
func Sample() *Dataset {
	var ds Dataset
	if err := json.Unmarshal([]byte(sampleJSON), &ds); err != nil {
		// The sample is a compile-time constant; failing to decode it is a
		// programming error, not an input error.
		panic(fmt.Sprintf("dataset: bad bundled sample: %v", err))
	}
	return &ds
}

const sampleJSON = `{
  "transactions": [
    {"type": "credit", "amount": 52000, "category": "salary", "to": "Acme Corp"},
    {"type": "debit", "amount": 18000, "category": "rent", "to": "Sharma Properties"},
    {"type": "debit", "amount": 459, "category": "food", "to": "Swiggy"},
    {"type": "debit", "amount": 612, "category": "food", "to": "Swiggy"},
    {"type": "debit", "amount": 1299, "category": "shopping", "to": "Flipkart"},
    {"type": "credit", "amount": 250, "category": "refund", "to": "Flipkart"},
    {"type": "debit", "amount": 349, "category": "food", "to": "Zomato"},
    {"type": "transfer", "amount": 5000, "category": "misc", "to": "Self"},
    {"type": "debit", "amount": -20, "category": "misc", "to": "Glitch"}
  ],
  "team": {"name": "Mumbai Mavericks", "purse": 9000},
  "squad": [
    {"name": "R Sharma", "role": "batter", "price": 1600},
    {"name": "J Bumrah", "role": "bowler", "price": 1200},
    {"name": "H Pandya", "role": "allrounder", "price": 1500},
    {"name": "I Kishan", "role": "keeper", "price": 900},
    {"name": "T Boult", "role": "bowler", "price": 800}
  ],
  "students": [
    {
      "name": "Rahul",
      "marks": [
        {"subject": "maths", "mark": 85},
        {"subject": "science", "mark": 92},
        {"subject": "english", "mark": 78}
      ]
    },
    {
      "name": "Asha",
      "marks": [
        {"subject": "maths", "mark": 38},
        {"subject": "science", "mark": 64},
        {"subject": "english", "mark": 91},
        {"subject": "hindi", "mark": 55}
      ]
    }
  ],
  "booking": {
    "pnr": "4521876390",
    "train": {
      "number": "12951",
      "name": "Rajdhani Express",
      "from": "NDLS",
      "to": "BCT",
      "class": "3A"
    },
    "passengers": [
      {"name": "Rahul", "age": 28, "gender": "M", "status": "B2-34"},
      {"name": "Asha", "age": 27, "gender": "F", "status": "RAC 12"},
      {"name": "Dadu", "age": 71, "gender": "M", "status": "WL 3"},
      {"name": "Mausi", "age": 54, "gender": "F", "status": "CAN"}
    ]
  },
  "chat_lines": [
    "25/01/2025, 14:30 - Rahul: Bhai party kab hai? 😂",
    "25/01/2025, 14:31 - Asha: kal milte hain, pakka",
    "25/01/2025, 14:33 - Rahul: tumse pyaar hai yaar",
    "25/01/2025, 14:35 - Asha: haha chal jhootha"
  ]
}`
