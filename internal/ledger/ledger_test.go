package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func txn(typ string, amount int64, category, to string) Transaction {
	return Transaction{
		Type:     typ,
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		To:       to,
	}
}

func TestSummarizeComputesTotalsAndNet(t *testing.T) {
	s, err := Summarize([]Transaction{
		txn(TypeCredit, 5000, "salary", "Acme Corp"),
		txn(TypeDebit, 1200, "rent", "Sharma Properties"),
		txn(TypeDebit, 300, "food", "Swiggy"),
		txn(TypeCredit, 250, "refund", "Swiggy"),
	})
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if got, want := s.TotalCredit.IntPart(), int64(5250); got != want {
		t.Fatalf("TotalCredit = %d, want %d", got, want)
	}
	if got, want := s.TotalDebit.IntPart(), int64(1500); got != want {
		t.Fatalf("TotalDebit = %d, want %d", got, want)
	}
	if got, want := s.Net.IntPart(), int64(3750); got != want {
		t.Fatalf("Net = %d, want %d", got, want)
	}
	if s.Count != 4 {
		t.Fatalf("Count = %d, want 4", s.Count)
	}
	// (5000+1200+300+250)/4 = 1687.5, half up to 1688.
	if s.Average != 1688 {
		t.Fatalf("Average = %d, want 1688", s.Average)
	}
	if s.Largest.To != "Acme Corp" {
		t.Fatalf("Largest.To = %q, want %q", s.Largest.To, "Acme Corp")
	}
	if !s.AllAbove100 {
		t.Fatal("AllAbove100 = false, want true")
	}
	if !s.AnyLarge {
		t.Fatal("AnyLarge = false, want true")
	}
}

func TestSummarizeDropsInvalidRecords(t *testing.T) {
	s, err := Summarize([]Transaction{
		txn("transfer", 900, "misc", "A"),
		txn(TypeDebit, 0, "misc", "B"),
		txn(TypeCredit, -50, "misc", "C"),
		txn(TypeCredit, 120, "misc", "D"),
	})
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if s.Count != 1 {
		t.Fatalf("Count = %d, want 1", s.Count)
	}
	if s.FrequentContact != "D" {
		t.Fatalf("FrequentContact = %q, want %q", s.FrequentContact, "D")
	}
}

func TestSummarizeAllInvalidReturnsError(t *testing.T) {
	_, err := Summarize([]Transaction{
		txn("transfer", 900, "misc", "A"),
		txn(TypeDebit, -10, "misc", "B"),
	})
	if !errors.Is(err, ErrNoValidRecords) {
		t.Fatalf("Summarize() error = %v, want ErrNoValidRecords", err)
	}
}

func TestSummarizeEmptyInputReturnsError(t *testing.T) {
	if _, err := Summarize(nil); !errors.Is(err, ErrNoValidRecords) {
		t.Fatalf("Summarize(nil) error = %v, want ErrNoValidRecords", err)
	}
}

func TestSummarizeFrequentContactTieKeepsFirstSeen(t *testing.T) {
	s, err := Summarize([]Transaction{
		txn(TypeDebit, 200, "food", "Zomato"),
		txn(TypeDebit, 300, "food", "Swiggy"),
		txn(TypeDebit, 400, "food", "Zomato"),
		txn(TypeDebit, 500, "food", "Swiggy"),
	})
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if s.FrequentContact != "Zomato" {
		t.Fatalf("FrequentContact = %q, want %q (first seen wins ties)", s.FrequentContact, "Zomato")
	}
}

func TestSummarizeLargestTieKeepsFirstSeen(t *testing.T) {
	s, err := Summarize([]Transaction{
		txn(TypeCredit, 900, "a", "First"),
		txn(TypeDebit, 900, "b", "Second"),
	})
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if s.Largest.To != "First" {
		t.Fatalf("Largest.To = %q, want %q", s.Largest.To, "First")
	}
}

func TestSummarizePerCategoryKeepsFirstSeenOrder(t *testing.T) {
	s, err := Summarize([]Transaction{
		txn(TypeDebit, 100, "food", "A"),
		txn(TypeDebit, 200, "rent", "B"),
		txn(TypeCredit, 50, "food", "C"),
	})
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if len(s.PerCategory) != 2 {
		t.Fatalf("len(PerCategory) = %d, want 2", len(s.PerCategory))
	}
	if s.PerCategory[0].Category != "food" || s.PerCategory[0].Total.IntPart() != 150 {
		t.Fatalf("PerCategory[0] = %+v, want food=150", s.PerCategory[0])
	}
	if s.PerCategory[1].Category != "rent" || s.PerCategory[1].Total.IntPart() != 200 {
		t.Fatalf("PerCategory[1] = %+v, want rent=200", s.PerCategory[1])
	}
}

func TestSummarizeThresholdFlags(t *testing.T) {
	s, err := Summarize([]Transaction{
		txn(TypeDebit, 100, "a", "X"),
		txn(TypeCredit, 4999, "b", "Y"),
	})
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	// 100 is not strictly above 100.
	if s.AllAbove100 {
		t.Fatal("AllAbove100 = true, want false")
	}
	if s.AnyLarge {
		t.Fatal("AnyLarge = true, want false")
	}
}

func TestSummarizeAverageRoundsHalfUp(t *testing.T) {
	s, err := Summarize([]Transaction{
		txn(TypeCredit, 1, "a", "X"),
		txn(TypeCredit, 2, "a", "X"),
	})
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if s.Average != 2 {
		t.Fatalf("Average = %d, want 2 (1.5 rounds half up)", s.Average)
	}
}
