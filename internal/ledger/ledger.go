package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Transaction is one row of a transaction log. Rows come from untrusted
// callers; Summarize validates every row before using it.
type Transaction struct {
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	To       string          `json:"to"`
}

// Recognized transaction types. Anything else is dropped during validation.
const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

// ErrNoValidRecords is returned when no transaction survives validation,
// including when the input list is empty.
var ErrNoValidRecords = errors.New("ledger: no valid transactions")

// CategoryTotal is the running total for one category, preserving the order
// categories were first seen in the log.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summary aggregates the valid subset of a transaction log.
type Summary struct {
	TotalCredit decimal.Decimal
	TotalDebit  decimal.Decimal
	Net         decimal.Decimal
	Count       int

	// Average is the mean of all valid amounts, rounded half up.
	Average int64

	// Largest is a copy of the highest-amount transaction. Ties go to the
	// row that appears first in the input.
	Largest Transaction

	PerCategory []CategoryTotal

	// FrequentContact is the most common "to" name; ties go to the contact
	// seen first.
	FrequentContact string

	AllAbove100 bool
	AnyLarge    bool
}

var (
	hundred  = decimal.NewFromInt(100)
	largeTxn = decimal.NewFromInt(5000)
)

// Summarize filters records to the valid subset and computes the aggregate
// view over it. Invalid rows (non-positive amount, unknown type) are dropped
// silently; if nothing survives, ErrNoValidRecords is returned.
func Summarize(records []Transaction) (*Summary, error) {
	valid := make([]Transaction, 0, len(records))
	for _, tx := range records {
		if validTransaction(tx) {
			valid = append(valid, tx)
		}
	}
	if len(valid) == 0 {
		return nil, ErrNoValidRecords
	}

	s := &Summary{Count: len(valid), AllAbove100: true}

	total := decimal.Zero
	largestIdx := 0
	categoryIdx := make(map[string]int)
	contactCount := make(map[string]int)
	contactOrder := make([]string, 0, len(valid))

	for i, tx := range valid {
		total = total.Add(tx.Amount)
		switch tx.Type {
		case TypeCredit:
			s.TotalCredit = s.TotalCredit.Add(tx.Amount)
		case TypeDebit:
			s.TotalDebit = s.TotalDebit.Add(tx.Amount)
		}

		// Strict greater-than keeps the earliest row on ties.
		if tx.Amount.GreaterThan(valid[largestIdx].Amount) {
			largestIdx = i
		}

		if !tx.Amount.GreaterThan(hundred) {
			s.AllAbove100 = false
		}
		if tx.Amount.GreaterThanOrEqual(largeTxn) {
			s.AnyLarge = true
		}

		if idx, ok := categoryIdx[tx.Category]; ok {
			s.PerCategory[idx].Total = s.PerCategory[idx].Total.Add(tx.Amount)
		} else {
			categoryIdx[tx.Category] = len(s.PerCategory)
			s.PerCategory = append(s.PerCategory, CategoryTotal{Category: tx.Category, Total: tx.Amount})
		}

		if _, seen := contactCount[tx.To]; !seen {
			contactOrder = append(contactOrder, tx.To)
		}
		contactCount[tx.To]++
	}

	s.Net = s.TotalCredit.Sub(s.TotalDebit)
	s.Largest = valid[largestIdx]
	s.Average = total.Div(decimal.NewFromInt(int64(len(valid)))).Round(0).IntPart()

	frequent := contactOrder[0]
	for _, name := range contactOrder[1:] {
		if contactCount[name] > contactCount[frequent] {
			frequent = name
		}
	}
	s.FrequentContact = frequent

	return s, nil
}

func validTransaction(tx Transaction) bool {
	if !tx.Amount.IsPositive() {
		return false
	}
	return tx.Type == TypeCredit || tx.Type == TypeDebit
}
