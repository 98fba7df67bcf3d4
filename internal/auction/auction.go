package auction

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Team is the bidding side of an auction: a franchise name and its purse.
type Team struct {
	Name  string          `json:"name"`
	Purse decimal.Decimal `json:"purse"`
}

// Player is one bought player with the price paid at the auction table.
type Player struct {
	Name  string          `json:"name"`
	Role  string          `json:"role"`
	Price decimal.Decimal `json:"price"`
}

var (
	ErrInvalidPurse = errors.New("auction: purse must be positive")
	ErrEmptySquad   = errors.New("auction: squad is empty")
)

// Summary is the post-auction view of one team's spending.
type Summary struct {
	TotalSpent decimal.Decimal

	// Remaining is purse minus spend and goes negative when the team
	// overshot its purse.
	Remaining decimal.Decimal

	Count int

	// Costliest and Cheapest are copies of the extreme players; ties go to
	// the player bought first.
	Costliest Player
	Cheapest  Player

	// Average price per player, rounded half up.
	Average int64

	RoleCount  map[string]int
	OverBudget bool
}

// Summarize validates the team and squad and computes the spend summary.
func Summarize(team Team, squad []Player) (*Summary, error) {
	if !team.Purse.IsPositive() {
		return nil, ErrInvalidPurse
	}
	if len(squad) == 0 {
		return nil, ErrEmptySquad
	}

	s := &Summary{
		Count:     len(squad),
		RoleCount: make(map[string]int),
	}

	costliest, cheapest := 0, 0
	for i, p := range squad {
		s.TotalSpent = s.TotalSpent.Add(p.Price)
		if p.Price.GreaterThan(squad[costliest].Price) {
			costliest = i
		}
		if p.Price.LessThan(squad[cheapest].Price) {
			cheapest = i
		}
		s.RoleCount[p.Role]++
	}

	s.Costliest = squad[costliest]
	s.Cheapest = squad[cheapest]
	s.Remaining = team.Purse.Sub(s.TotalSpent)
	s.Average = s.TotalSpent.Div(decimal.NewFromInt(int64(len(squad)))).Round(0).IntPart()
	s.OverBudget = s.TotalSpent.GreaterThan(team.Purse)

	return s, nil
}
