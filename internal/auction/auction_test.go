package auction

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func player(name, role string, price int64) Player {
	return Player{Name: name, Role: role, Price: decimal.NewFromInt(price)}
}

func TestSummarizeBasicSquad(t *testing.T) {
	team := Team{Name: "Mumbai", Purse: decimal.NewFromInt(10000)}
	s, err := Summarize(team, []Player{
		player("Rohit", "batter", 1600),
		player("Bumrah", "bowler", 1200),
		player("Hardik", "allrounder", 1500),
	})
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if got, want := s.TotalSpent.IntPart(), int64(4300); got != want {
		t.Fatalf("TotalSpent = %d, want %d", got, want)
	}
	if got, want := s.Remaining.IntPart(), int64(5700); got != want {
		t.Fatalf("Remaining = %d, want %d", got, want)
	}
	if s.Count != 3 {
		t.Fatalf("Count = %d, want 3", s.Count)
	}
	if s.Costliest.Name != "Rohit" {
		t.Fatalf("Costliest = %q, want %q", s.Costliest.Name, "Rohit")
	}
	if s.Cheapest.Name != "Bumrah" {
		t.Fatalf("Cheapest = %q, want %q", s.Cheapest.Name, "Bumrah")
	}
	// 4300/3 = 1433.33, rounds to 1433.
	if s.Average != 1433 {
		t.Fatalf("Average = %d, want 1433", s.Average)
	}
	if s.OverBudget {
		t.Fatal("OverBudget = true, want false")
	}
}

func TestSummarizeRemainingMatchesPurseMinusSpend(t *testing.T) {
	team := Team{Name: "Chennai", Purse: decimal.NewFromInt(2000)}
	s, err := Summarize(team, []Player{
		player("A", "batter", 1500),
		player("B", "bowler", 1500),
	})
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if got := team.Purse.Sub(s.TotalSpent); !s.Remaining.Equal(got) {
		t.Fatalf("Remaining = %s, want purse-spend = %s", s.Remaining, got)
	}
	if s.Remaining.IntPart() != -1000 {
		t.Fatalf("Remaining = %s, want -1000", s.Remaining)
	}
	if !s.OverBudget {
		t.Fatal("OverBudget = false, want true")
	}
}

func TestSummarizeExtremeTiesKeepFirstBought(t *testing.T) {
	team := Team{Name: "Delhi", Purse: decimal.NewFromInt(5000)}
	s, err := Summarize(team, []Player{
		player("First", "batter", 700),
		player("Second", "bowler", 700),
	})
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if s.Costliest.Name != "First" {
		t.Fatalf("Costliest = %q, want %q", s.Costliest.Name, "First")
	}
	if s.Cheapest.Name != "First" {
		t.Fatalf("Cheapest = %q, want %q", s.Cheapest.Name, "First")
	}
}

func TestSummarizeRoleCounts(t *testing.T) {
	team := Team{Name: "Punjab", Purse: decimal.NewFromInt(9000)}
	s, err := Summarize(team, []Player{
		player("A", "batter", 100),
		player("B", "batter", 200),
		player("C", "keeper", 300),
	})
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if s.RoleCount["batter"] != 2 || s.RoleCount["keeper"] != 1 {
		t.Fatalf("RoleCount = %v, want batter=2 keeper=1", s.RoleCount)
	}
}

func TestSummarizeRejectsNonPositivePurse(t *testing.T) {
	_, err := Summarize(Team{Name: "X"}, []Player{player("A", "batter", 100)})
	if !errors.Is(err, ErrInvalidPurse) {
		t.Fatalf("Summarize() error = %v, want ErrInvalidPurse", err)
	}
}

func TestSummarizeRejectsEmptySquad(t *testing.T) {
	_, err := Summarize(Team{Name: "X", Purse: decimal.NewFromInt(100)}, nil)
	if !errors.Is(err, ErrEmptySquad) {
		t.Fatalf("Summarize() error = %v, want ErrEmptySquad", err)
	}
}
