package report

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// SubjectMark is one subject's score out of 100. Marks are kept as an
// ordered slice so "first subject wins ties" stays well defined.
type SubjectMark struct {
	Subject string  `json:"subject"`
	Mark    float64 `json:"mark"`
}

// Student is the input record for a report card.
type Student struct {
	Name  string        `json:"name"`
	Marks []SubjectMark `json:"marks"`
}

// ErrInvalidStudent wraps every validation failure of a student record.
var ErrInvalidStudent = errors.New("report: invalid student record")

// PassMark is the minimum mark for a subject pass.
const PassMark = 40

// Card is a computed report card.
type Card struct {
	TotalMarks float64

	// Percentage is total over the subject-count maximum, rounded to two
	// decimal places.
	Percentage float64

	Grade string

	// Highest and Lowest name the extreme subjects; ties go to the subject
	// listed first.
	Highest string
	Lowest  string

	Passed []string
	Failed []string
}

// Compute validates a student record and builds its report card.
func Compute(student Student) (*Card, error) {
	if err := validate(student); err != nil {
		return nil, err
	}

	card := &Card{}
	highest, lowest := 0, 0
	for i, m := range student.Marks {
		card.TotalMarks += m.Mark
		if m.Mark > student.Marks[highest].Mark {
			highest = i
		}
		if m.Mark < student.Marks[lowest].Mark {
			lowest = i
		}
		if m.Mark >= PassMark {
			card.Passed = append(card.Passed, m.Subject)
		} else {
			card.Failed = append(card.Failed, m.Subject)
		}
	}
	card.Highest = student.Marks[highest].Subject
	card.Lowest = student.Marks[lowest].Subject

	maxTotal := decimal.NewFromInt(int64(len(student.Marks)) * 100)
	pct := decimal.NewFromFloat(card.TotalMarks).
		Div(maxTotal).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	card.Percentage = pct.InexactFloat64()
	card.Grade = gradeFor(card.Percentage)

	return card, nil
}

func validate(student Student) error {
	if student.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidStudent)
	}
	if len(student.Marks) == 0 {
		return fmt.Errorf("%w: no marks", ErrInvalidStudent)
	}
	seen := make(map[string]bool, len(student.Marks))
	for _, m := range student.Marks {
		if m.Subject == "" {
			return fmt.Errorf("%w: unnamed subject", ErrInvalidStudent)
		}
		if seen[m.Subject] {
			return fmt.Errorf("%w: duplicate subject %q", ErrInvalidStudent, m.Subject)
		}
		seen[m.Subject] = true
		if m.Mark < 0 || m.Mark > 100 {
			return fmt.Errorf("%w: mark %v for %q out of range", ErrInvalidStudent, m.Mark, m.Subject)
		}
	}
	return nil
}

func gradeFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B"
	case percentage >= 60:
		return "C"
	case percentage >= 40:
		return "D"
	default:
		return "F"
	}
}
