package rail

import (
	"errors"
	"fmt"
	"strings"
)

// Train is the train block of a PNR enquiry response.
type Train struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	From   string `json:"from"`
	To     string `json:"to"`
	Class  string `json:"class"`
}

// Passenger is one traveller on the booking, with the raw current-status
// code as the railway reports it (e.g. "B2-34", "RAC 12", "WL 8", "CAN").
type Passenger struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	Status string `json:"status"`
}

// Booking is the input record for a status report.
type Booking struct {
	PNR        string      `json:"pnr"`
	Train      Train       `json:"train"`
	Passengers []Passenger `json:"passengers"`
}

// ErrInvalidBooking wraps every validation failure of a booking record.
var ErrInvalidBooking = errors.New("rail: invalid booking record")

// Status labels assigned to passengers.
const (
	StatusConfirmed = "confirmed"
	StatusRAC       = "RAC"
	StatusWaiting   = "waiting"
	StatusCancelled = "cancelled"
)

// Coach letters that mark a confirmed berth. Any status that is not CAN,
// RAC* or WL* classifies as confirmed anyway; the railway never reports
// anything else for a live booking, so unknown codes take the same path.
var berthPrefixes = []string{"B", "S", "A", "M"}

const (
	nameColumnWidth  = 15
	classPlaceholder = "Not specified"
)

// PassengerRow is one formatted line of the report.
type PassengerRow struct {
	Display string
	Status  string
}

// Report is the formatted, aggregated view of a booking.
type Report struct {
	PNR        string
	TrainLine  string
	Passengers []PassengerRow

	StatusCount map[string]int

	AllConfirmed bool
	AnyWaiting   bool

	// ChartPrepared is true when every passenger who is not cancelled holds
	// a confirmed berth.
	ChartPrepared bool
}

// Build validates a booking and produces its status report.
func Build(booking Booking) (*Report, error) {
	if err := validate(booking); err != nil {
		return nil, err
	}

	r := &Report{
		PNR:           formatPNR(booking.PNR),
		TrainLine:     trainLine(booking.Train),
		StatusCount:   make(map[string]int),
		AllConfirmed:  true,
		ChartPrepared: true,
	}

	for _, p := range booking.Passengers {
		status := Classify(p.Status)
		r.Passengers = append(r.Passengers, PassengerRow{
			Display: displayName(p),
			Status:  status,
		})
		r.StatusCount[status]++

		if status != StatusConfirmed {
			r.AllConfirmed = false
		}
		if status == StatusWaiting {
			r.AnyWaiting = true
		}
		if status != StatusConfirmed && status != StatusCancelled {
			r.ChartPrepared = false
		}
	}

	return r, nil
}

// Classify maps a raw railway status code onto one of the four labels.
// Rules apply in priority order; anything unmatched is confirmed.
func Classify(status string) string {
	switch {
	case status == "CAN":
		return StatusCancelled
	case strings.HasPrefix(status, "RAC"):
		return StatusRAC
	case strings.HasPrefix(status, "WL"):
		return StatusWaiting
	}
	for _, prefix := range berthPrefixes {
		if strings.HasPrefix(status, prefix) {
			return StatusConfirmed
		}
	}
	return StatusConfirmed
}

func validate(booking Booking) error {
	if len(booking.PNR) != 10 {
		return fmt.Errorf("%w: PNR must be 10 digits", ErrInvalidBooking)
	}
	for _, ch := range booking.PNR {
		if ch < '0' || ch > '9' {
			return fmt.Errorf("%w: PNR must be numeric", ErrInvalidBooking)
		}
	}
	if booking.Train.Number == "" {
		return fmt.Errorf("%w: missing train info", ErrInvalidBooking)
	}
	if len(booking.Passengers) == 0 {
		return fmt.Errorf("%w: no passengers", ErrInvalidBooking)
	}
	return nil
}

// formatPNR groups the 10 digits as 3-3-4 with dashes.
func formatPNR(pnr string) string {
	return pnr[:3] + "-" + pnr[3:6] + "-" + pnr[6:]
}

func trainLine(train Train) string {
	class := train.Class
	if class == "" {
		class = classPlaceholder
	}
	return fmt.Sprintf("Train %s %s | %s -> %s | Class: %s",
		train.Number, train.Name, train.From, train.To, class)
}

func displayName(p Passenger) string {
	return fmt.Sprintf("%-*s (%d/%s)", nameColumnWidth, p.Name, p.Age, p.Gender)
}
