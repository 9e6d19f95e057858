package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// HalfDayThreshold is the worked-hours floor below which a day counts as Half Day.
var HalfDayThreshold = decimal.NewFromInt(4)

var hourNanos = decimal.NewFromInt(int64(time.Hour))

type Classification struct {
	TotalHours decimal.Decimal
	IsLate     bool
	Status     Status
}

// ClassifyCheckout derives worked hours, lateness and status for a finished day.
// Half Day wins over Late; arriving exactly at the cutoff is on time.
func ClassifyCheckout(checkIn, checkOut, cutoff time.Time) (Classification, error) {
	if !checkOut.After(checkIn) {
		return Classification{}, ErrInvalidTimeOrdering
	}

	worked := decimal.NewFromInt(int64(checkOut.Sub(checkIn))).Div(hourNanos)
	totalHours := worked.Round(2)
	isLate := checkIn.After(cutoff)

	status := StatusPresent
	switch {
	case totalHours.LessThan(HalfDayThreshold):
		status = StatusHalfDay
	case isLate:
		status = StatusLate
	}

	return Classification{
		TotalHours: totalHours,
		IsLate:     isLate,
		Status:     status,
	}, nil
}

// Complete returns a copy of r closed at checkOut. The receiver is left untouched.
func (r Record) Complete(checkOut, cutoff time.Time) (Record, error) {
	switch r.State() {
	case StateEmpty:
		return Record{}, ErrNotCheckedIn
	case StateCompleted:
		return Record{}, ErrAlreadyCheckedOut
	}

	c, err := ClassifyCheckout(*r.CheckIn, checkOut, cutoff)
	if err != nil {
		return Record{}, err
	}

	completed := r
	completed.Completion = &Completion{
		CheckOut:   checkOut,
		TotalHours: c.TotalHours,
		IsLate:     c.IsLate,
		Status:     c.Status,
	}
	return completed, nil
}
