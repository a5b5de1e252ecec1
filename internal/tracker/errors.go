package tracker

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidDate       = errors.New("invalid date")
	ErrUnknownItem       = errors.New("unknown item")
)

// DayError reports a day that could not be classified.
type DayError struct {
	DayNumber int
	Err       error
}

func (e *DayError) Error() string {
	return fmt.Sprintf("day %d: %v", e.DayNumber, e.Err)
}

func (e *DayError) Unwrap() error {
	return e.Err
}

// DayErrors flattens an error returned by BuildDayStatuses into its per-day errors.
func DayErrors(err error) []*DayError {
	if err == nil {
		return nil
	}

	var dayErrors []*DayError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			dayErrors = append(dayErrors, DayErrors(e)...)
		}
		return dayErrors
	}

	var dayErr *DayError
	if errors.As(err, &dayErr) {
		dayErrors = append(dayErrors, dayErr)
	}

	return dayErrors
}
