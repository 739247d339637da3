package core

import (
	"fmt"
	"time"
)

// DateLayout is the textual form of a date at the boundary: DD.MM.YYYY.
const DateLayout = "02.01.2006"

// Date is a calendar day without a time component.
type Date struct {
	time.Time
}

// DateFormatError reports a date string that does not match DateLayout.
type DateFormatError struct {
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("%s: %q, want DD.MM.YYYY", ErrInvalidDateFormat, e.Value)
}

func (e *DateFormatError) Unwrap() error {
	return ErrInvalidDateFormat
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the calendar day of now, as seen in now's location.
func Today(now time.Time) Date {
	y, m, d := now.Date()
	return NewDate(y, int(m), d)
}

// ParseDate parses a DD.MM.YYYY string.
func ParseDate(s string) (Date, error) {
	// time.Parse accepts single-digit fields for "02" and "01"; the boundary
	// format is strictly zero padded.
	if len(s) != len(DateLayout) {
		return Date{}, &DateFormatError{Value: s}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, &DateFormatError{Value: s}
	}
	return Date{Time: t}, nil
}

// AddDays shifts the date by n calendar days
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

// Before reports whether d is an earlier day than o
func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }

// After reports whether d is a later day than o
func (d Date) After(o Date) bool { return d.Time.After(o.Time) }

// Equal reports whether d and o are the same day
func (d Date) Equal(o Date) bool { return d.Time.Equal(o.Time) }

// String renders the date as DD.MM.YYYY
func (d Date) String() string {
	return d.Format(DateLayout)
}
