package core

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type (
	// Record is one dated entry: an expense or a calorie intake.
	Record struct {
		amount  decimal.Decimal
		comment string
		date    Date
	}
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// NewRecord builds a record. An empty date means the calendar day of now;
// otherwise the date must be in DD.MM.YYYY form.
func NewRecord(amount decimal.Decimal, comment, date string, now time.Time) (Record, error) {
	if date == "" {
		return NewRecordOn(amount, comment, Today(now)), nil
	}
	d, err := ParseDate(date)
	if err != nil {
		return Record{}, err
	}
	return NewRecordOn(amount, comment, d), nil
}

// NewRecordOn builds a record for an already known date.
func NewRecordOn(amount decimal.Decimal, comment string, date Date) Record {
	return Record{amount: amount, comment: comment, date: date}
}

// Amount returns the quantity spent or consumed
func (r Record) Amount() decimal.Decimal {
	return r.amount
}

// Comment returns the free-text label
func (r Record) Comment() string {
	return r.comment
}

// Date returns the calendar day of the record
func (r Record) Date() Date {
	return r.date
}
