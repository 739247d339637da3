// Package core provides the record, date and amount types of the tracker.
//
// This file contains parsing of amounts from user input.
package core

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a decimal string to an Amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators.
// Signed, empty or otherwise non-numeric input is rejected with
// ErrInvalidAmount. Zero is a valid amount.
//
// Examples:
//   ParseAmount("300")   -> 300, nil
//   ParseAmount("12,5")  -> 12.5, nil
//   ParseAmount("-1")    -> 0, ErrInvalidAmount
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return decimal.Zero, ErrInvalidAmount
	}
	for i, p := range parts {
		if p == "" && i == 0 {
			continue
		}
		if p == "" {
			return decimal.Zero, ErrInvalidAmount
		}
		for _, r := range p {
			if !unicode.IsDigit(r) {
				return decimal.Zero, ErrInvalidAmount
			}
		}
	}
	if parts[0] == "" {
		s = "0" + s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// FormatFixed renders an amount with exactly two decimal places.
func FormatFixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}
