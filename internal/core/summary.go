package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Summary is a compact view of a calculator at a given day.
type Summary struct {
	Day     Date
	Limit   decimal.Decimal
	Today   decimal.Decimal
	Week    decimal.Decimal
	Message string
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Date:   %s\n", s.Day)
	fmt.Fprintf(&b, "Limit:  %s\n", s.Limit)
	fmt.Fprintf(&b, "Today:  %s\n", s.Today)
	fmt.Fprintf(&b, "Week:   %s\n", s.Week)
	b.WriteString(s.Message)
	return b.String()
}
