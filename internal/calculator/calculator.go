package calculator

import (
	"time"

	"dailybudget/internal/core"

	"github.com/shopspring/decimal"
)

// Calculator owns an append-only list of records and a daily limit.
// It is not safe for concurrent use.
type Calculator struct {
	limit   decimal.Decimal
	records []core.Record
	now     func() time.Time
}

type Option func(*Calculator)

// WithClock overrides the source of the current time. "Today" is derived
// from it on every query.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		c.now = now
	}
}

func New(limit decimal.Decimal, opts ...Option) *Calculator {
	c := &Calculator{
		limit: limit,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddRecord appends r. Records are neither deduplicated nor validated.
func (c *Calculator) AddRecord(r core.Record) {
	c.records = append(c.records, r)
}

// Records returns a copy of the records in insertion order.
func (c *Calculator) Records() []core.Record {
	return append([]core.Record(nil), c.records...)
}

func (c *Calculator) Limit() decimal.Decimal {
	return c.limit
}

// Today returns the current calendar day as seen by the calculator's clock.
func (c *Calculator) Today() core.Date {
	return core.Today(c.now())
}

// Stats sums the amounts of records inside p.
func (c *Calculator) Stats(p Period) decimal.Decimal {
	today := c.Today()
	total := decimal.Zero
	for _, r := range c.records {
		if p.Contains(r.Date(), today) {
			total = total.Add(r.Amount())
		}
	}
	return total
}

// TodayStats sums the amounts of records dated today.
func (c *Calculator) TodayStats() decimal.Decimal {
	return c.Stats(DayPeriod{})
}

// WeekStats sums the amounts of records dated within the last seven days,
// today included.
func (c *Calculator) WeekStats() decimal.Decimal {
	return c.Stats(Week)
}

// Remained is the part of the limit not used today. Negative when over.
func (c *Calculator) Remained() decimal.Decimal {
	return c.limit.Sub(c.TodayStats())
}

// Summary collects the figures of the current day.
func (c *Calculator) Summary(message string) core.Summary {
	return core.Summary{
		Day:     c.Today(),
		Limit:   c.limit,
		Today:   c.TodayStats(),
		Week:    c.WeekStats(),
		Message: message,
	}
}
