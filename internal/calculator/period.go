// Package calculator aggregates dated records against a daily limit.
//
// This file implements the Strategy Pattern for the reporting windows.
// Each window (day, week) decides which record dates it covers relative
// to the current day.
package calculator

import "dailybudget/internal/core"

// Period is the strategy interface for selecting records by date.
type Period interface {
	// Contains reports whether a record dated d falls in the window ending today.
	Contains(d, today core.Date) bool
}

// DayPeriod covers exactly the current calendar day.
type DayPeriod struct{}

func (DayPeriod) Contains(d, today core.Date) bool {
	return d.Equal(today)
}

// WeekPeriod covers the trailing Days calendar days ending today: the
// interval (today-Days, today]. Future dates are outside.
type WeekPeriod struct {
	Days int
}

// Week is the seven day window used by WeekStats.
var Week = WeekPeriod{Days: 7}

func (p WeekPeriod) Contains(d, today core.Date) bool {
	from := today.AddDays(-p.Days)
	return d.After(from) && !d.After(today)
}
