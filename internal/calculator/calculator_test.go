package calculator

import (
	"testing"
	"time"

	"dailybudget/internal/core"

	"github.com/shopspring/decimal"
)

// 12.05.2021, afternoon
var fixedNow = time.Date(2021, time.May, 12, 14, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func rec(amount int64, date core.Date) core.Record {
	return core.NewRecordOn(decimal.NewFromInt(amount), "", date)
}

func daysAgo(n int) core.Date {
	return core.Today(fixedNow).AddDays(-n)
}

func TestEmptyCalculator(t *testing.T) {
	c := New(decimal.NewFromInt(1000), WithClock(fixedClock))
	if !c.TodayStats().IsZero() {
		t.Fatalf("TodayStats() = %s, want 0", c.TodayStats())
	}
	if !c.WeekStats().IsZero() {
		t.Fatalf("WeekStats() = %s, want 0", c.WeekStats())
	}
}

func TestTodayStats(t *testing.T) {
	records := []core.Record{
		rec(100, daysAgo(0)),
		rec(250, daysAgo(1)),
		core.NewRecordOn(decimal.RequireFromString("12.5"), "", daysAgo(0)),
		rec(40, daysAgo(0)),
	}

	orders := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {2, 0, 3, 1}}
	for _, order := range orders {
		c := New(decimal.NewFromInt(1000), WithClock(fixedClock))
		for _, i := range order {
			c.AddRecord(records[i])
		}
		if got := c.TodayStats(); !got.Equal(decimal.RequireFromString("152.5")) {
			t.Errorf("order %v: TodayStats() = %s, want 152.5", order, got)
		}
	}
}

func TestWeekStatsBoundaries(t *testing.T) {
	tests := []struct {
		name string
		date core.Date
		in   bool
	}{
		{"today", daysAgo(0), true},
		{"yesterday", daysAgo(1), true},
		{"six days ago", daysAgo(6), true},
		{"seven days ago", daysAgo(7), false},
		{"eight days ago", daysAgo(8), false},
		{"tomorrow", daysAgo(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(decimal.NewFromInt(1000), WithClock(fixedClock))
			c.AddRecord(rec(10, tt.date))
			got := c.WeekStats()
			want := decimal.Zero
			if tt.in {
				want = decimal.NewFromInt(10)
			}
			if !got.Equal(want) {
				t.Errorf("WeekStats() = %s, want %s", got, want)
			}
		})
	}
}

func TestTodayEvaluatedAtQueryTime(t *testing.T) {
	now := time.Date(2021, time.May, 12, 23, 59, 0, 0, time.UTC)
	c := New(decimal.NewFromInt(1000), WithClock(func() time.Time { return now }))
	c.AddRecord(rec(100, core.NewDate(2021, 5, 12)))

	if got := c.TodayStats(); !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("before midnight TodayStats() = %s, want 100", got)
	}

	now = now.Add(2 * time.Minute)
	if got := c.TodayStats(); !got.IsZero() {
		t.Fatalf("after midnight TodayStats() = %s, want 0", got)
	}
	if got := c.WeekStats(); !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("after midnight WeekStats() = %s, want 100", got)
	}
}

func TestRecordsKeepInsertionOrder(t *testing.T) {
	c := New(decimal.NewFromInt(1000), WithClock(fixedClock))
	c.AddRecord(core.NewRecordOn(decimal.NewFromInt(1), "a", daysAgo(3)))
	c.AddRecord(core.NewRecordOn(decimal.NewFromInt(1), "a", daysAgo(3)))
	c.AddRecord(core.NewRecordOn(decimal.NewFromInt(2), "b", daysAgo(0)))

	got := c.Records()
	if len(got) != 3 || got[0].Comment() != "a" || got[2].Comment() != "b" {
		t.Fatalf("unexpected records: %+v", got)
	}

	// mutating the copy must not touch the calculator
	got[0] = core.Record{}
	if c.Records()[0].Comment() != "a" {
		t.Fatalf("Records() leaked internal slice")
	}
}

func TestSummary(t *testing.T) {
	c := New(decimal.NewFromInt(1000), WithClock(fixedClock))
	c.AddRecord(rec(100, daysAgo(0)))
	c.AddRecord(rec(50, daysAgo(3)))

	s := c.Summary("msg")
	if !s.Today.Equal(decimal.NewFromInt(100)) || !s.Week.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.Day.String() != "12.05.2021" || s.Message != "msg" {
		t.Fatalf("unexpected summary: %+v", s)
	}
}
