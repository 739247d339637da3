package cli

import (
	"errors"
	"fmt"
	"time"

	"dailybudget/internal/calculator"
	"dailybudget/internal/config"
	"dailybudget/internal/core"
)

const (
	KindCash     = "cash"
	KindCalories = "calories"
)

var ErrUnknownKind = errors.New("unknown calculator kind")

// Report builds the calculator selected by kind, feeds it records and
// summarizes the current day.
func Report(kind string, cfg *config.Config, records []core.Record, now func() time.Time) (core.Summary, error) {
	opts := []calculator.Option{calculator.WithClock(now)}

	switch kind {
	case KindCash:
		calc := calculator.NewCashCalculator(cfg.CashLimit, opts...)
		for _, r := range records {
			calc.AddRecord(r)
		}
		msg, err := calc.TodayCashRemained(cfg.Currency)
		if err != nil {
			return core.Summary{}, fmt.Errorf("cash report: %w", err)
		}
		return calc.Summary(msg), nil

	case KindCalories:
		calc := calculator.NewCaloriesCalculator(cfg.CaloriesLimit, opts...)
		for _, r := range records {
			calc.AddRecord(r)
		}
		return calc.Summary(calc.CaloriesRemained()), nil

	default:
		return core.Summary{}, fmt.Errorf("%w: %q, want %s or %s", ErrUnknownKind, kind, KindCash, KindCalories)
	}
}
