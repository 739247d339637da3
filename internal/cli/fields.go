package cli

import (
	"errors"

	"dailybudget/internal/config"
	"dailybudget/internal/log"
	"dailybudget/internal/seed"
)

// LoadErrorFields describes a failed records load, including the line
// number when the file itself was malformed.
func LoadErrorFields(path string, err error) log.LogFields {
	f := log.NewFields().WithOperation(log.OpLoad).WithError(err)
	f[log.FieldFile] = path

	var le *seed.LineError
	if errors.As(err, &le) {
		f[log.FieldLine] = le.Line
	}
	return f
}

// ReportFields describes the calculator a report is built for.
func ReportFields(kind string, cfg *config.Config) log.LogFields {
	limit := cfg.CashLimit
	if kind == KindCalories {
		limit = cfg.CaloriesLimit
	}
	f := log.NewFields().WithOperation(log.OpReport).WithBudget(kind, limit.String())
	if kind == KindCash {
		f[log.FieldCurrency] = cfg.Currency
	}
	return f
}
