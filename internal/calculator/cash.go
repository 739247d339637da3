package calculator

import (
	"errors"
	"fmt"
	"sort"

	"dailybudget/internal/core"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the base unit limits and records are expressed in.
const DefaultCurrency = "rub"

const (
	cashLeftPhrase   = "%s %s left for today"
	noMoneyPhrase    = "No money left, stay strong"
	cashDebtPhrase   = "No money left, stay strong: your debt is %s %s"
	currencyDecimals = 2
)

var ErrUnknownCurrency = errors.New("unknown currency")

// UnknownCurrencyError carries a currency code missing from the exchange table.
type UnknownCurrencyError struct {
	Code string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownCurrency, e.Code)
}

func (e *UnknownCurrencyError) Unwrap() error {
	return ErrUnknownCurrency
}

// Currency is an exchange table entry. Rate is the price of one unit in
// the base currency.
type Currency struct {
	Code  string
	Rate  decimal.Decimal
	Label string
}

// currencies is built once and never written afterwards.
var currencies = map[string]Currency{
	"rub": {Code: "rub", Rate: decimal.NewFromInt(1), Label: "руб"},
	"usd": {Code: "usd", Rate: decimal.NewFromFloat(60.0), Label: "USD"},
	"eur": {Code: "eur", Rate: decimal.NewFromFloat(70.0), Label: "Euro"},
}

// LookupCurrency returns the table entry for code. Codes are case-sensitive.
func LookupCurrency(code string) (Currency, error) {
	cur, ok := currencies[code]
	if !ok {
		return Currency{}, &UnknownCurrencyError{Code: code}
	}
	return cur, nil
}

// Currencies returns the supported codes, sorted.
func Currencies() []string {
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// CashCalculator reports the money left for today in a chosen currency.
type CashCalculator struct {
	*Calculator
}

func NewCashCalculator(limit decimal.Decimal, opts ...Option) *CashCalculator {
	return &CashCalculator{Calculator: New(limit, opts...)}
}

// TodayCashRemained formats the balance of today converted to currency,
// rounded to two decimals with ties to even.
func (c *CashCalculator) TodayCashRemained(currency string) (string, error) {
	cur, err := LookupCurrency(currency)
	if err != nil {
		return "", err
	}

	cash := c.Remained()
	if cash.IsZero() {
		return noMoneyPhrase, nil
	}

	converted := cash.Div(cur.Rate).RoundBank(currencyDecimals)
	if cash.IsNegative() {
		return fmt.Sprintf(cashDebtPhrase, core.FormatFixed(converted.Abs()), cur.Label), nil
	}
	return fmt.Sprintf(cashLeftPhrase, core.FormatFixed(converted), cur.Label), nil
}
