package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	caloriesLeftPhrase = "You may still eat up to %s kcal today"
	stopEatingPhrase   = "Stop eating!"
)

// CaloriesCalculator reports the calorie budget left for today.
type CaloriesCalculator struct {
	*Calculator
}

func NewCaloriesCalculator(limit decimal.Decimal, opts ...Option) *CaloriesCalculator {
	return &CaloriesCalculator{Calculator: New(limit, opts...)}
}

// CaloriesRemained returns how much may still be eaten today, or
// "Stop eating!" once the limit is reached.
func (c *CaloriesCalculator) CaloriesRemained() string {
	remained := c.Remained()
	if remained.IsPositive() {
		return fmt.Sprintf(caloriesLeftPhrase, remained.String())
	}
	return stopEatingPhrase
}
