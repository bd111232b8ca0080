package ledger

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	// Plain positional decimals only; exponent forms like "1e9" are refused.
	amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	ratePattern   = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// ParseAmount parses a transaction amount from user input.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if err := validateAmount(amount); err != nil {
		return decimal.Decimal{}, err
	}
	return amount, nil
}

// ParseRate parses an annual interest rate in percent from user input.
func ParseRate(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !ratePattern.MatchString(s) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidRate, s)
	}
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidRate, s)
	}
	if err := validateRate(rate); err != nil {
		return decimal.Decimal{}, err
	}
	return rate, nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	// No more than 2 decimal places.
	if scaled := amount.Mul(hundred); !scaled.Equal(scaled.Floor()) {
		return fmt.Errorf("%w: %s has more than 2 decimal places", ErrInvalidAmount, amount)
	}
	return nil
}

func validateRate(rate decimal.Decimal) error {
	if !rate.IsPositive() || rate.GreaterThanOrEqual(hundred) {
		return fmt.Errorf("%w: %s", ErrInvalidRate, rate)
	}
	return nil
}
