package ledger

import (
	"fmt"
	"sort"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/gicledger/ledger/internal/calendar"
	"github.com/gicledger/ledger/internal/model"
)

// DefaultDaysInYear is the day-count basis used when none is configured.
const DefaultDaysInYear = 365

// RoundingMode selects how accrued interest is rounded to cents.
type RoundingMode string

const (
	// RoundHalfEven rounds ties to the even cent (banker's rounding).
	RoundHalfEven RoundingMode = "half-even"
	// RoundHalfUp rounds ties away from zero.
	RoundHalfUp RoundingMode = "half-up"
)

// ParseRoundingMode accepts "half-even" or "half-up".
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch m := RoundingMode(s); m {
	case RoundHalfEven, RoundHalfUp:
		return m, nil
	default:
		return "", fmt.Errorf("unknown rounding mode %q", s)
	}
}

// Round rounds d to 2 decimal places.
func (m RoundingMode) Round(d decimal.Decimal) decimal.Decimal {
	if m == RoundHalfUp {
		return d.Round(2)
	}
	return d.RoundBank(2)
}

type dayDelta struct {
	day   civil.Date
	delta decimal.Decimal
}

// AccrueInterest integrates the end-of-day balances implied by txns against
// the piecewise-constant rate schedule in rules. txns are one account's
// transactions for a single month; rules must be sorted by EffectiveDate.
//
// The balance before the first transaction day is taken as zero, the first
// day is held for one day, and each later day d_i contributes
// balance_i * rate(d_i) * (d_i - d_{i-1}) / daysInYear. rate is the raw
// percentage figure; it is not divided by 100. The result is unrounded.
func AccrueInterest(txns []model.Transaction, rules []model.InterestRule, daysInYear int) decimal.Decimal {
	if len(txns) == 0 || len(rules) == 0 {
		return decimal.Zero
	}
	if daysInYear <= 0 {
		daysInYear = DefaultDaysInYear
	}

	days := netByDay(txns)

	balance := decimal.Zero
	accrued := decimal.Zero
	for i, d := range days {
		balance = balance.Add(d.delta)

		rule, ok := applicableRule(rules, d.day)
		if !ok {
			continue
		}
		span := 1
		if i > 0 {
			span = calendar.DaysBetween(days[i-1].day, d.day)
		}
		accrued = accrued.Add(balance.Mul(rule.Rate).Mul(decimal.NewFromInt(int64(span))))
	}

	return accrued.Div(decimal.NewFromInt(int64(daysInYear)))
}

// netByDay sums signed amounts per calendar day and returns the days in
// ascending order. Input order is not assumed.
func netByDay(txns []model.Transaction) []dayDelta {
	byDay := make(map[civil.Date]decimal.Decimal)
	for _, t := range txns {
		byDay[t.Date] = byDay[t.Date].Add(t.Signed())
	}

	out := make([]dayDelta, 0, len(byDay))
	for day, delta := range byDay {
		out = append(out, dayDelta{day: day, delta: delta})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].day.Before(out[j].day) })
	return out
}

// applicableRule returns the rule with the latest EffectiveDate not after day.
func applicableRule(rules []model.InterestRule, day civil.Date) (model.InterestRule, bool) {
	// First rule strictly after day; the one before it applies.
	i := sort.Search(len(rules), func(i int) bool { return rules[i].EffectiveDate.After(day) })
	if i == 0 {
		return model.InterestRule{}, false
	}
	return rules[i-1], true
}
