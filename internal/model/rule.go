package model

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// InterestRule sets the annual rate (in percent) from EffectiveDate until a
// later rule supersedes it.
type InterestRule struct {
	EffectiveDate civil.Date
	RuleID        string
	Rate          decimal.Decimal // percent, 0 < Rate < 100
}
