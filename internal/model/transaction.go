package model

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Kind is the closed set of balance-affecting transaction types.
type Kind string

const (
	KindDeposit    Kind = "D"
	KindWithdrawal Kind = "W"
	// KindInterest only appears on rendered statements, never on a stored transaction.
	KindInterest Kind = "I"
)

// ParseKind accepts "D" or "W" in either case.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToUpper(strings.TrimSpace(s))) {
	case KindDeposit:
		return KindDeposit, nil
	case KindWithdrawal:
		return KindWithdrawal, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Transaction is one recorded deposit or withdrawal. Values are never mutated
// after the ledger accepts them.
type Transaction struct {
	ID        string // "YYYYMMDD-NN"
	Date      civil.Date
	AccountID string
	Kind      Kind
	Amount    decimal.Decimal // always positive, at most 2 decimal places
}

// Signed returns the amount with the sign it contributes to the balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindWithdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}
