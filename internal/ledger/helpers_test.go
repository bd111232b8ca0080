package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustTxn(t *testing.T, l *Ledger, date, account, kind, amount string) string {
	t.Helper()
	txn, err := l.AddTransaction(date, account, kind, dec(amount))
	require.NoError(t, err)
	return txn.ID
}

func mustRule(t *testing.T, l *Ledger, date, ruleID, rate string) {
	t.Helper()
	require.NoError(t, l.AddInterestRule(date, ruleID, dec(rate)))
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}
