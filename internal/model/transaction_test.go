package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"D", KindDeposit},
		{"d", KindDeposit},
		{"W", KindWithdrawal},
		{" w ", KindWithdrawal},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err, "ParseKind(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "I", "deposit", "X"} {
		_, err := ParseKind(bad)
		assert.Error(t, err, "expected error for %q", bad)
	}
}

func TestTransactionSigned(t *testing.T) {
	amt := decimal.RequireFromString("12.50")

	dep := Transaction{Kind: KindDeposit, Amount: amt}
	assert.True(t, dep.Signed().Equal(amt))

	wd := Transaction{Kind: KindWithdrawal, Amount: amt}
	assert.True(t, wd.Signed().Equal(amt.Neg()))
}
