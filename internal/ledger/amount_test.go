package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	for in, want := range map[string]string{
		"100":    "100",
		"100.00": "100",
		" 0.01 ": "0.01",
		"12.5":   "12.5",
	} {
		got, err := ParseAmount(in)
		require.NoError(t, err, "input %q", in)
		assertDec(t, want, got)
	}

	for _, bad := range []string{"", "abc", "0", "0.00", "-1", "1.001", "1,00", "1e50000000", "1E2", "+5", ".50", "5."} {
		_, err := ParseAmount(bad)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", bad)
	}
}

func TestParseRate(t *testing.T) {
	got, err := ParseRate("1.95")
	require.NoError(t, err)
	assertDec(t, "1.95", got)

	got, err = ParseRate("99.99")
	require.NoError(t, err)
	assertDec(t, "99.99", got)

	for _, bad := range []string{"", "x", "0", "-1", "100", "250", "1e-50000000", "2e0"} {
		_, err := ParseRate(bad)
		assert.ErrorIs(t, err, ErrInvalidRate, "input %q", bad)
	}
}
