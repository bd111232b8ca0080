package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gicledger/ledger/internal/ledger"
)

func runScript(t *testing.T, lines ...string) (string, *ledger.Ledger) {
	t.Helper()
	l := ledger.New(ledger.Options{})
	var out bytes.Buffer
	sh := New(l, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, "AwesomeGIC Bank", nil)
	require.NoError(t, sh.Run())
	return out.String(), l
}

func TestShell_FullSession(t *testing.T) {
	out, l := runScript(t,
		"t",
		"20230505 AC001 D 100.00",
		"20230601 AC001 D 150.00",
		"20230626 AC001 W 20.00",
		"20230626 AC001 W 100.00",
		"",
		"I",
		"20230101 RULE01 1.95",
		"20230520 RULE02 1.90",
		"20230615 RULE03 2.20",
		"",
		"P",
		"AC001 202306",
		"",
		"q",
	)

	assert.True(t, strings.HasPrefix(out, "Welcome to AwesomeGIC Bank! What would you like to do?\n[T] Input transactions\n"))
	assert.Contains(t, out, "Is there anything else you'd like to do?")
	assert.Contains(t, out, "| 20230626 | 20230626-02 | W    | 100.00 |\n")
	assert.Contains(t, out, "| 20230615 | RULE03 |     2.20 |\n")

	// Running balance restarts at the month window: 150, 130, 30.
	assert.Contains(t, out, "| 20230601 | 20230601-01 | D    | 150.00 |  150.00 |\n")
	assert.Contains(t, out, "| 20230626 | 20230626-02 | W    | 100.00 |   30.00 |\n")

	// (150*1.90*1 + 30*2.20*25) / 365 = 5.30
	interest, err := l.CalculateInterest("AC001", "202306")
	require.NoError(t, err)
	assert.Equal(t, "5.30", interest.StringFixed(2))
	assert.Contains(t, out, "| 20230630 |             | I    |   5.30 |   35.30 |\n")

	assert.True(t, strings.HasSuffix(out, "Thank you for banking with AwesomeGIC Bank.\nHave a nice day!\n"))
}

func TestShell_ErrorsDoNotAbort(t *testing.T) {
	out, l := runScript(t,
		"T",
		"20230601 AC001 D",
		"20230601 AC001 X 10",
		"20230601 AC001 W 10",
		"2023-06-01 AC001 D 10",
		"20230601 AC001 D 10.001",
		"20230601 AC001 D 10",
		"",
		"I",
		"20230601 RULE01 0",
		"20230601 RULE01 abc",
		"",
		"P",
		"AC001",
		"AC001 2023-06",
		"",
		"Q",
	)

	assert.Contains(t, out, "Error: expected <Date> <Account> <Type> <Amount>, got 3 fields")
	assert.Contains(t, out, "Error: invalid transaction type")
	assert.Contains(t, out, "Error: insufficient balance")
	assert.Contains(t, out, "Error: invalid date format")
	assert.Contains(t, out, "Error: invalid amount")
	assert.Contains(t, out, "Error: invalid interest rate")
	assert.Contains(t, out, "Error: expected <Account> <Year><Month>, got 1 fields")
	assert.Contains(t, out, "Error: invalid year-month format")

	acct, err := l.Account("AC001")
	require.NoError(t, err)
	require.Len(t, acct.Transactions, 1)
	assert.Equal(t, "20230601-01", acct.Transactions[0].ID)
	assert.Empty(t, l.Rules())
}

func TestShell_UnknownAccountStatement(t *testing.T) {
	out, _ := runScript(t, "P", "AC999 202306", "", "Q")
	assert.Contains(t, out, "Account: AC999\n| Date     | Txn Id      | Type | Amount | Balance |\n| 20230630 |             | I    |   0.00 |    0.00 |\n")
}

func TestShell_InvalidOption(t *testing.T) {
	out, _ := runScript(t, "X", "q")
	assert.Contains(t, out, "Invalid option, please try again.")
	assert.Contains(t, out, "Have a nice day!")
}

func TestShell_EOFQuits(t *testing.T) {
	l := ledger.New(ledger.Options{})
	var out bytes.Buffer
	sh := New(l, strings.NewReader("T\n20230601 AC001 D 5.00\n"), &out, "Test Bank", nil)
	require.NoError(t, sh.Run())
	assert.Contains(t, out.String(), "Thank you for banking with Test Bank.")

	acct, err := l.Account("AC001")
	require.NoError(t, err)
	assert.Equal(t, "5.00", acct.Balance.StringFixed(2))
}
