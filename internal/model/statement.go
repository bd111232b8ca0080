package model

import "github.com/shopspring/decimal"

// StatementLine is a row of a monthly statement. The trailing interest line
// has an empty TxnID and KindInterest.
type StatementLine struct {
	Date    string // YYYYMMDD; the interest line uses the configured posting day verbatim
	TxnID   string
	Kind    Kind
	Amount  decimal.Decimal
	Balance decimal.Decimal // running balance after this line
}

// Statement is the rendered view of one account for one month.
type Statement struct {
	AccountID string
	YearMonth string // "YYYYMM"
	Lines     []StatementLine
	Interest  decimal.Decimal
}

// Transactions returns the lines excluding the synthetic interest line.
func (s Statement) Transactions() []StatementLine {
	out := make([]StatementLine, 0, len(s.Lines))
	for _, l := range s.Lines {
		if l.Kind != KindInterest {
			out = append(out, l)
		}
	}
	return out
}

// InterestLine returns the trailing interest line, if present.
func (s Statement) InterestLine() (StatementLine, bool) {
	if n := len(s.Lines); n > 0 && s.Lines[n-1].Kind == KindInterest {
		return s.Lines[n-1], true
	}
	return StatementLine{}, false
}
