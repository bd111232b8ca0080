package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TextParser reads whitespace-separated lines in the same shape the
// interactive prompts accept. Blank lines and lines starting with '#' are
// skipped.
type TextParser struct{}

// Format returns the parser name.
func (p *TextParser) Format() string { return "text" }

// ParseTransactions reads "<Date> <Account> <Type> <Amount>" lines.
func (p *TextParser) ParseTransactions(r io.Reader) ([]TxnRow, []RowError, error) {
	var rows []TxnRow
	var errs []RowError
	err := scanLines(r, func(n int, line string) {
		row, err := ParseTransactionLine(line)
		if err != nil {
			errs = append(errs, RowError{Line: n, Err: err})
			return
		}
		row.Line = n
		rows = append(rows, row)
	})
	return rows, errs, err
}

// ParseRules reads "<Date> <RuleId> <Rate in %>" lines.
func (p *TextParser) ParseRules(r io.Reader) ([]RuleRow, []RowError, error) {
	var rows []RuleRow
	var errs []RowError
	err := scanLines(r, func(n int, line string) {
		row, err := ParseRuleLine(line)
		if err != nil {
			errs = append(errs, RowError{Line: n, Err: err})
			return
		}
		row.Line = n
		rows = append(rows, row)
	})
	return rows, errs, err
}

// ParseTransactionLine splits "<Date> <Account> <Type> <Amount>".
func ParseTransactionLine(line string) (TxnRow, error) {
	f := strings.Fields(line)
	if len(f) != 4 {
		return TxnRow{}, fmt.Errorf("expected <Date> <Account> <Type> <Amount>, got %d fields", len(f))
	}
	return TxnRow{Date: f[0], AccountID: f[1], Kind: f[2], Amount: f[3]}, nil
}

// ParseRuleLine splits "<Date> <RuleId> <Rate in %>".
func ParseRuleLine(line string) (RuleRow, error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return RuleRow{}, fmt.Errorf("expected <Date> <RuleId> <Rate in %%>, got %d fields", len(f))
	}
	return RuleRow{Date: f[0], RuleID: f[1], Rate: f[2]}, nil
}

func scanLines(r io.Reader, fn func(n int, line string)) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fn(n, line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scanning input: %w", err)
	}
	return nil
}
