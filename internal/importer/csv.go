package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	txnNumFields  = 4
	ruleNumFields = 3

	colDate = 0
	// Transaction columns.
	colAccount = 1
	colType    = 2
	colAmount  = 3
	// Rule columns.
	colRuleID = 1
	colRate   = 2
)

// CSVParser reads comma-separated files. A first row whose first cell is
// "date" is treated as a header.
//
//	date,account,type,amount
//	date,rule_id,rate
type CSVParser struct{}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// ParseTransactions reads transaction rows.
func (p *CSVParser) ParseTransactions(r io.Reader) ([]TxnRow, []RowError, error) {
	var rows []TxnRow
	var errs []RowError
	err := readRecords(r, txnNumFields, func(line int, rec []string) {
		rows = append(rows, TxnRow{
			Line:      line,
			Date:      rec[colDate],
			AccountID: rec[colAccount],
			Kind:      rec[colType],
			Amount:    rec[colAmount],
		})
	}, &errs)
	return rows, errs, err
}

// ParseRules reads rule rows.
func (p *CSVParser) ParseRules(r io.Reader) ([]RuleRow, []RowError, error) {
	var rows []RuleRow
	var errs []RowError
	err := readRecords(r, ruleNumFields, func(line int, rec []string) {
		rows = append(rows, RuleRow{
			Line:   line,
			Date:   rec[colDate],
			RuleID: rec[colRuleID],
			Rate:   rec[colRate],
		})
	}, &errs)
	return rows, errs, err
}

func readRecords(r io.Reader, numFields int, fn func(line int, rec []string), errs *[]RowError) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			// Malformed quoting only spoils its own record.
			first = false
			*errs = append(*errs, RowError{Line: perr.StartLine, Err: perr})
			continue
		}
		if err != nil {
			return fmt.Errorf("reading CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if strings.EqualFold(strings.TrimSpace(rec[0]), "date") {
				continue
			}
		}
		if len(rec) != numFields {
			*errs = append(*errs, RowError{Line: line, Err: fmt.Errorf("expected %d fields, got %d", numFields, len(rec))})
			continue
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		fn(line, rec)
	}
}
