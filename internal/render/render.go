// Package render writes statements and rule schedules for people and for
// spreadsheets.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gicledger/ledger/internal/calendar"
	"github.com/gicledger/ledger/internal/model"
)

// StatementHeader is the CSV header written by WriteStatementCSV.
const StatementHeader = "account,date,txn_id,type,amount,balance"

const (
	numFields  = 6
	colAccount = 0
	colDate    = 1
	colTxnID   = 2
	colType    = 3
	colAmount  = 4
	colBalance = 5
)

// WriteStatementTable writes the statement as a pipe-delimited table.
func WriteStatementTable(w io.Writer, stmt model.Statement) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Account: %s\n", stmt.AccountID)
	b.WriteString("| Date     | Txn Id      | Type | Amount | Balance |\n")
	for _, l := range statementRows(stmt) {
		fmt.Fprintf(&b, "| %-8s | %-11s | %-4s | %6s | %7s |\n",
			l.Date, l.TxnID, string(l.Kind), l.Amount.StringFixed(2), l.Balance.StringFixed(2))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteRulesTable writes the interest rules as a pipe-delimited table.
func WriteRulesTable(w io.Writer, rules []model.InterestRule) error {
	var b strings.Builder
	b.WriteString("Interest rules:\n")
	b.WriteString("| Date     | RuleId | Rate (%) |\n")
	for _, r := range rules {
		fmt.Fprintf(&b, "| %-8s | %-6s | %8s |\n", calendar.FormatDay(r.EffectiveDate), r.RuleID, r.Rate.StringFixed(2))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteStatementCSV writes one or more statements as CSV with a single header.
func WriteStatementCSV(w io.Writer, stmts ...model.Statement) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(StatementHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, stmt := range stmts {
		for i, l := range statementRows(stmt) {
			if err := cw.Write(MarshalLine(stmt.AccountID, l)); err != nil {
				return fmt.Errorf("writing %s row %d: %w", stmt.AccountID, i+2, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// statementRows orders transaction lines first and the interest line last.
func statementRows(stmt model.Statement) []model.StatementLine {
	rows := stmt.Transactions()
	if l, ok := stmt.InterestLine(); ok {
		rows = append(rows, l)
	}
	return rows
}

// MarshalLine converts a statement line to a CSV row.
func MarshalLine(accountID string, l model.StatementLine) []string {
	row := make([]string, numFields)
	row[colAccount] = accountID
	row[colDate] = l.Date
	row[colTxnID] = l.TxnID
	row[colType] = string(l.Kind)
	row[colAmount] = l.Amount.StringFixed(2)
	row[colBalance] = l.Balance.StringFixed(2)
	return row
}

// WriteAccountTable writes an account's recorded transactions.
func WriteAccountTable(w io.Writer, accountID string, txns []model.Transaction) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Account: %s\n", accountID)
	b.WriteString("| Date     | Txn Id      | Type | Amount |\n")
	for _, t := range txns {
		fmt.Fprintf(&b, "| %-8s | %-11s | %-4s | %6s |\n",
			calendar.FormatDay(t.Date), t.ID, string(t.Kind), t.Amount.StringFixed(2))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
