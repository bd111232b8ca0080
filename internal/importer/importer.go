package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gicledger/ledger/internal/ledger"
	"github.com/gicledger/ledger/internal/model"
)

// TxnRow is one unvalidated transaction request read from a file.
type TxnRow struct {
	Line      int
	Date      string
	AccountID string
	Kind      string
	Amount    string
}

// RuleRow is one unvalidated interest-rule definition read from a file.
type RuleRow struct {
	Line   int
	Date   string
	RuleID string
	Rate   string
}

// RowError reports a row that could not be parsed or was rejected.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// Parser reads transaction and rule files in one format. Malformed rows are
// returned as RowErrors; the error result is reserved for read failures.
type Parser interface {
	ParseTransactions(r io.Reader) ([]TxnRow, []RowError, error)
	ParseRules(r io.Reader) ([]RuleRow, []RowError, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{})
	r.Register(&TextParser{})
	return r
}

// FormatForPath infers a format name from a file extension.
func FormatForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return "csv"
	}
	return "text"
}

// TransactionRecorder is the subset of *ledger.Ledger used to apply rows.
type TransactionRecorder interface {
	AddTransaction(date, accountID, kind string, amount decimal.Decimal) (model.Transaction, error)
}

// RuleDefiner is the subset of *ledger.Ledger used to apply rule rows.
type RuleDefiner interface {
	AddInterestRule(date, ruleID string, rate decimal.Decimal) error
}

// ApplyTransactions records each row in order. A rejected row does not stop
// the rest.
func ApplyTransactions(rec TransactionRecorder, rows []TxnRow) ([]model.Transaction, []RowError) {
	var applied []model.Transaction
	var errs []RowError
	for _, row := range rows {
		amount, err := ledger.ParseAmount(row.Amount)
		if err != nil {
			errs = append(errs, RowError{Line: row.Line, Err: err})
			continue
		}
		txn, err := rec.AddTransaction(row.Date, row.AccountID, row.Kind, amount)
		if err != nil {
			errs = append(errs, RowError{Line: row.Line, Err: err})
			continue
		}
		applied = append(applied, txn)
	}
	return applied, errs
}

// ApplyRules defines each rule in order. A rejected row does not stop the rest.
func ApplyRules(def RuleDefiner, rows []RuleRow) (int, []RowError) {
	applied := 0
	var errs []RowError
	for _, row := range rows {
		rate, err := ledger.ParseRate(row.Rate)
		if err != nil {
			errs = append(errs, RowError{Line: row.Line, Err: err})
			continue
		}
		if err := def.AddInterestRule(row.Date, row.RuleID, rate); err != nil {
			errs = append(errs, RowError{Line: row.Line, Err: err})
			continue
		}
		applied++
	}
	return applied, errs
}

// ReadTransactionsFile opens path and parses it with the named format
// (inferred from the extension when empty).
func (r *Registry) ReadTransactionsFile(path, format string) ([]TxnRow, []RowError, error) {
	p, f, err := r.open(path, format)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	rows, rowErrs, err := p.ParseTransactions(f)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, rowErrs, nil
}

// ReadRulesFile opens path and parses it with the named format.
func (r *Registry) ReadRulesFile(path, format string) ([]RuleRow, []RowError, error) {
	p, f, err := r.open(path, format)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	rows, rowErrs, err := p.ParseRules(f)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, rowErrs, nil
}

func (r *Registry) open(path, format string) (Parser, *os.File, error) {
	if format == "" {
		format = FormatForPath(path)
	}
	p := r.Get(format)
	if p == nil {
		return nil, nil, fmt.Errorf("unknown import format %q", format)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return p, f, nil
}
