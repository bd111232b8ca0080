// Package ledger records deposits and withdrawals per account, keeps the
// global interest-rule schedule, and computes monthly interest and statements.
package ledger

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/gicledger/ledger/internal/calendar"
	"github.com/gicledger/ledger/internal/model"
)

// Options configures a Ledger. Zero values select the defaults.
type Options struct {
	DaysInYear int
	Rounding   RoundingMode
	// PostingDay is the two-digit day suffix of the statement interest line.
	PostingDay string
	Logger     *slog.Logger
}

// Ledger owns every account and the interest-rule schedule. All methods are
// safe for concurrent use; a single mutex serializes them.
type Ledger struct {
	mu       sync.Mutex
	accounts map[string]*Account
	rules    []model.InterestRule // sorted by EffectiveDate, at most one per date
	opts     Options
	log      *slog.Logger
}

// New creates an empty Ledger.
func New(opts Options) *Ledger {
	if opts.DaysInYear <= 0 {
		opts.DaysInYear = DefaultDaysInYear
	}
	if opts.Rounding == "" {
		opts.Rounding = RoundHalfEven
	}
	if opts.PostingDay == "" {
		opts.PostingDay = "30"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Ledger{
		accounts: make(map[string]*Account),
		opts:     opts,
		log:      logger,
	}
}

// AddTransaction records a transaction, creating the account on first use.
// Account validation errors are returned unchanged.
func (l *Ledger) AddTransaction(date, accountID, kind string, amount decimal.Decimal) (model.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok := l.accounts[accountID]
	if !ok {
		acct = newAccount(accountID)
	}
	txn, err := acct.AddTransaction(date, kind, amount)
	if err != nil {
		l.log.Info("transaction rejected", "account", accountID, "date", date, "type", kind, "err", err)
		return model.Transaction{}, err
	}
	// Only keep the new account once it holds a transaction.
	l.accounts[accountID] = acct

	l.log.Debug("transaction recorded", "account", accountID, "id", txn.ID, "type", string(txn.Kind), "amount", txn.Amount)
	return txn, nil
}

// AddInterestRule defines the rate effective from date, replacing any rule
// already defined for that exact date.
func (l *Ledger) AddInterestRule(date, ruleID string, rate decimal.Decimal) error {
	if err := validateRate(rate); err != nil {
		return err
	}
	rule, err := newInterestRule(date, ruleID, rate)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.rules[:0]
	for _, r := range l.rules {
		if r.EffectiveDate != rule.EffectiveDate {
			kept = append(kept, r)
		}
	}
	l.rules = append(kept, rule)
	sort.SliceStable(l.rules, func(i, j int) bool {
		return l.rules[i].EffectiveDate.Before(l.rules[j].EffectiveDate)
	})

	l.log.Debug("rule defined", "rule", ruleID, "date", date, "rate", rate)
	return nil
}

func newInterestRule(date, ruleID string, rate decimal.Decimal) (model.InterestRule, error) {
	day, err := calendar.ParseDay(date)
	if err != nil {
		return model.InterestRule{}, fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}
	if err := validateRate(rate); err != nil {
		return model.InterestRule{}, err
	}
	return model.InterestRule{EffectiveDate: day, RuleID: ruleID, Rate: rate}, nil
}

// Rules returns the interest rules ordered by effective date.
func (l *Ledger) Rules() []model.InterestRule {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.InterestRule, len(l.rules))
	copy(out, l.rules)
	return out
}

// Account returns a copy of the account's current state.
func (l *Ledger) Account(accountID string) (AccountSnapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	acct, ok := l.accounts[accountID]
	if !ok {
		return AccountSnapshot{}, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}
	return acct.snapshot(), nil
}

// CalculateInterest returns the interest accrued on accountID during
// yearMonth, rounded to cents. Unknown accounts and months without
// transactions yield zero.
func (l *Ledger) CalculateInterest(accountID, yearMonth string) (decimal.Decimal, error) {
	month, err := calendar.ParseMonth(yearMonth)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidYearMonthFormat, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.interestLocked(accountID, month), nil
}

func (l *Ledger) interestLocked(accountID string, month calendar.Month) decimal.Decimal {
	acct, ok := l.accounts[accountID]
	if !ok {
		return decimal.Zero
	}
	txns := acct.inMonth(month)
	if len(txns) == 0 {
		return decimal.Zero
	}
	return l.opts.Rounding.Round(AccrueInterest(txns, l.rules, l.opts.DaysInYear))
}

// Statement returns the month's transactions with running balances followed
// by the interest line. The running balance starts from zero at the first
// transaction of the month. An unknown account yields an empty statement.
func (l *Ledger) Statement(accountID, yearMonth string) (model.Statement, error) {
	month, err := calendar.ParseMonth(yearMonth)
	if err != nil {
		return model.Statement{}, fmt.Errorf("%w: %v", ErrInvalidYearMonthFormat, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	stmt := model.Statement{AccountID: accountID, YearMonth: month.String()}

	balance := decimal.Zero
	if acct, ok := l.accounts[accountID]; ok {
		for _, t := range acct.inMonth(month) {
			balance = balance.Add(t.Signed())
			stmt.Lines = append(stmt.Lines, model.StatementLine{
				Date:    calendar.FormatDay(t.Date),
				TxnID:   t.ID,
				Kind:    t.Kind,
				Amount:  t.Amount,
				Balance: balance,
			})
		}
	}

	stmt.Interest = l.interestLocked(accountID, month)
	stmt.Lines = append(stmt.Lines, model.StatementLine{
		Date:    month.String() + l.opts.PostingDay,
		Kind:    model.KindInterest,
		Amount:  stmt.Interest,
		Balance: balance.Add(stmt.Interest),
	})
	return stmt, nil
}
