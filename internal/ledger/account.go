package ledger

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/gicledger/ledger/internal/calendar"
	"github.com/gicledger/ledger/internal/id"
	"github.com/gicledger/ledger/internal/model"
)

// Account holds one account's transactions in recorded order and the
// balance they sum to. It is not safe for concurrent use; Ledger serializes
// access.
type Account struct {
	id           string
	balance      decimal.Decimal
	transactions []model.Transaction
}

// AccountSnapshot is a copy of an account's state.
type AccountSnapshot struct {
	ID           string
	Balance      decimal.Decimal
	Transactions []model.Transaction
}

func newAccount(accountID string) *Account {
	return &Account{id: accountID}
}

// ID returns the account identifier.
func (a *Account) ID() string { return a.id }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// AddTransaction validates and records a deposit or withdrawal. Nothing is
// changed when an error is returned.
func (a *Account) AddTransaction(date, kind string, amount decimal.Decimal) (model.Transaction, error) {
	day, err := calendar.ParseDay(date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}
	k, err := model.ParseKind(kind)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %v", ErrInvalidTransactionType, err)
	}
	if err := validateAmount(amount); err != nil {
		return model.Transaction{}, err
	}
	if k == model.KindWithdrawal && a.balance.Sub(amount).IsNegative() {
		return model.Transaction{}, fmt.Errorf("%w: account %s has %s, cannot withdraw %s",
			ErrInsufficientBalance, a.id, a.balance.StringFixed(2), amount.StringFixed(2))
	}

	txn := model.Transaction{
		ID:        a.GenerateID(day),
		Date:      day,
		AccountID: a.id,
		Kind:      k,
		Amount:    amount,
	}
	a.transactions = append(a.transactions, txn)
	a.balance = a.balance.Add(txn.Signed())
	return txn, nil
}

// GenerateID returns the ID the next transaction on date would receive.
func (a *Account) GenerateID(date civil.Date) string {
	maxSeq := 0
	for _, t := range a.transactions {
		if t.Date != date {
			continue
		}
		_, seq, err := id.ParseTxnID(t.ID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return id.FormatTxnID(date, maxSeq+1)
}

// Statement returns the account's transactions in yearMonth, in recorded order.
func (a *Account) Statement(yearMonth string) ([]model.Transaction, error) {
	month, err := calendar.ParseMonth(yearMonth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYearMonthFormat, err)
	}
	return a.inMonth(month), nil
}

func (a *Account) inMonth(month calendar.Month) []model.Transaction {
	var out []model.Transaction
	for _, t := range a.transactions {
		if month.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

func (a *Account) snapshot() AccountSnapshot {
	txns := make([]model.Transaction, len(a.transactions))
	copy(txns, a.transactions)
	return AccountSnapshot{ID: a.id, Balance: a.balance, Transactions: txns}
}
