package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is "deposit" or "withdrawal"
type TransactionKind string

const (
	TxDeposit    TransactionKind = "deposit"
	TxWithdrawal TransactionKind = "withdrawal"
)

// Transaction is a one-shot balance-changing command against one account
type Transaction struct {
	ID        string
	Kind      TransactionKind
	Account   Account
	Amount    decimal.Decimal
	CreatedAt time.Time
	executed  bool
}

// Receipt reports an executed transaction. Outcome is nil when the account
// accepted the operation, otherwise the account's denial or validation error.
type Receipt struct {
	TransactionID string          `json:"transactionId"`
	Kind          TransactionKind `json:"type"`
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
	Outcome       error           `json:"-"`
}

// Accepted reports whether the account applied the operation
func (r Receipt) Accepted() bool { return r.Outcome == nil }

func NewDeposit(id string, account Account, amount decimal.Decimal, now time.Time) *Transaction {
	return &Transaction{ID: id, Kind: TxDeposit, Account: account, Amount: amount, CreatedAt: now}
}

func NewWithdrawal(id string, account Account, amount decimal.Decimal, now time.Time) *Transaction {
	return &Transaction{ID: id, Kind: TxWithdrawal, Account: account, Amount: amount, CreatedAt: now}
}

// Execute applies the transaction to its account. It reports completion
// whether or not the account accepted it; a second call returns ErrAlreadyExecuted.
func (t *Transaction) Execute() (Receipt, error) {
	if t.executed {
		return Receipt{}, ErrAlreadyExecuted
	}
	t.executed = true

	var outcome error
	switch t.Kind {
	case TxDeposit:
		outcome = t.Account.Deposit(t.Amount)
	case TxWithdrawal:
		outcome = t.Account.Withdraw(t.Amount)
	}
	return Receipt{
		TransactionID: t.ID,
		Kind:          t.Kind,
		AccountNumber: t.Account.Number(),
		Amount:        t.Amount,
		Balance:       t.Account.Balance(),
		CreatedAt:     t.CreatedAt,
		Outcome:       outcome,
	}, nil
}
