// Package bank holds the teller operations shared by the console session and
// the HTTP API. Every operation runs under one mutex, so callers observe them
// strictly one at a time.
package bank

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"banking-management/idgen"
	"banking-management/models"
	"banking-management/store"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Fixed product terms
var (
	SavingsInterestRate   = decimal.RequireFromString("3.5")
	SavingsMinimumBalance = decimal.NewFromInt(1000)
	CurrentOverdraftLimit = decimal.NewFromInt(5000)
	LoanInterestRate      = decimal.RequireFromString("7.5")
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidAccountType = errors.New("invalid account type")
)

// NewCustomer is the input of AddCustomer
type NewCustomer struct {
	ID      int    `validate:"gt=0"`
	Name    string `validate:"required"`
	Address string
	Phone   string
}

// OpenAccount is the input of Teller.OpenAccount
type OpenAccount struct {
	Kind           models.AccountKind `validate:"required,oneof=savings current"`
	Number         string             `validate:"required,max=34"`
	InitialBalance decimal.Decimal
}

// Teller runs the banking operations against a Directory
type Teller struct {
	mu  sync.Mutex
	dir *store.Directory
	ids idgen.Generator
	now func() time.Time

	validate *validator.Validate
}

// Option customizes a Teller
type Option func(*Teller)

// WithClock overrides the time source used for transaction timestamps
func WithClock(now func() time.Time) Option {
	return func(t *Teller) { t.now = now }
}

func NewTeller(dir *store.Directory, ids idgen.Generator, opts ...Option) *Teller {
	t := &Teller{dir: dir, ids: ids, now: time.Now, validate: validator.New()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Directory exposes the registry the teller operates on
func (t *Teller) Directory() *store.Directory { return t.dir }

func (t *Teller) AddCustomer(ctx context.Context, req NewCustomer) (*models.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := t.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dir.AddCustomer(req.ID, req.Name, req.Address, req.Phone)
}

// OpenAccount opens a savings or current account with the bank's fixed terms.
func (t *Teller) OpenAccount(ctx context.Context, customerID int, req OpenAccount) (models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	c, err := t.dir.FindCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if req.Kind != models.KindSavings && req.Kind != models.KindCurrent {
		return nil, ErrInvalidAccountType
	}
	if err := t.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance must not be negative", ErrInvalidInput)
	}
	if t.dir.HasAccountNumber(req.Number) {
		return nil, models.ErrDuplicateAccount
	}

	var account models.Account
	switch req.Kind {
	case models.KindSavings:
		account = models.NewSavingsAccount(req.Number, c, req.InitialBalance, SavingsInterestRate, SavingsMinimumBalance)
	case models.KindCurrent:
		account = models.NewCurrentAccount(req.Number, c, req.InitialBalance, CurrentOverdraftLimit)
	}
	if err := c.AddAccount(account); err != nil {
		return nil, err
	}
	return account, nil
}

// Deposit executes a deposit transaction. Lookup failures return an error
// and change nothing; account outcomes are reported on the receipt.
func (t *Teller) Deposit(ctx context.Context, customerID int, number string, amount decimal.Decimal) (models.Receipt, error) {
	return t.execute(ctx, customerID, number, amount, models.NewDeposit)
}

// Withdraw executes a withdrawal transaction; a policy denial is reported on
// the receipt, not as an error.
func (t *Teller) Withdraw(ctx context.Context, customerID int, number string, amount decimal.Decimal) (models.Receipt, error) {
	return t.execute(ctx, customerID, number, amount, models.NewWithdrawal)
}

type txFactory func(id string, account models.Account, amount decimal.Decimal, now time.Time) *models.Transaction

func (t *Teller) execute(ctx context.Context, customerID int, number string, amount decimal.Decimal, newTx txFactory) (models.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return models.Receipt{}, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	_, account, err := t.dir.FindAccount(customerID, number)
	if err != nil {
		return models.Receipt{}, err
	}
	return newTx(t.ids.NewID(), account, amount, t.now()).Execute()
}

// ApplyLoan evaluates a loan application at the fixed loan rate.
func (t *Teller) ApplyLoan(ctx context.Context, customerID int, amount decimal.Decimal) (*models.Loan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	c, err := t.dir.FindCustomer(customerID)
	if err != nil {
		return nil, err
	}
	loan := models.NewLoan(t.ids.NewID(), c, amount, LoanInterestRate)
	loan.CheckEligibility()
	return loan, nil
}

// Customer returns the details of a customer and its accounts
func (t *Teller) Customer(ctx context.Context, customerID int) (models.CustomerDetails, error) {
	if err := ctx.Err(); err != nil {
		return models.CustomerDetails{}, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	c, err := t.dir.FindCustomer(customerID)
	if err != nil {
		return models.CustomerDetails{}, err
	}
	return c.Details(), nil
}

// AddInterest credits interest to a savings account and returns the amount credited.
func (t *Teller) AddInterest(ctx context.Context, customerID int, number string) (decimal.Decimal, models.AccountDetails, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, models.AccountDetails{}, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	_, account, err := t.dir.FindAccount(customerID, number)
	if err != nil {
		return decimal.Zero, models.AccountDetails{}, err
	}
	savings, ok := account.(*models.SavingsAccount)
	if !ok {
		return decimal.Zero, models.AccountDetails{}, models.ErrNotSavings
	}
	interest := savings.AddInterest()
	return interest, savings.Details(), nil
}
