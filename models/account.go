package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountKind identifies the variant of an Account
type AccountKind string

const (
	KindSavings AccountKind = "savings"
	KindCurrent AccountKind = "current"
)

// Account is a balance-holding entity owned by exactly one Customer.
// The withdrawal policy depends on the variant.
type Account interface {
	Kind() AccountKind
	Number() string
	Balance() decimal.Decimal
	Owner() *Customer
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	Details() AccountDetails
}

// AccountDetails is the read-only view of an account
type AccountDetails struct {
	Number       string          `json:"accountNumber"`
	Type         AccountKind     `json:"type"`
	CustomerName string          `json:"customer"`
	Balance      decimal.Decimal `json:"balance"`
}

func (d AccountDetails) String() string {
	return fmt.Sprintf("Account Number: %s\nCustomer: %s\nBalance: %s", d.Number, d.CustomerName, d.Balance.StringFixed(2))
}

// baseAccount holds the state shared by every variant
type baseAccount struct {
	number  string
	owner   *Customer
	balance decimal.Decimal
}

func (a *baseAccount) Number() string           { return a.number }
func (a *baseAccount) Balance() decimal.Decimal { return a.balance }
func (a *baseAccount) Owner() *Customer         { return a.owner }

// Deposit adds amount to the balance. Deposits have no upper bound.
func (a *baseAccount) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

func (a *baseAccount) details(kind AccountKind) AccountDetails {
	var name string
	if a.owner != nil {
		name = a.owner.Name
	}
	return AccountDetails{Number: a.number, Type: kind, CustomerName: name, Balance: a.balance}
}

// SavingsAccount pays interest and keeps a minimum balance
type SavingsAccount struct {
	baseAccount
	InterestRate   decimal.Decimal // percent
	MinimumBalance decimal.Decimal
}

// NewSavingsAccount creates a savings account owned by customer
func NewSavingsAccount(number string, customer *Customer, balance, rate, minimum decimal.Decimal) *SavingsAccount {
	return &SavingsAccount{
		baseAccount:    baseAccount{number: number, owner: customer, balance: balance},
		InterestRate:   rate,
		MinimumBalance: minimum,
	}
}

func (s *SavingsAccount) Kind() AccountKind { return KindSavings }

// Withdraw succeeds only if the resulting balance stays at or above the minimum.
func (s *SavingsAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if s.balance.Sub(amount).LessThan(s.MinimumBalance) {
		return ErrMinimumBalance
	}
	s.balance = s.balance.Sub(amount)
	return nil
}

// AddInterest credits balance * rate / 100 and returns the credited amount.
func (s *SavingsAccount) AddInterest() decimal.Decimal {
	interest := s.balance.Mul(s.InterestRate).Div(decimal.NewFromInt(100))
	s.balance = s.balance.Add(interest)
	return interest
}

func (s *SavingsAccount) Details() AccountDetails { return s.details(KindSavings) }

// CurrentAccount may go negative down to -OverdraftLimit
type CurrentAccount struct {
	baseAccount
	OverdraftLimit decimal.Decimal
}

// NewCurrentAccount creates a current account owned by customer
func NewCurrentAccount(number string, customer *Customer, balance, overdraft decimal.Decimal) *CurrentAccount {
	return &CurrentAccount{
		baseAccount:    baseAccount{number: number, owner: customer, balance: balance},
		OverdraftLimit: overdraft,
	}
}

func (c *CurrentAccount) Kind() AccountKind { return KindCurrent }

// Withdraw succeeds only if balance + overdraft limit covers amount.
func (c *CurrentAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if c.balance.Add(c.OverdraftLimit).LessThan(amount) {
		return ErrOverdraftExceeded
	}
	c.balance = c.balance.Sub(amount)
	return nil
}

func (c *CurrentAccount) Details() AccountDetails { return c.details(KindCurrent) }
