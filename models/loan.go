package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LoanThreshold is the aggregate balance a customer needs for approval
var LoanThreshold = decimal.NewFromInt(5000)

// Loan is a one-time eligibility evaluation; it never moves funds
type Loan struct {
	ID           string
	Customer     *Customer
	Amount       decimal.Decimal
	InterestRate decimal.Decimal
	Approved     bool
}

// LoanStatus is the read-only view of a loan
type LoanStatus struct {
	ID           string          `json:"loanId"`
	CustomerName string          `json:"customer"`
	Amount       decimal.Decimal `json:"amount"`
	InterestRate decimal.Decimal `json:"interestRate"`
	Approved     bool            `json:"approved"`
}

func (s LoanStatus) String() string {
	return fmt.Sprintf("Loan ID: %s | Customer: %s | Approved: %t", s.ID, s.CustomerName, s.Approved)
}

func NewLoan(id string, customer *Customer, amount, rate decimal.Decimal) *Loan {
	return &Loan{ID: id, Customer: customer, Amount: amount, InterestRate: rate}
}

// CheckEligibility approves the loan when the customer's accounts hold at
// least LoanThreshold in total. It is recomputed on every call.
func (l *Loan) CheckEligibility() bool {
	l.Approved = l.Customer.TotalBalance().GreaterThanOrEqual(LoanThreshold)
	return l.Approved
}

func (l *Loan) Status() LoanStatus {
	return LoanStatus{
		ID:           l.ID,
		CustomerName: l.Customer.Name,
		Amount:       l.Amount,
		InterestRate: l.InterestRate,
		Approved:     l.Approved,
	}
}
