package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Customer represents a bank customer and owns its accounts
type Customer struct {
	ID       int
	Name     string
	Address  string
	Phone    string
	accounts []Account
}

// CustomerDetails is the read-only view of a customer
type CustomerDetails struct {
	ID       int              `json:"id"`
	Name     string           `json:"name"`
	Address  string           `json:"address"`
	Phone    string           `json:"phone"`
	Accounts []AccountDetails `json:"accounts"`
}

func (d CustomerDetails) String() string {
	return fmt.Sprintf("Customer ID: %d\nName: %s\nAddress: %s\nPhone: %s", d.ID, d.Name, d.Address, d.Phone)
}

func NewCustomer(id int, name, address, phone string) *Customer {
	return &Customer{ID: id, Name: name, Address: address, Phone: phone}
}

// AddAccount appends account, rejecting a number the customer already holds.
func (c *Customer) AddAccount(account Account) error {
	if _, ok := c.FindAccount(account.Number()); ok {
		return ErrDuplicateAccount
	}
	c.accounts = append(c.accounts, account)
	return nil
}

// Accounts returns the owned accounts in insertion order.
// The slice is a copy; the accounts are not.
func (c *Customer) Accounts() []Account {
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// FindAccount returns the account with the given number
func (c *Customer) FindAccount(number string) (Account, bool) {
	for _, a := range c.accounts {
		if a.Number() == number {
			return a, true
		}
	}
	return nil, false
}

// TotalBalance sums the balances of every owned account
func (c *Customer) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range c.accounts {
		total = total.Add(a.Balance())
	}
	return total
}

func (c *Customer) Details() CustomerDetails {
	d := CustomerDetails{ID: c.ID, Name: c.Name, Address: c.Address, Phone: c.Phone}
	d.Accounts = make([]AccountDetails, 0, len(c.accounts))
	for _, a := range c.accounts {
		d.Accounts = append(d.Accounts, a.Details())
	}
	return d
}
