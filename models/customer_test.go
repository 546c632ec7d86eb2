package models

import (
	"errors"
	"testing"
)

func TestCustomerAddAccountKeepsOrder(t *testing.T) {
	c := NewCustomer(1, "Alice", "1 Main St", "555-0100")
	_ = c.AddAccount(NewSavingsAccount("S1", c, d("1200"), d("3.5"), d("1000")))
	_ = c.AddAccount(NewCurrentAccount("C1", c, d("0"), d("5000")))

	accs := c.Accounts()
	if len(accs) != 2 || accs[0].Number() != "S1" || accs[1].Number() != "C1" {
		t.Fatalf("unexpected accounts: %+v", accs)
	}
	if err := c.AddAccount(NewCurrentAccount("S1", c, d("0"), d("5000"))); !errors.Is(err, ErrDuplicateAccount) {
		t.Fatalf("want ErrDuplicateAccount, got %v", err)
	}
	if len(c.Accounts()) != 2 {
		t.Fatalf("duplicate was appended")
	}
}

func TestCustomerFindAccountAndTotal(t *testing.T) {
	c := NewCustomer(1, "Alice", "", "")
	_ = c.AddAccount(NewSavingsAccount("S1", c, d("2000"), d("3.5"), d("1000")))
	_ = c.AddAccount(NewCurrentAccount("C1", c, d("-500.5"), d("5000")))

	if _, ok := c.FindAccount("nope"); ok {
		t.Fatal("found unknown account")
	}
	a, ok := c.FindAccount("C1")
	if !ok || a.Kind() != KindCurrent {
		t.Fatalf("FindAccount(C1)=%v,%v", a, ok)
	}
	if got := c.TotalBalance(); !got.Equal(d("1499.5")) {
		t.Fatalf("total=%s want=1499.5", got)
	}
}

func TestCustomerDetails(t *testing.T) {
	c := NewCustomer(3, "Carol", "9 Elm", "555-0199")
	_ = c.AddAccount(NewCurrentAccount("C1", c, d("10"), d("5000")))
	det := c.Details()
	want := "Customer ID: 3\nName: Carol\nAddress: 9 Elm\nPhone: 555-0199"
	if det.String() != want {
		t.Fatalf("got=%q want=%q", det.String(), want)
	}
	if len(det.Accounts) != 1 || det.Accounts[0].CustomerName != "Carol" {
		t.Fatalf("accounts=%+v", det.Accounts)
	}
}
