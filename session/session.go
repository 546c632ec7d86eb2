// Package session implements the numbered console menu of the bank.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"banking-management/bank"
	"banking-management/models"
	"banking-management/store"

	"github.com/shopspring/decimal"
)

// Menu choices
const (
	ChoiceAddCustomer = iota + 1
	ChoiceOpenAccount
	ChoiceDeposit
	ChoiceWithdraw
	ChoiceApplyLoan
	ChoiceDisplayDetails
	ChoiceExit
)

// Session reads one menu choice at a time and runs it to completion
type Session struct {
	teller *bank.Teller
	in     Input
	out    io.Writer
}

func New(teller *bank.Teller, in Input, out io.Writer) *Session {
	return &Session{teller: teller, in: in, out: out}
}

// Run loops until the Exit choice, end of input, or ctx is done.
// Exit and end of input return nil.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printMenu()
		choice, err := s.in.ReadInt()
		if errors.Is(err, ErrMalformed) {
			fmt.Fprintln(s.out, "Invalid choice!")
			continue
		}
		if err != nil {
			return s.finish(err)
		}

		if choice == ChoiceExit {
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}
		if err := s.dispatch(ctx, choice); err != nil {
			return s.finish(err)
		}
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out, "\nExiting...")
		return nil
	}
	return err
}

func (s *Session) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case ChoiceAddCustomer:
		return s.addCustomer(ctx)
	case ChoiceOpenAccount:
		return s.openAccount(ctx)
	case ChoiceDeposit:
		return s.transact(ctx, models.TxDeposit)
	case ChoiceWithdraw:
		return s.transact(ctx, models.TxWithdrawal)
	case ChoiceApplyLoan:
		return s.applyLoan(ctx)
	case ChoiceDisplayDetails:
		return s.displayDetails(ctx)
	default:
		fmt.Fprintln(s.out, "Invalid choice!")
		return nil
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out, "\n--- Banking Management System ---")
	fmt.Fprintln(s.out, "1. Add Customer")
	fmt.Fprintln(s.out, "2. Open Account")
	fmt.Fprintln(s.out, "3. Deposit Money")
	fmt.Fprintln(s.out, "4. Withdraw Money")
	fmt.Fprintln(s.out, "5. Apply Loan")
	fmt.Fprintln(s.out, "6. Display Account Details")
	fmt.Fprintln(s.out, "7. Exit")
	fmt.Fprint(s.out, "Enter your choice: ")
}

func (s *Session) addCustomer(ctx context.Context) error {
	id, err := s.readInt("Enter Customer ID: ")
	if err != nil {
		return err
	}
	name, err := s.readLine("Enter Name: ")
	if err != nil {
		return err
	}
	address, err := s.readLine("Enter Address: ")
	if err != nil {
		return err
	}
	phone, err := s.readLine("Enter Phone: ")
	if err != nil {
		return err
	}

	_, err = s.teller.AddCustomer(ctx, bank.NewCustomer{ID: id, Name: name, Address: address, Phone: phone})
	switch {
	case errors.Is(err, store.ErrDuplicateCustomer):
		fmt.Fprintln(s.out, "Customer ID already exists!")
	case errors.Is(err, bank.ErrInvalidInput):
		fmt.Fprintln(s.out, "Invalid customer details! ID must be positive and name is required.")
	case err != nil:
		return err
	default:
		fmt.Fprintln(s.out, "Customer added successfully!")
	}
	return nil
}

func (s *Session) openAccount(ctx context.Context) error {
	customerID, ok, err := s.lookupCustomer()
	if err != nil || !ok {
		return err
	}

	fmt.Fprintln(s.out, "1. Savings Account\n2. Current Account")
	kindChoice, err := s.readInt("Enter Account Type: ")
	if err != nil {
		return err
	}
	var kind models.AccountKind
	switch kindChoice {
	case 1:
		kind = models.KindSavings
	case 2:
		kind = models.KindCurrent
	default:
		fmt.Fprintln(s.out, "Invalid account type!")
		return nil
	}
	number, err := s.readLine("Enter Account Number: ")
	if err != nil {
		return err
	}
	balance, err := s.readDecimal("Enter Initial Balance: ")
	if err != nil {
		return err
	}

	_, err = s.teller.OpenAccount(ctx, customerID, bank.OpenAccount{
		Kind:           kind,
		Number:         strings.TrimSpace(number),
		InitialBalance: balance,
	})
	switch {
	case errors.Is(err, store.ErrCustomerNotFound):
		fmt.Fprintln(s.out, "Customer not found!")
	case errors.Is(err, models.ErrDuplicateAccount):
		fmt.Fprintln(s.out, "Account number already exists!")
	case errors.Is(err, bank.ErrInvalidInput):
		fmt.Fprintln(s.out, "Invalid account details! Account number is required and the initial balance must not be negative.")
	case err != nil:
		return err
	default:
		fmt.Fprintln(s.out, "Account opened successfully!")
	}
	return nil
}

func (s *Session) transact(ctx context.Context, kind models.TransactionKind) error {
	customerID, ok, err := s.lookupCustomer()
	if err != nil || !ok {
		return err
	}
	number, err := s.readToken("Enter Account Number: ")
	if err != nil {
		return err
	}
	if _, _, err := s.teller.Directory().FindAccount(customerID, number); err != nil {
		fmt.Fprintln(s.out, "Account not found!")
		return nil
	}

	label, exec := "Deposit", s.teller.Deposit
	if kind == models.TxWithdrawal {
		label, exec = "Withdrawal", s.teller.Withdraw
	}
	amount, err := s.readDecimal("Enter " + label + " Amount: ")
	if err != nil {
		return err
	}

	receipt, err := exec(ctx, customerID, number, amount)
	if err != nil {
		if s.reportNotFound(err) {
			return nil
		}
		return err
	}
	s.printOutcome(receipt)
	fmt.Fprintf(s.out, "%s Transaction ID: %s completed on %s\n", label, receipt.TransactionID, receipt.CreatedAt.Format(time.UnixDate))
	return nil
}

func (s *Session) printOutcome(r models.Receipt) {
	switch {
	case errors.Is(r.Outcome, models.ErrMinimumBalance):
		fmt.Fprintln(s.out, "Withdrawal denied. Minimum balance required.")
	case errors.Is(r.Outcome, models.ErrOverdraftExceeded):
		fmt.Fprintln(s.out, "Withdrawal denied. Overdraft limit exceeded.")
	case errors.Is(r.Outcome, models.ErrInvalidAmount):
		fmt.Fprintln(s.out, "Invalid amount. Amount must be positive.")
	case r.Kind == models.TxDeposit:
		fmt.Fprintf(s.out, "Deposit successful. New balance: %s\n", money(r.Balance))
	default:
		fmt.Fprintf(s.out, "Withdrawal successful. Remaining balance: %s\n", money(r.Balance))
	}
}

func (s *Session) applyLoan(ctx context.Context) error {
	customerID, ok, err := s.lookupCustomer()
	if err != nil || !ok {
		return err
	}
	amount, err := s.readDecimal("Enter Loan Amount: ")
	if err != nil {
		return err
	}
	loan, err := s.teller.ApplyLoan(ctx, customerID, amount)
	if err != nil {
		if s.reportNotFound(err) {
			return nil
		}
		return err
	}
	if loan.Approved {
		fmt.Fprintf(s.out, "Loan approved for %s\n", loan.Customer.Name)
	} else {
		fmt.Fprintf(s.out, "Loan rejected for %s\n", loan.Customer.Name)
	}
	fmt.Fprintln(s.out, loan.Status())
	return nil
}

func (s *Session) displayDetails(ctx context.Context) error {
	id, err := s.readInt("Enter Customer ID: ")
	if err != nil {
		return err
	}
	details, err := s.teller.Customer(ctx, id)
	if err != nil {
		if s.reportNotFound(err) {
			return nil
		}
		return err
	}
	fmt.Fprintln(s.out, details)
	for _, a := range details.Accounts {
		fmt.Fprintln(s.out, a)
	}
	return nil
}

// lookupCustomer prompts for a customer ID and reports a miss to the user.
func (s *Session) lookupCustomer() (int, bool, error) {
	id, err := s.readInt("Enter Customer ID: ")
	if err != nil {
		return 0, false, err
	}
	if _, err := s.teller.Directory().FindCustomer(id); err != nil {
		fmt.Fprintln(s.out, "Customer not found!")
		return id, false, nil
	}
	return id, true, nil
}

func (s *Session) reportNotFound(err error) bool {
	switch {
	case errors.Is(err, store.ErrCustomerNotFound):
		fmt.Fprintln(s.out, "Customer not found!")
	case errors.Is(err, store.ErrAccountNotFound):
		fmt.Fprintln(s.out, "Account not found!")
	default:
		return false
	}
	return true
}

func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	return s.in.ReadLine()
}

func (s *Session) readToken(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	return s.in.ReadToken()
}

// readInt re-prompts until a whole number or a read error arrives.
func (s *Session) readInt(prompt string) (int, error) {
	for {
		fmt.Fprint(s.out, prompt)
		n, err := s.in.ReadInt()
		if errors.Is(err, ErrMalformed) {
			fmt.Fprintln(s.out, "Invalid number, please try again.")
			continue
		}
		return n, err
	}
}

func (s *Session) readDecimal(prompt string) (decimal.Decimal, error) {
	for {
		fmt.Fprint(s.out, prompt)
		v, err := s.in.ReadDecimal()
		if errors.Is(err, ErrMalformed) {
			fmt.Fprintln(s.out, "Invalid number, please try again.")
			continue
		}
		return v, err
	}
}

func money(v decimal.Decimal) string { return v.StringFixed(2) }
