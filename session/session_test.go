package session

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"banking-management/bank"
	"banking-management/idgen"
	"banking-management/store"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

// run feeds the given input lines to a fresh session and returns its output.
func run(t *testing.T, lines ...string) (string, *bank.Teller) {
	t.Helper()
	teller := bank.NewTeller(store.NewDirectory(), idgen.NewSequence("tx"), bank.WithClock(func() time.Time { return fixedNow }))
	var out bytes.Buffer
	s := New(teller, NewLineReader(strings.NewReader(strings.Join(lines, "\n")+"\n")), &out)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String(), teller
}

func mustContain(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Fatalf("output missing %q:\n%s", w, out)
		}
	}
}

func TestSavingsScenario(t *testing.T) {
	out, teller := run(t,
		"1", "1", "Alice", "1 Main St", "555-0100",
		"2", "1", "1", "S1", "1200",
		"3", "1", "S1", "300",
		"4", "1", "S1", "600",
		"6", "1",
		"7",
	)
	mustContain(t, out,
		"Customer added successfully!",
		"Account opened successfully!",
		"Deposit successful. New balance: 1500.00",
		"Deposit Transaction ID: tx-1 completed on Fri May 17 09:30:00 UTC 2024",
		"Withdrawal denied. Minimum balance required.",
		"Withdrawal Transaction ID: tx-2 completed on",
		"Customer ID: 1\nName: Alice\nAddress: 1 Main St\nPhone: 555-0100",
		"Account Number: S1\nCustomer: Alice\nBalance: 1500.00",
		"Exiting...",
	)
	_, a, err := teller.Directory().FindAccount(1, "S1")
	if err != nil || !a.Balance().Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("balance=%v err=%v", a, err)
	}
}

func TestCurrentScenario(t *testing.T) {
	out, _ := run(t,
		"1", "2", "Bob", "", "",
		"2", "2", "2", "C1", "0",
		"4", "2", "C1", "4000",
		"4", "2", "C1", "2000",
		"7",
	)
	mustContain(t, out,
		"Withdrawal successful. Remaining balance: -4000.00",
		"Withdrawal denied. Overdraft limit exceeded.",
	)
}

func TestLoanScenario(t *testing.T) {
	out, _ := run(t,
		"1", "1", "Alice", "", "",
		"2", "1", "1", "S1", "2000",
		"2", "1", "2", "C1", "3500",
		"5", "1", "20000",
		"4", "1", "C1", "501",
		"5", "1", "20000",
		"7",
	)
	mustContain(t, out,
		"Loan approved for Alice\nLoan ID: tx-1 | Customer: Alice | Approved: true",
		"Loan rejected for Alice\nLoan ID: tx-3 | Customer: Alice | Approved: false",
	)
}

func TestUnknownCustomerAbortsEveryOperation(t *testing.T) {
	out, teller := run(t,
		"2", "9",
		"3", "9",
		"4", "9",
		"5", "9",
		"6", "9",
		"7",
	)
	if n := strings.Count(out, "Customer not found!"); n != 5 {
		t.Fatalf("not-found reports=%d want=5:\n%s", n, out)
	}
	if len(teller.Directory().Customers()) != 0 {
		t.Fatal("state mutated")
	}
}

func TestUnknownAccount(t *testing.T) {
	out, _ := run(t,
		"1", "1", "Alice", "", "",
		"3", "1", "S9",
		"7",
	)
	mustContain(t, out, "Account not found!")
	if strings.Contains(out, "Enter Deposit Amount") {
		t.Fatal("amount prompted for unknown account")
	}
}

func TestInvalidChoicesAndMalformedNumbers(t *testing.T) {
	out, _ := run(t,
		"9",
		"abc",
		"1", "one", "1", "Alice", "", "",
		"2", "1", "1", "S1", "lots", "1500",
		"3", "1", "S1", "-5",
		"7",
	)
	if n := strings.Count(out, "Invalid choice!"); n != 2 {
		t.Fatalf("invalid choice reports=%d want=2:\n%s", n, out)
	}
	if n := strings.Count(out, "Invalid number, please try again."); n != 2 {
		t.Fatalf("re-prompts=%d want=2:\n%s", n, out)
	}
	mustContain(t, out,
		"Customer added successfully!",
		"Account opened successfully!",
		"Invalid amount. Amount must be positive.",
	)
}

func TestOpenAccountRejections(t *testing.T) {
	out, _ := run(t,
		"1", "1", "Alice", "", "",
		"2", "1", "3",
		"2", "1", "1", "S1", "1000",
		"2", "1", "2", "S1", "0",
		"1", "1", "Again", "", "",
		"7",
	)
	mustContain(t, out,
		"Invalid account type!",
		"Account number already exists!",
		"Customer ID already exists!",
	)
}

func TestEndOfInputExits(t *testing.T) {
	out, _ := run(t, "1", "1", "Alice")
	mustContain(t, out, "Exiting...")
}

func TestCanceledContext(t *testing.T) {
	teller := bank.NewTeller(store.NewDirectory(), idgen.NewSequence("tx"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	if err := New(teller, NewLineReader(strings.NewReader("7\n")), &out).Run(ctx); err != context.Canceled {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
