package payroll

import "testing"

func TestNetPay(t *testing.T) {
	if net := NetPay(5000, 200, 300); net != 4900 {
		t.Fatalf("expected net 4900, got %v", net)
	}
}

func TestNetPayAcceptsNegativeInputs(t *testing.T) {
	if net := NetPay(-100, 0, 50); net != -150 {
		t.Fatalf("expected net -150, got %v", net)
	}
}

func TestNewEntryDefaultsPending(t *testing.T) {
	entry := NewEntry("P1", Input{EmployeeID: "E1", BaseSalary: 5000, Overtime: 200, Deductions: 300})
	if entry.NetPay != 4900 {
		t.Fatalf("expected net 4900, got %v", entry.NetPay)
	}
	if entry.Status != StatusPending {
		t.Fatalf("expected pending status, got %q", entry.Status)
	}
	if entry.ID != "P1" || entry.EmployeeID != "E1" {
		t.Fatalf("unexpected identity %+v", entry)
	}
}

func TestNewEntryKeepsExplicitStatus(t *testing.T) {
	entry := NewEntry("P2", Input{BaseSalary: 10, Status: StatusPaid})
	if entry.Status != StatusPaid {
		t.Fatalf("expected paid status, got %q", entry.Status)
	}
}

func TestSummarize(t *testing.T) {
	totals := Summarize([]Entry{
		NewEntry("P1", Input{BaseSalary: 1000, Overtime: 100, Deductions: 50, Status: StatusPaid}),
		NewEntry("P2", Input{BaseSalary: 2000, Overtime: 0, Deductions: 200}),
	})
	if totals.Entries != 2 || totals.Paid != 1 || totals.Pending != 1 {
		t.Fatalf("unexpected counts %+v", totals)
	}
	if totals.NetPay != 2850 {
		t.Fatalf("expected net total 2850, got %v", totals.NetPay)
	}
}
