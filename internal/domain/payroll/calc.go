package payroll

// NetPay is base salary plus overtime minus deductions. No rounding is
// applied and negative inputs are taken as given.
func NetPay(baseSalary, overtime, deductions float64) float64 {
	return baseSalary + overtime - deductions
}

// NewEntry stamps id and net pay onto input. An empty status defaults to
// Pending.
func NewEntry(id string, input Input) Entry {
	status := input.Status
	if status == "" {
		status = StatusPending
	}
	return Entry{
		ID:         id,
		EmployeeID: input.EmployeeID,
		Month:      input.Month,
		BaseSalary: input.BaseSalary,
		Overtime:   input.Overtime,
		Deductions: input.Deductions,
		NetPay:     NetPay(input.BaseSalary, input.Overtime, input.Deductions),
		Status:     status,
	}
}

func Summarize(entries []Entry) Totals {
	var totals Totals
	for _, entry := range entries {
		totals.Entries++
		totals.BaseSalary += entry.BaseSalary
		totals.Overtime += entry.Overtime
		totals.Deductions += entry.Deductions
		totals.NetPay += entry.NetPay
		switch entry.Status {
		case StatusPaid:
			totals.Paid++
		case StatusPending:
			totals.Pending++
		}
	}
	return totals
}
