package payroll

import "time"

type Entry struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Month      time.Time `json:"month"`
	BaseSalary float64   `json:"baseSalary"`
	Overtime   float64   `json:"overtime"`
	Deductions float64   `json:"deductions"`
	NetPay     float64   `json:"netPay"`
	Status     Status    `json:"status"`
}

// Input is a payroll entry before the store stamps its id and net pay.
type Input struct {
	EmployeeID string    `json:"employeeId"`
	Month      time.Time `json:"month"`
	BaseSalary float64   `json:"baseSalary"`
	Overtime   float64   `json:"overtime"`
	Deductions float64   `json:"deductions"`
	Status     Status    `json:"status"`
}

// Row is an entry joined with its employee's display fields. EmployeeName is
// empty when the entry references an unknown employee.
type Row struct {
	Entry
	EmployeeName string `json:"employeeName"`
	Department   string `json:"department"`
}

type Totals struct {
	Entries    int     `json:"entries"`
	BaseSalary float64 `json:"baseSalary"`
	Overtime   float64 `json:"overtime"`
	Deductions float64 `json:"deductions"`
	NetPay     float64 `json:"netPay"`
	Paid       int     `json:"paid"`
	Pending    int     `json:"pending"`
}
