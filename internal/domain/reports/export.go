package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"hrdash/internal/domain/core"
	"hrdash/internal/domain/payroll"
)

const (
	EmployeesSheet = "Employees"
	PayrollSheet   = "Payroll"

	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// WriteEmployeesXLSX writes one row per employee to w as an xlsx workbook.
func WriteEmployeesXLSX(w io.Writer, employees []core.Employee) error {
	rows := make([][]any, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, []any{
			emp.ID,
			emp.FirstName,
			emp.LastName,
			emp.Email,
			emp.Role,
			emp.Department,
			string(emp.Status),
			emp.JoinDate.Format(dateLayout),
		})
	}
	headers := []string{"ID", "First Name", "Last Name", "Email", "Role", "Department", "Status", "Join Date"}
	return writeSheet(w, EmployeesSheet, headers, rows)
}

// WritePayrollXLSX writes one row per payroll entry followed by a totals row.
func WritePayrollXLSX(w io.Writer, list []payroll.Row) error {
	rows := make([][]any, 0, len(list)+1)
	entries := make([]payroll.Entry, 0, len(list))
	for _, row := range list {
		entries = append(entries, row.Entry)
		rows = append(rows, []any{
			row.ID,
			row.EmployeeName,
			row.Department,
			row.Month.Format(monthLayout),
			row.BaseSalary,
			row.Overtime,
			row.Deductions,
			row.NetPay,
			string(row.Status),
		})
	}
	totals := payroll.Summarize(entries)
	rows = append(rows, []any{"Total", "", "", "", totals.BaseSalary, totals.Overtime, totals.Deductions, totals.NetPay, ""})

	headers := []string{"ID", "Employee", "Department", "Month", "Base Salary", "Overtime", "Deductions", "Net Pay", "Status"}
	return writeSheet(w, PayrollSheet, headers, rows)
}

func writeSheet(w io.Writer, sheet string, headers []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return f.Write(w)
}
