package payroll

import (
	"strings"

	"hrdash/internal/domain/core"
)

// JoinEmployees attaches employee display fields to each entry, keeping entry
// order.
func JoinEmployees(entries []Entry, employees []core.Employee) []Row {
	index := core.IndexEmployees(employees)
	rows := make([]Row, 0, len(entries))
	for _, entry := range entries {
		row := Row{Entry: entry}
		if emp, ok := index[entry.EmployeeID]; ok {
			row.EmployeeName = emp.FullName()
			row.Department = emp.Department
		}
		rows = append(rows, row)
	}
	return rows
}

// FilterByEmployeeName keeps rows whose employee first or last name contains
// query, ignoring case. Rows for unknown employees never match a non-empty
// query.
func FilterByEmployeeName(entries []Entry, employees []core.Employee, query string) []Row {
	rows := JoinEmployees(entries, employees)
	if query == "" {
		return rows
	}
	index := core.IndexEmployees(employees)
	needle := strings.ToLower(query)
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		emp, ok := index[row.EmployeeID]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(emp.FirstName), needle) ||
			strings.Contains(strings.ToLower(emp.LastName), needle) {
			out = append(out, row)
		}
	}
	return out
}
