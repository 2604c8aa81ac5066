package core

import (
	"strings"
	"time"
)

// FilterEmployees keeps employees whose first name, last name or role
// contains query, ignoring case. An empty query returns the input unchanged.
func FilterEmployees(employees []Employee, query string) []Employee {
	if query == "" {
		return employees
	}
	needle := strings.ToLower(query)
	out := make([]Employee, 0, len(employees))
	for _, emp := range employees {
		if strings.Contains(strings.ToLower(emp.FirstName), needle) ||
			strings.Contains(strings.ToLower(emp.LastName), needle) ||
			strings.Contains(strings.ToLower(emp.Role), needle) {
			out = append(out, emp)
		}
	}
	return out
}

// AttendanceForDay returns the records dated on the same calendar day as day,
// compared in day's location.
func AttendanceForDay(records []AttendanceRecord, day time.Time) []AttendanceRecord {
	y, m, d := day.Date()
	out := make([]AttendanceRecord, 0)
	for _, rec := range records {
		ry, rm, rd := rec.Date.In(day.Location()).Date()
		if ry == y && rm == m && rd == d {
			out = append(out, rec)
		}
	}
	return out
}

// AttendanceByEmployee indexes records by employee id. When an employee has
// more than one record the first one wins.
func AttendanceByEmployee(records []AttendanceRecord) map[string]AttendanceRecord {
	out := make(map[string]AttendanceRecord, len(records))
	for _, rec := range records {
		if _, ok := out[rec.EmployeeID]; ok {
			continue
		}
		out[rec.EmployeeID] = rec
	}
	return out
}

func IndexEmployees(employees []Employee) map[string]Employee {
	out := make(map[string]Employee, len(employees))
	for _, emp := range employees {
		out[emp.ID] = emp
	}
	return out
}
