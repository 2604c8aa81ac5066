package core

import "time"

type Employee struct {
	ID         string         `json:"id"`
	FirstName  string         `json:"firstName"`
	LastName   string         `json:"lastName"`
	Email      string         `json:"email"`
	Role       string         `json:"role"`
	Department string         `json:"department"`
	Status     EmployeeStatus `json:"status"`
	JoinDate   time.Time      `json:"joinDate"`
	Avatar     string         `json:"avatar"`
}

// EmployeeInput carries the caller-supplied fields of a new employee. ID and
// Avatar are stamped by the store.
type EmployeeInput struct {
	FirstName  string         `json:"firstName"`
	LastName   string         `json:"lastName"`
	Email      string         `json:"email"`
	Role       string         `json:"role"`
	Department string         `json:"department"`
	Status     EmployeeStatus `json:"status"`
	JoinDate   time.Time      `json:"joinDate"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type AttendanceRecord struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employeeId"`
	Date       time.Time        `json:"date"`
	CheckIn    time.Time        `json:"checkIn"`
	CheckOut   time.Time        `json:"checkOut"`
	Status     AttendanceStatus `json:"status"`
}
