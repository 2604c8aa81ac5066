package leave

import "time"

// DayOffRequest is an employee's request for time away.
type DayOffRequest struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Type       Type      `json:"type"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Reason     string    `json:"reason"`
	Status     Status    `json:"status"`
}

type DayOffInput struct {
	EmployeeID string    `json:"employeeId"`
	Type       Type      `json:"type"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Reason     string    `json:"reason"`
}
