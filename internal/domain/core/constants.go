package core

import "fmt"

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "Active"
	EmployeeStatusInactive EmployeeStatus = "Inactive"
)

var Departments = []string{"Engineering", "Design", "Marketing", "HR", "Sales"}

func (s EmployeeStatus) Valid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusInactive:
		return true
	}
	return false
}

func ParseEmployeeStatus(value string) (EmployeeStatus, error) {
	status := EmployeeStatus(value)
	if !status.Valid() {
		return "", fmt.Errorf("unknown employee status %q", value)
	}
	return status, nil
}

type AttendanceStatus string

const (
	AttendanceOnTime AttendanceStatus = "On-Time"
	AttendanceLate   AttendanceStatus = "Late"
	AttendanceAbsent AttendanceStatus = "Absent"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceOnTime, AttendanceLate, AttendanceAbsent:
		return true
	}
	return false
}
