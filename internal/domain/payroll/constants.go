package payroll

import "fmt"

type Status string

const (
	StatusPaid    Status = "Paid"
	StatusPending Status = "Pending"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPaid, StatusPending:
		return true
	}
	return false
}

func ParseStatus(value string) (Status, error) {
	status := Status(value)
	if !status.Valid() {
		return "", fmt.Errorf("unknown payroll status %q", value)
	}
	return status, nil
}
