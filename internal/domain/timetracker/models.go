package timetracker

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusRunning   Status = "Running"
	StatusCompleted Status = "Completed"
)

func (s Status) Valid() bool {
	return s == StatusRunning || s == StatusCompleted
}

func ParseStatus(value string) (Status, error) {
	status := Status(value)
	if !status.Valid() {
		return "", fmt.Errorf("unknown tracker status %q", value)
	}
	return status, nil
}

// Entry is a block of tracked work. Duration is free text supplied by the
// caller (for example "4h 30m") and is never derived from the start and end
// times.
type Entry struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Project    string     `json:"project"`
	Task       string     `json:"task"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	Duration   string     `json:"duration"`
	Status     Status     `json:"status"`
}

type Input struct {
	EmployeeID string     `json:"employeeId"`
	Project    string     `json:"project"`
	Task       string     `json:"task"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	Duration   string     `json:"duration"`
}

var Projects = []string{"Website Redesign", "Mobile App", "Marketing Campaign", "Internal Tools"}

func FilterByStatus(entries []Entry, status Status) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Status == status {
			out = append(out, entry)
		}
	}
	return out
}

// Clone copies e including its end time.
func (e Entry) Clone() Entry {
	out := e
	if e.EndTime != nil {
		end := *e.EndTime
		out.EndTime = &end
	}
	return out
}
