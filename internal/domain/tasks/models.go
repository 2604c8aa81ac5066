package tasks

import (
	"fmt"
	"math"
	"time"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In-Progress"
	StatusCompleted  Status = "Completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func ParseStatus(value string) (Status, error) {
	status := Status(value)
	if !status.Valid() {
		return "", fmt.Errorf("unknown task status %q", value)
	}
	return status, nil
}

type Task struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	DueDate time.Time `json:"dueDate"`
	Status  Status    `json:"status"`
}

// DueIn returns the due date daysUntilDue calendar days after now, keeping
// the wall-clock time of now.
func DueIn(now time.Time, daysUntilDue int) time.Time {
	return now.AddDate(0, 0, daysUntilDue)
}

// DaysLeft counts whole days from now until due, truncating toward zero.
// Overdue tasks give a negative count.
func DaysLeft(due, now time.Time) int {
	return int(math.Trunc(due.Sub(now).Hours() / 24))
}
