package leave

import (
	"errors"
	"time"
)

// CalculateDays returns inclusive day count between start and end.
func CalculateDays(start, end time.Time) (float64, error) {
	if end.Before(start) {
		return 0, errors.New("end date before start date")
	}
	return end.Sub(start).Hours()/24 + 1, nil
}

// Decide applies an approve or reject decision to a request in state current.
// Only pending requests move; repeating the decision already taken is a
// no-op, and reversing it fails with ErrInvalidTransition.
func Decide(current, target Status) (Status, bool, error) {
	if target != StatusApproved && target != StatusRejected {
		return current, false, ErrInvalidTransition
	}
	switch current {
	case StatusPending:
		return target, true, nil
	case target:
		return current, false, nil
	default:
		return current, false, ErrInvalidTransition
	}
}
