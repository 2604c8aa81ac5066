package leave

import "errors"

var (
	ErrRequestNotFound   = errors.New("day-off request not found")
	ErrInvalidTransition = errors.New("day-off request already decided")
)
