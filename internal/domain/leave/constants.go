package leave

import "fmt"

type Type string

const (
	TypeSick     Type = "Sick Leave"
	TypeAnnual   Type = "Annual Leave"
	TypeRemote   Type = "Remote Work"
	TypePersonal Type = "Personal"
)

func (t Type) Valid() bool {
	switch t {
	case TypeSick, TypeAnnual, TypeRemote, TypePersonal:
		return true
	}
	return false
}

func ParseType(value string) (Type, error) {
	t := Type(value)
	if !t.Valid() {
		return "", fmt.Errorf("unknown day-off type %q", value)
	}
	return t, nil
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
