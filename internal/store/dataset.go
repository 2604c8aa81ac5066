package store

import (
	"hrdash/internal/domain/core"
	"hrdash/internal/domain/leave"
	"hrdash/internal/domain/payroll"
	"hrdash/internal/domain/recruitment"
	"hrdash/internal/domain/tasks"
	"hrdash/internal/domain/timetracker"
	"hrdash/internal/platform/events"
)

// Dataset is a full copy of every collection the store holds, newest first.
type Dataset struct {
	Employees      []core.Employee         `json:"employees"`
	Attendance     []core.AttendanceRecord `json:"attendance"`
	Applicants     []recruitment.Applicant `json:"applicants"`
	Payroll        []payroll.Entry         `json:"payroll"`
	Tasks          []tasks.Task            `json:"tasks"`
	DayOffRequests []leave.DayOffRequest   `json:"dayOffRequests"`
	TimeTrackers   []timetracker.Entry     `json:"timeTrackers"`
}

func (d Dataset) Clone() Dataset {
	return Dataset{
		Employees:      cloneSlice(d.Employees),
		Attendance:     cloneSlice(d.Attendance),
		Applicants:     cloneApplicants(d.Applicants),
		Payroll:        cloneSlice(d.Payroll),
		Tasks:          cloneSlice(d.Tasks),
		DayOffRequests: cloneSlice(d.DayOffRequests),
		TimeTrackers:   cloneTrackers(d.TimeTrackers),
	}
}

func (d *Dataset) collection(c events.Collection) any {
	switch c {
	case events.CollectionEmployees:
		return cloneSlice(d.Employees)
	case events.CollectionAttendance:
		return cloneSlice(d.Attendance)
	case events.CollectionApplicants:
		return cloneApplicants(d.Applicants)
	case events.CollectionPayroll:
		return cloneSlice(d.Payroll)
	case events.CollectionTasks:
		return cloneSlice(d.Tasks)
	case events.CollectionDayOffRequests:
		return cloneSlice(d.DayOffRequests)
	case events.CollectionTimeTrackers:
		return cloneTrackers(d.TimeTrackers)
	}
	return nil
}

// cloneSlice copies a slice of plain values. The result is never nil.
func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneApplicants(in []recruitment.Applicant) []recruitment.Applicant {
	out := make([]recruitment.Applicant, len(in))
	for i, app := range in {
		out[i] = app.Clone()
	}
	return out
}

func cloneTrackers(in []timetracker.Entry) []timetracker.Entry {
	out := make([]timetracker.Entry, len(in))
	for i, entry := range in {
		out[i] = entry.Clone()
	}
	return out
}

func prepend[T any](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	return append(out, list...)
}
