package store

import (
	"time"

	"hrdash/internal/domain/core"
	"hrdash/internal/platform/events"
)

// CreateEmployee stamps a fresh id and avatar onto in and puts the employee
// at the front of the collection. Field presence is the caller's concern.
func (s *Store) CreateEmployee(in core.EmployeeInput) (core.Employee, error) {
	var created core.Employee
	err := s.mutate(events.CollectionEmployees, events.ActionCreate, func(d *Dataset) (string, error) {
		created = core.Employee{
			ID:         s.newID(),
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			Email:      in.Email,
			Role:       in.Role,
			Department: in.Department,
			Status:     in.Status,
			JoinDate:   in.JoinDate,
			Avatar:     s.newAvatar(),
		}
		d.Employees = prepend(d.Employees, created)
		return created.ID, nil
	})
	if err != nil {
		return core.Employee{}, err
	}
	return created, nil
}

func (s *Store) Employees() ([]core.Employee, error) {
	var out []core.Employee
	err := s.read(func(d *Dataset) {
		out = cloneSlice(d.Employees)
	})
	return out, err
}

func (s *Store) Employee(id string) (core.Employee, bool, error) {
	var (
		out   core.Employee
		found bool
	)
	err := s.read(func(d *Dataset) {
		for _, emp := range d.Employees {
			if emp.ID == id {
				out, found = emp, true
				return
			}
		}
	})
	return out, found, err
}

// SearchEmployees matches query against first name, last name and role,
// ignoring case. An empty query returns every employee in stored order.
func (s *Store) SearchEmployees(query string) ([]core.Employee, error) {
	var out []core.Employee
	err := s.read(func(d *Dataset) {
		out = cloneSlice(core.FilterEmployees(d.Employees, query))
	})
	return out, err
}

func (s *Store) Attendance() ([]core.AttendanceRecord, error) {
	var out []core.AttendanceRecord
	err := s.read(func(d *Dataset) {
		out = cloneSlice(d.Attendance)
	})
	return out, err
}

// AttendanceOn returns the attendance records dated on the same calendar day
// as day.
func (s *Store) AttendanceOn(day time.Time) ([]core.AttendanceRecord, error) {
	var out []core.AttendanceRecord
	err := s.read(func(d *Dataset) {
		out = core.AttendanceForDay(d.Attendance, day)
	})
	return out, err
}
