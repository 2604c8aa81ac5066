package store

import (
	"hrdash/internal/domain/payroll"
	"hrdash/internal/platform/events"
)

// CreatePayrollEntry computes net pay once from in and puts the entry at the
// front of the collection. The employee id is not checked and negative
// amounts are accepted.
func (s *Store) CreatePayrollEntry(in payroll.Input) (payroll.Entry, error) {
	var created payroll.Entry
	err := s.mutate(events.CollectionPayroll, events.ActionCreate, func(d *Dataset) (string, error) {
		created = payroll.NewEntry(s.newID(), in)
		d.Payroll = prepend(d.Payroll, created)
		return created.ID, nil
	})
	if err != nil {
		return payroll.Entry{}, err
	}
	return created, nil
}

func (s *Store) PayrollEntries() ([]payroll.Entry, error) {
	var out []payroll.Entry
	err := s.read(func(d *Dataset) {
		out = cloneSlice(d.Payroll)
	})
	return out, err
}

// PayrollRow returns the entry with id joined to its employee.
func (s *Store) PayrollRow(id string) (payroll.Row, error) {
	var (
		out   payroll.Row
		found bool
	)
	err := s.read(func(d *Dataset) {
		for _, entry := range d.Payroll {
			if entry.ID == id {
				out = payroll.JoinEmployees([]payroll.Entry{entry}, d.Employees)[0]
				found = true
				return
			}
		}
	})
	if err != nil {
		return payroll.Row{}, err
	}
	if !found {
		return payroll.Row{}, payroll.ErrEntryNotFound
	}
	return out, nil
}

// SearchPayroll joins entries to employees and keeps those whose employee
// name contains query.
func (s *Store) SearchPayroll(query string) ([]payroll.Row, error) {
	var out []payroll.Row
	err := s.read(func(d *Dataset) {
		out = payroll.FilterByEmployeeName(d.Payroll, d.Employees, query)
	})
	return out, err
}

func (s *Store) PayrollEntry(id string) (payroll.Entry, bool, error) {
	var (
		out   payroll.Entry
		found bool
	)
	err := s.read(func(d *Dataset) {
		for _, entry := range d.Payroll {
			if entry.ID == id {
				out, found = entry, true
				return
			}
		}
	})
	return out, found, err
}
