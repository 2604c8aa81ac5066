package store

import (
	"hrdash/internal/domain/timetracker"
	"hrdash/internal/platform/events"
)

// CreateTimeTrackerEntry starts a running entry. Duration is stored exactly as
// given.
func (s *Store) CreateTimeTrackerEntry(in timetracker.Input) (timetracker.Entry, error) {
	var created timetracker.Entry
	err := s.mutate(events.CollectionTimeTrackers, events.ActionCreate, func(d *Dataset) (string, error) {
		entry := timetracker.Entry{
			ID:         s.newID(),
			EmployeeID: in.EmployeeID,
			Project:    in.Project,
			Task:       in.Task,
			StartTime:  in.StartTime,
			EndTime:    in.EndTime,
			Duration:   in.Duration,
			Status:     timetracker.StatusRunning,
		}
		entry = entry.Clone()
		d.TimeTrackers = prepend(d.TimeTrackers, entry)
		created = entry.Clone()
		return entry.ID, nil
	})
	if err != nil {
		return timetracker.Entry{}, err
	}
	return created, nil
}

func (s *Store) TimeTrackerEntries() ([]timetracker.Entry, error) {
	var out []timetracker.Entry
	err := s.read(func(d *Dataset) {
		out = cloneTrackers(d.TimeTrackers)
	})
	return out, err
}

func (s *Store) TimeTrackerEntriesByStatus(status timetracker.Status) ([]timetracker.Entry, error) {
	var out []timetracker.Entry
	err := s.read(func(d *Dataset) {
		out = cloneTrackers(timetracker.FilterByStatus(d.TimeTrackers, status))
	})
	return out, err
}
