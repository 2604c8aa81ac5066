package store

import (
	"hrdash/internal/domain/tasks"
	"hrdash/internal/platform/events"
)

// CreateTask adds a pending task due daysUntilDue days from now.
func (s *Store) CreateTask(title string, daysUntilDue int) (tasks.Task, error) {
	var created tasks.Task
	err := s.mutate(events.CollectionTasks, events.ActionCreate, func(d *Dataset) (string, error) {
		created = tasks.Task{
			ID:      s.newID(),
			Title:   title,
			DueDate: tasks.DueIn(s.now(), daysUntilDue),
			Status:  tasks.StatusPending,
		}
		d.Tasks = prepend(d.Tasks, created)
		return created.ID, nil
	})
	if err != nil {
		return tasks.Task{}, err
	}
	return created, nil
}

func (s *Store) Tasks() ([]tasks.Task, error) {
	var out []tasks.Task
	err := s.read(func(d *Dataset) {
		out = cloneSlice(d.Tasks)
	})
	return out, err
}
