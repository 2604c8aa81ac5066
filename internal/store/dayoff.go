package store

import (
	"hrdash/internal/domain/leave"
	"hrdash/internal/platform/events"
)

// CreateDayOffRequest files a new pending request.
func (s *Store) CreateDayOffRequest(in leave.DayOffInput) (leave.DayOffRequest, error) {
	var created leave.DayOffRequest
	err := s.mutate(events.CollectionDayOffRequests, events.ActionCreate, func(d *Dataset) (string, error) {
		created = leave.DayOffRequest{
			ID:         s.newID(),
			EmployeeID: in.EmployeeID,
			Type:       in.Type,
			StartDate:  in.StartDate,
			EndDate:    in.EndDate,
			Reason:     in.Reason,
			Status:     leave.StatusPending,
		}
		d.DayOffRequests = prepend(d.DayOffRequests, created)
		return created.ID, nil
	})
	if err != nil {
		return leave.DayOffRequest{}, err
	}
	return created, nil
}

func (s *Store) DayOffRequests() ([]leave.DayOffRequest, error) {
	var out []leave.DayOffRequest
	err := s.read(func(d *Dataset) {
		out = cloneSlice(d.DayOffRequests)
	})
	return out, err
}

func (s *Store) ApproveDayOffRequest(id string) (leave.DayOffRequest, error) {
	return s.decideDayOff(id, leave.StatusApproved)
}

func (s *Store) RejectDayOffRequest(id string) (leave.DayOffRequest, error) {
	return s.decideDayOff(id, leave.StatusRejected)
}

func (s *Store) decideDayOff(id string, target leave.Status) (leave.DayOffRequest, error) {
	var decided leave.DayOffRequest
	err := s.mutate(events.CollectionDayOffRequests, events.ActionUpdate, func(d *Dataset) (string, error) {
		idx := -1
		for i, req := range d.DayOffRequests {
			if req.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return "", leave.ErrRequestNotFound
		}
		req := d.DayOffRequests[idx]
		next, changed, err := leave.Decide(req.Status, target)
		if err != nil {
			return "", err
		}
		if changed {
			updated := cloneSlice(d.DayOffRequests)
			updated[idx].Status = next
			d.DayOffRequests = updated
			req.Status = next
		}
		decided = req
		return id, nil
	})
	if err != nil {
		return leave.DayOffRequest{}, err
	}
	return decided, nil
}
