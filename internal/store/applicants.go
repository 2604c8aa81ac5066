package store

import (
	"hrdash/internal/domain/recruitment"
	"hrdash/internal/platform/events"
)

func (s *Store) Applicants() ([]recruitment.Applicant, error) {
	var out []recruitment.Applicant
	err := s.read(func(d *Dataset) {
		out = cloneApplicants(d.Applicants)
	})
	return out, err
}

func (s *Store) Applicant(id string) (recruitment.Applicant, bool, error) {
	var (
		out   recruitment.Applicant
		found bool
	)
	err := s.read(func(d *Dataset) {
		for _, app := range d.Applicants {
			if app.ID == id {
				out, found = app.Clone(), true
				return
			}
		}
	})
	return out, found, err
}

// DeleteApplicant removes the applicant with id. A missing id is not an
// error, so repeating the call is harmless.
func (s *Store) DeleteApplicant(id string) error {
	return s.mutate(events.CollectionApplicants, events.ActionDelete, func(d *Dataset) (string, error) {
		kept := make([]recruitment.Applicant, 0, len(d.Applicants))
		for _, app := range d.Applicants {
			if app.ID != id {
				kept = append(kept, app)
			}
		}
		d.Applicants = kept
		return id, nil
	})
}

// UpdateApplicantStage moves the applicant with id to stage. Any stage may
// follow any other; a missing id is silently ignored.
func (s *Store) UpdateApplicantStage(id string, stage recruitment.Stage) error {
	if !stage.Valid() {
		return recruitment.ErrInvalidStage
	}
	return s.mutate(events.CollectionApplicants, events.ActionUpdate, func(d *Dataset) (string, error) {
		next := make([]recruitment.Applicant, len(d.Applicants))
		for i, app := range d.Applicants {
			if app.ID == id {
				app.Stage = stage
			}
			next[i] = app
		}
		d.Applicants = next
		return id, nil
	})
}

// SearchApplicants matches query against name and role, ignoring case. An
// empty query returns every applicant in stored order.
func (s *Store) SearchApplicants(query string) ([]recruitment.Applicant, error) {
	var out []recruitment.Applicant
	err := s.read(func(d *Dataset) {
		out = cloneApplicants(recruitment.FilterApplicants(d.Applicants, query))
	})
	return out, err
}
