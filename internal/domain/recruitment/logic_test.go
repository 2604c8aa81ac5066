package recruitment

import (
	"errors"
	"testing"
)

func sampleApplicants() []Applicant {
	return []Applicant{
		{ID: "APL002", Name: "Jonathan Baker", Role: "UIUX Designer", Stage: StageInterview},
		{ID: "APL003", Name: "Floyd Miles", Role: "UIUX Designer", Stage: StageApplied},
		{ID: "APL005", Name: "Kim Park", Role: "Backend Engineer", Stage: StageOffer},
	}
}

func TestFilterApplicantsEmptyQuery(t *testing.T) {
	applicants := sampleApplicants()
	got := FilterApplicants(applicants, "")
	if len(got) != 3 || got[0].ID != "APL002" || got[2].ID != "APL005" {
		t.Fatalf("expected all applicants in order, got %+v", got)
	}
}

func TestFilterApplicantsByNameOrRole(t *testing.T) {
	got := FilterApplicants(sampleApplicants(), "BAKER")
	if len(got) != 1 || got[0].ID != "APL002" {
		t.Fatalf("expected APL002, got %+v", got)
	}

	got = FilterApplicants(sampleApplicants(), "uiux")
	if len(got) != 2 {
		t.Fatalf("expected 2 designers, got %d", len(got))
	}

	got = FilterApplicants(sampleApplicants(), "nobody")
	if len(got) != 0 {
		t.Fatalf("expected no match, got %+v", got)
	}
}

func TestParseStage(t *testing.T) {
	stage, err := ParseStage("Hired")
	if err != nil || stage != StageHired {
		t.Fatalf("expected Hired, got %q (%v)", stage, err)
	}
	if _, err := ParseStage("Rejected"); !errors.Is(err, ErrInvalidStage) {
		t.Fatalf("expected ErrInvalidStage, got %v", err)
	}
}

func TestCloneDoesNotShareSlices(t *testing.T) {
	original := Applicant{ID: "A1", Skills: []Skill{{Name: "UI", Score: 90}}}
	cloned := original.Clone()
	cloned.Skills[0].Score = 10
	if original.Skills[0].Score != 90 {
		t.Fatal("expected clone to own its skills slice")
	}
}

func TestCountByStage(t *testing.T) {
	counts := CountByStage(sampleApplicants())
	if counts[StageHired] != 0 || counts[StageApplied] != 1 || counts[StageOffer] != 1 {
		t.Fatalf("unexpected counts %+v", counts)
	}
}
