package recruitment

import "fmt"

// Stage is the applicant's position in the hiring pipeline. The order of
// Stages is the display order; transitions between stages are unrestricted.
type Stage string

const (
	StageApplied   Stage = "Applied"
	StageInterview Stage = "Interview"
	StageOffer     Stage = "Offer"
	StageHired     Stage = "Hired"
)

var Stages = []Stage{StageApplied, StageInterview, StageOffer, StageHired}

func (s Stage) Valid() bool {
	switch s {
	case StageApplied, StageInterview, StageOffer, StageHired:
		return true
	}
	return false
}

func ParseStage(value string) (Stage, error) {
	stage := Stage(value)
	if !stage.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStage, value)
	}
	return stage, nil
}
