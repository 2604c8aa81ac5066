package recruitment

import "errors"

var ErrInvalidStage = errors.New("invalid applicant stage")
