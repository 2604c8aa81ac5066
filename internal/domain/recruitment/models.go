package recruitment

import "time"

type Skill struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type Stats struct {
	HardSkills int `json:"hardSkills"`
	SoftSkills int `json:"softSkills"`
	OvrScore   int `json:"ovrScore"`
}

type PastExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Logo        string `json:"logo"`
	Description string `json:"description,omitempty"`
}

type Applicant struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Role           string           `json:"role"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Address        string           `json:"address"`
	Experience     int              `json:"experience"`
	Stage          Stage            `json:"stage"`
	Skills         []Skill          `json:"skills"`
	Stats          Stats            `json:"stats"`
	PastExperience []PastExperience `json:"pastExperience"`
	Avatar         string           `json:"avatar"`
	AppliedDate    time.Time        `json:"appliedDate"`
}

// Clone returns a copy that shares no slices with a.
func (a Applicant) Clone() Applicant {
	out := a
	if a.Skills != nil {
		out.Skills = append([]Skill(nil), a.Skills...)
	}
	if a.PastExperience != nil {
		out.PastExperience = append([]PastExperience(nil), a.PastExperience...)
	}
	return out
}
