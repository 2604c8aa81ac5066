package recruitment

import "strings"

// FilterApplicants keeps applicants whose name or role contains query,
// ignoring case. An empty query returns the input unchanged.
func FilterApplicants(applicants []Applicant, query string) []Applicant {
	if query == "" {
		return applicants
	}
	needle := strings.ToLower(query)
	out := make([]Applicant, 0, len(applicants))
	for _, app := range applicants {
		if strings.Contains(strings.ToLower(app.Name), needle) ||
			strings.Contains(strings.ToLower(app.Role), needle) {
			out = append(out, app)
		}
	}
	return out
}

// CountByStage tallies applicants per pipeline stage. Every stage is present
// in the result, zero or not.
func CountByStage(applicants []Applicant) map[Stage]int {
	out := make(map[Stage]int, len(Stages))
	for _, stage := range Stages {
		out[stage] = 0
	}
	for _, app := range applicants {
		out[app.Stage]++
	}
	return out
}
