package job

import "errors"

// DefaultCompanyName is shown when the company profile lookup yields nothing.
const DefaultCompanyName = "Company"

// ErrNotFound means the posting id has no backend record. It is a normal
// outcome, not a transport or service failure.
var ErrNotFound = errors.New("job not found")

// Job is the normalized posting view model: the posting record merged with
// its resolved company profile.
type Job struct {
	ID               string   `json:"id"`
	ClientID         string   `json:"client_id"`
	JobRole          string   `json:"job_role"`
	JobDescription   string   `json:"job_description"`
	Location         string   `json:"location"`
	CTC              string   `json:"ctc"`
	MinCTC           *float64 `json:"min_ctc,omitempty"`
	MaxCTC           *float64 `json:"max_ctc,omitempty"`
	MinExperience    float64  `json:"min_experience"`
	MaxExperience    float64  `json:"max_experience"`
	WorkMode         string   `json:"work_mode"`
	NumberOfOpenings *int     `json:"number_of_openings,omitempty"`
	CreatedAt        string   `json:"created_at,omitempty"`
	Status           string   `json:"status,omitempty"`
	CompanyName      string   `json:"company_name"`
	CompanyWebsite   string   `json:"company_website"`
}

// CompanyProfile is the enrichment result of the secondary lookup.
type CompanyProfile struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}
