package job

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// GraphQL is the port to the posting backend. It hides the concrete client
// to preserve dependency direction.
type GraphQL interface {
	Query(ctx context.Context, query string, variables map[string]any, out any) error
}

// UseCase describes the posting read path.
type UseCase interface {
	FetchJob(ctx context.Context, jobID string) (Job, error)
}

type service struct {
	gql       GraphQL
	sanitizer *bluemonday.Policy
}

// NewService creates the default implementation.
func NewService(gql GraphQL) UseCase {
	// Posting descriptions arrive as rich text; allow basic formatting only.
	policy := bluemonday.NewPolicy()
	policy.AllowElements("p", "br", "div", "span")
	policy.AllowElements("strong", "b", "em", "i", "u")
	policy.AllowElements("ul", "ol", "li")
	policy.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowAttrs("href").OnElements("a")
	policy.RequireParseableURLs(true)
	policy.AllowURLSchemes("http", "https", "mailto")

	return &service{gql: gql, sanitizer: policy}
}

const jobByIDQuery = `
    query GetJobById($jobId: uuid!) {
      vocallabs_hr2_posts_by_pk(id: $jobId) {
        id
        client_id
        job_role
        description
        location
        ctc
        ctc_minimum
        ctc_maximum
        experience_minimum_needed
        experience_maximum_needed
        work_mode
        number_of_openings
        created_at
        status
      }
    }
`

const companyByClientQuery = `
    query GetCompanyInfo($clientId: uuid!) {
      vocallabs_hr2_company(where: {client_id: {_eq: $clientId}}, limit: 1) {
        name
        website
      }
    }
`

// postRecord mirrors the backend row shape before normalization.
type postRecord struct {
	ID               string   `json:"id"`
	ClientID         string   `json:"client_id"`
	JobRole          string   `json:"job_role"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	CTC              string   `json:"ctc"`
	CTCMinimum       *float64 `json:"ctc_minimum"`
	CTCMaximum       *float64 `json:"ctc_maximum"`
	ExperienceMin    float64  `json:"experience_minimum_needed"`
	ExperienceMax    float64  `json:"experience_maximum_needed"`
	WorkMode         string   `json:"work_mode"`
	NumberOfOpenings *int     `json:"number_of_openings"`
	CreatedAt        string   `json:"created_at"`
	Status           string   `json:"status"`
}

// FetchJob loads the posting by primary key and merges in the company
// profile. A missing record maps to ErrNotFound; company lookup failures
// degrade to defaults and never fail the fetch.
func (s *service) FetchJob(ctx context.Context, jobID string) (Job, error) {
	// The backend id column is a uuid; an unparseable id cannot match.
	if _, err := uuid.Parse(jobID); err != nil {
		return Job{}, ErrNotFound
	}

	var data struct {
		Post *postRecord `json:"vocallabs_hr2_posts_by_pk"`
	}
	if err := s.gql.Query(ctx, jobByIDQuery, map[string]any{"jobId": jobID}, &data); err != nil {
		return Job{}, err
	}
	if data.Post == nil {
		return Job{}, ErrNotFound
	}
	post := data.Post

	companyName := DefaultCompanyName
	companyWebsite := ""
	if post.ClientID != "" {
		profile, err := s.fetchCompany(ctx, post.ClientID)
		if err != nil {
			log.Printf("could not fetch company info for client %s: %v", post.ClientID, err)
		} else {
			if profile.Name != "" {
				companyName = profile.Name
			}
			companyWebsite = profile.Website
		}
	}

	return Job{
		ID:               post.ID,
		ClientID:         post.ClientID,
		JobRole:          post.JobRole,
		JobDescription:   s.sanitizer.Sanitize(post.Description),
		Location:         post.Location,
		CTC:              post.CTC,
		MinCTC:           post.CTCMinimum,
		MaxCTC:           post.CTCMaximum,
		MinExperience:    post.ExperienceMin,
		MaxExperience:    post.ExperienceMax,
		WorkMode:         post.WorkMode,
		NumberOfOpenings: post.NumberOfOpenings,
		CreatedAt:        post.CreatedAt,
		Status:           post.Status,
		CompanyName:      companyName,
		CompanyWebsite:   companyWebsite,
	}, nil
}

// fetchCompany runs the best-effort secondary lookup. An empty result is not
// an error; the caller applies defaults either way.
func (s *service) fetchCompany(ctx context.Context, clientID string) (CompanyProfile, error) {
	var data struct {
		Companies []CompanyProfile `json:"vocallabs_hr2_company"`
	}
	if err := s.gql.Query(ctx, companyByClientQuery, map[string]any{"clientId": clientID}, &data); err != nil {
		return CompanyProfile{}, err
	}
	if len(data.Companies) == 0 {
		return CompanyProfile{}, nil
	}
	return data.Companies[0], nil
}
