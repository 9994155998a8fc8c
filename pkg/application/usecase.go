package application

import (
	"context"
	"encoding/json"

	"github.com/vocallabs/hr-apply/pkg/campaign"
	"github.com/vocallabs/hr-apply/pkg/job"
)

// Ingestor is the port to the resume-ingestion service.
type Ingestor interface {
	SubmitResume(ctx context.Context, req campaign.Request, resume campaign.File) (json.RawMessage, error)
}

// UseCase describes the submission write path.
type UseCase interface {
	Submit(ctx context.Context, profile Profile, j job.Job, form Form, resume *Resume) (json.RawMessage, error)
}

type service struct {
	ingestor Ingestor
}

// NewService creates the default implementation.
func NewService(ingestor Ingestor) UseCase {
	return &service{ingestor: ingestor}
}

// Submit validates the form against the profile's rules and forwards the
// resume and metadata to the ingestion service. Exactly one outbound call
// per invocation; no retry, no idempotency key. The ingestion response is
// returned verbatim.
func (s *service) Submit(ctx context.Context, profile Profile, j job.Job, form Form, resume *Resume) (json.RawMessage, error) {
	if err := Validate(profile, form, resume); err != nil {
		return nil, err
	}

	req := campaign.Request{
		ClientID:         j.ClientID,
		JobID:            j.ID,
		CandidateName:    form.Name,
		CandidateEmail:   form.Email,
		CandidatePhone:   form.Phone,
		CoverLetter:      "",
		NoticePeriodDays: form.NoticePeriodDays,
		CurrentSalary:    form.CurrentSalary,
		ExpectedSalary:   form.ExpectedSalary,
	}
	return s.ingestor.SubmitResume(ctx, req, campaign.File{
		Name:        resume.Filename,
		ContentType: resume.ContentType,
		Data:        resume.Data,
	})
}
