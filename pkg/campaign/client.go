package campaign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

const processResumePath = "/hr_handler/process-single-resume"

// Client talks to the resume-ingestion service.
type Client struct {
	BaseURL string
	httpDo  *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Request is the metadata part of a submission. Optional numeric fields are
// serialized only when set; absence is distinct from zero.
type Request struct {
	ClientID         string   `json:"client_id"`
	JobID            string   `json:"job_id"`
	CandidateName    string   `json:"candidate_name"`
	CandidateEmail   string   `json:"candidate_email"`
	CandidatePhone   string   `json:"candidate_phone"`
	CoverLetter      string   `json:"cover_letter"`
	NoticePeriodDays *int     `json:"notice_period_days,omitempty"`
	CurrentSalary    *float64 `json:"current_salary,omitempty"`
	ExpectedSalary   *float64 `json:"expected_salary,omitempty"`
}

// File is the resume attachment as received from the candidate.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// TransportError wraps a failure to complete the HTTP call itself.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("campaign transport: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// RejectedError is a non-2xx answer from the ingestion endpoint. The body
// text is surfaced to the user alongside the status code.
type RejectedError struct {
	Status int
	Body   string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("failed to submit application: %d %s", e.Status, e.Body)
}

// SubmitResume posts the resume and metadata as multipart/form-data and
// returns the ingestion response body verbatim. The multipart boundary comes
// from the writer; no content type is set by hand.
func (c *Client) SubmitResume(ctx context.Context, req Request, resume File) (json.RawMessage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fileHeader := make(textproto.MIMEHeader)
	fileHeader.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="resume"; filename=%q`, resume.Name))
	if resume.ContentType != "" {
		fileHeader.Set("Content-Type", resume.ContentType)
	}
	filePart, err := writer.CreatePart(fileHeader)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if _, err := filePart.Write(resume.Data); err != nil {
		return nil, &TransportError{Err: err}
	}

	meta, err := json.Marshal(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if err := writer.WriteField("request", string(meta)); err != nil {
		return nil, &TransportError{Err: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &TransportError{Err: err}
	}

	endpoint := c.BaseURL + processResumePath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &RejectedError{Status: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if !json.Valid(body) {
		return nil, &TransportError{Err: fmt.Errorf("invalid JSON in ingestion response")}
	}
	return json.RawMessage(body), nil
}
