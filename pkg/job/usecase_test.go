package job

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocallabs/hr-apply/pkg/hasura"
)

const (
	testJobID    = "3b9b0aa6-5f2e-4f3d-9a62-0a4a9a9f1d10"
	testClientID = "7c0d2f64-1111-4f3d-9a62-0a4a9a9f1d10"
)

// fakeBackend serves both GraphQL queries, distinguishing them by the query
// text like Hasura would by operation.
type fakeBackend struct {
	post         map[string]any // nil means not found
	companies    []map[string]any
	companyFails bool
	companyCalls int
}

func (f *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Query string `json:"query"`
		}
		_ = json.Unmarshal(body, &req)

		switch {
		case strings.Contains(req.Query, "vocallabs_hr2_posts_by_pk"):
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{"vocallabs_hr2_posts_by_pk": f.post},
			})
		case strings.Contains(req.Query, "vocallabs_hr2_company"):
			f.companyCalls++
			if f.companyFails {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{"vocallabs_hr2_company": f.companies},
			})
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}
}

func testPost(clientID string) map[string]any {
	return map[string]any{
		"id":                        testJobID,
		"client_id":                 clientID,
		"job_role":                  "Engineer",
		"description":               "<p>Build <strong>things</strong></p><script>alert(1)</script>",
		"location":                  "Remote",
		"ctc":                       "Competitive",
		"experience_minimum_needed": 1,
		"experience_maximum_needed": 3,
		"work_mode":                 "remote",
	}
}

func newService(t *testing.T, backend *fakeBackend) UseCase {
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	return NewService(hasura.New(srv.URL, "secret"))
}

func TestFetchJobMergesCompanyProfile(t *testing.T) {
	backend := &fakeBackend{
		post:      testPost(testClientID),
		companies: []map[string]any{{"name": "Acme", "website": "acme.com"}},
	}
	svc := newService(t, backend)

	j, err := svc.FetchJob(context.Background(), testJobID)
	require.NoError(t, err)
	assert.Equal(t, testJobID, j.ID)
	assert.Equal(t, "Engineer", j.JobRole)
	assert.Equal(t, "Acme", j.CompanyName)
	assert.Equal(t, "acme.com", j.CompanyWebsite)
	assert.Equal(t, 1, backend.companyCalls)
}

func TestFetchJobNotFound(t *testing.T) {
	svc := newService(t, &fakeBackend{post: nil})

	_, err := svc.FetchJob(context.Background(), testJobID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchJobBadIDSkipsBackend(t *testing.T) {
	backend := &fakeBackend{post: testPost(testClientID)}
	svc := newService(t, backend)

	_, err := svc.FetchJob(context.Background(), "missing-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, backend.companyCalls)
}

func TestFetchJobCompanyLookupFailureDegrades(t *testing.T) {
	backend := &fakeBackend{post: testPost(testClientID), companyFails: true}
	svc := newService(t, backend)

	j, err := svc.FetchJob(context.Background(), testJobID)
	require.NoError(t, err)
	assert.Equal(t, DefaultCompanyName, j.CompanyName)
	assert.Equal(t, "", j.CompanyWebsite)
}

func TestFetchJobEmptyCompanyResultDegrades(t *testing.T) {
	backend := &fakeBackend{post: testPost(testClientID), companies: []map[string]any{}}
	svc := newService(t, backend)

	j, err := svc.FetchJob(context.Background(), testJobID)
	require.NoError(t, err)
	assert.Equal(t, DefaultCompanyName, j.CompanyName)
	assert.Equal(t, "", j.CompanyWebsite)
}

func TestFetchJobNoClientIDSkipsLookup(t *testing.T) {
	backend := &fakeBackend{post: testPost("")}
	svc := newService(t, backend)

	j, err := svc.FetchJob(context.Background(), testJobID)
	require.NoError(t, err)
	assert.Equal(t, DefaultCompanyName, j.CompanyName)
	assert.Equal(t, 0, backend.companyCalls)
}

func TestFetchJobSanitizesDescription(t *testing.T) {
	backend := &fakeBackend{post: testPost("")}
	svc := newService(t, backend)

	j, err := svc.FetchJob(context.Background(), testJobID)
	require.NoError(t, err)
	assert.Contains(t, j.JobDescription, "<strong>things</strong>")
	assert.NotContains(t, j.JobDescription, "script")
}

func TestFetchJobServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{"message": "field not found"}},
		})
	}))
	t.Cleanup(srv.Close)
	svc := NewService(hasura.New(srv.URL, "secret"))

	_, err := svc.FetchJob(context.Background(), testJobID)
	var svcErr *hasura.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "field not found", svcErr.Message)
}

func TestFetchJobTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	svc := NewService(hasura.New(srv.URL, "secret"))

	_, err := svc.FetchJob(context.Background(), testJobID)
	var transport *hasura.TransportError
	assert.ErrorAs(t, err, &transport)
}
