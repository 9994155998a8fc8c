package hasura

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is a minimal Hasura GraphQL-over-HTTP client.
type Client struct {
	Endpoint    string
	AdminSecret string
	httpDo      *http.Client
}

func New(endpoint, adminSecret string) *Client {
	return &Client{
		Endpoint:    endpoint,
		AdminSecret: adminSecret,
		httpDo: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data json.RawMessage `json:"data"`
	// A pointer so a present-but-empty errors array is still an error.
	Errors *[]graphqlError `json:"errors"`
}

// TransportError wraps a network or HTTP-layer failure talking to Hasura.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("hasura transport: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError carries the first message of a GraphQL errors array.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

// Query posts a GraphQL query and decodes the data payload into out.
// A non-2xx status or a failed round trip becomes a TransportError;
// an errors array in the response becomes a ServiceError.
func (c *Client) Query(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return &TransportError{Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.AdminSecret != "" {
		httpReq.Header.Set("x-hasura-admin-secret", c.AdminSecret)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransportError{Err: fmt.Errorf("http error! status: %d", resp.StatusCode)}
	}

	var result graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return &TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if result.Errors != nil {
		msg := "GraphQL Error"
		if errs := *result.Errors; len(errs) > 0 && errs[0].Message != "" {
			msg = errs[0].Message
		}
		return &ServiceError{Message: msg}
	}
	if result.Data == nil {
		return &ServiceError{Message: "no data returned from GraphQL"}
	}
	if err := json.Unmarshal(result.Data, out); err != nil {
		return &TransportError{Err: fmt.Errorf("decode data: %w", err)}
	}
	return nil
}
