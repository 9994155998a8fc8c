package checkers

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// HTTPChecker probes an external collaborator with a HEAD request. Any
// response counts as reachable; only a failed round trip is unhealthy.
type HTTPChecker struct {
	name   string
	url    string
	httpDo *http.Client
}

func NewHTTPChecker(name, url string) *HTTPChecker {
	return &HTTPChecker{
		name: name,
		url:  url,
		httpDo: &http.Client{
			Timeout: time.Second,
		},
	}
}

func (c *HTTPChecker) Name() string { return c.name }

func (c *HTTPChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.url, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", c.name, err)
	}
	resp, err := c.httpDo.Do(req)
	if err != nil {
		return fmt.Errorf("%s unreachable: %w", c.name, err)
	}
	resp.Body.Close()
	return nil
}
