// Package api provides the shared HTTP client used by the weather API adapters.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	userAgent      = "weather-cli/0.1.0"
	requestTimeout = 10 * time.Second

	// maxRetries is the number of times a transient failure is retried.
	maxRetries = 2

	retryBackoff = 300 * time.Millisecond
)

// NewClient creates an http.Client with the pool sizing and timeout the CLI
// uses for all weather API calls.
func NewClient() *http.Client {
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        5,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// GetJSON performs a GET request against base with the given query parameters
// and decodes the JSON response body into v. Network errors and 5xx responses
// are retried up to maxRetries times before giving up.
func GetJSON(ctx context.Context, client *http.Client, base string, params url.Values, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff):
			}
		}

		body, retryable, err := do(client, req)
		if err == nil {
			return json.Unmarshal(body, v)
		}
		lastErr = err
		if !retryable {
			break
		}
	}

	return lastErr
}

// do executes a single request attempt. The second return value reports
// whether the failure is worth retrying.
func do(client *http.Client, req *http.Request) (body []byte, retryable bool, err error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, true, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}
	return body, false, nil
}
