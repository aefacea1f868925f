// Package registry implements the student registry API client.
// This package handles all communication with the remote registry:
// a single GET of the configured endpoint returning the full list of
// student records as a JSON array.
package registry

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// ClientConfig contains configuration for the registry client.
type ClientConfig struct {
	// BaseURL is the full URL of the students endpoint
	BaseURL string

	// Timeout is the HTTP request timeout
	Timeout time.Duration

	// Logger for structured logging
	Logger *slog.Logger
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig(baseURL string) ClientConfig {
	return ClientConfig{
		BaseURL: baseURL,
		Timeout: 30 * time.Second,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// CLIENT
// ══════════════════════════════════════════════════════════════════════════════

// Client is the student registry API client. The fetch is a single
// attempt: no retries, no pagination, no caching.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new registry client.
func NewClient(config ClientConfig) *Client {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: config.Logger,
	}
}

// FetchStudents issues one GET request against the configured endpoint
// and decodes the body as a JSON array of student records.
//
// A transport failure or non-2xx status is returned as *FetchError;
// a body that does not decode as the expected shape is returned as
// *ParseError.
func (c *Client) FetchStudents(ctx context.Context) ([]StudentDTO, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL, nil)
	if err != nil {
		return nil, &FetchError{URL: c.config.BaseURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("registry request", "url", c.config.BaseURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: c.config.BaseURL, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: c.config.BaseURL, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: c.config.BaseURL, StatusCode: resp.StatusCode}
	}

	var students []StudentDTO
	if err := json.Unmarshal(respBody, &students); err != nil {
		return nil, &ParseError{URL: c.config.BaseURL, Err: err}
	}

	return students, nil
}
