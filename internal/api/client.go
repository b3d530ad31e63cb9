// Package api provides the HTTP client for the remote reflection service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/f3rmion/journal/internal/journal"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "http://localhost:8080"
	// DefaultTimeout bounds a single round-trip.
	DefaultTimeout = 30 * time.Second

	reflectPath     = "/reflect"
	requestIDHeader = "X-Request-ID"
)

// Client talks to the reflection service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	RequestID  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: %s", e.Status)
}

// request is the body sent to the reflect endpoint.
type request struct {
	Entry string `json:"entry"`
}

// response is the body returned by the reflect endpoint.
type response struct {
	Reflection  string   `json:"reflection"`
	Affirmation string   `json:"affirmation"`
	FollowUps   []string `json:"follow_ups"`
}

// NewClient creates a client for the service at baseURL.
// An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SubmitEntry sends entry to the service and returns its reflection.
// It makes exactly one attempt and does not validate entry.
func (c *Client) SubmitEntry(ctx context.Context, entry string) (journal.Reflection, error) {
	body, err := json.Marshal(request{Entry: entry})
	if err != nil {
		return journal.Reflection{}, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+reflectPath, bytes.NewReader(body))
	if err != nil {
		return journal.Reflection{}, fmt.Errorf("creating request: %w", err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestIDHeader, requestID)

	log := c.logger.With(zap.String("request_id", requestID))
	log.Debug("submitting entry", zap.String("url", httpReq.URL.String()), zap.Int("entry_len", len(entry)))

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Debug("request failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return journal.Reflection{}, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	log.Debug("response received", zap.Int("status", resp.StatusCode), zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return journal.Reflection{}, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			RequestID:  requestID,
		}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return journal.Reflection{}, fmt.Errorf("reading response: %w", err)
	}

	var apiResp response
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return journal.Reflection{}, fmt.Errorf("unmarshaling response: %w", err)
	}

	followUps := apiResp.FollowUps
	if followUps == nil {
		followUps = []string{}
	}

	return journal.Reflection{
		Reflection:  apiResp.Reflection,
		Affirmation: apiResp.Affirmation,
		FollowUps:   followUps,
	}, nil
}

// statusText returns the status line, e.g. "503 Service Unavailable".
func statusText(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
