package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/devinterview/question-catalog/internal/models"
)

// DefaultBaseURL is where the import service listens when run locally
const DefaultBaseURL = "http://localhost:5000/api"

var (
	// ErrNetwork wraps transport failures: unreachable host, reset, timeout
	ErrNetwork = errors.New("Network error occurred")
	// ErrDecode wraps response bodies that are not the expected JSON
	ErrDecode = errors.New("invalid response body")
)

// APIError is returned for any non-2xx response
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is a Go SDK for the GitHub question import service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new import service client
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// QuestionFilters narrows ListQuestions on the service side
type QuestionFilters struct {
	Technology string
	Difficulty string
	Search     string
	Limit      int
}

func (f QuestionFilters) values() url.Values {
	v := url.Values{}
	if f.Technology != "" && f.Technology != models.All {
		v.Set("technology", f.Technology)
	}
	if f.Difficulty != "" && f.Difficulty != models.All {
		v.Set("difficulty", f.Difficulty)
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

// Health calls the liveness probe
func (c *Client) Health(ctx context.Context) (*models.HealthStatus, error) {
	var status models.HealthStatus
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// IsServerRunning reports whether the liveness probe succeeds
func (c *Client) IsServerRunning(ctx context.Context) bool {
	_, err := c.Health(ctx)
	return err == nil
}

// ListQuestions retrieves imported questions
func (c *Client) ListQuestions(ctx context.Context, filters QuestionFilters) ([]models.RemoteQuestion, error) {
	path := "/questions"
	if q := filters.values().Encode(); q != "" {
		path += "?" + q
	}

	var questions []models.RemoteQuestion
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// ListRepositories retrieves tracked repositories with sync metadata
func (c *Client) ListRepositories(ctx context.Context) ([]models.Repository, error) {
	var repos []models.Repository
	if err := c.doJSON(ctx, http.MethodGet, "/repositories", nil, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// AddRepository registers a repository and triggers its initial import
func (c *Client) AddRepository(ctx context.Context, req models.AddRepositoryRequest) (*models.AddRepositoryResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var result models.AddRepositoryResult
	if err := c.doJSON(ctx, http.MethodPost, "/repositories", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SyncRepository re-imports questions for a tracked repository
func (c *Client) SyncRepository(ctx context.Context, id int64) (*models.SyncResult, error) {
	var result models.SyncResult
	path := fmt.Sprintf("/repositories/%d/sync", id)
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// doJSON performs an HTTP request and decodes a 2xx body into out
func (c *Client) doJSON(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// newAPIError prefers the body's "error" field over a generic status message
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &APIError{StatusCode: status, Message: payload.Error}
	}
	return &APIError{
		StatusCode: status,
		Message:    fmt.Sprintf("HTTP error! status: %d", status),
	}
}
