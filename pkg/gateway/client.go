package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
)

// Client talks to the backend gateway that owns all domain data. The client
// holds no credentials: the bearer token is passed per call and read fresh
// from the session on every request.
type Client struct {
	config     Config
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]
}

// NewClient creates a new gateway client with the given configuration
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        "backend-gateway",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
	}, nil
}

// GetConfig returns the client configuration
func (c *Client) GetConfig() Config {
	return c.config
}

// Get performs a GET request against the backend.
func (c *Client) Get(ctx context.Context, path, token string, query url.Values) (*Envelope, error) {
	return c.do(ctx, http.MethodGet, path, token, query, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path, token string, body interface{}) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, path, token, nil, body)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path, token string, body interface{}) (*Envelope, error) {
	return c.do(ctx, http.MethodPatch, path, token, nil, body)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path, token string, body interface{}) (*Envelope, error) {
	return c.do(ctx, http.MethodPut, path, token, nil, body)
}

// Delete performs a DELETE request. An empty response body on success is
// normal for the cart contract and is not treated as an error.
func (c *Client) Delete(ctx context.Context, path, token string) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, payload interface{}) (*Envelope, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(raw)
	}

	reqURL := strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	env := &Envelope{Status: resp.StatusCode}
	if len(bytes.TrimSpace(body)) > 0 {
		// A body that is not a valid envelope still counts as a response;
		// failures below carry the raw message when no envelope parsed.
		_ = json.Unmarshal(body, env)
		env.Status = resp.StatusCode
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: env.Message}
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
		case http.StatusForbidden:
			return nil, fmt.Errorf("%w: %w", ErrForbidden, apiErr)
		default:
			return nil, apiErr
		}
	}

	return env, nil
}
