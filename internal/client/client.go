// Package client is a typed HTTP client for the users service. The smoke
// checker and the black-box tests drive the service through it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/georgemunganga/reqres-users/internal/modules/status"
	"github.com/georgemunganga/reqres-users/internal/modules/user"
	"github.com/georgemunganga/reqres-users/internal/pagination"
)

// Client provides typed access to the users API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// New constructs a Client pointing at the provided base URL.
func New(base string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = "http://localhost:8080"
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	cli := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli, nil
}

// BaseURL returns the normalised service root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIError is returned for any non-2xx answer. Body holds the raw payload.
type APIError struct {
	Status int
	Detail string
	Body   []byte
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api request failed with status %d", e.Status)
	}
	return fmt.Sprintf("api request failed (%d): %s", e.Status, e.Detail)
}

// Do sends a raw request and returns the response unread. body is encoded as
// JSON unless it is already a []byte. Callers close the body.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		payload, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, v any) error {
	resp, err := c.Do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Detail: extractDetail(data), Body: data}
	}
	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// extractDetail pulls a string detail out of an error body. Structured
// validation details are left to the caller via APIError.Body.
func extractDetail(data []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if len(data) == 0 || json.Unmarshal(data, &payload) != nil {
		return strings.TrimSpace(string(data))
	}
	var s string
	if json.Unmarshal(payload.Detail, &s) == nil {
		return s
	}
	return ""
}

func userPath(id int64) string {
	return "/api/users/" + strconv.FormatInt(id, 10)
}

func (c *Client) Status(ctx context.Context) (status.AppStatus, error) {
	var out status.AppStatus
	err := c.do(ctx, http.MethodGet, "/status", nil, &out)
	return out, err
}

// ListUsers fetches one page. Zero page or size leaves the server default.
func (c *Client) ListUsers(ctx context.Context, page, size int) (pagination.Page[*user.User], error) {
	q := url.Values{}
	if page != 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if size != 0 {
		q.Set("size", strconv.Itoa(size))
	}
	path := "/api/users/"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out pagination.Page[*user.User]
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) GetUser(ctx context.Context, id int64) (user.UserResponse, error) {
	var out user.UserResponse
	err := c.do(ctx, http.MethodGet, userPath(id), nil, &out)
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, req user.CreateRequest) (user.CreateResponse, error) {
	var out user.CreateResponse
	err := c.do(ctx, http.MethodPost, "/api/users/", req, &out)
	return out, err
}

func (c *Client) UpdateUser(ctx context.Context, id int64, req user.UpdateRequest) (user.UpdateResponse, error) {
	var out user.UpdateResponse
	err := c.do(ctx, http.MethodPatch, userPath(id), req, &out)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, userPath(id), nil, nil)
}
