// Package resortapi is a typed client for the remote resort HTTP API.
package resortapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	HeaderCSRF          = "X-CSRFToken"
	HeaderAuthorization = "Authorization"

	// DefaultMaxResponseBytes caps how much of a response body is read.
	DefaultMaxResponseBytes int64 = 4 << 20
)

//go:generate mockgen -destination=mocks/mock_api.go -package=mocks . API

// API is the set of resort endpoints the front end consumes.
type API interface {
	CreateUser(ctx context.Context, req CreateUserRequest, csrfToken string) (*CreatedUser, error)
	ObtainToken(ctx context.Context, req TokenRequest, csrfToken string) (string, error)
	ListCottages(ctx context.Context, page, pageSize int) ([]Cottage, error)
	GetCottage(ctx context.Context, id int64) (*Cottage, error)
	CheckAvailability(ctx context.Context, req AvailabilityRequest, csrfToken string) (*Availability, error)
	CreateBooking(ctx context.Context, req BookingRequest, authToken, csrfToken string) error
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	maxBody    int64
}

var _ API = (*Client)(nil)

// NewClient returns a client for the API rooted at baseURL. Outgoing requests
// are traced through the global OpenTelemetry provider.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		maxBody: DefaultMaxResponseBytes,
	}
}

// Response is a fully read API response.
type Response struct {
	*http.Response
	Body []byte
}

func (r *Response) DecodeJSON(target any) error {
	if err := json.Unmarshal(r.Body, target); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", r.Request.URL.Path, err)
	}
	return nil
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (c *Client) get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, nil)
}

func (c *Client) post(ctx context.Context, path string, body any, headers map[string]string) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body, headers)
}

func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string) (*Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		if value != "" {
			req.Header.Set(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(respBody)) > c.maxBody {
		return nil, fmt.Errorf("%s %s: %w (limit %d bytes)", method, path, ErrResponseTooLarge, c.maxBody)
	}

	return &Response{
		Response: resp,
		Body:     respBody,
	}, nil
}

func csrfHeaders(csrfToken string) map[string]string {
	return map[string]string{HeaderCSRF: csrfToken}
}
