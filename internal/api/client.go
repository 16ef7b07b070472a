package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"restaurant-manager/internal/config"
)

// requestTimeout bounds every JSON call. Multipart uploads are exempt:
// their duration is payload-size-dependent.
const requestTimeout = 10 * time.Second

// Client is the single choke point for every backend interaction. It is
// stateless: the bearer token is supplied per call and never cached, and
// no retries or in-flight coalescing happen here.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// NewClient creates a Gateway client for the configured backend. All
// request paths are resolved against base URL + versioned prefix.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/") + cfg.APIVersion,
		httpClient: &http.Client{},
		timeout:    requestTimeout,
	}
}

// Get issues a GET request. An empty token omits the Authorization header
// entirely rather than sending it blank.
func (c *Client) Get(ctx context.Context, path, token string) (*Envelope, error) {
	return c.doJSON(ctx, http.MethodGet, path, nil, token)
}

// Post issues a JSON-encoded POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}, token string) (*Envelope, error) {
	return c.doJSON(ctx, http.MethodPost, path, body, token)
}

// Put issues a JSON-encoded PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}, token string) (*Envelope, error) {
	return c.doJSON(ctx, http.MethodPut, path, body, token)
}

// Patch issues a JSON-encoded PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}, token string) (*Envelope, error) {
	return c.doJSON(ctx, http.MethodPatch, path, body, token)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path, token string) (*Envelope, error) {
	return c.doJSON(ctx, http.MethodDelete, path, nil, token)
}

// PostForm sends a multipart request, streaming file fields from disk in
// the order they were appended. Uploads carry no timeout beyond whatever
// deadline the caller's context already has.
func (c *Client) PostForm(ctx context.Context, path string, form *Form, token string) (*Envelope, error) {
	body, contentType := form.encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	setAuth(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(resp)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, token string) (*Envelope, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	tctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(tctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	setAuth(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(resp)
}

func setAuth(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// decodeEnvelope normalizes the raw response into an Envelope or a typed
// Error. A 401 wins over everything else in the body, so a forced
// re-authentication can be triggered regardless of what the server sent.
func decodeEnvelope(resp *http.Response) (*Envelope, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &Error{
			Kind:    KindSessionExpired,
			Status:  resp.StatusCode,
			Message: "session expired, please login again",
		}
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, &Error{
			Kind:    KindEmptyResponse,
			Status:  resp.StatusCode,
			Message: "empty response from server",
		}
	}

	var env Envelope
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		msg := fmt.Sprintf("server returned invalid response (status %d)", resp.StatusCode)
		if title := errorPageTitle(text); title != "" {
			msg = fmt.Sprintf("%s: %s", msg, title)
		}
		return nil, &Error{
			Kind:    KindMalformedResponse,
			Status:  resp.StatusCode,
			Message: msg,
			Err:     err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return nil, &Error{
			Kind:    KindHTTPError,
			Status:  resp.StatusCode,
			Message: msg,
		}
	}

	return &env, nil
}

func classifyTransport(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{
			Kind:    KindTimeout,
			Message: "request timeout, server took too long to respond",
			Err:     err,
		}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{
			Kind:    KindTimeout,
			Message: "request timeout, server took too long to respond",
			Err:     err,
		}
	}
	return &Error{
		Kind:    KindNetworkUnreachable,
		Message: "failed to reach server",
		Err:     err,
	}
}
