package kiosk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the kiosk backend HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBackend   = "127.0.0.1:5000"
	defaultUserAgent = "deck/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the backend host:port or URL.
func NewClient(backend string) (*Client, error) {
	base, err := parseBaseURL(backend)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized backend address.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// APIError is returned for any backend response with status >= 400.
type APIError struct {
	Path            string
	Status          int
	Message         string
	ErrorType       string
	NeedsPIN        bool
	NeedsActivation bool
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api %s returned status %d", e.Path, e.Status)
	}
	return fmt.Sprintf("api %s returned status %d: %s", e.Path, e.Status, e.Message)
}

// IsForbidden reports whether err is a 403 tagged with error_type "forbidden".
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden && apiErr.ErrorType == "forbidden"
}

// NeedsActivation reports whether a local device transfer failed because the
// device must first be activated over ZeroConf.
func NeedsActivation(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound && apiErr.NeedsActivation
}

// StatusCode extracts the HTTP status from an APIError, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Message returns the backend's error message when err carries one, falling
// back to fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return fallback
}

type errorBody struct {
	Error           string `json:"error"`
	Message         string `json:"message"`
	ErrorType       string `json:"error_type"`
	NeedsPIN        bool   `json:"needs_pin"`
	NeedsActivation bool   `json:"needs_activation"`
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	return c.doURL(ctx, http.MethodGet, relPath(path), nil, dest)
}

func (c *Client) post(ctx context.Context, path string, body, dest any) error {
	return c.doURL(ctx, http.MethodPost, relPath(path), body, dest)
}

// relPath turns an already escaped API path into a URL that is not
// escaped a second time.
func relPath(escaped string) *url.URL {
	u := &url.URL{Path: escaped}
	if unescaped, err := url.PathUnescape(escaped); err == nil && unescaped != escaped {
		u.Path = unescaped
		u.RawPath = escaped
	}
	return u
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Path: rel.Path, Status: resp.StatusCode}
		var eb errorBody
		if err := json.NewDecoder(io.LimitReader(resp.Body, 64*1024)).Decode(&eb); err == nil {
			apiErr.Message = strings.TrimSpace(eb.Error)
			if apiErr.Message == "" {
				apiErr.Message = strings.TrimSpace(eb.Message)
			}
			apiErr.ErrorType = eb.ErrorType
			apiErr.NeedsPIN = eb.NeedsPIN
			apiErr.NeedsActivation = eb.NeedsActivation
		}
		return apiErr
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(backend string) (*url.URL, error) {
	trimmed := strings.TrimSpace(backend)
	if trimmed == "" {
		trimmed = defaultBackend
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse backend %q: %w", backend, err)
	}
	u.Path = ""
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
