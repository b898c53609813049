package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"
)

// envelope is the JSON body every endpoint responds with.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Client is a typed HTTP client for the volunteer-matching API. It is
// safe for concurrent use; the bearer token may be swapped at any time.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken installs the bearer token attached to subsequent requests.
// Pass the empty string to clear it (logout).
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do issues the request and decodes the response envelope into out.
// body is JSON-encoded when non-nil; out may be nil for calls whose
// payload the caller does not need.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindUnknown, Message: err.Error()}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return &APIError{Kind: KindUnknown, Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// doMultipart posts a multipart form: the named JSON part plus an
// optional image file part (the signup-with-photo shape).
func (c *Client) doMultipart(ctx context.Context, path, jsonField string, payload interface{}, imageName string, image []byte, out interface{}) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return &APIError{Kind: KindUnknown, Message: err.Error()}
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField(jsonField, string(encoded)); err != nil {
		return &APIError{Kind: KindUnknown, Message: err.Error()}
	}
	if image != nil {
		part, err := w.CreateFormFile("image", imageName)
		if err != nil {
			return &APIError{Kind: KindUnknown, Message: err.Error()}
		}
		if _, err := part.Write(image); err != nil {
			return &APIError{Kind: KindUnknown, Message: err.Error()}
		}
	}
	if err := w.Close(); err != nil {
		return &APIError{Kind: KindUnknown, Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, &buf)
	if err != nil {
		return &APIError{Kind: KindUnknown, Message: err.Error()}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &APIError{Kind: KindUnknown, Message: "malformed response", Status: resp.StatusCode}
	}

	if !env.Success {
		kind := KindUnknown
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			kind = KindValidation
		}
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Kind: kind, Message: msg, Status: resp.StatusCode}
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{Kind: KindUnknown, Message: "malformed response data", Status: resp.StatusCode}
		}
	}
	return nil
}
