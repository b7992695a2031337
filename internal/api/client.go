package api

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

// ErrRequestFailed covers both transport failures and non-success envelopes.
// Callers treat them identically; the wrapped detail is for logs only.
var ErrRequestFailed = errors.New("request failed")

// TokenSource supplies the bearer token attached to every request.
type TokenSource interface {
	Token() (string, error)
}

// Client is a thin wrapper over the WareHub REST API. The response envelope
// is decoded exactly once here; callers only ever see a typed payload or an
// error and never re-check response shape downstream.
type Client struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
}

func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{Timeout: timeout},
	}
}

// envelope is the API's uniform response wrapper:
// { "status": "success", "data": ..., "message": ... }
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrRequestFailed, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: HTTP %d: malformed response body", ErrRequestFailed, resp.StatusCode)
	}
	if env.Status != "success" {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, msg)
	}
	return env.Data, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	data, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decodePayload(data, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	data, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodePayload(data, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out interface{}) error {
	data, err := c.do(ctx, http.MethodPatch, path, nil, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodePayload(data, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func decodePayload(data json.RawMessage, out interface{}) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decoding payload: %v", ErrRequestFailed, err)
	}
	return nil
}

// decodeKeyed handles list payloads that nest the collection under a named
// field (e.g. {"warehouses": [...]}) while most endpoints return the array
// directly under data.
func decodeKeyed(data json.RawMessage, key string, out interface{}) error {
	if key != "" {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(data, &wrapper); err == nil {
			if inner, ok := wrapper[key]; ok {
				return decodePayload(inner, out)
			}
		}
	}
	return decodePayload(data, out)
}
