// Package apiclient talks to the Whisperly backend API over JSON HTTP.
//
// Every response uses the backend's envelope: a data payload on success or
// an error object with a message. Non-2xx statuses map onto typed web
// error kinds so handlers can render the right page without inspecting
// transport detail. The client never retries.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sudobility/whisperly-web/internal/platform/timeouts"
	apperrors "github.com/sudobility/whisperly-web/internal/services/web/platform/errors"
)

// Client is a JSON HTTP client for the backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client for the given base URL. A nil httpClient gets a
// default with the standard API request timeout.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("api base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse api base URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.APIRequest}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}, nil
}

// userIDHeader identifies the acting user to the backend.
const userIDHeader = "X-User-Id"

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method string, path string, userID string, in any, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(userIDHeader, userID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.E(apperrors.KindUnavailable, "backend request failed")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apperrors.E(apperrors.KindUnavailable, "read backend response")
	}

	var env envelope
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &env); err != nil && resp.StatusCode < http.StatusMultipleChoices {
			return apperrors.E(apperrors.KindUnknown, "decode backend response")
		}
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		message := ""
		if env.Error != nil {
			message = env.Error.Message
		}
		return apperrors.FromAPIStatus(resp.StatusCode, message)
	}
	if env.Error != nil && env.Error.Message != "" {
		return apperrors.E(apperrors.KindUnknown, env.Error.Message)
	}
	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return apperrors.E(apperrors.KindUnknown, "backend response missing data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return apperrors.E(apperrors.KindUnknown, "decode backend data")
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, userID string, out any) error {
	return c.do(ctx, http.MethodGet, path, userID, nil, out)
}

func (c *Client) post(ctx context.Context, path string, userID string, in any, out any) error {
	return c.do(ctx, http.MethodPost, path, userID, in, out)
}

func (c *Client) delete(ctx context.Context, path string, userID string) error {
	return c.do(ctx, http.MethodDelete, path, userID, nil, nil)
}
