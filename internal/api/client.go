// Package api is the client for the remote personal-finance REST API.
//
// All requests carry the session's bearer credential when one is present.
// Failures are mapped onto the package's error taxonomy: transport
// problems become *NetworkError, non-2xx responses become *RemoteError,
// with 401 and 404 surfaced as ErrUnauthorized and ErrNotFound.
package api

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

	"github.com/google/uuid"

	"fintrack/internal/log"
)

// maxErrorBody bounds how much of a remote error payload is retained.
const maxErrorBody = 64 << 10

type Client struct {
	baseURL *url.URL
	http    *http.Client
	session *Session
	logger  *log.Logger
}

func NewClient(baseURL string, timeout time.Duration, session *Session, logger *log.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		session: session,
		logger:  logger.WithComponent(log.ComponentAPI),
	}, nil
}

// Session exposes the client's session for authentication checks.
func (c *Client) Session() *Session { return c.session }

type loginResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User    struct {
		Username string `json:"username"`
	} `json:"user"`
}

// Login exchanges credentials for a bearer token and installs it on the
// session. The caller decides whether to persist the session afterwards.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp loginResponse
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "login/", nil, body, &resp); err != nil {
		return err
	}
	c.session.Set(resp.Access, resp.Refresh, resp.User.Username)
	c.logger.InfoContext(ctx, "logged in", log.FieldOperation, log.OpLogin, "user", resp.User.Username)
	return nil
}

// do executes one request against the API. path is relative to the base
// URL; query may be nil; body (if non-nil) is sent as JSON; out (if
// non-nil) receives the decoded JSON response.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	op := method + " " + path

	ref := &url.URL{Path: path}
	if query != nil {
		ref.RawQuery = query.Encode()
	}
	endpoint := c.baseURL.ResolveReference(ref).String()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+c.session.AccessToken)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "request failed",
			log.FieldMethod, method,
			log.FieldPath, path,
			log.FieldError, err)
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "request completed",
		log.FieldMethod, method,
		log.FieldPath, path,
		log.FieldStatusCode, resp.StatusCode,
		log.FieldDuration, time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		trimmed := strings.TrimSpace(string(raw))
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w (status %d)", ErrUnauthorized, resp.StatusCode)
		case http.StatusNotFound:
			return fmt.Errorf("%w (%s)", ErrNotFound, path)
		default:
			return &RemoteError{StatusCode: resp.StatusCode, Body: trimmed}
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response for %s: %w", op, err)
	}
	return nil
}
