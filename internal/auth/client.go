package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/manav03panchal/lifedash/internal/errors"
	"github.com/manav03panchal/lifedash/internal/logging"
	"github.com/manav03panchal/lifedash/internal/model"
)

// UserAgent identifies the CLI to the auth endpoint.
const UserAgent = "Lifedash/1.0"

// Client calls the login endpoint. Failed logins are returned as-is, never
// retried.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// LoginResult contains the outcome of a login call.
type LoginResult struct {
	Session    *model.Session
	StatusCode int
	Duration   time.Duration
}

// Login posts credentials to the login endpoint. Transport failures become
// a network error; error responses become the matching user or system error.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	ctx, requestID := logging.EnsureRequestID(ctx)
	start := time.Now()
	result := &LoginResult{}

	body, err := json.Marshal(Credentials{Email: email, Password: password})
	if err != nil {
		return nil, errors.Internal("auth.Client.Login", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+LoginPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Internal("auth.Client.Login", fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		logging.FromContext(ctx).Debug("login request failed",
			logging.KeyURL, logging.MaskString(c.baseURL),
			logging.KeyError, err)
		return nil, errors.Network(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Network(err)
	}
	result.StatusCode = resp.StatusCode
	result.Duration = time.Since(start)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var lr LoginResponse
		if err := json.Unmarshal(respBody, &lr); err != nil || !lr.Success || lr.Token == "" {
			return nil, errors.Internal("auth.Client.Login", fmt.Errorf("unexpected response: %s", truncate(respBody)))
		}
		result.Session = &model.Session{Token: lr.Token, User: lr.User}
		return result, nil
	}

	return nil, responseError(resp.StatusCode, respBody)
}

// responseError maps an error response onto the error taxonomy.
func responseError(status int, body []byte) error {
	var er ErrorResponse
	_ = json.Unmarshal(body, &er)

	switch status {
	case http.StatusBadRequest:
		return errors.CredentialsRequired()
	case http.StatusUnauthorized:
		return errors.InvalidCredentials()
	}

	msg := er.Message
	if msg == "" {
		msg = errors.MsgInternal
	}
	return errors.NewSystemErrorWithOp("auth.Client.Login", msg,
		fmt.Errorf("HTTP %d: %s", status, truncate(body)))
}

func truncate(b []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(b))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
