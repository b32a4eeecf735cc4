package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
	"github.com/BrunoMontanari1303/logix-cli/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// SessionStore is the slice of the session store the pipeline needs. The
// pipeline reads the token on demand and mutates state only through
// Set/Clear; it never touches the durable mirror directly.
type SessionStore interface {
	Token() string
	User() *models.User
	Set(ctx context.Context, token string, user *models.User) error
	Clear(ctx context.Context) error
}

type Client struct {
	baseURL string
	http    *http.Client
	session SessionStore
	log     logging.Logger

	// refresh guarantees at most one /auth/refresh in flight; all requests
	// failing with 401 inside that window observe the same token or error.
	refresh singleflight.Group
}

func New(baseURL string, session SessionStore, timeout time.Duration, log logging.Logger) *Client {
	// the refresh credential is an http-only cookie set at login; the jar
	// carries it back on POST /auth/refresh
	jar, _ := cookiejar.New(nil)

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: session,
		log:     log,
		http:    &http.Client{Timeout: timeout, Jar: jar},
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do runs one request through the pipeline. On a 401 with a live session it
// waits for the shared refresh and retries the original request exactly
// once; a request that fails with 401 after its retry is never retried
// again, so a refresh loop is impossible.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	requestID := uuid.NewString()

	status, raw, err := c.send(ctx, method, path, query, payload, requestID, c.session.Token())
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && c.session.Token() != "" {
		token, rerr := c.refreshSession(ctx)
		if rerr != nil {
			c.log.Warn(ctx, "token refresh failed, session terminated", "request_id", requestID, "error", rerr)
			return &Error{Status: status, RequestID: requestID, Err: ErrSessionExpired}
		}

		c.log.Debug(ctx, "retrying request with refreshed token", "method", method, "path", path, "request_id", requestID)
		status, raw, err = c.send(ctx, method, path, query, payload, requestID, token)
		if err != nil {
			return err
		}
	}

	return c.finish(status, raw, requestID, out)
}

// send performs a single HTTP exchange and returns the status code and the
// full response body.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, requestID, token string) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	return resp.StatusCode, raw, nil
}

// finish unwraps the response envelope on success or maps the failure onto
// a sentinel error.
func (c *Client) finish(status int, raw []byte, requestID string, out any) error {
	if status >= 200 && status < 300 {
		if out == nil {
			return nil
		}
		return decodeEnvelope(raw, out)
	}

	var env envelope
	_ = json.Unmarshal(raw, &env)

	return &Error{Status: status, Message: env.Message, RequestID: requestID, Err: sentinelFor(status)}
}

func sentinelFor(status int) error {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusConflict:
		return ErrConflict
	case status == http.StatusUnprocessableEntity:
		return ErrValidation
	default:
		return ErrServer
	}
}

// decodeEnvelope unmarshals the `data` member into out, falling back to the
// whole body for endpoints that skip the envelope.
func decodeEnvelope(raw []byte, out any) error {
	if len(raw) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// refreshSession funnels every caller through one in-flight refresh. On
// success the session store already holds the new token; on failure the
// session is cleared and the caller is expected to fall back to the login
// flow.
func (c *Client) refreshSession(ctx context.Context) (string, error) {
	v, err, shared := c.refresh.Do("refresh", func() (any, error) {
		return c.doRefresh(ctx)
	})
	if err != nil {
		_ = c.session.Clear(ctx)
		return "", err
	}
	if shared {
		c.log.Debug(ctx, "joined in-flight token refresh")
	}
	return v.(string), nil
}

// doRefresh calls POST /auth/refresh directly, bypassing do(): a refresh
// must never enter the 401 interception path and trigger itself.
func (c *Client) doRefresh(ctx context.Context) (string, error) {
	requestID := uuid.NewString()

	status, raw, err := c.send(ctx, http.MethodPost, "/auth/refresh", nil, []byte("{}"), requestID, "")
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", &Error{Status: status, RequestID: requestID, Err: ErrUnauthorized}
	}

	var payload AuthPayload
	if err := decodeEnvelope(raw, &payload); err != nil {
		return "", err
	}

	token := payload.BearerToken()
	if token == "" {
		return "", fmt.Errorf("refresh response carries no token")
	}

	user := payload.ResolveUser()
	if user == nil {
		user = c.session.User()
	}

	if err := c.session.Set(ctx, token, user); err != nil {
		// a failed mirror write must not discard an otherwise good refresh
		c.log.Warn(ctx, "failed to persist refreshed session", "error", err)
	}

	c.log.Info(ctx, "access token refreshed", "request_id", requestID)
	return token, nil
}
