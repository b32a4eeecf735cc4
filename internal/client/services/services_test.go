package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"sync"
	"testing"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
	"github.com/BrunoMontanari1303/logix-cli/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- fake API client ----

type apiCall struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// fakeAPI implements Doer for unit tests. The handler decides the outcome;
// every call is recorded for assertions.
type fakeAPI struct {
	mu      sync.Mutex
	calls   []apiCall
	handler func(method, path string, query url.Values, body, out any) error
}

func (f *fakeAPI) dispatch(method, path string, query url.Values, body, out any) error {
	f.mu.Lock()
	f.calls = append(f.calls, apiCall{Method: method, Path: path, Query: query, Body: body})
	f.mu.Unlock()

	if f.handler == nil {
		return nil
	}
	return f.handler(method, path, query, body, out)
}

func (f *fakeAPI) Get(ctx context.Context, path string, query url.Values, out any) error {
	return f.dispatch("GET", path, query, nil, out)
}

func (f *fakeAPI) Post(ctx context.Context, path string, body, out any) error {
	return f.dispatch("POST", path, nil, body, out)
}

func (f *fakeAPI) Patch(ctx context.Context, path string, body, out any) error {
	return f.dispatch("PATCH", path, nil, body, out)
}

func (f *fakeAPI) Delete(ctx context.Context, path string) error {
	return f.dispatch("DELETE", path, nil, nil, nil)
}

func (f *fakeAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAPI) lastCall(t *testing.T) apiCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.calls)
	return f.calls[len(f.calls)-1]
}

// setOut copies v into the out pointer the way the real pipeline would,
// through a JSON round trip.
func setOut(t *testing.T, out, v any) {
	t.Helper()
	if out == nil {
		return
	}
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// ---- fake session ----

type fakeSession struct {
	token         string
	user          *models.User
	rememberEmail string
	clears        int
}

func (f *fakeSession) Set(ctx context.Context, token string, user *models.User) error {
	f.token = token
	f.user = user
	return nil
}

func (f *fakeSession) Clear(ctx context.Context) error {
	f.token = ""
	f.user = nil
	f.clears++
	return nil
}

func (f *fakeSession) SetRememberEmail(ctx context.Context, email string) error {
	f.rememberEmail = email
	return nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.Default())
}
