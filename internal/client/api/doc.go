// Package api is the single egress point for all Logix backend calls.
//
// Every request goes through the same pipeline: a bearer token (when a
// session exists) and an X-Request-Id header are attached, the JSON
// `{data: ...}` envelope is unwrapped, and HTTP failures are mapped onto
// sentinel errors callers can match with errors.Is.
//
// On a 401 the pipeline coordinates a single shared token refresh: the
// first failing request triggers POST /auth/refresh, concurrently failing
// requests wait for that same in-flight call, and each original request is
// retried exactly once with the new token. When the refresh itself fails
// the session is cleared and ErrSessionExpired is returned, which the CLI
// turns into a forced logout.
package api
