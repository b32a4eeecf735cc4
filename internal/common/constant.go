// Package common contains shared constants and sentinel errors used across
// Logix client components.
package common

// Durable local storage keys mirroring the browser client's localStorage.
const (
	AccessTokenKey   = "access_token"
	UserKey          = "user"
	RememberEmailKey = "remember_email"
)
