package api

import (
	"encoding/json"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
)

// AuthPayload tolerates the shapes the auth endpoints are known to produce:
// the token arrives as `access_token` or `token`, the user either under a
// `user` key or as the payload itself.
type AuthPayload struct {
	AccessToken string       `json:"access_token"`
	Token       string       `json:"token"`
	User        *models.User `json:"user"`

	raw json.RawMessage
}

func (p *AuthPayload) UnmarshalJSON(b []byte) error {
	type alias AuthPayload
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*p = AuthPayload(a)
	p.raw = append(json.RawMessage(nil), b...)
	return nil
}

// BearerToken returns whichever token field the backend filled in.
func (p *AuthPayload) BearerToken() string {
	if p.AccessToken != "" {
		return p.AccessToken
	}
	return p.Token
}

// ResolveUser returns the user record, falling back to decoding the whole
// payload as a user when no `user` key was present. Returns nil when
// neither shape yields a usable record.
func (p *AuthPayload) ResolveUser() *models.User {
	if p.User != nil {
		return p.User
	}
	if len(p.raw) == 0 {
		return nil
	}
	var u models.User
	if err := json.Unmarshal(p.raw, &u); err != nil {
		return nil
	}
	if u.ID == 0 && u.Email == "" {
		return nil
	}
	return &u
}
