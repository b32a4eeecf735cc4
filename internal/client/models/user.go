// Package models holds the client-side copies of the Logix domain entities.
// All of them are owned by the backend; what lives here is a possibly-stale
// snapshot fetched on demand, normalized at the JSON boundary.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role is the closed enumeration behind the `papel` field. The backend is
// inconsistent and may send either a numeric code or a string tag; both are
// normalized here so the rest of the code never compares raw values.
type Role int

const (
	RoleUnknown Role = 0
	RoleAdmin   Role = 1
	RoleClient  Role = 2
	RoleManager Role = 3
)

// ParseRole normalizes a backend role tag. Accepted string tags:
// ADMIN, USER, CLIENTE, GESTOR, TRANSPORTADORA (case-insensitive).
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ADMIN":
		return RoleAdmin, nil
	case "USER", "CLIENTE":
		return RoleClient, nil
	case "GESTOR", "TRANSPORTADORA":
		return RoleManager, nil
	default:
		return RoleUnknown, fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "ADMIN"
	case RoleClient:
		return "USER"
	case RoleManager:
		return "GESTOR"
	default:
		return "UNKNOWN"
	}
}

// RegisterTag returns the profile tag expected by POST /auth/register.
func (r Role) RegisterTag() string {
	if r == RoleManager {
		return "TRANSPORTADORA"
	}
	return "CLIENTE"
}

// UnmarshalJSON accepts numeric codes and string tags. An unrecognized value
// decodes to RoleUnknown rather than failing, so one odd record cannot break
// decoding of a whole user page; RoleUnknown passes no permission check.
func (r *Role) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case nil:
		*r = RoleUnknown
		return nil
	case float64:
		switch int(value) {
		case int(RoleAdmin), int(RoleClient), int(RoleManager):
			*r = Role(int(value))
		default:
			*r = RoleUnknown
		}
		return nil
	case string:
		parsed, err := ParseRole(value)
		if err != nil {
			*r = RoleUnknown
			return nil
		}
		*r = parsed
		return nil
	default:
		return fmt.Errorf("invalid role value %v", v)
	}
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// User is the authenticated account record.
type User struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Papel Role   `json:"papel"`
}

// IsAdmin reports whether the user may manage other users and delete
// shipments.
func (u *User) IsAdmin() bool {
	return u != nil && u.Papel == RoleAdmin
}

// IsManager reports whether the user may accept shipments and manage the
// fleet (vehicles/drivers).
func (u *User) IsManager() bool {
	return u != nil && u.Papel == RoleManager
}
