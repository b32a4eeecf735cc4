// Package session owns the process-wide authentication state: the access
// token and the logged-in user. The in-memory state is mirrored into the
// local database (metadata table) so a session survives restarts, the same
// way the browser client mirrored it into localStorage.
//
// The store is the only writer of those keys; the request pipeline reads the
// token on demand and mutates state exclusively through Set/Clear.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
	"github.com/BrunoMontanari1303/logix-cli/internal/client/repositories/metadata"
	"github.com/BrunoMontanari1303/logix-cli/internal/common"
	"github.com/BrunoMontanari1303/logix-cli/internal/dbx"
	"github.com/BrunoMontanari1303/logix-cli/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

type Store struct {
	mu            sync.RWMutex
	token         string
	user          *models.User
	rememberEmail string

	db  *sql.DB
	log logging.Logger
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log}
}

// Load rehydrates the session from the local database. Read or deserialize
// errors are swallowed: a broken mirror must never prevent the app from
// starting, it just means starting logged out.
func (s *Store) Load(ctx context.Context) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, common.AccessTokenKey)
	if err != nil {
		s.log.Warn(ctx, "session rehydration failed, starting logged out", "error", err)
		return
	}
	rawUser, err := repo.Get(ctx, common.UserKey)
	if err != nil {
		s.log.Warn(ctx, "session rehydration failed, starting logged out", "error", err)
		return
	}

	var user *models.User
	if len(rawUser) > 0 {
		user = &models.User{}
		if err := json.Unmarshal(rawUser, user); err != nil {
			s.log.Warn(ctx, "stored user is not valid JSON, starting logged out", "error", err)
			user = nil
		}
	}

	s.mu.Lock()
	// token and user are only meaningful together
	if len(token) > 0 && user != nil {
		s.token = string(token)
		s.user = user
	}
	s.mu.Unlock()

	if email, err := repo.Get(ctx, common.RememberEmailKey); err == nil && len(email) > 0 {
		s.mu.Lock()
		s.rememberEmail = string(email)
		s.mu.Unlock()
	}
}

// Set replaces the current session. A falsy token or user removes the
// corresponding storage key. Memory is always updated; the returned error
// reports a persistence failure only (the mirror may then lag until the
// next successful write).
func (s *Store) Set(ctx context.Context, token string, user *models.User) error {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		if token == "" {
			if err := repo.Delete(ctx, common.AccessTokenKey); err != nil {
				return err
			}
		} else if err := repo.Set(ctx, common.AccessTokenKey, []byte(token)); err != nil {
			return err
		}

		if user == nil {
			return repo.Delete(ctx, common.UserKey)
		}
		raw, err := json.Marshal(user)
		if err != nil {
			return err
		}
		return repo.Set(ctx, common.UserKey, raw)
	})
}

// Clear removes token and user from memory and storage. Subsequent requests
// go out unauthenticated.
func (s *Store) Clear(ctx context.Context) error {
	return s.Set(ctx, "", nil)
}

// Token returns the current access token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current user, or nil when logged out.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Session returns token and user as one consistent snapshot.
func (s *Store) Session() (string, *models.User) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.user
}

// RememberEmail returns the login email remembered across sessions, if any.
func (s *Store) RememberEmail() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rememberEmail
}

// SetRememberEmail stores (or, when empty, forgets) the login email.
func (s *Store) SetRememberEmail(ctx context.Context, email string) error {
	s.mu.Lock()
	s.rememberEmail = email
	s.mu.Unlock()

	repo := metadata.NewSQLiteRepository(s.db)
	if email == "" {
		return repo.Delete(ctx, common.RememberEmailKey)
	}
	return repo.Set(ctx, common.RememberEmailKey, []byte(email))
}

// TokenExpiresAt returns the exp claim of the current access token. The
// token is parsed without signature verification — the claim is used for
// display only, never for authorization.
func (s *Store) TokenExpiresAt() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
