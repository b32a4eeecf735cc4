package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/api"
	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
	"github.com/BrunoMontanari1303/logix-cli/internal/common"
	"github.com/BrunoMontanari1303/logix-cli/internal/logging"
)

// Session is the slice of the session store the auth service writes to.
type Session interface {
	Set(ctx context.Context, token string, user *models.User) error
	Clear(ctx context.Context) error
	SetRememberEmail(ctx context.Context, email string) error
}

type AuthService struct {
	api     Doer
	session Session
	log     logging.Logger
}

func NewAuthService(api Doer, session Session, log logging.Logger) *AuthService {
	return &AuthService{api: api, session: session, log: log}
}

// Login authenticates against POST /auth/login and installs the resulting
// session. The backend payload shape varies between deployments, so the
// token and user are extracted leniently (api.AuthPayload). When remember
// is set the email is kept for the next login prompt, otherwise a
// previously remembered email is forgotten.
func (a *AuthService) Login(ctx context.Context, email, senha string, remember bool) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || senha == "" {
		return nil, fmt.Errorf("%w: informe email e senha", common.ErrValidation)
	}

	var payload api.AuthPayload
	if err := a.api.Post(ctx, "/auth/login", map[string]string{"email": email, "senha": senha}, &payload); err != nil {
		return nil, err
	}

	token := payload.BearerToken()
	user := payload.ResolveUser()
	if token == "" || user == nil {
		return nil, fmt.Errorf("token ou usuário não recebidos do servidor")
	}

	if err := a.session.Set(ctx, token, user); err != nil {
		// the session is live in memory; a broken mirror only costs the
		// next restart
		a.log.Warn(ctx, "failed to persist session", "error", err)
	}

	rememberValue := ""
	if remember {
		rememberValue = email
	}
	if err := a.session.SetRememberEmail(ctx, rememberValue); err != nil {
		a.log.Warn(ctx, "failed to persist remembered email", "error", err)
	}

	a.log.Info(ctx, "login succeeded", "user_id", user.ID, "papel", user.Papel.String())
	return user, nil
}

// Register creates a new account. The field checks mirror the registration
// form: everything required, matching passwords, minimum length.
func (a *AuthService) Register(ctx context.Context, nome, email, senha, confirm string, papel models.Role) error {
	nome = strings.TrimSpace(nome)
	email = strings.TrimSpace(email)

	if nome == "" || email == "" || senha == "" || confirm == "" {
		return fmt.Errorf("%w: preencha todos os campos", common.ErrValidation)
	}
	if senha != confirm {
		return fmt.Errorf("%w: as senhas não conferem", common.ErrValidation)
	}
	if len(senha) < 6 {
		return fmt.Errorf("%w: a senha deve ter pelo menos 6 caracteres", common.ErrValidation)
	}

	body := map[string]string{
		"nome":       nome,
		"email":      email,
		"senha":      senha,
		"tipoPerfil": papel.RegisterTag(),
	}
	return a.api.Post(ctx, "/auth/register", body, nil)
}

// Logout drops the session; the durable mirror is cleared with it.
func (a *AuthService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}
