package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
	"github.com/BrunoMontanari1303/logix-cli/internal/common"
)

// UserService covers profile administration: create, fetch, update
// (nome/email) and role assignment.
type UserService struct {
	api Doer
}

func NewUserService(api Doer) *UserService {
	return &UserService{api: api}
}

// UserUpdate is the PATCH /usuarios/:id payload; empty fields are omitted.
type UserUpdate struct {
	Nome  string      `json:"nome,omitempty"`
	Email string      `json:"email,omitempty"`
	Papel models.Role `json:"papel,omitempty"`
}

func (u *UserService) Create(ctx context.Context, nome, email, senha string, papel models.Role) (*models.User, error) {
	if strings.TrimSpace(nome) == "" || strings.TrimSpace(email) == "" || senha == "" {
		return nil, fmt.Errorf("%w: preencha todos os campos", common.ErrValidation)
	}

	body := map[string]string{
		"nome":  strings.TrimSpace(nome),
		"email": strings.TrimSpace(email),
		"senha": senha,
		"papel": papel.String(),
	}

	var out models.User
	if err := u.api.Post(ctx, "/usuarios", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	var out models.User
	if err := u.api.Get(ctx, fmt.Sprintf("/usuarios/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *UserService) Update(ctx context.Context, id int64, in UserUpdate) (*models.User, error) {
	var out models.User
	if err := u.api.Patch(ctx, fmt.Sprintf("/usuarios/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
