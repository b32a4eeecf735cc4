package services

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
	"github.com/BrunoMontanari1303/logix-cli/internal/common"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	api := &fakeAPI{handler: func(method, path string, query url.Values, body, out any) error {
		require.Equal(t, "POST", method)
		require.Equal(t, "/auth/login", path)
		require.Equal(t, map[string]string{"email": "ana@logix.dev", "senha": "secret1"}, body)
		setOut(t, out, map[string]any{
			"access_token": "tok-1",
			"user":         map[string]any{"id": 7, "nome": "Ana", "email": "ana@logix.dev", "papel": 3},
		})
		return nil
	}}
	sess := &fakeSession{}
	svc := NewAuthService(api, sess, testLogger())

	user, err := svc.Login(context.Background(), "ana@logix.dev", "secret1", false)
	require.NoError(t, err)
	require.Equal(t, models.RoleManager, user.Papel)
	require.Equal(t, "tok-1", sess.token)
	require.Equal(t, "Ana", sess.user.Nome)
}

func TestLogin_TokenUnderAlternateKey(t *testing.T) {
	api := &fakeAPI{handler: func(method, path string, query url.Values, body, out any) error {
		setOut(t, out, map[string]any{
			"token": "tok-2",
			"user":  map[string]any{"id": 1, "email": "a@b.c", "papel": "ADMIN"},
		})
		return nil
	}}
	sess := &fakeSession{}
	svc := NewAuthService(api, sess, testLogger())

	_, err := svc.Login(context.Background(), "a@b.c", "secret1", false)
	require.NoError(t, err)
	require.Equal(t, "tok-2", sess.token)
}

func TestLogin_MissingCredentials(t *testing.T) {
	api := &fakeAPI{}
	svc := NewAuthService(api, &fakeSession{}, testLogger())

	_, err := svc.Login(context.Background(), "", "x", false)
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.Login(context.Background(), "a@b.c", "", false)
	require.ErrorIs(t, err, common.ErrValidation)

	require.Equal(t, 0, api.callCount())
}

func TestLogin_ResponseWithoutToken(t *testing.T) {
	api := &fakeAPI{handler: func(method, path string, query url.Values, body, out any) error {
		setOut(t, out, map[string]any{"user": map[string]any{"id": 1, "email": "a@b.c"}})
		return nil
	}}
	sess := &fakeSession{}
	svc := NewAuthService(api, sess, testLogger())

	_, err := svc.Login(context.Background(), "a@b.c", "secret1", false)
	require.Error(t, err)
	require.Empty(t, sess.token)
}

func TestLogin_BackendFailurePassesThrough(t *testing.T) {
	boom := errors.New("boom")
	api := &fakeAPI{handler: func(method, path string, query url.Values, body, out any) error {
		return boom
	}}
	svc := NewAuthService(api, &fakeSession{}, testLogger())

	_, err := svc.Login(context.Background(), "a@b.c", "secret1", false)
	require.ErrorIs(t, err, boom)
}

func TestLogin_RememberEmail(t *testing.T) {
	api := &fakeAPI{handler: func(method, path string, query url.Values, body, out any) error {
		setOut(t, out, map[string]any{
			"access_token": "t",
			"user":         map[string]any{"id": 1, "email": "a@b.c", "papel": 2},
		})
		return nil
	}}
	sess := &fakeSession{rememberEmail: "old@logix.dev"}
	svc := NewAuthService(api, sess, testLogger())

	_, err := svc.Login(context.Background(), "a@b.c", "secret1", true)
	require.NoError(t, err)
	require.Equal(t, "a@b.c", sess.rememberEmail)

	// logging in without remember forgets the stored email
	_, err = svc.Login(context.Background(), "a@b.c", "secret1", false)
	require.NoError(t, err)
	require.Equal(t, "", sess.rememberEmail)
}

func TestRegister_FieldChecks(t *testing.T) {
	api := &fakeAPI{}
	svc := NewAuthService(api, &fakeSession{}, testLogger())
	ctx := context.Background()

	require.ErrorIs(t, svc.Register(ctx, "", "a@b.c", "secret1", "secret1", models.RoleClient), common.ErrValidation)
	require.ErrorIs(t, svc.Register(ctx, "Ana", "a@b.c", "secret1", "other77", models.RoleClient), common.ErrValidation)
	require.ErrorIs(t, svc.Register(ctx, "Ana", "a@b.c", "12345", "12345", models.RoleClient), common.ErrValidation)
	require.Equal(t, 0, api.callCount())
}

func TestRegister_SendsProfileTag(t *testing.T) {
	api := &fakeAPI{}
	svc := NewAuthService(api, &fakeSession{}, testLogger())

	require.NoError(t, svc.Register(context.Background(), "Ana", "a@b.c", "secret1", "secret1", models.RoleManager))

	call := api.lastCall(t)
	require.Equal(t, "POST", call.Method)
	require.Equal(t, "/auth/register", call.Path)
	require.Equal(t, map[string]string{
		"nome": "Ana", "email": "a@b.c", "senha": "secret1", "tipoPerfil": "TRANSPORTADORA",
	}, call.Body)
}

func TestLogout_ClearsSession(t *testing.T) {
	sess := &fakeSession{token: "t", user: &models.User{ID: 1}}
	svc := NewAuthService(&fakeAPI{}, sess, testLogger())

	require.NoError(t, svc.Logout(context.Background()))
	require.Empty(t, sess.token)
	require.Nil(t, sess.user)
	require.Equal(t, 1, sess.clears)
}
