package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
	"github.com/BrunoMontanari1303/logix-cli/internal/common"
)

// getSimpleText, getPassword and getID are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getID = GetID

// Login prompts for credentials and authenticates against the backend. When
// an email was remembered from a previous session it is offered as the
// default. Answering "s" to the remember question keeps the email for the
// next login.
func (a *App) Login(ctx context.Context) error {
	prompt := "Email"
	if remembered := a.session.RememberEmail(); remembered != "" {
		prompt = fmt.Sprintf("Email [%s]", remembered)
	}

	email, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		email = a.session.RememberEmail()
	}

	password, err := getPassword(os.Stdout, "Senha")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	remember, err := getSimpleText(a.reader, "Lembrar email? (s/n)", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, string(password), strings.EqualFold(remember, "s"))
	if err != nil {
		log.Printf("Login falhou: %s", friendlyError(err, "conflito ao autenticar"))
		return err
	}

	fmt.Printf("Bem-vindo, %s (%s)\n", user.Nome, user.Papel.String())
	return nil
}

// Register prompts for the account fields and creates a new profile. The
// profile question mirrors the registration form: transportadora accounts
// become GESTOR, everything else CLIENTE.
func (a *App) Register(ctx context.Context) error {
	nome, err := getSimpleText(a.reader, "Nome", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Senha")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Confirme a senha")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	perfil, err := getSimpleText(a.reader, "Perfil transportadora? (s/n)", os.Stdout)
	if err != nil {
		return err
	}
	papel := models.RoleClient
	if strings.EqualFold(perfil, "s") {
		papel = models.RoleManager
	}

	if err := a.auth.Register(ctx, nome, email, string(password), string(confirm), papel); err != nil {
		log.Printf("Registro falhou: %s", friendlyError(err, "email já cadastrado"))
		return err
	}

	fmt.Println("Conta criada! Faça login para continuar.")
	return nil
}

// Logout drops the session, local mirror included.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		log.Printf("Logout falhou: %s", err.Error())
		return err
	}
	fmt.Println("Sessão encerrada.")
	return nil
}

// Whoami prints the logged-in user and, when the token carries an exp claim,
// the session expiry.
func (a *App) Whoami(ctx context.Context) error {
	user := a.currentUser()
	if user == nil {
		fmt.Println("Não autenticado.")
		return nil
	}

	fmt.Printf("#%d %s <%s> %s\n", user.ID, user.Nome, user.Email, user.Papel.String())
	if exp, ok := a.session.TokenExpiresAt(); ok {
		fmt.Printf("Sessão expira em %s\n", exp.Local().Format("02/01/2006 15:04"))
	}
	return nil
}
