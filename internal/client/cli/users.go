package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
	"github.com/BrunoMontanari1303/logix-cli/internal/client/services"
	"github.com/BrunoMontanari1303/logix-cli/internal/common"
)

// ListUsers prints every user profile. Restricted to ADMIN.
func (a *App) ListUsers(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}

	users, err := a.reference.Users(ctx)
	if err != nil {
		log.Printf("Erro ao listar usuários: %s", err.Error())
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOME\tEMAIL\tPAPEL")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Nome, u.Email, u.Papel.String())
	}
	w.Flush()
	fmt.Printf("%d usuário(s)\n", len(users))
	return nil
}

// AddUser creates a profile with an explicit role. Restricted to ADMIN.
func (a *App) AddUser(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}

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

	rawPapel, err := getSimpleText(a.reader, "Papel (ADMIN/GESTOR/USER)", os.Stdout)
	if err != nil {
		return err
	}
	papel, err := models.ParseRole(rawPapel)
	if err != nil {
		log.Printf("Papel inválido: %q", rawPapel)
		return err
	}

	u, err := a.users.Create(ctx, nome, email, string(password), papel)
	if err != nil {
		log.Printf("Erro ao criar usuário: %s", friendlyError(err, "email já cadastrado"))
		return err
	}

	fmt.Printf("Usuário #%d criado: %s (%s)\n", u.ID, u.Email, u.Papel.String())
	return nil
}

// EditProfile updates the logged-in user's name and email. Empty answers
// keep the current value.
func (a *App) EditProfile(ctx context.Context) error {
	user := a.currentUser()
	if user == nil {
		fmt.Println("Não autenticado.")
		return nil
	}

	nome, err := getSimpleText(a.reader, fmt.Sprintf("Nome [%s]", user.Nome), os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", user.Email), os.Stdout)
	if err != nil {
		return err
	}

	if nome == "" && email == "" {
		fmt.Println("Nada a alterar.")
		return nil
	}

	updated, err := a.users.Update(ctx, user.ID, services.UserUpdate{Nome: nome, Email: email})
	if err != nil {
		log.Printf("Erro ao atualizar perfil: %s", err.Error())
		return err
	}

	fmt.Printf("Perfil atualizado: %s <%s>\n", updated.Nome, updated.Email)
	return nil
}
