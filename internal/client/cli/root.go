package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// Root prints the banner and hands control to the REPL. A session persisted
// by a previous run is already rehydrated at this point, so the user may
// land here logged in.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Logix CLI (digite 'help' para ver os comandos)")

	if user := a.currentUser(); user != nil {
		fmt.Printf("Sessão restaurada: %s (%s)\n", user.Email, user.Papel.String())
	} else if email := a.session.RememberEmail(); email != "" {
		fmt.Printf("Último login: %s\n", email)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
