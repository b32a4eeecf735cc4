package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Dashboard(ctx context.Context) error
	ListShipments(ctx context.Context) error
	ShowShipment(ctx context.Context) error
	CreateShipment(ctx context.Context) error
	AcceptShipment(ctx context.Context) error
	DeleteShipment(ctx context.Context) error
	ListVehicles(ctx context.Context) error
	AddVehicle(ctx context.Context) error
	RemoveVehicle(ctx context.Context) error
	ListDrivers(ctx context.Context) error
	AddDriver(ctx context.Context) error
	RemoveDriver(ctx context.Context) error
	ListUsers(ctx context.Context) error
	AddUser(ctx context.Context) error
	EditProfile(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Logix CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "sair".
//
// Commands while logged out: help, login, registrar, exit. Once logged in
// the shipment, fleet and user commands become available; each handler does
// its own role check, so the REPL only distinguishes logged in or not.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("logix %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "help", "ajuda":
			if a.isLoggedIn() {
				printlnFn("Comandos: whoami, dashboard, pedidos, pedido, novo, aceitar, excluir,")
				printlnFn("          veiculos, novoveiculo, excluirveiculo, motoristas, novomotorista,")
				printlnFn("          excluirmotorista, usuarios, novousuario, perfil, logout, exit")
			} else {
				printlnFn("Comandos: login, registrar, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "registrar", "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "pedidos":
			_ = a.ListShipments(ctx)

		case "pedido":
			_ = a.ShowShipment(ctx)

		case "novo":
			_ = a.CreateShipment(ctx)

		case "aceitar":
			_ = a.AcceptShipment(ctx)

		case "excluir":
			_ = a.DeleteShipment(ctx)

		case "veiculos":
			_ = a.ListVehicles(ctx)

		case "novoveiculo":
			_ = a.AddVehicle(ctx)

		case "excluirveiculo":
			_ = a.RemoveVehicle(ctx)

		case "motoristas":
			_ = a.ListDrivers(ctx)

		case "novomotorista":
			_ = a.AddDriver(ctx)

		case "excluirmotorista":
			_ = a.RemoveDriver(ctx)

		case "usuarios":
			_ = a.ListUsers(ctx)

		case "novousuario":
			_ = a.AddUser(ctx)

		case "perfil":
			_ = a.EditProfile(ctx)

		case "exit", "quit", "sair":
			printlnFn("Até logo!")
			return

		default:
			printlnFn("Comando desconhecido:", cmd)
		}
	}
}
