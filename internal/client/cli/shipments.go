package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
	"github.com/BrunoMontanari1303/logix-cli/internal/client/services"
)

const dateLayout = "2006-01-02"

func (a *App) requireManager() bool {
	user := a.currentUser()
	if user.IsManager() || user.IsAdmin() {
		return true
	}
	fmt.Println("Apenas perfis GESTOR podem executar este comando.")
	return false
}

func (a *App) requireAdmin() bool {
	if a.currentUser().IsAdmin() {
		return true
	}
	fmt.Println("Apenas perfis ADMIN podem executar este comando.")
	return false
}

// ListShipments prints the first page of shipments, newest first, resolving
// vehicle and driver assignments to readable labels. An optional filter term
// narrows the page by origin, destination, cargo type or status.
func (a *App) ListShipments(ctx context.Context) error {
	list, err := a.shipments.List(ctx, services.ListQuery{})
	if err != nil {
		log.Printf("Erro ao listar pedidos: %s", err.Error())
		return err
	}

	term, err := getSimpleText(a.reader, "Filtro (vazio para todos)", os.Stdout)
	if err != nil {
		return err
	}
	list = services.FilterShipments(list, term)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tORIGEM\tDESTINO\tCARGA\tENTREGA\tSTATUS\tVEÍCULO\tMOTORISTA")
	for _, sh := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			sh.ID, sh.Origem, sh.Destino, sh.TipoCarga,
			formatDate(sh.DataEntrega), sh.Status,
			a.reference.VehicleLabel(ctx, sh.VeiculoID),
			a.reference.DriverLabel(ctx, sh.MotoristaID))
	}
	w.Flush()
	fmt.Printf("%d pedido(s)\n", len(list))
	return nil
}

// ShowShipment prints a single shipment in full.
func (a *App) ShowShipment(ctx context.Context) error {
	id, err := getID(a.reader, "ID do pedido", os.Stdout)
	if err != nil {
		log.Printf("Erro: %s", err.Error())
		return err
	}

	sh, err := a.shipments.Get(ctx, id)
	if err != nil {
		log.Printf("Erro ao buscar pedido: %s", err.Error())
		return err
	}

	fmt.Printf("Pedido #%d\n", sh.ID)
	fmt.Printf("  Origem:    %s\n", sh.Origem)
	fmt.Printf("  Destino:   %s\n", sh.Destino)
	fmt.Printf("  Carga:     %s\n", sh.TipoCarga)
	fmt.Printf("  Entrega:   %s\n", formatDate(sh.DataEntrega))
	fmt.Printf("  Status:    %s\n", sh.Status)
	fmt.Printf("  Veículo:   %s\n", a.reference.VehicleLabel(ctx, sh.VeiculoID))
	fmt.Printf("  Motorista: %s\n", a.reference.DriverLabel(ctx, sh.MotoristaID))
	return nil
}

// CreateShipment prompts for the new shipment fields and submits it. The
// shipment starts PENDENTE; assignment happens later through aceitar.
func (a *App) CreateShipment(ctx context.Context) error {
	origem, err := getSimpleText(a.reader, "Origem", os.Stdout)
	if err != nil {
		return err
	}
	destino, err := getSimpleText(a.reader, "Destino", os.Stdout)
	if err != nil {
		return err
	}
	tipoCarga, err := getSimpleText(a.reader, "Tipo de carga", os.Stdout)
	if err != nil {
		return err
	}
	rawDate, err := getSimpleText(a.reader, "Data de entrega (AAAA-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	dataEntrega, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		log.Printf("Data inválida: %q", rawDate)
		return err
	}

	sh, err := a.shipments.Create(ctx, models.NewShipment{
		Origem:      origem,
		Destino:     destino,
		TipoCarga:   tipoCarga,
		DataEntrega: dataEntrega,
	})
	if err != nil {
		log.Printf("Erro ao criar pedido: %s", err.Error())
		return err
	}

	fmt.Printf("Pedido #%d criado (%s)\n", sh.ID, sh.Status)
	return nil
}

// AcceptShipment walks a GESTOR through accepting a pending shipment:
// pick the shipment, pick a vehicle and a driver, confirm.
func (a *App) AcceptShipment(ctx context.Context) error {
	if !a.requireManager() {
		return nil
	}

	id, err := getID(a.reader, "ID do pedido", os.Stdout)
	if err != nil {
		log.Printf("Erro: %s", err.Error())
		return err
	}

	sh, err := a.shipments.Get(ctx, id)
	if err != nil {
		log.Printf("Erro ao buscar pedido: %s", err.Error())
		return err
	}
	if !sh.Status.Pendente() {
		fmt.Printf("Pedido #%d não está PENDENTE (status %s)\n", sh.ID, sh.Status)
		return nil
	}

	if err := a.printFleetOptions(ctx); err != nil {
		return err
	}

	veiculoID, err := getID(a.reader, "ID do veículo", os.Stdout)
	if err != nil {
		log.Printf("Erro: %s", err.Error())
		return err
	}
	motoristaID, err := getID(a.reader, "ID do motorista", os.Stdout)
	if err != nil {
		log.Printf("Erro: %s", err.Error())
		return err
	}

	if err := a.shipments.Accept(ctx, sh, veiculoID, motoristaID); err != nil {
		log.Printf("Erro ao aceitar pedido: %s", friendlyError(err, "pedido já foi processado por outro gestor"))
		return err
	}

	fmt.Printf("Pedido #%d aceito: veículo %s, motorista %s\n",
		sh.ID,
		a.reference.VehicleLabel(ctx, sh.VeiculoID),
		a.reference.DriverLabel(ctx, sh.MotoristaID))
	return nil
}

// DeleteShipment removes a shipment. Restricted to ADMIN.
func (a *App) DeleteShipment(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}

	id, err := getID(a.reader, "ID do pedido a excluir", os.Stdout)
	if err != nil {
		log.Printf("Erro: %s", err.Error())
		return err
	}

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Excluir pedido #%d? (s/n)", id), os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "s" && confirm != "S" {
		fmt.Println("Cancelado.")
		return nil
	}

	if err := a.shipments.Delete(ctx, id); err != nil {
		log.Printf("Erro ao excluir pedido: %s", err.Error())
		return err
	}

	fmt.Printf("Pedido #%d excluído\n", id)
	return nil
}

func (a *App) printFleetOptions(ctx context.Context) error {
	vehicles, err := a.reference.Vehicles(ctx)
	if err != nil {
		log.Printf("Erro ao listar veículos: %s", err.Error())
		return err
	}
	drivers, err := a.reference.Drivers(ctx)
	if err != nil {
		log.Printf("Erro ao listar motoristas: %s", err.Error())
		return err
	}

	fmt.Println("Veículos disponíveis:")
	for _, v := range vehicles {
		fmt.Printf("  %d: %s (%s)\n", v.ID, v.Placa, v.Modelo)
	}
	fmt.Println("Motoristas disponíveis:")
	for _, d := range drivers {
		fmt.Printf("  %d: %s\n", d.ID, d.Nome)
	}
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}
