package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
	"github.com/BrunoMontanari1303/logix-cli/internal/client/services"
)

// Dashboard prints the aggregate numbers the web dashboard showed: status
// buckets and shipments per month for everyone, fleet sizes only for
// GESTOR/ADMIN (the backend refuses those lists to other roles).
func (a *App) Dashboard(ctx context.Context) error {
	shipments, err := a.shipments.List(ctx, services.ListQuery{Limit: 100})
	if err != nil {
		log.Printf("Erro ao carregar pedidos: %s", friendlyError(err, "conflito ao carregar pedidos"))
		return err
	}

	var (
		vehicles  []models.Vehicle
		drivers   []models.Driver
		showFleet bool
	)
	if user := a.currentUser(); user.IsManager() || user.IsAdmin() {
		vehicles, err = a.reference.Vehicles(ctx)
		if err != nil {
			log.Printf("Erro ao carregar veículos: %s", err.Error())
			return err
		}
		drivers, err = a.reference.Drivers(ctx)
		if err != nil {
			log.Printf("Erro ao carregar motoristas: %s", err.Error())
			return err
		}
		showFleet = true
	}

	stats := services.BuildDashboardStats(shipments, vehicles, drivers)

	fmt.Printf("Pedidos:    %d (pendentes %d, aceitos %d, outros %d)\n",
		stats.TotalPedidos, stats.Pendentes, stats.Aceitos, stats.Outros)
	if showFleet {
		fmt.Printf("Veículos:   %d\n", stats.Veiculos)
		fmt.Printf("Motoristas: %d\n", stats.Motoristas)
	}

	if len(stats.PorMes) > 0 {
		fmt.Println("Entregas por mês:")
		for _, m := range stats.PorMes {
			fmt.Printf("  %s: %d\n", m.Label, m.Total)
		}
	}
	return nil
}
