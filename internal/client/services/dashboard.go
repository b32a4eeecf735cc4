package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
)

// DashboardStats is the aggregate view behind the dashboard command.
type DashboardStats struct {
	TotalPedidos int
	Pendentes    int
	Aceitos      int
	Outros       int
	Veiculos     int
	Motoristas   int
	PorMes       []MonthCount
}

// MonthCount is the number of shipments falling in one month, labeled
// "MM/YYYY". Entries are sorted chronologically.
type MonthCount struct {
	Label string
	Total int
}

// BuildDashboardStats aggregates the already-fetched lists. The month
// bucket uses the delivery date and falls back to the creation date.
func BuildDashboardStats(shipments []models.Shipment, veiculos []models.Vehicle, motoristas []models.Driver) DashboardStats {
	stats := DashboardStats{
		TotalPedidos: len(shipments),
		Veiculos:     len(veiculos),
		Motoristas:   len(motoristas),
	}

	byMonth := make(map[string]int)

	for _, s := range shipments {
		switch s.Status {
		case models.StatusPendente:
			stats.Pendentes++
		case models.StatusAceito:
			stats.Aceitos++
		default:
			stats.Outros++
		}

		date := s.DataEntrega
		if date.IsZero() {
			date = s.CreatedAt
		}
		if date.IsZero() {
			continue
		}
		byMonth[date.Format("2006-01")]++
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		t, _ := time.Parse("2006-01", k)
		stats.PorMes = append(stats.PorMes, MonthCount{
			Label: fmt.Sprintf("%02d/%d", int(t.Month()), t.Year()),
			Total: byMonth[k],
		})
	}

	return stats
}
