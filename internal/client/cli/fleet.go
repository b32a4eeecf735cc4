package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
)

// ListVehicles prints the fleet's vehicles.
func (a *App) ListVehicles(ctx context.Context) error {
	vehicles, err := a.reference.Vehicles(ctx)
	if err != nil {
		log.Printf("Erro ao listar veículos: %s", err.Error())
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPLACA\tMODELO\tCAPACIDADE\tSTATUS")
	for _, v := range vehicles {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1f t\t%s\n", v.ID, v.Placa, v.Modelo, v.Capacidade, v.Status)
	}
	w.Flush()
	fmt.Printf("%d veículo(s)\n", len(vehicles))
	return nil
}

// AddVehicle registers a new vehicle. Restricted to GESTOR/ADMIN.
func (a *App) AddVehicle(ctx context.Context) error {
	if !a.requireManager() {
		return nil
	}

	placa, err := getSimpleText(a.reader, "Placa (ex: ABC1D23)", os.Stdout)
	if err != nil {
		return err
	}
	modelo, err := getSimpleText(a.reader, "Modelo", os.Stdout)
	if err != nil {
		return err
	}
	rawCap, err := getSimpleText(a.reader, "Capacidade (toneladas)", os.Stdout)
	if err != nil {
		return err
	}
	capacidade, err := strconv.ParseFloat(rawCap, 64)
	if err != nil {
		log.Printf("Capacidade inválida: %q", rawCap)
		return err
	}

	v, err := a.reference.CreateVehicle(ctx, models.Vehicle{
		Placa:      placa,
		Modelo:     modelo,
		Capacidade: capacidade,
	})
	if err != nil {
		log.Printf("Erro ao cadastrar veículo: %s", friendlyError(err, "placa já cadastrada"))
		return err
	}

	fmt.Printf("Veículo #%d cadastrado: %s\n", v.ID, v.Placa)
	return nil
}

// RemoveVehicle deletes a vehicle. The backend refuses when a driver still
// references it; that surfaces here as a conflict message.
func (a *App) RemoveVehicle(ctx context.Context) error {
	if !a.requireManager() {
		return nil
	}

	id, err := getID(a.reader, "ID do veículo a excluir", os.Stdout)
	if err != nil {
		log.Printf("Erro: %s", err.Error())
		return err
	}

	if err := a.reference.DeleteVehicle(ctx, id); err != nil {
		log.Printf("Erro ao excluir veículo: %s", friendlyError(err, "veículo possui motorista vinculado"))
		return err
	}

	fmt.Printf("Veículo #%d excluído\n", id)
	return nil
}

// ListDrivers prints the registered drivers.
func (a *App) ListDrivers(ctx context.Context) error {
	drivers, err := a.reference.Drivers(ctx)
	if err != nil {
		log.Printf("Erro ao listar motoristas: %s", err.Error())
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOME\tCPF\tVEÍCULO")
	for _, d := range drivers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", d.ID, d.Nome, d.CPF, a.reference.VehicleLabel(ctx, d.VeiculoID))
	}
	w.Flush()
	fmt.Printf("%d motorista(s)\n", len(drivers))
	return nil
}

// AddDriver registers a new driver, optionally bound to a vehicle.
func (a *App) AddDriver(ctx context.Context) error {
	if !a.requireManager() {
		return nil
	}

	nome, err := getSimpleText(a.reader, "Nome", os.Stdout)
	if err != nil {
		return err
	}
	cpf, err := getSimpleText(a.reader, "CPF", os.Stdout)
	if err != nil {
		return err
	}
	rawVeiculo, err := getSimpleText(a.reader, "ID do veículo (vazio para nenhum)", os.Stdout)
	if err != nil {
		return err
	}

	driver := models.Driver{Nome: nome, CPF: cpf}
	if rawVeiculo != "" {
		veiculoID, err := strconv.ParseInt(rawVeiculo, 10, 64)
		if err != nil || veiculoID <= 0 {
			log.Printf("ID de veículo inválido: %q", rawVeiculo)
			return fmt.Errorf("id de veículo inválido: %q", rawVeiculo)
		}
		driver.VeiculoID = &veiculoID
	}

	d, err := a.reference.CreateDriver(ctx, driver)
	if err != nil {
		log.Printf("Erro ao cadastrar motorista: %s", friendlyError(err, "CPF já cadastrado"))
		return err
	}

	fmt.Printf("Motorista #%d cadastrado: %s\n", d.ID, d.Nome)
	return nil
}

// RemoveDriver deletes a driver.
func (a *App) RemoveDriver(ctx context.Context) error {
	if !a.requireManager() {
		return nil
	}

	id, err := getID(a.reader, "ID do motorista a excluir", os.Stdout)
	if err != nil {
		log.Printf("Erro: %s", err.Error())
		return err
	}

	if err := a.reference.DeleteDriver(ctx, id); err != nil {
		log.Printf("Erro ao excluir motorista: %s", friendlyError(err, "motorista possui vínculos ativos"))
		return err
	}

	fmt.Printf("Motorista #%d excluído\n", id)
	return nil
}
