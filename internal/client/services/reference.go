package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
	"github.com/BrunoMontanari1303/logix-cli/internal/logging"
)

var referenceListDefaults = ListQuery{Page: 1, Limit: 100, SortBy: "id", Order: "ASC"}

// ReferenceService serves the read-mostly vehicle/driver/user lists with a
// time-boxed client-side cache and owns the fleet CRUD operations. Any
// mutation invalidates the cache.
type ReferenceService struct {
	api        Doer
	staleAfter time.Duration
	log        logging.Logger

	mu         sync.Mutex
	vehicles   []models.Vehicle
	vehiclesAt time.Time
	drivers    []models.Driver
	driversAt  time.Time
	users      []models.User
	usersAt    time.Time

	// now is a test seam
	now func() time.Time
}

func NewReferenceService(api Doer, staleAfter time.Duration, log logging.Logger) *ReferenceService {
	return &ReferenceService{api: api, staleAfter: staleAfter, log: log, now: time.Now}
}

func (r *ReferenceService) fresh(fetchedAt time.Time) bool {
	return !fetchedAt.IsZero() && r.now().Sub(fetchedAt) < r.staleAfter
}

// Vehicles returns the vehicle list, served from cache while fresh.
// Always returns a non-nil slice.
func (r *ReferenceService) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	r.mu.Lock()
	if r.fresh(r.vehiclesAt) {
		cached := append([]models.Vehicle(nil), r.vehicles...)
		r.mu.Unlock()
		return cached, nil
	}
	r.mu.Unlock()

	var out []models.Vehicle
	if err := r.api.Get(ctx, "/veiculos", ListQuery{}.values(referenceListDefaults), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Vehicle{}
	}

	r.mu.Lock()
	r.vehicles = out
	r.vehiclesAt = r.now()
	r.mu.Unlock()

	return append([]models.Vehicle(nil), out...), nil
}

// Drivers returns the driver list, served from cache while fresh.
func (r *ReferenceService) Drivers(ctx context.Context) ([]models.Driver, error) {
	r.mu.Lock()
	if r.fresh(r.driversAt) {
		cached := append([]models.Driver(nil), r.drivers...)
		r.mu.Unlock()
		return cached, nil
	}
	r.mu.Unlock()

	var out []models.Driver
	if err := r.api.Get(ctx, "/motoristas", ListQuery{}.values(referenceListDefaults), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Driver{}
	}

	r.mu.Lock()
	r.drivers = out
	r.driversAt = r.now()
	r.mu.Unlock()

	return append([]models.Driver(nil), out...), nil
}

// Users returns the user list, served from cache while fresh.
func (r *ReferenceService) Users(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	if r.fresh(r.usersAt) {
		cached := append([]models.User(nil), r.users...)
		r.mu.Unlock()
		return cached, nil
	}
	r.mu.Unlock()

	var out []models.User
	if err := r.api.Get(ctx, "/usuarios", ListQuery{}.values(referenceListDefaults), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.User{}
	}

	r.mu.Lock()
	r.users = out
	r.usersAt = r.now()
	r.mu.Unlock()

	return append([]models.User(nil), out...), nil
}

// Invalidate drops every cached list; the next read hits the backend.
func (r *ReferenceService) Invalidate() {
	r.mu.Lock()
	r.vehiclesAt = time.Time{}
	r.driversAt = time.Time{}
	r.usersAt = time.Time{}
	r.mu.Unlock()
}

// VehicleLabel resolves a vehicle id to "PLACA (modelo)" for display,
// falling back to the raw id when the vehicle is not in the cache.
func (r *ReferenceService) VehicleLabel(ctx context.Context, id *int64) string {
	if id == nil || *id == 0 {
		return "-"
	}
	vehicles, err := r.Vehicles(ctx)
	if err != nil {
		return fmt.Sprintf("%d", *id)
	}
	for _, v := range vehicles {
		if v.ID == *id {
			return fmt.Sprintf("%s (%s)", v.Placa, v.Modelo)
		}
	}
	return fmt.Sprintf("%d", *id)
}

// DriverLabel resolves a driver id to the driver name for display.
func (r *ReferenceService) DriverLabel(ctx context.Context, id *int64) string {
	if id == nil || *id == 0 {
		return "-"
	}
	drivers, err := r.Drivers(ctx)
	if err != nil {
		return fmt.Sprintf("%d", *id)
	}
	for _, d := range drivers {
		if d.ID == *id {
			return d.Nome
		}
	}
	return fmt.Sprintf("%d", *id)
}

// ---- fleet CRUD ----

func (r *ReferenceService) CreateVehicle(ctx context.Context, v models.Vehicle) (*models.Vehicle, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	v.Placa = models.NormalizePlaca(v.Placa)

	var out models.Vehicle
	if err := r.api.Post(ctx, "/veiculos", v, &out); err != nil {
		return nil, err
	}
	r.Invalidate()
	return &out, nil
}

func (r *ReferenceService) UpdateVehicle(ctx context.Context, id int64, v models.Vehicle) (*models.Vehicle, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	v.Placa = models.NormalizePlaca(v.Placa)

	var out models.Vehicle
	if err := r.api.Patch(ctx, fmt.Sprintf("/veiculos/%d", id), v, &out); err != nil {
		return nil, err
	}
	r.Invalidate()
	return &out, nil
}

// DeleteVehicle removes a vehicle. The backend answers 409 when a driver
// still references it; the pipeline maps that to api.ErrConflict, which the
// CLI turns into a specific message.
func (r *ReferenceService) DeleteVehicle(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, fmt.Sprintf("/veiculos/%d", id)); err != nil {
		return err
	}
	r.Invalidate()
	return nil
}

func (r *ReferenceService) CreateDriver(ctx context.Context, d models.Driver) (*models.Driver, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	d.CPF = models.NormalizeCPF(d.CPF)

	var out models.Driver
	if err := r.api.Post(ctx, "/motoristas", d, &out); err != nil {
		return nil, err
	}
	r.Invalidate()
	return &out, nil
}

func (r *ReferenceService) UpdateDriver(ctx context.Context, id int64, d models.Driver) (*models.Driver, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	d.CPF = models.NormalizeCPF(d.CPF)

	var out models.Driver
	if err := r.api.Patch(ctx, fmt.Sprintf("/motoristas/%d", id), d, &out); err != nil {
		return nil, err
	}
	r.Invalidate()
	return &out, nil
}

func (r *ReferenceService) DeleteDriver(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, fmt.Sprintf("/motoristas/%d", id)); err != nil {
		return err
	}
	r.Invalidate()
	return nil
}
