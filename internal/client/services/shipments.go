package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/models"
	"github.com/BrunoMontanari1303/logix-cli/internal/common"
	"github.com/BrunoMontanari1303/logix-cli/internal/logging"
)

var shipmentListDefaults = ListQuery{Page: 1, Limit: 25, SortBy: "id", Order: "DESC"}

type ShipmentService struct {
	api Doer
	log logging.Logger

	mu        sync.Mutex
	accepting map[int64]struct{}
}

func NewShipmentService(api Doer, log logging.Logger) *ShipmentService {
	return &ShipmentService{api: api, log: log, accepting: make(map[int64]struct{})}
}

// List fetches a page of shipments. Always returns a non-nil slice.
func (s *ShipmentService) List(ctx context.Context, q ListQuery) ([]models.Shipment, error) {
	var out []models.Shipment
	if err := s.api.Get(ctx, "/pedidos", q.values(shipmentListDefaults), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Shipment{}
	}
	return out, nil
}

// FilterShipments narrows an already-fetched page client-side. The term is
// matched case-insensitively against origem, destino and tipo de carga; when
// it spells a known status, shipments in that status match as well. An empty
// term returns the input unchanged.
func FilterShipments(list []models.Shipment, term string) []models.Shipment {
	term = strings.TrimSpace(term)
	if term == "" {
		return list
	}

	lowered := strings.ToLower(term)
	asStatus := models.NormalizeStatus(term)

	out := make([]models.Shipment, 0, len(list))
	for _, sh := range list {
		if sh.Status == asStatus ||
			strings.Contains(strings.ToLower(sh.Origem), lowered) ||
			strings.Contains(strings.ToLower(sh.Destino), lowered) ||
			strings.Contains(strings.ToLower(sh.TipoCarga), lowered) {
			out = append(out, sh)
		}
	}
	return out
}

func (s *ShipmentService) Get(ctx context.Context, id int64) (*models.Shipment, error) {
	var out models.Shipment
	if err := s.api.Get(ctx, fmt.Sprintf("/pedidos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ShipmentService) Create(ctx context.Context, in models.NewShipment) (*models.Shipment, error) {
	if strings.TrimSpace(in.Origem) == "" || strings.TrimSpace(in.Destino) == "" {
		return nil, fmt.Errorf("%w: origem e destino são obrigatórios", common.ErrValidation)
	}
	if strings.TrimSpace(in.TipoCarga) == "" {
		return nil, fmt.Errorf("%w: tipo de carga é obrigatório", common.ErrValidation)
	}
	if in.DataEntrega.IsZero() {
		return nil, fmt.Errorf("%w: data de entrega inválida", common.ErrValidation)
	}

	var out models.Shipment
	if err := s.api.Post(ctx, "/pedidos", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ShipmentService) Update(ctx context.Context, id int64, in models.NewShipment) (*models.Shipment, error) {
	var out models.Shipment
	if err := s.api.Patch(ctx, fmt.Sprintf("/pedidos/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ShipmentService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/pedidos/%d", id))
}

// Accept assigns a vehicle and a driver to a pending shipment and moves it
// to ACEITO.
//
// The guard rejects, without touching any state, when the shipment is not
// PENDENTE or when either id is not a positive integer. The local shipment
// is mutated only after the backend confirms, so there is nothing to roll
// back on failure. A second accept for the same shipment while one is in
// flight fails with ErrAcceptInFlight.
func (s *ShipmentService) Accept(ctx context.Context, sh *models.Shipment, veiculoID, motoristaID int64) error {
	if sh == nil {
		return fmt.Errorf("%w: pedido não informado", common.ErrValidation)
	}
	if !sh.Status.Pendente() {
		return fmt.Errorf("%w: pedido #%d já foi processado", common.ErrValidation, sh.ID)
	}
	if veiculoID <= 0 {
		return fmt.Errorf("%w: selecione um veículo válido", common.ErrValidation)
	}
	if motoristaID <= 0 {
		return fmt.Errorf("%w: selecione um motorista válido", common.ErrValidation)
	}

	s.mu.Lock()
	if _, busy := s.accepting[sh.ID]; busy {
		s.mu.Unlock()
		return fmt.Errorf("%w: pedido #%d", ErrAcceptInFlight, sh.ID)
	}
	s.accepting[sh.ID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.accepting, sh.ID)
		s.mu.Unlock()
	}()

	body := map[string]int64{"veiculoId": veiculoID, "motoristaId": motoristaID}
	if err := s.api.Patch(ctx, fmt.Sprintf("/pedidos/%d/aceitar", sh.ID), body, nil); err != nil {
		return err
	}

	sh.Status = models.StatusAceito
	sh.VeiculoID = &veiculoID
	sh.MotoristaID = &motoristaID

	s.log.Info(ctx, "shipment accepted", "id", sh.ID, "veiculoId", veiculoID, "motoristaId", motoristaID)
	return nil
}
