package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Status is the shipment lifecycle tag. The backend spells it inconsistently
// ("Pendente" vs "PENDENTE"), so incoming values are canonicalized to upper
// case. Anything outside the known set is kept verbatim and treated as a
// terminal state by the client.
type Status string

const (
	StatusPendente   Status = "PENDENTE"
	StatusAceito     Status = "ACEITO"
	StatusEmTransito Status = "EM_TRANSITO"
	StatusEntregue   Status = "ENTREGUE"
	StatusCancelado  Status = "CANCELADO"
)

// NormalizeStatus canonicalizes a raw backend status value.
func NormalizeStatus(s string) Status {
	up := strings.ToUpper(strings.TrimSpace(s))
	up = strings.ReplaceAll(up, " ", "_")
	switch up {
	case "PENDENTE", "ACEITO", "EM_TRANSITO", "ENTREGUE", "CANCELADO":
		return Status(up)
	case "IN_TRANSIT":
		return StatusEmTransito
	case "DELIVERED":
		return StatusEntregue
	default:
		return Status(up)
	}
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = NormalizeStatus(raw)
	return nil
}

// Pendente reports whether the shipment is still waiting for assignment.
func (s Status) Pendente() bool { return s == StatusPendente }

// Shipment is a transport order (pedido). VeiculoID/MotoristaID stay nil
// while the shipment is PENDENTE and are both set when it becomes ACEITO.
type Shipment struct {
	ID          int64     `json:"id"`
	Origem      string    `json:"origem"`
	Destino     string    `json:"destino"`
	TipoCarga   string    `json:"tipoCarga"`
	DataEntrega time.Time `json:"dataEntrega"`
	Status      Status    `json:"status"`
	VeiculoID   *int64    `json:"veiculoId"`
	MotoristaID *int64    `json:"motoristaId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewShipment is the payload for POST /pedidos.
type NewShipment struct {
	Origem      string    `json:"origem"`
	Destino     string    `json:"destino"`
	TipoCarga   string    `json:"tipoCarga"`
	DataEntrega time.Time `json:"dataEntrega"`
	Status      Status    `json:"status,omitempty"`
	VeiculoID   *int64    `json:"veiculoId"`
	MotoristaID *int64    `json:"motoristaId"`
}
