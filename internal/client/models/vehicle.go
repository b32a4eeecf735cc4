package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/BrunoMontanari1303/logix-cli/internal/common"
)

// placaRe accepts both the legacy Brazilian plate format (ABC1234) and the
// Mercosul one (ABC1D23).
var placaRe = regexp.MustCompile(`^[A-Z]{3}[0-9][0-9A-Z][0-9]{2}$`)

// Vehicle is a fleet vehicle. Placa is unique on the backend.
type Vehicle struct {
	ID         int64   `json:"id"`
	Placa      string  `json:"placa"`
	Modelo     string  `json:"modelo"`
	Capacidade float64 `json:"capacidade"`
	Status     string  `json:"status,omitempty"`
}

// NormalizePlaca uppercases a plate and strips the optional dash
// ("abc-1234" -> "ABC1234").
func NormalizePlaca(placa string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(placa), "-", ""))
}

// Validate performs the client-side checks before a create/update request.
func (v *Vehicle) Validate() error {
	placa := NormalizePlaca(v.Placa)
	if !placaRe.MatchString(placa) {
		return fmt.Errorf("%w: placa inválida (use ABC1234 ou ABC1D23)", common.ErrValidation)
	}
	if strings.TrimSpace(v.Modelo) == "" {
		return fmt.Errorf("%w: modelo é obrigatório", common.ErrValidation)
	}
	if v.Capacidade <= 0 {
		return fmt.Errorf("%w: capacidade deve ser maior que zero", common.ErrValidation)
	}
	return nil
}
