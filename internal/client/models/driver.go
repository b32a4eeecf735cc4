package models

import (
	"fmt"
	"strings"

	"github.com/BrunoMontanari1303/logix-cli/internal/common"
)

// Driver is a fleet driver (motorista). CPF is unique on the backend.
type Driver struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	CPF       string `json:"cpf"`
	VeiculoID *int64 `json:"veiculoId"`
}

// NormalizeCPF strips the usual punctuation ("123.456.789-09" -> digits).
func NormalizeCPF(cpf string) string {
	r := strings.NewReplacer(".", "", "-", "", " ", "")
	return r.Replace(strings.TrimSpace(cpf))
}

// ValidateCPF checks length, digit content and the two verifier digits.
func ValidateCPF(cpf string) error {
	cpf = NormalizeCPF(cpf)
	if len(cpf) != 11 {
		return fmt.Errorf("%w: CPF deve ter 11 dígitos", common.ErrValidation)
	}
	for _, c := range cpf {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: CPF deve conter apenas dígitos", common.ErrValidation)
		}
	}
	// sequences like 00000000000 pass the digit check but are not valid CPFs
	if strings.Count(cpf, string(cpf[0])) == 11 {
		return fmt.Errorf("%w: CPF inválido", common.ErrValidation)
	}
	for _, n := range []int{9, 10} {
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(cpf[i]-'0') * (n + 1 - i)
		}
		digit := (sum * 10) % 11
		if digit == 10 {
			digit = 0
		}
		if digit != int(cpf[n]-'0') {
			return fmt.Errorf("%w: CPF inválido", common.ErrValidation)
		}
	}
	return nil
}

// Validate performs the client-side checks before a create/update request.
func (d *Driver) Validate() error {
	if strings.TrimSpace(d.Nome) == "" {
		return fmt.Errorf("%w: nome é obrigatório", common.ErrValidation)
	}
	return ValidateCPF(d.CPF)
}
