package models

import (
	"testing"

	"github.com/BrunoMontanari1303/logix-cli/internal/common"
	"github.com/stretchr/testify/require"
)

func TestNormalizePlaca(t *testing.T) {
	require.Equal(t, "ABC1234", NormalizePlaca(" abc-1234 "))
	require.Equal(t, "ABC1D23", NormalizePlaca("abc1d23"))
}

func TestVehicle_Validate(t *testing.T) {
	ok := Vehicle{Placa: "ABC1234", Modelo: "Scania R450", Capacidade: 28000}
	require.NoError(t, ok.Validate())

	mercosul := Vehicle{Placa: "abc1d23", Modelo: "Volvo FH", Capacidade: 30}
	require.NoError(t, mercosul.Validate())

	tests := []Vehicle{
		{Placa: "1234ABC", Modelo: "m", Capacidade: 1},
		{Placa: "ABC12345", Modelo: "m", Capacidade: 1},
		{Placa: "", Modelo: "m", Capacidade: 1},
		{Placa: "ABC1234", Modelo: "", Capacidade: 1},
		{Placa: "ABC1234", Modelo: "m", Capacidade: 0},
		{Placa: "ABC1234", Modelo: "m", Capacidade: -5},
	}
	for _, v := range tests {
		require.ErrorIs(t, v.Validate(), common.ErrValidation, "vehicle %+v", v)
	}
}
