package cli

import (
	"errors"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/api"
)

// friendlyError renders an error for the terminal. A message sent by the
// backend wins; a conflict without one gets the command-specific text in
// conflictMsg, so a bare 409 never surfaces as sentinel text. The remaining
// pipeline sentinels get a generic Portuguese message.
func friendlyError(err error, conflictMsg string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	switch {
	case errors.Is(err, api.ErrConflict):
		return conflictMsg
	case errors.Is(err, api.ErrSessionExpired):
		return "sessão expirada, faça login novamente"
	case errors.Is(err, api.ErrUnavailable):
		return "servidor indisponível"
	}
	return err.Error()
}
