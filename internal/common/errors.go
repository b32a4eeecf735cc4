package common

import "errors"

var (

	// repository specific errors
	ErrNotFound = errors.New("not found")

	// service specific errors
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// client-side validation errors (malformed CPF/plate, missing selection)
	ErrValidation = errors.New("validation error")

	// backend uniqueness/reference conflicts
	// (duplicate placa/cpf/email, FK-referenced delete)
	ErrConflict = errors.New("conflict")

	// token lifecycle errors
	ErrTokenExpired   = errors.New("token expired")
	ErrSessionExpired = errors.New("session expired")
)
