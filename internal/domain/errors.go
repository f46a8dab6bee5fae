package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrMissingFields      = errors.New("campos obligatorios faltantes")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales incorrectas")
	ErrAlreadyRegistered  = errors.New("el email o documento ya están registrados")
	ErrUnavailable        = errors.New("almacén no disponible")
)
