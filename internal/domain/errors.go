package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrEmptyDraft         = errors.New("el borrador no tiene líneas para transmitir")
	ErrDraftNotEditable   = errors.New("el borrador ya no está en revisión")
	ErrOrderAlreadyBilled = errors.New("la orden ya fue facturada")
	ErrUnknownModule      = errors.New("módulo desconocido")
)
