package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrUsernameAlreadyTaken = errors.New("el usuario ya existe")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrDuplicateLot         = errors.New("el lote ya existe")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrInsufficientQuantity = errors.New("cantidad insuficiente")
)
