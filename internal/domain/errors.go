package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrConflict             = errors.New("conflicto con el estado actual")
	ErrInactiveWarehouse    = errors.New("bodega inactiva")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrInsufficientCapacity = errors.New("capacidad insuficiente en bodega destino")
)
