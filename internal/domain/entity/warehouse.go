package entity

import "time"

// Warehouse representa una bodega física con un tope de capacidad escalar.
// MaxCapacity es un conteo de unidades totales, no peso ni volumen.
type Warehouse struct {
	ID          string
	Name        string // único entre bodegas
	Location    string
	MaxCapacity int // > 0
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
