package entity

import "time"

// Inventory representa un lote: una cantidad de un producto en una
// combinación (bodega, estante, fecha de vencimiento).
// La combinación (WarehouseID, ShelfID, ProductID, ExpirationDate) es única;
// se garantiza con búsqueda previa antes de insertar.
type Inventory struct {
	ID             string
	WarehouseID    string
	ShelfID        string // vacío si no está asignado a estante
	ProductID      string
	QuantityOnHand int // >= 0
	ExpirationDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SameExpiration compara la fecha de vencimiento del lote contra otra,
// tratando nil como "sin vencimiento".
func (i *Inventory) SameExpiration(other *time.Time) bool {
	if i.ExpirationDate == nil && other == nil {
		return true
	}
	if i.ExpirationDate == nil || other == nil {
		return false
	}
	return i.ExpirationDate.Equal(*other)
}
