package entity

import "time"

// WarehouseShelf representa un estante dentro de una bodega.
// Code es único por bodega.
type WarehouseShelf struct {
	ID          string
	WarehouseID string
	Code        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
