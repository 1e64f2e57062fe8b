package entity

import "time"

// Product representa un producto identificado por SKU único.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	IsActive    bool
	CategoryID  string // vacío si no tiene categoría
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
