package entity

import "time"

// Tipos y severidades de alerta.
const (
	AlertTypeCapacity = "CAPACITY"

	AlertSeverityInfo    = "info"
	AlertSeverityWarning = "warning"
)

// Alert es un aviso operativo asociado a una bodega (y opcionalmente a un lote).
type Alert struct {
	ID          string
	Type        string
	Severity    string
	Message     string
	IsResolved  bool
	WarehouseID string
	InventoryID string // vacío si la alerta es a nivel bodega
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}
