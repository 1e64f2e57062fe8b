package entity

import "time"

// Estados de una transferencia entre bodegas. Hoy solo se crea en PENDING;
// COMPLETED y CANCELLED quedan reservados para un flujo de aprobación futuro.
const (
	TransferStatusPENDING   = "PENDING"
	TransferStatusCOMPLETED = "COMPLETED"
	TransferStatusCANCELLED = "CANCELLED"
)

// InventoryTransfer registra una solicitud de mover cantidad de un producto
// de una bodega origen a una destino.
type InventoryTransfer struct {
	ID                     string
	ProductID              string
	Quantity               int
	Status                 string
	SourceWarehouseID      string
	DestinationWarehouseID string
	CreatedAt              time.Time
	CompletedAt            *time.Time
}
