package dto

import "time"

// TransferInventoryRequest entrada para transferir stock entre bodegas.
type TransferInventoryRequest struct {
	ProductID              string `json:"product_id" validate:"required"`
	Quantity               int    `json:"quantity" validate:"required,gt=0"`
	SourceWarehouseID      string `json:"source_warehouse_id" validate:"required"`
	DestinationWarehouseID string `json:"destination_warehouse_id" validate:"required"`
}

// TransferResponse una transferencia en el historial de una bodega.
type TransferResponse struct {
	ID                     string     `json:"id"`
	ProductID              string     `json:"product_id"`
	Quantity               int        `json:"quantity"`
	Status                 string     `json:"status"`
	SourceWarehouseID      string     `json:"source_warehouse_id"`
	DestinationWarehouseID string     `json:"destination_warehouse_id"`
	CreatedAt              time.Time  `json:"created_at"`
	CompletedAt            *time.Time `json:"completed_at,omitempty"`
}

// TransferInventoryResponse detalle de la transferencia registrada.
type TransferInventoryResponse struct {
	TransferID               string    `json:"transfer_id"`
	ProductID                string    `json:"product_id"`
	ProductName              string    `json:"product_name"`
	Quantity                 int       `json:"quantity"`
	SourceWarehouseID        string    `json:"source_warehouse_id"`
	SourceWarehouseName      string    `json:"source_warehouse_name"`
	DestinationWarehouseID   string    `json:"destination_warehouse_id"`
	DestinationWarehouseName string    `json:"destination_warehouse_name"`
	Status                   string    `json:"status"`
	CreatedAt                time.Time `json:"created_at"`
}
