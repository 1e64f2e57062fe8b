package dto

import "time"

// AddInventoryItemRequest entrada para agregar stock a una bodega.
// Si el SKU no existe se crea el producto (product_name obligatorio en ese caso).
type AddInventoryItemRequest struct {
	WarehouseID        string     `json:"warehouse_id" validate:"required"`
	ShelfCode          string     `json:"shelf_code"`
	ProductSKU         string     `json:"product_sku" validate:"required"`
	ProductName        string     `json:"product_name"`
	ProductDescription string     `json:"product_description"`
	CategoryID         string     `json:"category_id"`
	Quantity           int        `json:"quantity" validate:"required,gt=0"`
	ExpirationDate     *time.Time `json:"expiration_date"`
}

// UpdateInventoryItemRequest entrada para actualizar un lote.
// Campos nil = sin cambio (actualización parcial).
type UpdateInventoryItemRequest struct {
	QuantityOnHand *int       `json:"quantity_on_hand" validate:"omitempty,min=0"`
	ExpirationDate *time.Time `json:"expiration_date"`
	ShelfID        *string    `json:"shelf_id"`
}

// DeleteInventoryItemRequest motivo opcional del borrado (para auditoría).
type DeleteInventoryItemRequest struct {
	Reason string `json:"reason"`
}

// InventoryBatchResponse salida mínima de un lote (alta/actualización).
type InventoryBatchResponse struct {
	InventoryID    string     `json:"inventory_id"`
	WarehouseID    string     `json:"warehouse_id"`
	ShelfID        string     `json:"shelf_id,omitempty"`
	ProductID      string     `json:"product_id"`
	QuantityOnHand int        `json:"quantity_on_hand"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// InventoryItemResponse salida de un lote con producto/categoría/bodega/estante resueltos.
type InventoryItemResponse struct {
	InventoryID        string     `json:"inventory_id"`
	QuantityOnHand     int        `json:"quantity_on_hand"`
	ExpirationDate     *time.Time `json:"expiration_date,omitempty"`
	ProductID          string     `json:"product_id"`
	ProductName        string     `json:"product_name"`
	ProductSKU         string     `json:"product_sku"`
	ProductDescription string     `json:"product_description,omitempty"`
	CategoryID         string     `json:"category_id,omitempty"`
	CategoryName       string     `json:"category_name,omitempty"`
	WarehouseID        string     `json:"warehouse_id"`
	WarehouseName      string     `json:"warehouse_name"`
	WarehouseLocation  string     `json:"warehouse_location"`
	ShelfID            string     `json:"shelf_id,omitempty"`
	ShelfCode          string     `json:"shelf_code,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// InventoryDeletionCheckResponse resultado del chequeo de borrado de un lote.
type InventoryDeletionCheckResponse struct {
	InventoryID    string     `json:"inventory_id"`
	QuantityOnHand int        `json:"quantity_on_hand"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	WarehouseName  string     `json:"warehouse_name"`
	ShelfCode      string     `json:"shelf_code,omitempty"`
	ProductName    string     `json:"product_name"`
	ProductSKU     string     `json:"product_sku"`
	CanDelete      bool       `json:"can_delete"`
	Reason         string     `json:"reason,omitempty"`
}
