package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// InventoryItemView resultado crudo del listado de lotes con los datos de
// producto, categoría, bodega y estante ya resueltos por la consulta.
// Lo produce la DB; el use case lo convierte en DTO.
type InventoryItemView struct {
	InventoryID        string
	QuantityOnHand     int
	ExpirationDate     *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	ProductID          string
	ProductName        string
	ProductSKU         string
	ProductDescription string
	CategoryID         string
	CategoryName       string
	WarehouseID        string
	WarehouseName      string
	WarehouseLocation  string
	ShelfID            string
	ShelfCode          string
}

// InventorySearchFilter filtros opcionales para la búsqueda avanzada (lógica OR).
// Campos vacíos se ignoran; al menos uno debe estar presente (lo valida el use case).
type InventorySearchFilter struct {
	ProductName string
	ProductSKU  string
	CategoryID  string
}

// InventoryRepository define el puerto de persistencia para lotes de inventario (DIP).
type InventoryRepository interface {
	Create(inventory *entity.Inventory) error
	GetByID(id string) (*entity.Inventory, error)
	Update(inventory *entity.Inventory) error
	Delete(id string) error

	// FindByCombination busca el lote de la combinación única
	// (bodega, estante, producto, vencimiento). shelfID vacío = sin estante.
	FindByCombination(warehouseID, shelfID, productID string, expiration *time.Time) (*entity.Inventory, error)

	// ListByWarehouseAndProduct devuelve los lotes de un producto en una bodega
	// en orden estable de creación. forUpdate bloquea las filas (SELECT FOR UPDATE)
	// para que transferencias concurrentes no pisen los decrementos.
	ListByWarehouseAndProduct(warehouseID, productID string, forUpdate bool) ([]*entity.Inventory, error)

	// SumQuantityByWarehouse suma quantity_on_hand de todos los lotes de la bodega.
	SumQuantityByWarehouse(warehouseID string) (int, error)
	// CountByWarehouse cuenta los lotes de la bodega (incluso con cantidad 0).
	CountByWarehouse(warehouseID string) (int, error)

	// Listados y búsquedas con detalle de producto/categoría/estante.
	ListViewByWarehouse(warehouseID string) ([]InventoryItemView, error)
	SearchByProductName(warehouseID, productName string) ([]InventoryItemView, error)
	SearchByProductSKU(warehouseID, productSKU string) ([]InventoryItemView, error)
	FilterByCategory(warehouseID, categoryID string) ([]InventoryItemView, error)
	Search(warehouseID string, filter InventorySearchFilter) ([]InventoryItemView, error)
}
