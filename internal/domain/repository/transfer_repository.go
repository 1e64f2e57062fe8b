package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// TransferRepository define el puerto de persistencia para InventoryTransfer (DIP).
type TransferRepository interface {
	Create(transfer *entity.InventoryTransfer) error
	GetByID(id string) (*entity.InventoryTransfer, error)
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.InventoryTransfer, error)
}
