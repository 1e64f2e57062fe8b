package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ShelfRepository define el puerto de persistencia para WarehouseShelf (DIP).
type ShelfRepository interface {
	GetByID(id string) (*entity.WarehouseShelf, error)
	GetByWarehouseAndCode(warehouseID, code string) (*entity.WarehouseShelf, error)
}
