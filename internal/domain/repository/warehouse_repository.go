package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List() ([]*entity.Warehouse, error)
	ListByActive(isActive bool) ([]*entity.Warehouse, error)
	Delete(id string) error

	// ExistsByName indica si alguna bodega usa ese nombre. excludeID permite
	// ignorar la propia bodega al validar un rename (vacío = sin exclusión).
	ExistsByName(name, excludeID string) (bool, error)
}
