package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// AlertRepository define el puerto de persistencia para Alert (DIP).
type AlertRepository interface {
	Create(alert *entity.Alert) error
	ListUnresolvedByWarehouse(warehouseID string) ([]*entity.Alert, error)
}
