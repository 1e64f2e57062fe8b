package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ActivityLogRepository define el puerto del registro de auditoría (append-only).
type ActivityLogRepository interface {
	Create(log *entity.ActivityLog) error
	ListByEntity(entityType, entityID string) ([]*entity.ActivityLog, error)
}
