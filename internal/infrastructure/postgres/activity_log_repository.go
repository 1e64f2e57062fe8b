package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación de ActivityLogRepository sobre PostgreSQL (usable con pool o tx).
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create persiste una entrada de auditoría.
func (r *ActivityLogRepo) Create(log *entity.ActivityLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	query := `
		INSERT INTO activity_log (id, entity_type, entity_id, action, details, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.EntityType, log.EntityID, log.Action, log.Details,
		log.CreatedAt, log.UpdatedAt, log.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// ListByEntity lista las entradas de auditoría de una entidad concreta.
func (r *ActivityLogRepo) ListByEntity(entityType, entityID string) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, entity_type, entity_id, action, details, created_at, updated_at, deleted_at
		FROM activity_log WHERE entity_type = $1 AND entity_id = $2
		ORDER BY COALESCE(created_at, updated_at, deleted_at)`
	rows, err := r.q.Query(context.Background(), query, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("list activity log: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityLog
	for rows.Next() {
		var l entity.ActivityLog
		if err := rows.Scan(&l.ID, &l.EntityType, &l.EntityID, &l.Action, &l.Details,
			&l.CreatedAt, &l.UpdatedAt, &l.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
