package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación de AlertRepository sobre PostgreSQL (usable con pool o tx).
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una alerta.
func (r *AlertRepo) Create(alert *entity.Alert) error {
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	query := `
		INSERT INTO alerts (id, type, severity, message, is_resolved, warehouse_id, inventory_id, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.Type, alert.Severity, alert.Message, alert.IsResolved,
		alert.WarehouseID, alert.InventoryID, alert.CreatedAt, alert.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// ListUnresolvedByWarehouse lista las alertas sin resolver de una bodega.
func (r *AlertRepo) ListUnresolvedByWarehouse(warehouseID string) ([]*entity.Alert, error) {
	query := `
		SELECT id, type, severity, message, is_resolved, warehouse_id, COALESCE(inventory_id, ''), created_at, resolved_at
		FROM alerts WHERE warehouse_id = $1 AND is_resolved = false
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.Type, &a.Severity, &a.Message, &a.IsResolved,
			&a.WarehouseID, &a.InventoryID, &a.CreatedAt, &a.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
