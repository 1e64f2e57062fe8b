package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste una transferencia.
func (r *TransferRepo) Create(transfer *entity.InventoryTransfer) error {
	if transfer.ID == "" {
		transfer.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_transfers (id, product_id, quantity, status, source_warehouse_id, destination_warehouse_id, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.ProductID, transfer.Quantity, transfer.Status,
		transfer.SourceWarehouseID, transfer.DestinationWarehouseID,
		transfer.CreatedAt, transfer.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// GetByID obtiene una transferencia por ID.
func (r *TransferRepo) GetByID(id string) (*entity.InventoryTransfer, error) {
	query := `
		SELECT id, product_id, quantity, status, source_warehouse_id, destination_warehouse_id, created_at, completed_at
		FROM inventory_transfers WHERE id = $1`
	var t entity.InventoryTransfer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ProductID, &t.Quantity, &t.Status,
		&t.SourceWarehouseID, &t.DestinationWarehouseID, &t.CreatedAt, &t.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return &t, nil
}

// ListByWarehouse lista transferencias donde la bodega participa como origen o destino.
func (r *TransferRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.InventoryTransfer, error) {
	query := `
		SELECT id, product_id, quantity, status, source_warehouse_id, destination_warehouse_id, created_at, completed_at
		FROM inventory_transfers
		WHERE source_warehouse_id = $1 OR destination_warehouse_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryTransfer
	for rows.Next() {
		var t entity.InventoryTransfer
		if err := rows.Scan(&t.ID, &t.ProductID, &t.Quantity, &t.Status,
			&t.SourceWarehouseID, &t.DestinationWarehouseID, &t.CreatedAt, &t.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
