package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ShelfRepository = (*ShelfRepo)(nil)

// ShelfRepo implementación de ShelfRepository sobre PostgreSQL.
type ShelfRepo struct {
	q Querier
}

// NewShelfRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShelfRepository(q Querier) *ShelfRepo {
	return &ShelfRepo{q: q}
}

// GetByID obtiene un estante por ID.
func (r *ShelfRepo) GetByID(id string) (*entity.WarehouseShelf, error) {
	query := `
		SELECT id, warehouse_id, code, description, created_at, updated_at
		FROM warehouse_shelves WHERE id = $1`
	return r.queryOne(query, id)
}

// GetByWarehouseAndCode obtiene un estante por bodega y código.
func (r *ShelfRepo) GetByWarehouseAndCode(warehouseID, code string) (*entity.WarehouseShelf, error) {
	query := `
		SELECT id, warehouse_id, code, description, created_at, updated_at
		FROM warehouse_shelves WHERE warehouse_id = $1 AND code = $2`
	return r.queryOne(query, warehouseID, code)
}

func (r *ShelfRepo) queryOne(query string, args ...any) (*entity.WarehouseShelf, error) {
	var s entity.WarehouseShelf
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.WarehouseID, &s.Code, &s.Description, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shelf: %w", err)
	}
	return &s, nil
}
