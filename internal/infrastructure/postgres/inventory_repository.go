package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, warehouse_id, COALESCE(shelf_id, ''), product_id, quantity_on_hand, expiration_date, created_at, updated_at`

// Create persiste un nuevo lote.
func (r *InventoryRepo) Create(inventory *entity.Inventory) error {
	query := `
		INSERT INTO inventories (id, warehouse_id, shelf_id, product_id, quantity_on_hand, expiration_date, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		inventory.ID, inventory.WarehouseID, inventory.ShelfID, inventory.ProductID,
		inventory.QuantityOnHand, inventory.ExpirationDate, inventory.CreatedAt, inventory.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE id = $1`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.WarehouseID, &inv.ShelfID, &inv.ProductID,
		&inv.QuantityOnHand, &inv.ExpirationDate, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// Update actualiza cantidad, estante y vencimiento de un lote.
func (r *InventoryRepo) Update(inventory *entity.Inventory) error {
	query := `
		UPDATE inventories
		SET shelf_id = NULLIF($2, ''), quantity_on_hand = $3, expiration_date = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		inventory.ID, inventory.ShelfID, inventory.QuantityOnHand,
		inventory.ExpirationDate, inventory.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// Delete elimina un lote por ID.
func (r *InventoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}

// FindByCombination busca el lote de la combinación única (bodega, estante, producto, vencimiento).
func (r *InventoryRepo) FindByCombination(warehouseID, shelfID, productID string, expiration *time.Time) (*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventories
		WHERE warehouse_id = $1
		  AND shelf_id IS NOT DISTINCT FROM NULLIF($2, '')
		  AND product_id = $3
		  AND expiration_date IS NOT DISTINCT FROM $4`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, warehouseID, shelfID, productID, expiration).Scan(
		&inv.ID, &inv.WarehouseID, &inv.ShelfID, &inv.ProductID,
		&inv.QuantityOnHand, &inv.ExpirationDate, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find inventory by combination: %w", err)
	}
	return &inv, nil
}

// ListByWarehouseAndProduct devuelve los lotes de un producto en una bodega en
// orden de creación. Con forUpdate bloquea las filas (SELECT FOR UPDATE) para
// que transferencias concurrentes no pisen los decrementos.
func (r *InventoryRepo) ListByWarehouseAndProduct(warehouseID, productID string, forUpdate bool) ([]*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventories
		WHERE warehouse_id = $1 AND product_id = $2
		ORDER BY created_at, id`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	rows, err := r.q.Query(context.Background(), query, warehouseID, productID)
	if err != nil {
		return nil, fmt.Errorf("list inventories by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.WarehouseID, &inv.ShelfID, &inv.ProductID,
			&inv.QuantityOnHand, &inv.ExpirationDate, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// SumQuantityByWarehouse suma quantity_on_hand de todos los lotes de la bodega.
func (r *InventoryRepo) SumQuantityByWarehouse(warehouseID string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity_on_hand), 0) FROM inventories WHERE warehouse_id = $1`,
		warehouseID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum inventory quantity: %w", err)
	}
	return total, nil
}

// CountByWarehouse cuenta los lotes de la bodega (incluso con cantidad 0).
func (r *InventoryRepo) CountByWarehouse(warehouseID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM inventories WHERE warehouse_id = $1`,
		warehouseID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count inventories: %w", err)
	}
	return count, nil
}

const inventoryViewQuery = `
	SELECT i.id, i.quantity_on_hand, i.expiration_date, i.created_at, i.updated_at,
	       p.id, p.name, p.sku, p.description,
	       COALESCE(c.id, ''), COALESCE(c.name, ''),
	       w.id, w.name, w.location,
	       COALESCE(s.id, ''), COALESCE(s.code, '')
	FROM inventories i
	JOIN products p ON p.id = i.product_id
	LEFT JOIN categories c ON c.id = p.category_id
	JOIN warehouses w ON w.id = i.warehouse_id
	LEFT JOIN warehouse_shelves s ON s.id = i.shelf_id
	WHERE i.warehouse_id = $1`

// ListViewByWarehouse lista los lotes de la bodega con producto/categoría/estante resueltos.
func (r *InventoryRepo) ListViewByWarehouse(warehouseID string) ([]repository.InventoryItemView, error) {
	return r.queryView(inventoryViewQuery+` ORDER BY i.created_at, i.id`, warehouseID)
}

// SearchByProductName busca lotes por nombre de producto (parcial, sin distinguir mayúsculas).
func (r *InventoryRepo) SearchByProductName(warehouseID, productName string) ([]repository.InventoryItemView, error) {
	query := inventoryViewQuery + ` AND p.name ILIKE '%' || $2 || '%' ORDER BY i.created_at, i.id`
	return r.queryView(query, warehouseID, productName)
}

// SearchByProductSKU busca lotes por SKU de producto (parcial, sin distinguir mayúsculas).
func (r *InventoryRepo) SearchByProductSKU(warehouseID, productSKU string) ([]repository.InventoryItemView, error) {
	query := inventoryViewQuery + ` AND p.sku ILIKE '%' || $2 || '%' ORDER BY i.created_at, i.id`
	return r.queryView(query, warehouseID, productSKU)
}

// FilterByCategory filtra lotes por categoría del producto.
func (r *InventoryRepo) FilterByCategory(warehouseID, categoryID string) ([]repository.InventoryItemView, error) {
	query := inventoryViewQuery + ` AND p.category_id = $2 ORDER BY i.created_at, i.id`
	return r.queryView(query, warehouseID, categoryID)
}

// Search aplica los filtros presentes con lógica OR (nombre, SKU, categoría).
// Los filtros vacíos se neutralizan en SQL con cadenas vacías.
func (r *InventoryRepo) Search(warehouseID string, filter repository.InventorySearchFilter) ([]repository.InventoryItemView, error) {
	query := inventoryViewQuery + `
	  AND (($2 <> '' AND p.name ILIKE '%' || $2 || '%')
	    OR ($3 <> '' AND p.sku ILIKE '%' || $3 || '%')
	    OR ($4 <> '' AND p.category_id = $4))
	ORDER BY i.created_at, i.id`
	return r.queryView(query, warehouseID, filter.ProductName, filter.ProductSKU, filter.CategoryID)
}

func (r *InventoryRepo) queryView(query string, args ...any) ([]repository.InventoryItemView, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query inventory view: %w", err)
	}
	defer rows.Close()
	var list []repository.InventoryItemView
	for rows.Next() {
		var v repository.InventoryItemView
		if err := rows.Scan(
			&v.InventoryID, &v.QuantityOnHand, &v.ExpirationDate, &v.CreatedAt, &v.UpdatedAt,
			&v.ProductID, &v.ProductName, &v.ProductSKU, &v.ProductDescription,
			&v.CategoryID, &v.CategoryName,
			&v.WarehouseID, &v.WarehouseName, &v.WarehouseLocation,
			&v.ShelfID, &v.ShelfCode,
		); err != nil {
			return nil, fmt.Errorf("scan inventory view: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
