package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// InventoryUseCase casos de uso sobre lotes de inventario: alta con fusión de
// lotes, actualización parcial, borrado auditado y los listados/búsquedas.
type InventoryUseCase struct {
	repo          repository.InventoryRepository
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	shelfRepo     repository.ShelfRepository
	audit         *audit.Recorder
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	repo repository.InventoryRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	shelfRepo repository.ShelfRepository,
	audit *audit.Recorder,
) *InventoryUseCase {
	return &InventoryUseCase{
		repo:          repo,
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		shelfRepo:     shelfRepo,
		audit:         audit,
	}
}

// AddItem agrega stock a una bodega. Si ya existe un lote con la misma
// combinación (bodega, estante, producto, vencimiento) se fusionan las
// cantidades; si no, se crea lote nuevo. Si el SKU no existe se crea el
// producto. Valida capacidad disponible en la bodega.
func (uc *InventoryUseCase) AddItem(in dto.AddInventoryItemRequest) (*dto.InventoryBatchResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if !warehouse.IsActive {
		return nil, domain.ErrInactiveWarehouse
	}

	// Capacidad: el nuevo stock no puede superar lo disponible.
	usage, err := uc.repo.SumQuantityByWarehouse(warehouse.ID)
	if err != nil {
		return nil, err
	}
	if warehouse.MaxCapacity-usage < in.Quantity {
		return nil, domain.ErrInsufficientCapacity
	}

	shelfID := ""
	if code := strings.TrimSpace(in.ShelfCode); code != "" {
		shelf, err := uc.shelfRepo.GetByWarehouseAndCode(warehouse.ID, code)
		if err != nil {
			return nil, err
		}
		if shelf == nil {
			return nil, domain.ErrNotFound
		}
		shelfID = shelf.ID
	}

	product, err := getOrCreateProduct(uc.productRepo, uc.categoryRepo, uc.audit,
		in.ProductSKU, in.ProductName, in.ProductDescription, in.CategoryID)
	if err != nil {
		return nil, err
	}

	if in.ExpirationDate != nil && in.ExpirationDate.Before(time.Now()) {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.FindByCombination(warehouse.ID, shelfID, product.ID, in.ExpirationDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if existing != nil {
		existing.QuantityOnHand += in.Quantity
		existing.UpdatedAt = now
		if err := uc.repo.Update(existing); err != nil {
			return nil, err
		}
		uc.audit.Record(entity.EntityTypeINVENTORY, existing.ID, entity.ActionUPDATE,
			fmt.Sprintf("Se agregaron %d unidades de %q al lote existente (total %d)",
				in.Quantity, product.Name, existing.QuantityOnHand))
		return toInventoryBatchResponse(existing), nil
	}

	item := &entity.Inventory{
		ID:             uuid.New().String(),
		WarehouseID:    warehouse.ID,
		ShelfID:        shelfID,
		ProductID:      product.ID,
		QuantityOnHand: in.Quantity,
		ExpirationDate: in.ExpirationDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	uc.audit.Record(entity.EntityTypeINVENTORY, item.ID, entity.ActionCREATE,
		fmt.Sprintf("Lote creado con %d unidades de %q en bodega %q",
			in.Quantity, product.Name, warehouse.Name))
	return toInventoryBatchResponse(item), nil
}

// UpdateItem actualiza parcialmente un lote: cantidad, vencimiento o estante.
// Si el cambio produce la combinación de otro lote existente, conflicto.
func (uc *InventoryUseCase) UpdateItem(id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryBatchResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	oldQuantity := item.QuantityOnHand
	combinationChanged := false

	if in.QuantityOnHand != nil {
		if *in.QuantityOnHand < 0 {
			return nil, domain.ErrInvalidInput
		}
		if delta := *in.QuantityOnHand - item.QuantityOnHand; delta > 0 {
			warehouse, err := uc.warehouseRepo.GetByID(item.WarehouseID)
			if err != nil {
				return nil, err
			}
			if warehouse == nil {
				return nil, domain.ErrNotFound
			}
			usage, err := uc.repo.SumQuantityByWarehouse(item.WarehouseID)
			if err != nil {
				return nil, err
			}
			if warehouse.MaxCapacity-usage < delta {
				return nil, domain.ErrInsufficientCapacity
			}
		}
		item.QuantityOnHand = *in.QuantityOnHand
	}

	if in.ExpirationDate != nil {
		if in.ExpirationDate.Before(time.Now()) {
			return nil, domain.ErrInvalidInput
		}
		if !item.SameExpiration(in.ExpirationDate) {
			combinationChanged = true
		}
		item.ExpirationDate = in.ExpirationDate
	}

	if in.ShelfID != nil {
		shelfID := strings.TrimSpace(*in.ShelfID)
		if shelfID != "" {
			shelf, err := uc.shelfRepo.GetByID(shelfID)
			if err != nil {
				return nil, err
			}
			if shelf == nil {
				return nil, domain.ErrNotFound
			}
			// El estante debe pertenecer a la misma bodega del lote.
			if shelf.WarehouseID != item.WarehouseID {
				return nil, domain.ErrInvalidInput
			}
		}
		if shelfID != item.ShelfID {
			combinationChanged = true
		}
		item.ShelfID = shelfID
	}

	if combinationChanged {
		other, err := uc.repo.FindByCombination(item.WarehouseID, item.ShelfID, item.ProductID, item.ExpirationDate)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != item.ID {
			return nil, domain.ErrConflict
		}
	}

	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	uc.audit.Record(entity.EntityTypeINVENTORY, item.ID, entity.ActionUPDATE,
		fmt.Sprintf("Lote actualizado: cantidad %d a %d", oldQuantity, item.QuantityOnHand))
	return toInventoryBatchResponse(item), nil
}

// DeletionCheck devuelve el detalle del lote para el diálogo de confirmación.
// Los lotes siempre son elegibles para borrado.
func (uc *InventoryUseCase) DeletionCheck(id string) (*dto.InventoryDeletionCheckResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	out := &dto.InventoryDeletionCheckResponse{
		InventoryID:    item.ID,
		QuantityOnHand: item.QuantityOnHand,
		ExpirationDate: item.ExpirationDate,
		CanDelete:      true,
	}

	if warehouse, err := uc.warehouseRepo.GetByID(item.WarehouseID); err != nil {
		return nil, err
	} else if warehouse != nil {
		out.WarehouseName = warehouse.Name
	}
	if product, err := uc.productRepo.GetByID(item.ProductID); err != nil {
		return nil, err
	} else if product != nil {
		out.ProductName = product.Name
		out.ProductSKU = product.SKU
	}
	if item.ShelfID != "" {
		if shelf, err := uc.shelfRepo.GetByID(item.ShelfID); err != nil {
			return nil, err
		} else if shelf != nil {
			out.ShelfCode = shelf.Code
		}
	}
	return out, nil
}

// DeleteItem borra un lote; el motivo queda en la auditoría.
func (uc *InventoryUseCase) DeleteItem(id string, in dto.DeleteInventoryItemRequest) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	details := fmt.Sprintf("Lote con %d unidades eliminado", item.QuantityOnHand)
	if reason := strings.TrimSpace(in.Reason); reason != "" {
		details = fmt.Sprintf("%s. Motivo: %s", details, reason)
	}
	uc.audit.Record(entity.EntityTypeINVENTORY, id, entity.ActionDELETE, details)
	return nil
}

// ListByWarehouse lista los lotes de una bodega con el detalle resuelto.
func (uc *InventoryUseCase) ListByWarehouse(warehouseID string) ([]dto.InventoryItemResponse, error) {
	if err := uc.requireWarehouse(warehouseID); err != nil {
		return nil, err
	}
	views, err := uc.repo.ListViewByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	return toInventoryItemResponses(views), nil
}

// SearchByProductName busca lotes por nombre de producto (parcial, sin
// distinguir mayúsculas).
func (uc *InventoryUseCase) SearchByProductName(warehouseID, productName string) ([]dto.InventoryItemResponse, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireWarehouse(warehouseID); err != nil {
		return nil, err
	}
	views, err := uc.repo.SearchByProductName(warehouseID, strings.TrimSpace(productName))
	if err != nil {
		return nil, err
	}
	return toInventoryItemResponses(views), nil
}

// SearchByProductSKU busca lotes por SKU (parcial, sin distinguir mayúsculas).
func (uc *InventoryUseCase) SearchByProductSKU(warehouseID, productSKU string) ([]dto.InventoryItemResponse, error) {
	if strings.TrimSpace(productSKU) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireWarehouse(warehouseID); err != nil {
		return nil, err
	}
	views, err := uc.repo.SearchByProductSKU(warehouseID, strings.TrimSpace(productSKU))
	if err != nil {
		return nil, err
	}
	return toInventoryItemResponses(views), nil
}

// FilterByCategory lista los lotes de una categoría dentro de la bodega.
func (uc *InventoryUseCase) FilterByCategory(warehouseID, categoryID string) ([]dto.InventoryItemResponse, error) {
	if strings.TrimSpace(categoryID) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireWarehouse(warehouseID); err != nil {
		return nil, err
	}
	views, err := uc.repo.FilterByCategory(warehouseID, strings.TrimSpace(categoryID))
	if err != nil {
		return nil, err
	}
	return toInventoryItemResponses(views), nil
}

// AdvancedSearch combina filtros con lógica OR. Exige al menos un filtro.
func (uc *InventoryUseCase) AdvancedSearch(warehouseID string, filter repository.InventorySearchFilter) ([]dto.InventoryItemResponse, error) {
	filter.ProductName = strings.TrimSpace(filter.ProductName)
	filter.ProductSKU = strings.TrimSpace(filter.ProductSKU)
	filter.CategoryID = strings.TrimSpace(filter.CategoryID)
	if filter.ProductName == "" && filter.ProductSKU == "" && filter.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireWarehouse(warehouseID); err != nil {
		return nil, err
	}
	views, err := uc.repo.Search(warehouseID, filter)
	if err != nil {
		return nil, err
	}
	return toInventoryItemResponses(views), nil
}

func (uc *InventoryUseCase) requireWarehouse(warehouseID string) error {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toInventoryBatchResponse(i *entity.Inventory) *dto.InventoryBatchResponse {
	if i == nil {
		return nil
	}
	return &dto.InventoryBatchResponse{
		InventoryID:    i.ID,
		WarehouseID:    i.WarehouseID,
		ShelfID:        i.ShelfID,
		ProductID:      i.ProductID,
		QuantityOnHand: i.QuantityOnHand,
		ExpirationDate: i.ExpirationDate,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

func toInventoryItemResponses(views []repository.InventoryItemView) []dto.InventoryItemResponse {
	items := make([]dto.InventoryItemResponse, 0, len(views))
	for _, v := range views {
		items = append(items, dto.InventoryItemResponse{
			InventoryID:        v.InventoryID,
			QuantityOnHand:     v.QuantityOnHand,
			ExpirationDate:     v.ExpirationDate,
			ProductID:          v.ProductID,
			ProductName:        v.ProductName,
			ProductSKU:         v.ProductSKU,
			ProductDescription: v.ProductDescription,
			CategoryID:         v.CategoryID,
			CategoryName:       v.CategoryName,
			WarehouseID:        v.WarehouseID,
			WarehouseName:      v.WarehouseName,
			WarehouseLocation:  v.WarehouseLocation,
			ShelfID:            v.ShelfID,
			ShelfCode:          v.ShelfCode,
			CreatedAt:          v.CreatedAt,
			UpdatedAt:          v.UpdatedAt,
		})
	}
	return items
}
