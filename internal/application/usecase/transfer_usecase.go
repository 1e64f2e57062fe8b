package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Umbral de ocupación (porcentaje) a partir del cual se genera una alerta
// de capacidad sobre la bodega destino.
const capacityAlertThreshold = 90.0

// TransferUseCase mueve stock de un producto entre bodegas de forma atómica:
// todas las validaciones y mutaciones corren en una sola transacción de BD,
// con los lotes origen bloqueados (SELECT FOR UPDATE) contra transferencias
// concurrentes. La auditoría y las alertas se escriben después del commit.
type TransferUseCase struct {
	tx            inventory.TxRunner
	transferRepo  repository.TransferRepository
	warehouseRepo repository.WarehouseRepository
	audit         *audit.Recorder
	alertRepo     repository.AlertRepository
	log           *logger.Logger
}

// NewTransferUseCase construye el caso de uso. transferRepo y warehouseRepo
// van atados al pool (solo lecturas del historial); las mutaciones corren
// dentro de tx.
func NewTransferUseCase(
	tx inventory.TxRunner,
	transferRepo repository.TransferRepository,
	warehouseRepo repository.WarehouseRepository,
	audit *audit.Recorder,
	alertRepo repository.AlertRepository,
	log *logger.Logger,
) *TransferUseCase {
	return &TransferUseCase{
		tx:            tx,
		transferRepo:  transferRepo,
		warehouseRepo: warehouseRepo,
		audit:         audit,
		alertRepo:     alertRepo,
		log:           log,
	}
}

// Transfer ejecuta la transferencia. El descuento en origen es greedy sobre
// los lotes más antiguos primero; en destino se incrementa el primer lote
// existente del producto, o se crea uno sin estante ni vencimiento si no hay.
// La transferencia queda en estado PENDING.
func (uc *TransferUseCase) Transfer(ctx context.Context, in dto.TransferInventoryRequest) (*dto.TransferInventoryResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.SourceWarehouseID == in.DestinationWarehouseID {
		return nil, domain.ErrInvalidInput
	}

	var (
		out           *dto.TransferInventoryResponse
		destUsage     int
		destWarehouse *entity.Warehouse
	)

	err := uc.tx.Run(ctx, func(repos inventory.TxRepos) error {
		source, err := repos.Warehouses.GetByID(in.SourceWarehouseID)
		if err != nil {
			return err
		}
		if source == nil {
			return domain.ErrNotFound
		}
		if !source.IsActive {
			return domain.ErrInactiveWarehouse
		}

		destination, err := repos.Warehouses.GetByID(in.DestinationWarehouseID)
		if err != nil {
			return err
		}
		if destination == nil {
			return domain.ErrNotFound
		}
		if !destination.IsActive {
			return domain.ErrInactiveWarehouse
		}

		product, err := repos.Products.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		// Lotes origen bloqueados hasta el commit.
		batches, err := repos.Inventory.ListByWarehouseAndProduct(source.ID, product.ID, true)
		if err != nil {
			return err
		}
		available := 0
		for _, b := range batches {
			available += b.QuantityOnHand
		}
		if available < in.Quantity {
			return domain.ErrInsufficientStock
		}

		usage, err := repos.Inventory.SumQuantityByWarehouse(destination.ID)
		if err != nil {
			return err
		}
		if destination.MaxCapacity-usage < in.Quantity {
			return domain.ErrInsufficientCapacity
		}

		// Descuento greedy: los lotes más antiguos primero.
		now := time.Now()
		remaining := in.Quantity
		for _, b := range batches {
			if remaining == 0 {
				break
			}
			take := b.QuantityOnHand
			if take > remaining {
				take = remaining
			}
			b.QuantityOnHand -= take
			b.UpdatedAt = now
			if err := repos.Inventory.Update(b); err != nil {
				return err
			}
			remaining -= take
		}

		// En destino se incrementa el primer lote existente del producto,
		// sin importar estante ni vencimiento; si no hay ninguno se crea
		// uno nuevo sin estante ni vencimiento.
		destBatches, err := repos.Inventory.ListByWarehouseAndProduct(destination.ID, product.ID, true)
		if err != nil {
			return err
		}
		var destBatch *entity.Inventory
		if len(destBatches) > 0 {
			destBatch = destBatches[0]
		}
		if destBatch != nil {
			destBatch.QuantityOnHand += in.Quantity
			destBatch.UpdatedAt = now
			if err := repos.Inventory.Update(destBatch); err != nil {
				return err
			}
		} else {
			destBatch = &entity.Inventory{
				ID:             uuid.New().String(),
				WarehouseID:    destination.ID,
				ProductID:      product.ID,
				QuantityOnHand: in.Quantity,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := repos.Inventory.Create(destBatch); err != nil {
				return err
			}
		}

		transfer := &entity.InventoryTransfer{
			ID:                     uuid.New().String(),
			ProductID:              product.ID,
			Quantity:               in.Quantity,
			Status:                 entity.TransferStatusPENDING,
			SourceWarehouseID:      source.ID,
			DestinationWarehouseID: destination.ID,
			CreatedAt:              now,
		}
		if err := repos.Transfers.Create(transfer); err != nil {
			return err
		}

		destUsage = usage + in.Quantity
		destWarehouse = destination
		out = &dto.TransferInventoryResponse{
			TransferID:               transfer.ID,
			ProductID:                product.ID,
			ProductName:              product.Name,
			Quantity:                 in.Quantity,
			SourceWarehouseID:        source.ID,
			SourceWarehouseName:      source.Name,
			DestinationWarehouseID:   destination.ID,
			DestinationWarehouseName: destination.Name,
			Status:                   transfer.Status,
			CreatedAt:                transfer.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Fuera de la tx: el fallo de auditoría o alertas no revierte la transferencia.
	uc.audit.Record(entity.EntityTypeINVENTORY, out.TransferID, entity.ActionUPDATE,
		fmt.Sprintf("Transferencia de %d unidades de %q de %q hacia %q",
			out.Quantity, out.ProductName, out.SourceWarehouseName, out.DestinationWarehouseName))
	uc.checkCapacityAlert(destWarehouse, destUsage)

	return out, nil
}

// GetByID obtiene una transferencia por ID.
func (uc *TransferUseCase) GetByID(id string) (*dto.TransferResponse, error) {
	tr, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tr == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.TransferResponse{
		ID:                     tr.ID,
		ProductID:              tr.ProductID,
		Quantity:               tr.Quantity,
		Status:                 tr.Status,
		SourceWarehouseID:      tr.SourceWarehouseID,
		DestinationWarehouseID: tr.DestinationWarehouseID,
		CreatedAt:              tr.CreatedAt,
		CompletedAt:            tr.CompletedAt,
	}, nil
}

// ListByWarehouse devuelve el historial de transferencias donde la bodega
// participa como origen o destino, de la más reciente a la más antigua.
func (uc *TransferUseCase) ListByWarehouse(warehouseID string, page dto.PageRequest) ([]dto.TransferResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	page.DefaultPage()
	transfers, err := uc.transferRepo.ListByWarehouse(warehouseID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferResponse, 0, len(transfers))
	for _, tr := range transfers {
		out = append(out, dto.TransferResponse{
			ID:                     tr.ID,
			ProductID:              tr.ProductID,
			Quantity:               tr.Quantity,
			Status:                 tr.Status,
			SourceWarehouseID:      tr.SourceWarehouseID,
			DestinationWarehouseID: tr.DestinationWarehouseID,
			CreatedAt:              tr.CreatedAt,
			CompletedAt:            tr.CompletedAt,
		})
	}
	return out, nil
}

// checkCapacityAlert genera una alerta si la bodega destino quedó por encima
// del umbral de ocupación.
func (uc *TransferUseCase) checkCapacityAlert(warehouse *entity.Warehouse, usage int) {
	if warehouse == nil || warehouse.MaxCapacity <= 0 {
		return
	}
	percentage := float64(usage) * 100.0 / float64(warehouse.MaxCapacity)
	if percentage < capacityAlertThreshold {
		return
	}
	alert := &entity.Alert{
		ID:       uuid.New().String(),
		Type:     entity.AlertTypeCapacity,
		Severity: entity.AlertSeverityWarning,
		Message: fmt.Sprintf("Bodega %q al %.1f%% de su capacidad (%d/%d)",
			warehouse.Name, percentage, usage, warehouse.MaxCapacity),
		WarehouseID: warehouse.ID,
		CreatedAt:   time.Now(),
	}
	if err := uc.alertRepo.Create(alert); err != nil {
		uc.log.Warn().Err(err).
			Str("warehouse_id", warehouse.ID).
			Msg("no se pudo guardar la alerta de capacidad")
	}
}
