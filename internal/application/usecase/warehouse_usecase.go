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

// Límites de longitud para bodegas.
const (
	maxWarehouseNameLen     = 255
	maxWarehouseLocationLen = 500
)

// WarehouseUseCase casos de uso para bodegas: CRUD con reglas de negocio,
// dashboard de capacidad y chequeo de elegibilidad de borrado.
type WarehouseUseCase struct {
	repo          repository.WarehouseRepository
	inventoryRepo repository.InventoryRepository
	alertRepo     repository.AlertRepository
	audit         *audit.Recorder
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(
	repo repository.WarehouseRepository,
	inventoryRepo repository.InventoryRepository,
	alertRepo repository.AlertRepository,
	audit *audit.Recorder,
) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, inventoryRepo: inventoryRepo, alertRepo: alertRepo, audit: audit}
}

// Create crea una bodega activa. Valida nombre/ubicación/capacidad y la
// unicidad del nombre.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	name := strings.TrimSpace(in.Name)
	location := strings.TrimSpace(in.Location)
	if err := validateWarehouseFields(name, location, in.MaxCapacity); err != nil {
		return nil, err
	}

	exists, err := uc.repo.ExistsByName(name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:          uuid.New().String(),
		Name:        name,
		Location:    location,
		MaxCapacity: in.MaxCapacity,
		IsActive:    true, // las bodegas nuevas nacen activas
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	uc.audit.Record(entity.EntityTypeWAREHOUSE, warehouse.ID, entity.ActionCREATE,
		fmt.Sprintf("Bodega %q creada con capacidad %d", warehouse.Name, warehouse.MaxCapacity))
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista bodegas; con activeOnly true devuelve solo las activas.
func (uc *WarehouseUseCase) List(activeOnly bool) ([]dto.WarehouseResponse, error) {
	var (
		list []*entity.Warehouse
		err  error
	)
	if activeOnly {
		list, err = uc.repo.ListByActive(true)
	} else {
		list, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

// Update actualiza parcialmente una bodega: los campos nil no cambian.
// Reglas: nombre único (excluyendo la propia bodega), capacidad > 0 y nunca
// por debajo del uso actual de inventario.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" || len(name) > maxWarehouseNameLen {
			return nil, domain.ErrInvalidInput
		}
		exists, err := uc.repo.ExistsByName(name, warehouse.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicate
		}
		warehouse.Name = name
	}

	if in.Location != nil {
		location := strings.TrimSpace(*in.Location)
		if location == "" || len(location) > maxWarehouseLocationLen {
			return nil, domain.ErrInvalidInput
		}
		warehouse.Location = location
	}

	if in.MaxCapacity != nil {
		if *in.MaxCapacity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		usage, err := uc.inventoryRepo.SumQuantityByWarehouse(warehouse.ID)
		if err != nil {
			return nil, err
		}
		// No se puede reducir la capacidad por debajo de lo ya almacenado.
		if *in.MaxCapacity < usage {
			return nil, domain.ErrConflict
		}
		warehouse.MaxCapacity = *in.MaxCapacity
	}

	if in.IsActive != nil {
		warehouse.IsActive = *in.IsActive
	}

	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	uc.audit.Record(entity.EntityTypeWAREHOUSE, warehouse.ID, entity.ActionUPDATE,
		fmt.Sprintf("Bodega %q actualizada", warehouse.Name))
	return toWarehouseResponse(warehouse), nil
}

// Dashboard devuelve una bodega con sus métricas de capacidad, calculadas
// fresco con consulta agregada.
func (uc *WarehouseUseCase) Dashboard(id string) (*dto.WarehouseDashboardResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return uc.buildDashboard(warehouse)
}

// DashboardList devuelve todas las bodegas (o solo activas) con métricas.
func (uc *WarehouseUseCase) DashboardList(activeOnly bool) ([]dto.WarehouseDashboardResponse, error) {
	var (
		list []*entity.Warehouse
		err  error
	)
	if activeOnly {
		list, err = uc.repo.ListByActive(true)
	} else {
		list, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseDashboardResponse, 0, len(list))
	for _, w := range list {
		d, err := uc.buildDashboard(w)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	return items, nil
}

func (uc *WarehouseUseCase) buildDashboard(warehouse *entity.Warehouse) (*dto.WarehouseDashboardResponse, error) {
	used, err := uc.inventoryRepo.SumQuantityByWarehouse(warehouse.ID)
	if err != nil {
		return nil, err
	}
	totalItems, err := uc.inventoryRepo.CountByWarehouse(warehouse.ID)
	if err != nil {
		return nil, err
	}
	percentage := 0.0
	if warehouse.MaxCapacity > 0 {
		percentage = float64(used) * 100.0 / float64(warehouse.MaxCapacity)
	}
	return &dto.WarehouseDashboardResponse{
		ID:                  warehouse.ID,
		Name:                warehouse.Name,
		Location:            warehouse.Location,
		MaxCapacity:         warehouse.MaxCapacity,
		CurrentCapacityUsed: used,
		CapacityPercentage:  percentage,
		TotalItems:          totalItems,
		IsActive:            warehouse.IsActive,
		CreatedAt:           warehouse.CreatedAt,
		UpdatedAt:           warehouse.UpdatedAt,
	}, nil
}

// Alerts lista las alertas sin resolver de la bodega.
func (uc *WarehouseUseCase) Alerts(id string) ([]dto.AlertResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	alerts, err := uc.alertRepo.ListUnresolvedByWarehouse(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.AlertResponse{
			ID:          a.ID,
			Type:        a.Type,
			Severity:    a.Severity,
			Message:     a.Message,
			WarehouseID: a.WarehouseID,
			InventoryID: a.InventoryID,
			CreatedAt:   a.CreatedAt,
		})
	}
	return out, nil
}

// DeletionCheck evalúa si la bodega puede borrarse, sin efectos secundarios.
// Replica las validaciones de Delete para el diálogo de confirmación.
func (uc *WarehouseUseCase) DeletionCheck(id string) (*dto.WarehouseDeletionCheckResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	out := &dto.WarehouseDeletionCheckResponse{
		WarehouseID:   warehouse.ID,
		WarehouseName: warehouse.Name,
	}

	count, err := uc.inventoryRepo.CountByWarehouse(id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		out.Reason = fmt.Sprintf("la bodega contiene %d lotes de inventario", count)
		return out, nil
	}

	usage, err := uc.inventoryRepo.SumQuantityByWarehouse(id)
	if err != nil {
		return nil, err
	}
	if usage > 0 {
		out.Reason = fmt.Sprintf("la bodega contiene %d unidades de inventario", usage)
		return out, nil
	}

	out.CanDelete = true
	return out, nil
}

// Delete borra una bodega vacía. Rechaza con conflicto si quedan unidades o
// lotes (aunque tengan cantidad 0).
func (uc *WarehouseUseCase) Delete(id string) error {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}

	usage, err := uc.inventoryRepo.SumQuantityByWarehouse(id)
	if err != nil {
		return err
	}
	if usage > 0 {
		return domain.ErrConflict
	}
	count, err := uc.inventoryRepo.CountByWarehouse(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}

	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.audit.Record(entity.EntityTypeWAREHOUSE, id, entity.ActionDELETE,
		fmt.Sprintf("Bodega %q eliminada", warehouse.Name))
	return nil
}

func validateWarehouseFields(name, location string, capacity int) error {
	if name == "" || len(name) > maxWarehouseNameLen {
		return domain.ErrInvalidInput
	}
	if location == "" || len(location) > maxWarehouseLocationLen {
		return domain.ErrInvalidInput
	}
	if capacity <= 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:          w.ID,
		Name:        w.Name,
		Location:    w.Location,
		MaxCapacity: w.MaxCapacity,
		IsActive:    w.IsActive,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
