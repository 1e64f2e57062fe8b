package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Location    string `json:"location" validate:"required,min=1,max=500"`
	MaxCapacity int    `json:"max_capacity" validate:"required,gt=0"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega.
// Campos nil = sin cambio (actualización parcial).
type UpdateWarehouseRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Location    *string `json:"location" validate:"omitempty,min=1,max=500"`
	MaxCapacity *int    `json:"max_capacity" validate:"omitempty,gt=0"`
	IsActive    *bool   `json:"is_active"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	MaxCapacity int       `json:"max_capacity"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WarehouseDashboardResponse bodega con sus métricas de capacidad.
// Se calcula fresco en cada petición con consulta agregada (sin caché).
type WarehouseDashboardResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Location            string    `json:"location"`
	MaxCapacity         int       `json:"max_capacity"`
	CurrentCapacityUsed int       `json:"current_capacity_used"`
	CapacityPercentage  float64   `json:"capacity_percentage"`
	TotalItems          int       `json:"total_items"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// AlertResponse una alerta operativa de bodega sin resolver.
type AlertResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Severity    string    `json:"severity"`
	Message     string    `json:"message"`
	WarehouseID string    `json:"warehouse_id"`
	InventoryID string    `json:"inventory_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// WarehouseDeletionCheckResponse resultado del chequeo de elegibilidad de borrado
// (solo lectura, para el diálogo de confirmación del frontend).
type WarehouseDeletionCheckResponse struct {
	WarehouseID   string `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	CanDelete     bool   `json:"can_delete"`
	Reason        string `json:"reason,omitempty"`
}
