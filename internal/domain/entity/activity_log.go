package entity

import (
	"fmt"
	"time"
)

// Tipos de entidad auditables.
const (
	EntityTypeWAREHOUSE = "WAREHOUSE"
	EntityTypeINVENTORY = "INVENTORY"
	EntityTypePRODUCT   = "PRODUCT"
	EntityTypeALERT     = "ALERT"
)

// Acciones auditables.
const (
	ActionCREATE = "CREATE"
	ActionUPDATE = "UPDATE"
	ActionDELETE = "DELETE"
)

// ActivityLog es una entrada del registro de auditoría (append-only).
// Según la acción se llena exactamente uno de CreatedAt/UpdatedAt/DeletedAt.
type ActivityLog struct {
	ID         string
	EntityType string
	EntityID   string
	Action     string
	Details    string
	CreatedAt  *time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
}

// NewActivityLog construye una entrada válida asignando el timestamp que
// corresponde a la acción. Rechaza tipos de entidad o acciones fuera del
// conjunto cerrado.
func NewActivityLog(entityType, entityID, action, details string, now time.Time) (*ActivityLog, error) {
	switch entityType {
	case EntityTypeWAREHOUSE, EntityTypeINVENTORY, EntityTypePRODUCT, EntityTypeALERT:
	default:
		return nil, fmt.Errorf("activity log: tipo de entidad inválido %q", entityType)
	}

	log := &ActivityLog{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Details:    details,
	}
	switch action {
	case ActionCREATE:
		log.CreatedAt = &now
	case ActionUPDATE:
		log.UpdatedAt = &now
	case ActionDELETE:
		log.DeletedAt = &now
	default:
		return nil, fmt.Errorf("activity log: acción inválida %q", action)
	}
	return log, nil
}
