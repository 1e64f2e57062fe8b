package audit

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Recorder escribe entradas de auditoría best-effort: un fallo del registro
// nunca hace fallar la operación de negocio; queda visible en el log con Warn.
type Recorder struct {
	repo repository.ActivityLogRepository
	log  *logger.Logger
}

// NewRecorder construye el registrador de auditoría.
func NewRecorder(repo repository.ActivityLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record registra una acción sobre una entidad. Valida el tipo de entidad y la
// acción contra el conjunto cerrado; la entrada lleva exactamente un timestamp
// según la acción (CREATE→created_at, UPDATE→updated_at, DELETE→deleted_at).
func (r *Recorder) Record(entityType, entityID, action, details string) {
	entry, err := entity.NewActivityLog(entityType, entityID, action, details, time.Now())
	if err != nil {
		r.log.Warn().Err(err).
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Str("action", action).
			Msg("entrada de auditoría inválida, se descarta")
		return
	}
	if err := r.repo.Create(entry); err != nil {
		r.log.Warn().Err(err).
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Str("action", action).
			Msg("no se pudo guardar la auditoría")
	}
}

// History devuelve el rastro de auditoría de una entidad concreta. Rechaza
// tipos de entidad fuera del conjunto cerrado.
func (r *Recorder) History(entityType, entityID string) ([]*entity.ActivityLog, error) {
	switch entityType {
	case entity.EntityTypeWAREHOUSE, entity.EntityTypeINVENTORY, entity.EntityTypePRODUCT, entity.EntityTypeALERT:
	default:
		return nil, domain.ErrInvalidInput
	}
	return r.repo.ListByEntity(entityType, entityID)
}
