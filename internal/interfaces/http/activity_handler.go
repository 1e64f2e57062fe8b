package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// ActivityHandler expone el registro de auditoría en modo solo lectura (protegido).
type ActivityHandler struct {
	audit *audit.Recorder
}

// NewActivityHandler construye el handler.
func NewActivityHandler(audit *audit.Recorder) *ActivityHandler {
	return &ActivityHandler{audit: audit}
}

// ListByEntity godoc
// @Summary      Rastro de auditoría de una entidad
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        entityType  path  string  true  "Tipo de entidad"  Enums(WAREHOUSE, INVENTORY, PRODUCT, ALERT)
// @Param        entityId    path  string  true  "ID de la entidad"
// @Success      200  {array}  dto.ActivityLogResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/activity/{entityType}/id/{entityId} [get]
func (h *ActivityHandler) ListByEntity(c *fiber.Ctx) error {
	logs, err := h.audit.History(c.Params("entityType"), c.Params("entityId"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.ActivityLogResponse{
			ID:         l.ID,
			EntityType: l.EntityType,
			EntityID:   l.EntityID,
			Action:     l.Action,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt,
			UpdatedAt:  l.UpdatedAt,
			DeletedAt:  l.DeletedAt,
		})
	}
	return c.JSON(out)
}
