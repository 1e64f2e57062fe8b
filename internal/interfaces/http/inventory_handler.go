package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// InventoryHandler maneja las peticiones HTTP para lotes de inventario y
// transferencias entre bodegas (protegido).
type InventoryHandler struct {
	uc         *usecase.InventoryUseCase
	transferUC *usecase.TransferUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase, transferUC *usecase.TransferUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, transferUC: transferUC}
}

// AddItem godoc
// @Summary      Agregar stock a una bodega
// @Tags         inventories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddInventoryItemRequest  true  "Datos del stock"
// @Success      201   {object}  dto.InventoryBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/inventories [post]
func (h *InventoryHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddItem(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem godoc
// @Summary      Actualizar lote (parcial)
// @Tags         inventories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.UpdateInventoryItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.InventoryBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/inventories/id/{id} [patch]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateItem(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeletionCheck godoc
// @Summary      Chequear borrado de un lote
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.InventoryDeletionCheckResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/inventories/id/{id}/deletion-check [get]
func (h *InventoryHandler) DeletionCheck(c *fiber.Ctx) error {
	out, err := h.uc.DeletionCheck(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteItem godoc
// @Summary      Borrar lote
// @Tags         inventories
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.DeleteInventoryItemRequest  false  "Motivo del borrado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/inventories/id/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	var in dto.DeleteInventoryItemRequest
	// El cuerpo es opcional; un body vacío o ausente no es error.
	_ = c.BodyParser(&in)
	if err := h.uc.DeleteItem(c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByWarehouse godoc
// @Summary      Listar lotes de una bodega
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  path  string  true  "ID de la bodega"
// @Success      200  {array}  dto.InventoryItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/inventories/warehouses/id/{warehouseId} [get]
func (h *InventoryHandler) ListByWarehouse(c *fiber.Ctx) error {
	out, err := h.uc.ListByWarehouse(c.Params("warehouseId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SearchByName godoc
// @Summary      Buscar lotes por nombre de producto
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  path   string  true  "ID de la bodega"
// @Param        productName  query  string  true  "Nombre (parcial)"
// @Success      200  {array}  dto.InventoryItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/inventories/warehouses/id/{warehouseId}/search/name [get]
func (h *InventoryHandler) SearchByName(c *fiber.Ctx) error {
	out, err := h.uc.SearchByProductName(c.Params("warehouseId"), c.Query("productName"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SearchBySKU godoc
// @Summary      Buscar lotes por SKU de producto
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  path   string  true  "ID de la bodega"
// @Param        productSku   query  string  true  "SKU (parcial)"
// @Success      200  {array}  dto.InventoryItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/inventories/warehouses/id/{warehouseId}/search/sku [get]
func (h *InventoryHandler) SearchBySKU(c *fiber.Ctx) error {
	out, err := h.uc.SearchByProductSKU(c.Params("warehouseId"), c.Query("productSku"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FilterByCategory godoc
// @Summary      Filtrar lotes por categoría
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  path   string  true  "ID de la bodega"
// @Param        categoryId   query  string  true  "ID de la categoría"
// @Success      200  {array}  dto.InventoryItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/inventories/warehouses/id/{warehouseId}/filter/category [get]
func (h *InventoryHandler) FilterByCategory(c *fiber.Ctx) error {
	out, err := h.uc.FilterByCategory(c.Params("warehouseId"), c.Query("categoryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AdvancedSearch godoc
// @Summary      Búsqueda avanzada de lotes (lógica OR)
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  path   string  true   "ID de la bodega"
// @Param        productName  query  string  false  "Nombre (parcial)"
// @Param        productSku   query  string  false  "SKU (parcial)"
// @Param        categoryId   query  string  false  "ID de la categoría"
// @Success      200  {array}  dto.InventoryItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/inventories/warehouses/id/{warehouseId}/search/advanced [get]
func (h *InventoryHandler) AdvancedSearch(c *fiber.Ctx) error {
	filter := repository.InventorySearchFilter{
		ProductName: c.Query("productName"),
		ProductSKU:  c.Query("productSku"),
		CategoryID:  c.Query("categoryId"),
	}
	out, err := h.uc.AdvancedSearch(c.Params("warehouseId"), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetTransfer godoc
// @Summary      Detalle de una transferencia
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la transferencia"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/inventories/transfers/id/{id} [get]
func (h *InventoryHandler) GetTransfer(c *fiber.Ctx) error {
	out, err := h.transferUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListTransfers godoc
// @Summary      Historial de transferencias de una bodega
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  path   string  true   "ID de la bodega"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/inventories/warehouses/id/{warehouseId}/transfers [get]
func (h *InventoryHandler) ListTransfers(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.transferUC.ListByWarehouse(c.Params("warehouseId"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Transfer godoc
// @Summary      Transferir stock entre bodegas
// @Tags         inventories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferInventoryRequest  true  "Datos de la transferencia"
// @Success      200   {object}  dto.TransferInventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/inventories/transfer [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.transferUC.Transfer(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
