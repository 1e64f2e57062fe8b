package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	InventoryUC *usecase.InventoryUseCase
	TransferUC  *usecase.TransferUseCase
	Audit       *audit.Recorder
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/dashboard", warehouseHandler.DashboardList)
	warehouses.Get("/id/:id", warehouseHandler.GetByID)
	warehouses.Get("/id/:id/dashboard", warehouseHandler.Dashboard)
	warehouses.Get("/id/:id/deletion-check", warehouseHandler.DeletionCheck)
	warehouses.Get("/id/:id/alerts", warehouseHandler.Alerts)
	warehouses.Patch("/id/:id", warehouseHandler.Update)
	// El borrado de bodegas queda restringido a admin.
	warehouses.Delete("/id/:id", RequireRole("admin"), warehouseHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/id/:id", productHandler.GetByID)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Patch("/id/:id", productHandler.Update)

	// Categories (protegido, solo lectura)
	protected.Get("/categories", productHandler.ListCategories)

	// Registro de auditoría (protegido, solo lectura)
	activityHandler := NewActivityHandler(deps.Audit)
	protected.Get("/activity/:entityType/id/:entityId", activityHandler.ListByEntity)

	// Inventories (protegido)
	inventories := protected.Group("/inventories")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.TransferUC)
	inventories.Post("/", inventoryHandler.AddItem)
	inventories.Post("/transfer", inventoryHandler.Transfer)
	inventories.Get("/transfers/id/:id", inventoryHandler.GetTransfer)
	inventories.Patch("/id/:id", inventoryHandler.UpdateItem)
	inventories.Delete("/id/:id", inventoryHandler.DeleteItem)
	inventories.Get("/id/:id/deletion-check", inventoryHandler.DeletionCheck)
	inventories.Get("/warehouses/id/:warehouseId", inventoryHandler.ListByWarehouse)
	inventories.Get("/warehouses/id/:warehouseId/transfers", inventoryHandler.ListTransfers)
	inventories.Get("/warehouses/id/:warehouseId/search/name", inventoryHandler.SearchByName)
	inventories.Get("/warehouses/id/:warehouseId/search/sku", inventoryHandler.SearchBySKU)
	inventories.Get("/warehouses/id/:warehouseId/search/advanced", inventoryHandler.AdvancedSearch)
	inventories.Get("/warehouses/id/:warehouseId/filter/category", inventoryHandler.FilterByCategory)
}
