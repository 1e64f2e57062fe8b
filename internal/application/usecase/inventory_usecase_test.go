package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

func setupInventory(t *testing.T) (*fixture, *InventoryUseCase) {
	t.Helper()
	f := newFixture()
	f.warehouses.items["bodega"] = &entity.Warehouse{
		ID: "bodega", Name: "Bodega Norte", Location: "Calle 1", MaxCapacity: 1000, IsActive: true,
	}
	f.shelves.items["estante-1"] = &entity.WarehouseShelf{
		ID: "estante-1", WarehouseID: "bodega", Code: "A-01",
	}
	f.categories.items["cat-ferreteria"] = &entity.Category{ID: "cat-ferreteria", Name: "Ferretería"}

	uc := NewInventoryUseCase(f.inventory, f.warehouses, f.products, f.categories, f.shelves, f.recorder)
	return f, uc
}

func TestAddItem_CreaProductoYLote(t *testing.T) {
	f, uc := setupInventory(t)

	out, err := uc.AddItem(dto.AddInventoryItemRequest{
		WarehouseID: "bodega",
		ShelfCode:   "A-01",
		ProductSKU:  "SKU-100",
		ProductName: "Martillo",
		CategoryID:  "cat-ferreteria",
		Quantity:    25,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 25, out.QuantityOnHand)
	assert.Equal(t, "estante-1", out.ShelfID)

	// El producto se creó con el SKU dado.
	product, err := f.products.GetBySKU("SKU-100")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Martillo", product.Name)
	assert.Equal(t, "cat-ferreteria", product.CategoryID)

	// Auditoría: CREATE del producto y CREATE del lote.
	productLogs, _ := f.activity.ListByEntity(entity.EntityTypePRODUCT, product.ID)
	assert.Len(t, productLogs, 1)
	itemLogs, _ := f.activity.ListByEntity(entity.EntityTypeINVENTORY, out.InventoryID)
	assert.Len(t, itemLogs, 1)
}

func TestAddItem_FusionaLoteConMismaCombinacion(t *testing.T) {
	_, uc := setupInventory(t)

	first, err := uc.AddItem(dto.AddInventoryItemRequest{
		WarehouseID: "bodega", ProductSKU: "SKU-100", ProductName: "Martillo", Quantity: 10,
	})
	require.NoError(t, err)

	second, err := uc.AddItem(dto.AddInventoryItemRequest{
		WarehouseID: "bodega", ProductSKU: "SKU-100", Quantity: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, first.InventoryID, second.InventoryID, "misma combinación debe fusionar, no crear")
	assert.Equal(t, 15, second.QuantityOnHand)
}

func TestAddItem_VencimientoDistintoCreaOtroLote(t *testing.T) {
	_, uc := setupInventory(t)
	exp := time.Now().AddDate(0, 6, 0)

	first, err := uc.AddItem(dto.AddInventoryItemRequest{
		WarehouseID: "bodega", ProductSKU: "SKU-100", ProductName: "Leche", Quantity: 10,
	})
	require.NoError(t, err)

	second, err := uc.AddItem(dto.AddInventoryItemRequest{
		WarehouseID: "bodega", ProductSKU: "SKU-100", Quantity: 5, ExpirationDate: &exp,
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.InventoryID, second.InventoryID,
		"vencimiento distinto es otra combinación y debe crear lote aparte")
}

func TestAddItem_Errores(t *testing.T) {
	f, uc := setupInventory(t)

	// Cantidad inválida.
	_, err := uc.AddItem(dto.AddInventoryItemRequest{WarehouseID: "bodega", ProductSKU: "S", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Bodega inexistente.
	_, err = uc.AddItem(dto.AddInventoryItemRequest{WarehouseID: "nada", ProductSKU: "S", ProductName: "X", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Bodega inactiva.
	f.warehouses.items["bodega"].IsActive = false
	_, err = uc.AddItem(dto.AddInventoryItemRequest{WarehouseID: "bodega", ProductSKU: "S", ProductName: "X", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInactiveWarehouse)
	f.warehouses.items["bodega"].IsActive = true

	// Estante inexistente en la bodega.
	_, err = uc.AddItem(dto.AddInventoryItemRequest{
		WarehouseID: "bodega", ShelfCode: "Z-99", ProductSKU: "S", ProductName: "X", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// SKU nuevo sin nombre de producto.
	_, err = uc.AddItem(dto.AddInventoryItemRequest{WarehouseID: "bodega", ProductSKU: "SKU-NUEVO", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Vencimiento en el pasado.
	past := time.Now().AddDate(0, 0, -1)
	_, err = uc.AddItem(dto.AddInventoryItemRequest{
		WarehouseID: "bodega", ProductSKU: "S", ProductName: "X", Quantity: 1, ExpirationDate: &past,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddItem_CapacidadInsuficiente(t *testing.T) {
	f, uc := setupInventory(t)
	f.warehouses.items["bodega"].MaxCapacity = 50

	_, err := uc.AddItem(dto.AddInventoryItemRequest{
		WarehouseID: "bodega", ProductSKU: "SKU-100", ProductName: "Martillo", Quantity: 40,
	})
	require.NoError(t, err)

	_, err = uc.AddItem(dto.AddInventoryItemRequest{
		WarehouseID: "bodega", ProductSKU: "SKU-100", Quantity: 11,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
}

func TestUpdateItem_Validaciones(t *testing.T) {
	f, uc := setupInventory(t)
	created, err := uc.AddItem(dto.AddInventoryItemRequest{
		WarehouseID: "bodega", ProductSKU: "SKU-100", ProductName: "Martillo", Quantity: 10,
	})
	require.NoError(t, err)

	// Cantidad negativa.
	_, err = uc.UpdateItem(created.InventoryID, dto.UpdateInventoryItemRequest{QuantityOnHand: ptrInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Cantidad 0 es válida (lote vacío que conserva su fila).
	out, err := uc.UpdateItem(created.InventoryID, dto.UpdateInventoryItemRequest{QuantityOnHand: ptrInt(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, out.QuantityOnHand)

	// Vencimiento en el pasado.
	past := time.Now().AddDate(0, 0, -1)
	_, err = uc.UpdateItem(created.InventoryID, dto.UpdateInventoryItemRequest{ExpirationDate: &past})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Estante de otra bodega.
	f.warehouses.items["otra"] = &entity.Warehouse{ID: "otra", Name: "Otra", MaxCapacity: 100, IsActive: true}
	f.shelves.items["estante-ajeno"] = &entity.WarehouseShelf{ID: "estante-ajeno", WarehouseID: "otra", Code: "B-01"}
	_, err = uc.UpdateItem(created.InventoryID, dto.UpdateInventoryItemRequest{ShelfID: ptrStr("estante-ajeno")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Lote inexistente.
	_, err = uc.UpdateItem("no-existe", dto.UpdateInventoryItemRequest{QuantityOnHand: ptrInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateItem_ConflictoDeCombinacion(t *testing.T) {
	_, uc := setupInventory(t)

	// Dos lotes del mismo producto: uno sin estante y otro en A-01.
	a, err := uc.AddItem(dto.AddInventoryItemRequest{
		WarehouseID: "bodega", ProductSKU: "SKU-100", ProductName: "Martillo", Quantity: 10,
	})
	require.NoError(t, err)
	b, err := uc.AddItem(dto.AddInventoryItemRequest{
		WarehouseID: "bodega", ShelfCode: "A-01", ProductSKU: "SKU-100", Quantity: 5,
	})
	require.NoError(t, err)
	require.NotEqual(t, a.InventoryID, b.InventoryID)

	// Mover b al "sin estante" colisiona con la combinación de a.
	_, err = uc.UpdateItem(b.InventoryID, dto.UpdateInventoryItemRequest{ShelfID: ptrStr("")})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDeleteItem_AuditaConMotivo(t *testing.T) {
	f, uc := setupInventory(t)
	created, err := uc.AddItem(dto.AddInventoryItemRequest{
		WarehouseID: "bodega", ProductSKU: "SKU-100", ProductName: "Martillo", Quantity: 10,
	})
	require.NoError(t, err)

	err = uc.DeleteItem(created.InventoryID, dto.DeleteInventoryItemRequest{Reason: "merma por daño"})
	require.NoError(t, err)

	item, _ := f.inventory.GetByID(created.InventoryID)
	assert.Nil(t, item)

	logs, _ := f.activity.ListByEntity(entity.EntityTypeINVENTORY, created.InventoryID)
	require.NotEmpty(t, logs)
	last := logs[len(logs)-1]
	assert.Equal(t, entity.ActionDELETE, last.Action)
	assert.Contains(t, last.Details, "merma por daño")
	assert.NotNil(t, last.DeletedAt)
}

func TestDeletionCheck_SiempreElegibleConDetalle(t *testing.T) {
	_, uc := setupInventory(t)
	created, err := uc.AddItem(dto.AddInventoryItemRequest{
		WarehouseID: "bodega", ShelfCode: "A-01", ProductSKU: "SKU-100", ProductName: "Martillo", Quantity: 10,
	})
	require.NoError(t, err)

	check, err := uc.DeletionCheck(created.InventoryID)
	require.NoError(t, err)
	assert.True(t, check.CanDelete)
	assert.Equal(t, 10, check.QuantityOnHand)
	assert.Equal(t, "Bodega Norte", check.WarehouseName)
	assert.Equal(t, "A-01", check.ShelfCode)
	assert.Equal(t, "Martillo", check.ProductName)
	assert.Equal(t, "SKU-100", check.ProductSKU)
}

func TestBusquedas(t *testing.T) {
	_, uc := setupInventory(t)

	_, err := uc.AddItem(dto.AddInventoryItemRequest{
		WarehouseID: "bodega", ProductSKU: "FER-001", ProductName: "Martillo de uña",
		CategoryID: "cat-ferreteria", Quantity: 10,
	})
	require.NoError(t, err)
	_, err = uc.AddItem(dto.AddInventoryItemRequest{
		WarehouseID: "bodega", ProductSKU: "HOG-001", ProductName: "Escoba", Quantity: 4,
	})
	require.NoError(t, err)

	// Por nombre, parcial y sin distinguir mayúsculas.
	byName, err := uc.SearchByProductName("bodega", "marti")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Martillo de uña", byName[0].ProductName)

	// Por SKU parcial.
	bySKU, err := uc.SearchByProductSKU("bodega", "HOG")
	require.NoError(t, err)
	require.Len(t, bySKU, 1)

	// Por categoría.
	byCat, err := uc.FilterByCategory("bodega", "cat-ferreteria")
	require.NoError(t, err)
	require.Len(t, byCat, 1)
	assert.Equal(t, "Ferretería", byCat[0].CategoryName)

	// Avanzada con lógica OR: nombre de uno, SKU del otro → ambos.
	both, err := uc.AdvancedSearch("bodega", repository.InventorySearchFilter{
		ProductName: "escoba", ProductSKU: "FER",
	})
	require.NoError(t, err)
	assert.Len(t, both, 2)

	// Listado completo.
	all, err := uc.ListByWarehouse("bodega")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAdvancedSearch_SinFiltros(t *testing.T) {
	_, uc := setupInventory(t)

	_, err := uc.AdvancedSearch("bodega", repository.InventorySearchFilter{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Espacios en blanco tampoco cuentan como filtro.
	_, err = uc.AdvancedSearch("bodega", repository.InventorySearchFilter{ProductName: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBusquedas_BodegaInexistente(t *testing.T) {
	_, uc := setupInventory(t)

	_, err := uc.ListByWarehouse("nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.SearchByProductName("nada", "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
