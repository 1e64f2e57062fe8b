package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Fakes en memoria para los repositorios. Los punteros se comparten con el
// caso de uso, igual que haría una fila hidratada desde la BD.

type fakeWarehouseRepo struct {
	items map[string]*entity.Warehouse
}

var _ repository.WarehouseRepository = (*fakeWarehouseRepo)(nil)

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{items: make(map[string]*entity.Warehouse)}
}

func (f *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	f.items[w.ID] = w
	return nil
}

func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return f.items[id], nil
}

func (f *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	f.items[w.ID] = w
	return nil
}

func (f *fakeWarehouseRepo) List() ([]*entity.Warehouse, error) {
	out := make([]*entity.Warehouse, 0, len(f.items))
	for _, w := range f.items {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeWarehouseRepo) ListByActive(isActive bool) ([]*entity.Warehouse, error) {
	all, _ := f.List()
	out := make([]*entity.Warehouse, 0, len(all))
	for _, w := range all {
		if w.IsActive == isActive {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWarehouseRepo) Delete(id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeWarehouseRepo) ExistsByName(name, excludeID string) (bool, error) {
	for _, w := range f.items {
		if w.Name == name && w.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeProductRepo struct {
	items map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.items[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.items[id], nil
}

func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range f.items {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.items[p.ID] = p
	return nil
}

type fakeCategoryRepo struct {
	items map[string]*entity.Category
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: make(map[string]*entity.Category)}
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return f.items[id], nil
}

func (f *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(f.items))
	for _, c := range f.items {
		out = append(out, c)
	}
	return out, nil
}

type fakeShelfRepo struct {
	items map[string]*entity.WarehouseShelf
}

var _ repository.ShelfRepository = (*fakeShelfRepo)(nil)

func newFakeShelfRepo() *fakeShelfRepo {
	return &fakeShelfRepo{items: make(map[string]*entity.WarehouseShelf)}
}

func (f *fakeShelfRepo) GetByID(id string) (*entity.WarehouseShelf, error) {
	return f.items[id], nil
}

func (f *fakeShelfRepo) GetByWarehouseAndCode(warehouseID, code string) (*entity.WarehouseShelf, error) {
	for _, s := range f.items {
		if s.WarehouseID == warehouseID && s.Code == code {
			return s, nil
		}
	}
	return nil, nil
}

// fakeInventoryRepo conserva el orden de inserción, como el ORDER BY
// created_at, id de la consulta real.
type fakeInventoryRepo struct {
	order []string
	items map[string]*entity.Inventory

	// resolución de joins para las vistas
	products   *fakeProductRepo
	warehouses *fakeWarehouseRepo
	categories *fakeCategoryRepo
	shelves    *fakeShelfRepo

	// registro del último flag forUpdate recibido
	lastForUpdate bool
}

var _ repository.InventoryRepository = (*fakeInventoryRepo)(nil)

func newFakeInventoryRepo(p *fakeProductRepo, w *fakeWarehouseRepo, c *fakeCategoryRepo, s *fakeShelfRepo) *fakeInventoryRepo {
	return &fakeInventoryRepo{
		items:      make(map[string]*entity.Inventory),
		products:   p,
		warehouses: w,
		categories: c,
		shelves:    s,
	}
}

func (f *fakeInventoryRepo) Create(i *entity.Inventory) error {
	f.items[i.ID] = i
	f.order = append(f.order, i.ID)
	return nil
}

func (f *fakeInventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	return f.items[id], nil
}

func (f *fakeInventoryRepo) Update(i *entity.Inventory) error {
	f.items[i.ID] = i
	return nil
}

func (f *fakeInventoryRepo) Delete(id string) error {
	delete(f.items, id)
	for n, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:n], f.order[n+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeInventoryRepo) FindByCombination(warehouseID, shelfID, productID string, expiration *time.Time) (*entity.Inventory, error) {
	for _, id := range f.order {
		i := f.items[id]
		if i.WarehouseID == warehouseID && i.ShelfID == shelfID && i.ProductID == productID && i.SameExpiration(expiration) {
			return i, nil
		}
	}
	return nil, nil
}

func (f *fakeInventoryRepo) ListByWarehouseAndProduct(warehouseID, productID string, forUpdate bool) ([]*entity.Inventory, error) {
	f.lastForUpdate = forUpdate
	var out []*entity.Inventory
	for _, id := range f.order {
		i := f.items[id]
		if i.WarehouseID == warehouseID && i.ProductID == productID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) SumQuantityByWarehouse(warehouseID string) (int, error) {
	sum := 0
	for _, i := range f.items {
		if i.WarehouseID == warehouseID {
			sum += i.QuantityOnHand
		}
	}
	return sum, nil
}

func (f *fakeInventoryRepo) CountByWarehouse(warehouseID string) (int, error) {
	count := 0
	for _, i := range f.items {
		if i.WarehouseID == warehouseID {
			count++
		}
	}
	return count, nil
}

func (f *fakeInventoryRepo) view(i *entity.Inventory) repository.InventoryItemView {
	v := repository.InventoryItemView{
		InventoryID:    i.ID,
		QuantityOnHand: i.QuantityOnHand,
		ExpirationDate: i.ExpirationDate,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
		WarehouseID:    i.WarehouseID,
		ShelfID:        i.ShelfID,
		ProductID:      i.ProductID,
	}
	if p := f.products.items[i.ProductID]; p != nil {
		v.ProductName = p.Name
		v.ProductSKU = p.SKU
		v.ProductDescription = p.Description
		v.CategoryID = p.CategoryID
		if c := f.categories.items[p.CategoryID]; c != nil {
			v.CategoryName = c.Name
		}
	}
	if w := f.warehouses.items[i.WarehouseID]; w != nil {
		v.WarehouseName = w.Name
		v.WarehouseLocation = w.Location
	}
	if s := f.shelves.items[i.ShelfID]; s != nil {
		v.ShelfCode = s.Code
	}
	return v
}

func (f *fakeInventoryRepo) viewsWhere(warehouseID string, match func(repository.InventoryItemView) bool) []repository.InventoryItemView {
	var out []repository.InventoryItemView
	for _, id := range f.order {
		i := f.items[id]
		if i.WarehouseID != warehouseID {
			continue
		}
		v := f.view(i)
		if match == nil || match(v) {
			out = append(out, v)
		}
	}
	return out
}

func (f *fakeInventoryRepo) ListViewByWarehouse(warehouseID string) ([]repository.InventoryItemView, error) {
	return f.viewsWhere(warehouseID, nil), nil
}

func (f *fakeInventoryRepo) SearchByProductName(warehouseID, productName string) ([]repository.InventoryItemView, error) {
	needle := strings.ToLower(productName)
	return f.viewsWhere(warehouseID, func(v repository.InventoryItemView) bool {
		return strings.Contains(strings.ToLower(v.ProductName), needle)
	}), nil
}

func (f *fakeInventoryRepo) SearchByProductSKU(warehouseID, productSKU string) ([]repository.InventoryItemView, error) {
	needle := strings.ToLower(productSKU)
	return f.viewsWhere(warehouseID, func(v repository.InventoryItemView) bool {
		return strings.Contains(strings.ToLower(v.ProductSKU), needle)
	}), nil
}

func (f *fakeInventoryRepo) FilterByCategory(warehouseID, categoryID string) ([]repository.InventoryItemView, error) {
	return f.viewsWhere(warehouseID, func(v repository.InventoryItemView) bool {
		return v.CategoryID == categoryID
	}), nil
}

func (f *fakeInventoryRepo) Search(warehouseID string, filter repository.InventorySearchFilter) ([]repository.InventoryItemView, error) {
	name := strings.ToLower(filter.ProductName)
	sku := strings.ToLower(filter.ProductSKU)
	return f.viewsWhere(warehouseID, func(v repository.InventoryItemView) bool {
		return (name != "" && strings.Contains(strings.ToLower(v.ProductName), name)) ||
			(sku != "" && strings.Contains(strings.ToLower(v.ProductSKU), sku)) ||
			(filter.CategoryID != "" && v.CategoryID == filter.CategoryID)
	}), nil
}

type fakeTransferRepo struct {
	transfers []*entity.InventoryTransfer
}

var _ repository.TransferRepository = (*fakeTransferRepo)(nil)

func newFakeTransferRepo() *fakeTransferRepo { return &fakeTransferRepo{} }

func (f *fakeTransferRepo) Create(tr *entity.InventoryTransfer) error {
	f.transfers = append(f.transfers, tr)
	return nil
}

func (f *fakeTransferRepo) GetByID(id string) (*entity.InventoryTransfer, error) {
	for _, tr := range f.transfers {
		if tr.ID == id {
			return tr, nil
		}
	}
	return nil, nil
}

func (f *fakeTransferRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.InventoryTransfer, error) {
	var out []*entity.InventoryTransfer
	for _, tr := range f.transfers {
		if tr.SourceWarehouseID == warehouseID || tr.DestinationWarehouseID == warehouseID {
			out = append(out, tr)
		}
	}
	return out, nil
}

type fakeActivityLogRepo struct {
	entries []*entity.ActivityLog
	err     error // si se setea, Create falla
}

var _ repository.ActivityLogRepository = (*fakeActivityLogRepo)(nil)

func newFakeActivityLogRepo() *fakeActivityLogRepo { return &fakeActivityLogRepo{} }

func (f *fakeActivityLogRepo) Create(log *entity.ActivityLog) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, log)
	return nil
}

func (f *fakeActivityLogRepo) ListByEntity(entityType, entityID string) ([]*entity.ActivityLog, error) {
	var out []*entity.ActivityLog
	for _, e := range f.entries {
		if e.EntityType == entityType && e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeAlertRepo struct {
	alerts []*entity.Alert
	err    error
}

var _ repository.AlertRepository = (*fakeAlertRepo)(nil)

func newFakeAlertRepo() *fakeAlertRepo { return &fakeAlertRepo{} }

func (f *fakeAlertRepo) Create(a *entity.Alert) error {
	if f.err != nil {
		return f.err
	}
	f.alerts = append(f.alerts, a)
	return nil
}

func (f *fakeAlertRepo) ListUnresolvedByWarehouse(warehouseID string) ([]*entity.Alert, error) {
	var out []*entity.Alert
	for _, a := range f.alerts {
		if a.WarehouseID == warehouseID && !a.IsResolved {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta la función directamente sobre los fakes, sin
// transacción real. Las validaciones del caso de uso van antes de cualquier
// mutación, así que los tests de conflicto pueden verificar "sin cambios".
type fakeTxRunner struct {
	repos inventory.TxRepos
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	return fn(r.repos)
}

// fixture agrupa los fakes y el recorder para armar casos de uso en tests.
type fixture struct {
	warehouses *fakeWarehouseRepo
	products   *fakeProductRepo
	categories *fakeCategoryRepo
	shelves    *fakeShelfRepo
	inventory  *fakeInventoryRepo
	transfers  *fakeTransferRepo
	activity   *fakeActivityLogRepo
	alerts     *fakeAlertRepo
	recorder   *audit.Recorder
}

func newFixture() *fixture {
	f := &fixture{
		warehouses: newFakeWarehouseRepo(),
		products:   newFakeProductRepo(),
		categories: newFakeCategoryRepo(),
		shelves:    newFakeShelfRepo(),
		transfers:  newFakeTransferRepo(),
		activity:   newFakeActivityLogRepo(),
		alerts:     newFakeAlertRepo(),
	}
	f.inventory = newFakeInventoryRepo(f.products, f.warehouses, f.categories, f.shelves)
	f.recorder = audit.NewRecorder(f.activity, logger.Nop())
	return f
}

func (f *fixture) txRunner() inventory.TxRunner {
	return &fakeTxRunner{repos: inventory.TxRepos{
		Warehouses: f.warehouses,
		Products:   f.products,
		Inventory:  f.inventory,
		Transfers:  f.transfers,
	}}
}
