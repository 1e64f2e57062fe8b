package inventory

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a la misma transacción de BD.
type TxRepos struct {
	Warehouses repository.WarehouseRepository
	Products   repository.ProductRepository
	Inventory  repository.InventoryRepository
	Transfers  repository.TransferRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la transferencia.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
