package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func setupProduct(t *testing.T) (*fixture, *ProductUseCase) {
	t.Helper()
	f := newFixture()
	f.categories.items["cat-1"] = &entity.Category{ID: "cat-1", Name: "Ferretería"}
	f.products.items["prod"] = &entity.Product{
		ID: "prod", SKU: "SKU-001", Name: "Tornillos", IsActive: true,
	}
	uc := NewProductUseCase(f.products, f.categories, f.recorder)
	return f, uc
}

func TestProductGet(t *testing.T) {
	_, uc := setupProduct(t)

	byID, err := uc.GetByID("prod")
	require.NoError(t, err)
	assert.Equal(t, "SKU-001", byID.SKU)

	bySKU, err := uc.GetBySKU("SKU-001")
	require.NoError(t, err)
	assert.Equal(t, "prod", bySKU.ID)

	_, err = uc.GetByID("nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.GetBySKU("SKU-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_Parcial(t *testing.T) {
	f, uc := setupProduct(t)

	out, err := uc.Update("prod", dto.UpdateProductRequest{
		Description: ptrStr("Caja x100"),
		CategoryID:  ptrStr("cat-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Tornillos", out.Name, "el nombre no cambia si no se envía")
	assert.Equal(t, "Caja x100", out.Description)
	assert.Equal(t, "cat-1", out.CategoryID)

	logs, _ := f.activity.ListByEntity(entity.EntityTypePRODUCT, "prod")
	require.Len(t, logs, 1)
	assert.Equal(t, entity.ActionUPDATE, logs[0].Action)
}

func TestProductUpdate_Errores(t *testing.T) {
	_, uc := setupProduct(t)

	// Nombre vacío.
	_, err := uc.Update("prod", dto.UpdateProductRequest{Name: ptrStr("  ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Categoría inexistente.
	_, err = uc.Update("prod", dto.UpdateProductRequest{CategoryID: ptrStr("cat-falsa")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Quitar categoría (cadena vacía) sí es válido.
	out, err := uc.Update("prod", dto.UpdateProductRequest{CategoryID: ptrStr("")})
	require.NoError(t, err)
	assert.Empty(t, out.CategoryID)
}
