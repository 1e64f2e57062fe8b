package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso para productos. Los productos se crean de forma
// implícita al agregar inventario con un SKU nuevo; aquí viven las consultas
// y la actualización parcial.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	audit        *audit.Recorder
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	audit *audit.Recorder,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, audit: audit}
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetBySKU obtiene un producto por su SKU.
func (uc *ProductUseCase) GetBySKU(sku string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySKU(strings.TrimSpace(sku))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza parcialmente un producto. El SKU no es modificable.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.CategoryID != nil {
		categoryID := strings.TrimSpace(*in.CategoryID)
		if categoryID != "" {
			category, err := uc.categoryRepo.GetByID(categoryID)
			if err != nil {
				return nil, err
			}
			if category == nil {
				return nil, domain.ErrNotFound
			}
		}
		product.CategoryID = categoryID
	}

	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.audit.Record(entity.EntityTypePRODUCT, product.ID, entity.ActionUPDATE,
		fmt.Sprintf("Producto %q (SKU %s) actualizado", product.Name, product.SKU))
	return toProductResponse(product), nil
}

// ListCategories lista las categorías disponibles para filtrar inventario.
func (uc *ProductUseCase) ListCategories() ([]dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// getOrCreateProduct devuelve el producto del SKU, creándolo si no existe.
// Al crear, name es obligatorio y la categoría (si viene) debe existir.
// Compartido entre el caso de uso de inventario y el de transferencias.
func getOrCreateProduct(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	rec *audit.Recorder,
	sku, name, description, categoryID string,
) (*entity.Product, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, domain.ErrInvalidInput
	}

	product, err := repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product != nil {
		return product, nil
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	categoryID = strings.TrimSpace(categoryID)
	if categoryID != "" {
		category, err := categoryRepo.GetByID(categoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	product = &entity.Product{
		ID:          uuid.New().String(),
		SKU:         sku,
		Name:        name,
		Description: strings.TrimSpace(description),
		IsActive:    true,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Create(product); err != nil {
		return nil, err
	}
	rec.Record(entity.EntityTypePRODUCT, product.ID, entity.ActionCREATE,
		fmt.Sprintf("Producto %q (SKU %s) creado", product.Name, product.SKU))
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
