package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un nuevo producto. La categoría referenciada debe existir.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	product := &entity.Product{
		Name:       in.Name,
		Price:      in.Price,
		Stock:      in.Stock,
		CategoryID: in.CategoryID,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto por ID. Nil si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*entity.Product, error) {
	return uc.repo.GetByID(id)
}

// List lista todos los productos.
func (uc *ProductUseCase) List() ([]*entity.Product, error) {
	return uc.repo.List()
}

// Update actualiza nombre, precio, stock y categoría de un producto existente.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Price.GreaterThan(decimal.Zero) {
		product.Price = in.Price
	}
	if in.Stock >= 0 {
		product.Stock = in.Stock
	}
	if in.CategoryID != 0 {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = in.CategoryID
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}
