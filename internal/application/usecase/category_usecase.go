package usecase

import (
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una nueva categoría.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*entity.Category, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{Name: in.Name}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetByID obtiene una categoría por ID. Nil si no existe.
func (uc *CategoryUseCase) GetByID(id int64) (*entity.Category, error) {
	return uc.repo.GetByID(id)
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List() ([]*entity.Category, error) {
	return uc.repo.List()
}
