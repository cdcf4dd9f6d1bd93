package usecase

import (
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// RoleUseCase administración de roles (solo Admin en la capa HTTP).
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// Create crea un nuevo rol.
func (uc *RoleUseCase) Create(in dto.CreateRoleRequest) (*entity.Role, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	role := &entity.Role{Name: in.Name}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	return role, nil
}

// List lista todos los roles.
func (uc *RoleUseCase) List() ([]*entity.Role, error) {
	return uc.repo.List()
}
