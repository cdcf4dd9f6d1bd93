package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id int64) (*entity.Role, error)
	List() ([]*entity.Role, error)
}
