package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	// GetByUsername resuelve el usuario con su RoleName (JOIN roles). Nil si no existe.
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
}
