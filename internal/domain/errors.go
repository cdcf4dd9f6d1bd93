package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrUsernameAlreadyExists = errors.New("el nombre de usuario ya existe")
	ErrRoleNotFound          = errors.New("rol no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
)

// ProductoNotFoundError señala que una línea de venta referencia un producto
// inexistente; conserva el ID ofensor para el mensaje al cliente.
type ProductoNotFoundError struct {
	ProductID int64
}

func (e *ProductoNotFoundError) Error() string {
	return fmt.Sprintf("el producto con ID %d no existe", e.ProductID)
}
