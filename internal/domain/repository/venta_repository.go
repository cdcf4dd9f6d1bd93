package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// VentaRepository define el puerto de persistencia para Venta y sus líneas.
// CreateVenta asigna venta.ID (RETURNING id); las líneas se insertan en lote
// dentro de la misma transacción que la cabecera.
type VentaRepository interface {
	CreateVenta(venta *entity.Venta) error
	CreateProductos(items []*entity.VentaProducto) error
	GetByID(id int64) (*entity.Venta, error)
	GetProductos(ventaID int64) ([]*entity.VentaProducto, error)
	List() ([]*entity.Venta, error)
}
