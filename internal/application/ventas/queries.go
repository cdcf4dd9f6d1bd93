package ventas

import (
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// VentaQueries lecturas de ventas (fuera del núcleo transaccional).
type VentaQueries struct {
	ventaRepo repository.VentaRepository
	userRepo  repository.UserRepository
}

// NewVentaQueries construye las consultas sobre los repos de ventas y usuarios.
func NewVentaQueries(ventaRepo repository.VentaRepository, userRepo repository.UserRepository) *VentaQueries {
	return &VentaQueries{ventaRepo: ventaRepo, userRepo: userRepo}
}

// GetVenta devuelve la venta con sus líneas. ErrNotFound si no existe.
func (q *VentaQueries) GetVenta(id int64) (*dto.VentaResponse, error) {
	venta, items, err := q.ventaWithItems(id)
	if err != nil {
		return nil, err
	}
	return toVentaResponse(venta, items), nil
}

// ListVentas devuelve todas las ventas con sus líneas.
func (q *VentaQueries) ListVentas() ([]*dto.VentaResponse, error) {
	list, err := q.ventaRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VentaResponse, 0, len(list))
	for _, v := range list {
		items, err := q.ventaRepo.GetProductos(v.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, toVentaResponse(v, items))
	}
	return out, nil
}

// GetVentaForReceipt devuelve las entidades de la venta, su dueño y sus líneas
// para renderizar el comprobante. ErrNotFound si la venta no existe.
func (q *VentaQueries) GetVentaForReceipt(id int64) (*entity.Venta, *entity.User, []*entity.VentaProducto, error) {
	venta, items, err := q.ventaWithItems(id)
	if err != nil {
		return nil, nil, nil, err
	}
	user, err := q.userRepo.GetByID(venta.UserID)
	if err != nil {
		return nil, nil, nil, err
	}
	if user == nil {
		return nil, nil, nil, domain.ErrUserNotFound
	}
	return venta, user, items, nil
}

func (q *VentaQueries) ventaWithItems(id int64) (*entity.Venta, []*entity.VentaProducto, error) {
	venta, err := q.ventaRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if venta == nil {
		return nil, nil, domain.ErrNotFound
	}
	items, err := q.ventaRepo.GetProductos(venta.ID)
	if err != nil {
		return nil, nil, err
	}
	return venta, items, nil
}
