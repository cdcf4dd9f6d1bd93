package ventas

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a la tx.
// Lo implementa postgres.TxRunner; los tests usan un runner en memoria.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ventaRepo repository.VentaRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// CreateVentaUseCase crea una venta (cabecera + líneas) en una sola transacción.
type CreateVentaUseCase struct {
	txRunner TxRunner
	userRepo repository.UserRepository
}

// NewCreateVentaUseCase construye el caso de uso.
func NewCreateVentaUseCase(txRunner TxRunner, userRepo repository.UserRepository) *CreateVentaUseCase {
	return &CreateVentaUseCase{txRunner: txRunner, userRepo: userRepo}
}

// CreateVenta valida el request, resuelve el usuario dueño y persiste cabecera
// y líneas dentro de UNA transacción: un producto inexistente en cualquier
// línea aborta la venta completa, nunca queda una cabecera sin sus líneas.
func (uc *CreateVentaUseCase) CreateVenta(ctx context.Context, in dto.CrearVentaRequest) (*dto.VentaResponse, error) {
	if len(in.Productos) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Productos {
		// Invariantes duros: cantidad positiva, precio no negativo.
		if item.ProductID == 0 || item.Cantidad <= 0 || item.Precio.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	// Usuario dueño (solo lectura, fuera de la tx)
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	venta := &entity.Venta{
		Fecha:  time.Now(),
		Total:  in.Total,
		UserID: user.ID,
	}
	var items []*entity.VentaProducto

	err = uc.txRunner.Run(ctx, func(
		ventaRepo repository.VentaRepository,
		productRepo repository.ProductRepository,
	) error {
		// 1) Resolver cada producto, en el orden del request. Si alguno no
		// existe se retorna el error y se hace rollback de todo.
		for _, item := range in.Productos {
			product, err := productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return &domain.ProductoNotFoundError{ProductID: item.ProductID}
			}
			name := item.ProductName
			if name == "" {
				name = product.Name // snapshot del nombre actual del catálogo
			}
			items = append(items, &entity.VentaProducto{
				ProductID:   item.ProductID,
				ProductName: name,
				Cantidad:    item.Cantidad,
				Precio:      item.Precio,
			})
		}

		// 2) Cabecera (asigna venta.ID) y 3) líneas, en la misma tx
		if err := ventaRepo.CreateVenta(venta); err != nil {
			return err
		}
		for _, it := range items {
			it.VentaID = venta.ID
		}
		return ventaRepo.CreateProductos(items)
	})
	if err != nil {
		return nil, err
	}

	return toVentaResponse(venta, items), nil
}

func toVentaResponse(v *entity.Venta, items []*entity.VentaProducto) *dto.VentaResponse {
	out := &dto.VentaResponse{
		ID:        v.ID,
		Fecha:     v.Fecha,
		Total:     v.Total,
		UserID:    v.UserID,
		Productos: make([]dto.VentaProductoResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Productos = append(out.Productos, dto.VentaProductoResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Cantidad:    it.Cantidad,
			Precio:      it.Precio,
		})
	}
	return out
}
