package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository (usable con pool o tx).
// Para la creación siempre debe usarse dentro de la tx del TxRunner: cabecera
// y líneas comparten el commit.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// CreateVenta persiste la cabecera y asigna venta.ID.
func (r *VentaRepo) CreateVenta(venta *entity.Venta) error {
	query := `
		INSERT INTO ventas (fecha, total, user_id)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		venta.Fecha, venta.Total, venta.UserID,
	).Scan(&venta.ID)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateProductos persiste las líneas en lote y asigna sus IDs.
func (r *VentaRepo) CreateProductos(items []*entity.VentaProducto) error {
	query := `
		INSERT INTO venta_productos (venta_id, product_id, product_name, cantidad, precio)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	for _, it := range items {
		err := r.q.QueryRow(context.Background(), query,
			it.VentaID, it.ProductID, it.ProductName, it.Cantidad, it.Precio,
		).Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("insert venta producto: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cabecera de una venta. Nil si no existe.
func (r *VentaRepo) GetByID(id int64) (*entity.Venta, error) {
	query := `SELECT id, fecha, total, user_id FROM ventas WHERE id = $1`
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Fecha, &v.Total, &v.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// GetProductos obtiene las líneas de una venta en orden de inserción.
func (r *VentaRepo) GetProductos(ventaID int64) ([]*entity.VentaProducto, error) {
	query := `
		SELECT id, venta_id, product_id, product_name, cantidad, precio
		FROM venta_productos WHERE venta_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("list venta productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.VentaProducto
	for rows.Next() {
		var it entity.VentaProducto
		if err := rows.Scan(&it.ID, &it.VentaID, &it.ProductID, &it.ProductName, &it.Cantidad, &it.Precio); err != nil {
			return nil, fmt.Errorf("scan venta producto: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// List lista todas las cabeceras de venta.
func (r *VentaRepo) List() ([]*entity.Venta, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, fecha, total, user_id FROM ventas ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.ID, &v.Fecha, &v.Total, &v.UserID); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
