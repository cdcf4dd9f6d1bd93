package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta representa la cabecera de una orden de venta. El ID lo asigna la base
// de datos al persistir. UserID debe resolver a un usuario existente al crear.
type Venta struct {
	ID     int64
	Fecha  time.Time
	Total  decimal.Decimal
	UserID int64
}

// VentaProducto representa una línea de una venta. ProductName es un snapshot
// del nombre al momento de la venta (el del request si viene, si no el del
// catálogo); no se actualiza si el producto cambia después.
type VentaProducto struct {
	ID          int64
	VentaID     int64
	ProductID   int64
	ProductName string
	Cantidad    int
	Precio      decimal.Decimal
}
