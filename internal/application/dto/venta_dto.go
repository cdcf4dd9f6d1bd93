package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearVentaRequest entrada para crear una venta: total declarado, usuario
// dueño y las líneas solicitadas.
type CrearVentaRequest struct {
	Total     decimal.Decimal      `json:"total"`
	UserID    int64                `json:"userId"`
	Productos []VentaProductoEntry `json:"productos"`
}

// VentaProductoEntry una línea solicitada. ProductName es opcional: si viene
// vacío se toma el nombre actual del catálogo.
type VentaProductoEntry struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	Cantidad    int             `json:"cantidad"`
	Precio      decimal.Decimal `json:"precio"`
}

// VentaResponse salida de una venta con sus líneas.
type VentaResponse struct {
	ID        int64                   `json:"id"`
	Fecha     time.Time               `json:"fecha"`
	Total     decimal.Decimal         `json:"total"`
	UserID    int64                   `json:"userId"`
	Productos []VentaProductoResponse `json:"productos"`
}

// VentaProductoResponse una línea persistida.
type VentaProductoResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Cantidad    int             `json:"cantidad"`
	Precio      decimal.Decimal `json:"precio"`
}
