package entity

import "github.com/shopspring/decimal"

// Product representa un ítem del catálogo.
type Product struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	CategoryID int64           `json:"categoryId"`
}
