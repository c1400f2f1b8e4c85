package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo, con sus precios por defecto.
// El stock se maneja por club en Stock; los precios de catálogo solo cambian
// por edición directa o por un movimiento con propagación de precio.
type Product struct {
	ID            string
	ClubID        string
	SKU           string // código único por club
	Name          string
	Description   string
	Category      string
	PurchasePrice decimal.Decimal // precio de compra de catálogo
	SalePrice     decimal.Decimal // precio de venta de catálogo
	UnitMeasure   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
