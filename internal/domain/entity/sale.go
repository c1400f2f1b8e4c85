package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta con sus líneas. Total = Σ subtotales de las
// líneas; se recalcula al construir la venta, nunca se confía en el cliente.
type Sale struct {
	ID        string
	ClubID    string
	ClientID  string // vacío si venta de mostrador sin cliente
	Total     decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
	CreatedBy string
	Details   []SaleDetail
}

// SaleDetail es una línea de venta.
type SaleDetail struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal // Quantity * UnitPrice
}
