package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta enviada por el cliente. unit_price es
// opcional: si falta se usa el precio de catálogo del producto.
type SaleItemRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  int64            `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreateSaleRequest body para POST /api/sales. El total lo recalcula el
// servidor a partir de las líneas; nunca se acepta del cliente.
type CreateSaleRequest struct {
	ClientID string            `json:"client_id,omitempty"`
	Items    []SaleItemRequest `json:"items"`
}

// SaleDetailResponse línea de venta en respuestas.
type SaleDetailResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse representación de una venta.
type SaleResponse struct {
	ID        string               `json:"id"`
	ClubID    string               `json:"club_id"`
	ClientID  string               `json:"client_id,omitempty"`
	Total     decimal.Decimal      `json:"total"`
	Date      time.Time            `json:"date"`
	Details   []SaleDetailResponse `json:"details"`
	CreatedBy string               `json:"created_by,omitempty"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
