package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest body para POST /api/inventory/movements.
// quantity_delta es un entero con signo distinto de cero. Si
// update_catalog_price es true, los precios no nulos se propagan al catálogo
// del producto en la misma transacción que registra el movimiento.
type AdjustStockRequest struct {
	ProductID          string           `json:"product_id"`
	QuantityDelta      int64            `json:"quantity_delta"`
	ReasonType         string           `json:"reason_type"`
	Notes              string           `json:"notes,omitempty"`
	PurchasePrice      *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice          *decimal.Decimal `json:"sale_price,omitempty"`
	UpdateCatalogPrice bool             `json:"update_catalog_price"`
}

// MovementResponse representación de un movimiento registrado.
type MovementResponse struct {
	ID            string           `json:"id"`
	TransactionID string           `json:"transaction_id"`
	ProductID     string           `json:"product_id"`
	ClubID        string           `json:"club_id"`
	Type          string           `json:"type"`
	Quantity      int64            `json:"quantity"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	Date          time.Time        `json:"date"`
	CreatedBy     string           `json:"created_by,omitempty"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
