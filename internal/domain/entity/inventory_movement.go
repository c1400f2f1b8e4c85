package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario (razón del ajuste).
const (
	MovementTypePurchase      = "purchase"
	MovementTypeRestock       = "restock"
	MovementTypeUseInPrepared = "use_in_prepared"
	MovementTypeGift          = "gift"
	MovementTypeDamaged       = "damaged"
	MovementTypeSale          = "sale" // generado al registrar una venta
	MovementTypeOther         = "other"
)

// ValidMovementType indica si el tipo corresponde a una razón de ajuste
// aceptada desde la API. "sale" solo lo genera el registro de ventas.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypePurchase, MovementTypeRestock, MovementTypeUseInPrepared,
		MovementTypeGift, MovementTypeDamaged, MovementTypeOther:
		return true
	}
	return false
}

// InventoryMovement representa un cambio registrado de existencias con su
// razón. Quantity es un delta con signo: positivo entrada, negativo salida.
type InventoryMovement struct {
	ID            string
	TransactionID string
	ProductID     string
	ClubID        string
	Type          string
	Quantity      int64
	PurchasePrice *decimal.Decimal // precio de compra declarado en el movimiento
	SalePrice     *decimal.Decimal // precio de venta declarado en el movimiento
	Notes         string
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string
}
