package repository

import (
	"time"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia para movimientos.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
	ListByClub(clubID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
}
