package repository

import (
	"time"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	// Create persiste la venta con sus detalles. Se invoca dentro de la
	// transacción que también descuenta stock.
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	ListByClub(clubID string, from, to *time.Time, limit, offset int) ([]*entity.Sale, error)
}
