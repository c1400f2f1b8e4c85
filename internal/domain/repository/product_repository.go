package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByClubAndSKU(clubID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdatePrices actualiza los precios de catálogo; nil deja el precio como está.
	UpdatePrices(productID string, purchasePrice, salePrice *decimal.Decimal) error
	ListByClub(clubID string, limit, offset int) ([]*entity.Product, error)
	// SearchByName busca por nombre normalizado (sin tildes, case-insensitive).
	SearchByName(clubID, normalizedName string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
