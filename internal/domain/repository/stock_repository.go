package repository

import "github.com/tu-usuario/gestion-pro/internal/domain/entity"

// StockRepository define el puerto de persistencia para Stock (existencias por club).
type StockRepository interface {
	Get(productID, clubID string) (*entity.Stock, error)
	// GetForUpdate obtiene el stock bloqueando la fila (SELECT FOR UPDATE);
	// si la fila no existe la crea en cero y la bloquea.
	GetForUpdate(productID, clubID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	ListByClub(clubID string, limit, offset int) ([]*entity.Stock, error)
}
