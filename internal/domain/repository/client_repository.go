package repository

import "github.com/tu-usuario/gestion-pro/internal/domain/entity"

// ClientRepository define el puerto de persistencia para clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
	ListByClub(clubID string, limit, offset int) ([]*entity.Client, error)
	SearchByName(clubID, normalizedName string, limit, offset int) ([]*entity.Client, error)
}
