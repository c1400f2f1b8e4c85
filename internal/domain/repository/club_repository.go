package repository

import "github.com/tu-usuario/gestion-pro/internal/domain/entity"

// ClubRepository define el puerto de persistencia para clubes (sedes).
type ClubRepository interface {
	Create(club *entity.Club) error
	GetByID(id string) (*entity.Club, error)
	Update(club *entity.Club) error
	List(limit, offset int) ([]*entity.Club, error)
}

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmailAndClub(email, clubID string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}
