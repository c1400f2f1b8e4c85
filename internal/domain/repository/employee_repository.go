package repository

import "github.com/tu-usuario/gestion-pro/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para empleados.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByClubAndDocument(clubID, document string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
	ListByClub(clubID string, limit, offset int) ([]*entity.Employee, error)
}
