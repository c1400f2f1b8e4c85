package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create crea un empleado. El documento es único por club.
func (uc *EmployeeUseCase) Create(clubID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.Document == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Salary.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByClubAndDocument(clubID, in.Document)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		ClubID:    clubID,
		Name:      in.Name,
		Document:  in.Document,
		Position:  in.Position,
		Salary:    in.Salary,
		Phone:     in.Phone,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado del club.
func (uc *EmployeeUseCase) GetByID(clubID, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.getOwned(clubID, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Update actualiza un empleado. Campos nil no cambian.
func (uc *EmployeeUseCase) Update(clubID, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.getOwned(clubID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		employee.Name = *in.Name
	}
	if in.Position != nil {
		employee.Position = *in.Position
	}
	if in.Salary != nil {
		if in.Salary.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		employee.Salary = *in.Salary
	}
	if in.Phone != nil {
		employee.Phone = *in.Phone
	}
	if in.Status != nil {
		if *in.Status != "active" && *in.Status != "inactive" {
			return nil, domain.ErrInvalidInput
		}
		employee.Status = *in.Status
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina un empleado del club.
func (uc *EmployeeUseCase) Delete(clubID, id string) error {
	if _, err := uc.getOwned(clubID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// List lista empleados del club.
func (uc *EmployeeUseCase) List(clubID string, limit, offset int) (*dto.EmployeeListResponse, error) {
	list, err := uc.repo.ListByClub(clubID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *EmployeeUseCase) getOwned(clubID, id string) (*entity.Employee, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if employee.ClubID != clubID {
		return nil, domain.ErrForbidden
	}
	return employee, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		ClubID:    e.ClubID,
		Name:      e.Name,
		Document:  e.Document,
		Position:  e.Position,
		Salary:    e.Salary,
		Phone:     e.Phone,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
