package expenses

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// RecurringUseCase CRUD de plantillas de gasto recurrente.
type RecurringUseCase struct {
	repo repository.RecurringExpenseRepository
}

// NewRecurringUseCase construye el caso de uso.
func NewRecurringUseCase(repo repository.RecurringExpenseRepository) *RecurringUseCase {
	return &RecurringUseCase{repo: repo}
}

// Create registra una plantilla recurrente. El día del mes se limita a 1-28
// para que exista en todos los meses. El usuario creador queda en la
// plantilla y se hereda en cada gasto materializado.
func (uc *RecurringUseCase) Create(clubID, userID string, in dto.CreateRecurringExpenseRequest) (*dto.RecurringExpenseResponse, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidExpenseCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if in.DayOfMonth < 1 || in.DayOfMonth > 28 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	tpl := &entity.RecurringExpense{
		ID:          uuid.New().String(),
		ClubID:      clubID,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Supplier:    in.Supplier,
		DayOfMonth:  in.DayOfMonth,
		Active:      true,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(tpl); err != nil {
		return nil, err
	}
	return toRecurringResponse(tpl), nil
}

// List lista las plantillas del club.
func (uc *RecurringUseCase) List(clubID string, limit, offset int) ([]dto.RecurringExpenseResponse, error) {
	list, err := uc.repo.ListByClub(clubID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecurringExpenseResponse, 0, len(list))
	for _, tpl := range list {
		items = append(items, *toRecurringResponse(tpl))
	}
	return items, nil
}

// Deactivate desactiva una plantilla sin borrar su historial.
func (uc *RecurringUseCase) Deactivate(clubID, id string) error {
	tpl, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tpl == nil {
		return domain.ErrNotFound
	}
	if tpl.ClubID != clubID {
		return domain.ErrForbidden
	}
	tpl.Active = false
	tpl.UpdatedAt = time.Now()
	return uc.repo.Update(tpl)
}

func toRecurringResponse(tpl *entity.RecurringExpense) *dto.RecurringExpenseResponse {
	return &dto.RecurringExpenseResponse{
		ID:          tpl.ID,
		ClubID:      tpl.ClubID,
		Amount:      tpl.Amount,
		Category:    tpl.Category,
		Description: tpl.Description,
		Supplier:    tpl.Supplier,
		DayOfMonth:  tpl.DayOfMonth,
		Active:      tpl.Active,
		LastRun:     tpl.LastRun,
	}
}
