// Package expenses contiene los casos de uso de gastos: CRUD, resumen por
// categorías y materialización de gastos recurrentes.
package expenses

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/ports"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// ExpenseUseCase casos de uso CRUD de gastos.
type ExpenseUseCase struct {
	repo      repository.ExpenseRepository
	publisher ports.EventPublisher // puede ser nil
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, publisher ports.EventPublisher) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, publisher: publisher}
}

// Create registra un gasto. Monto negativo o categoría desconocida → ErrInvalidInput.
func (uc *ExpenseUseCase) Create(ctx context.Context, clubID, userID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Amount.LessThan(decimal.Zero) || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidExpenseCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	now := time.Now()
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		ClubID:      clubID,
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        date,
		Description: in.Description,
		Supplier:    in.Supplier,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	resp := toExpenseResponse(expense)
	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, ports.EventExpenseCreated, resp); err != nil {
			log.Warn().Err(err).Str("expense_id", expense.ID).Msg("publicar evento de gasto")
		}
	}
	return resp, nil
}

// GetByID obtiene un gasto del club.
func (uc *ExpenseUseCase) GetByID(clubID, id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.getOwned(clubID, id)
	if err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// Update modifica un gasto. Campos nil no cambian.
func (uc *ExpenseUseCase) Update(clubID, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.getOwned(clubID, id)
	if err != nil {
		return nil, err
	}
	if in.Amount != nil {
		if in.Amount.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		expense.Amount = *in.Amount
	}
	if in.Category != nil {
		if !entity.ValidExpenseCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		expense.Category = *in.Category
	}
	if in.Date != nil {
		expense.Date = *in.Date
	}
	if in.Description != nil {
		expense.Description = *in.Description
	}
	if in.Supplier != nil {
		expense.Supplier = *in.Supplier
	}
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// Delete elimina un gasto del club.
func (uc *ExpenseUseCase) Delete(clubID, id string) error {
	if _, err := uc.getOwned(clubID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// List lista gastos del club en un rango opcional de fechas.
func (uc *ExpenseUseCase) List(clubID string, from, to *time.Time, limit, offset int) (*dto.ExpenseListResponse, error) {
	list, err := uc.repo.ListByClub(clubID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AttachReceipt guarda la URL del comprobante subido.
func (uc *ExpenseUseCase) AttachReceipt(clubID, id, receiptURL string) (*dto.ExpenseResponse, error) {
	expense, err := uc.getOwned(clubID, id)
	if err != nil {
		return nil, err
	}
	expense.ReceiptURL = receiptURL
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

func (uc *ExpenseUseCase) getOwned(clubID, id string) (*entity.Expense, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	if expense.ClubID != clubID {
		return nil, domain.ErrForbidden
	}
	return expense, nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		ClubID:      e.ClubID,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date,
		Description: e.Description,
		Supplier:    e.Supplier,
		IsRecurring: e.IsRecurring,
		ReceiptURL:  e.ReceiptURL,
		CreatedAt:   e.CreatedAt,
	}
}
