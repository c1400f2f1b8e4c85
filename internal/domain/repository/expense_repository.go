package repository

import (
	"time"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	Update(expense *entity.Expense) error
	Delete(id string) error
	ListByClub(clubID string, from, to *time.Time, limit, offset int) ([]*entity.Expense, error)
	// ListByClubAndRange devuelve todos los gastos del rango sin paginar,
	// para el resumen por categorías (la lista es pequeña: un rango acotado).
	ListByClubAndRange(clubID string, from, to time.Time) ([]entity.Expense, error)
}

// RecurringExpenseRepository define el puerto para plantillas recurrentes.
type RecurringExpenseRepository interface {
	Create(template *entity.RecurringExpense) error
	GetByID(id string) (*entity.RecurringExpense, error)
	Update(template *entity.RecurringExpense) error
	Delete(id string) error
	ListByClub(clubID string, limit, offset int) ([]*entity.RecurringExpense, error)
	// ListActive devuelve todas las plantillas activas de todos los clubes
	// (las recorre el procesador de recurrentes).
	ListActive() ([]*entity.RecurringExpense, error)
	MarkRun(id string, at time.Time) error
}
