package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación sobre PostgreSQL (usable con pool o tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, club_id, amount, category, date, description, supplier, is_recurring, receipt_url, created_by, created_at, updated_at`

// Create persiste un gasto.
func (r *ExpenseRepo) Create(e *entity.Expense) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `
		INSERT INTO expenses (id, club_id, amount, category, date, description, supplier, is_recurring, receipt_url, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.ClubID, e.Amount, e.Category, e.Date, e.Description, e.Supplier,
		e.IsRecurring, e.ReceiptURL, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	var e entity.Expense
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.ClubID, &e.Amount, &e.Category, &e.Date, &e.Description, &e.Supplier,
		&e.IsRecurring, &e.ReceiptURL, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// Update actualiza los campos editables de un gasto.
func (r *ExpenseRepo) Update(e *entity.Expense) error {
	query := `
		UPDATE expenses
		SET amount = $2, category = $3, date = $4, description = $5,
		    supplier = $6, receipt_url = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		e.ID, e.Amount, e.Category, e.Date, e.Description, e.Supplier, e.ReceiptURL, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un gasto.
func (r *ExpenseRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByClub lista gastos de un club con filtro opcional de fechas y paginación.
func (r *ExpenseRepo) ListByClub(clubID string, from, to *time.Time, limit, offset int) ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + `
		FROM expenses
		WHERE club_id = $1
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date <= $3)
		ORDER BY date DESC, created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, clubID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := scanExpense(rows, &e); err != nil {
			return nil, err
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ListByClubAndRange devuelve todos los gastos del rango sin paginar, para
// el resumen por categorías.
func (r *ExpenseRepo) ListByClubAndRange(clubID string, from, to time.Time) ([]entity.Expense, error) {
	query := `SELECT ` + expenseColumns + `
		FROM expenses
		WHERE club_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date`
	rows, err := r.q.Query(context.Background(), query, clubID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list expenses by range: %w", err)
	}
	defer rows.Close()

	var list []entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := scanExpense(rows, &e); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanExpense(rows pgx.Rows, e *entity.Expense) error {
	if err := rows.Scan(&e.ID, &e.ClubID, &e.Amount, &e.Category, &e.Date, &e.Description,
		&e.Supplier, &e.IsRecurring, &e.ReceiptURL, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return fmt.Errorf("scan expense: %w", err)
	}
	return nil
}
