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

var _ repository.RecurringExpenseRepository = (*RecurringExpenseRepo)(nil)

// RecurringExpenseRepo implementación sobre PostgreSQL.
type RecurringExpenseRepo struct {
	q Querier
}

// NewRecurringExpenseRepository construye el adaptador.
func NewRecurringExpenseRepository(q Querier) *RecurringExpenseRepo {
	return &RecurringExpenseRepo{q: q}
}

const recurringColumns = `id, club_id, amount, category, description, supplier, day_of_month, active, last_run, created_by, created_at, updated_at`

// Create persiste una plantilla recurrente.
func (r *RecurringExpenseRepo) Create(t *entity.RecurringExpense) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `
		INSERT INTO recurring_expenses (id, club_id, amount, category, description, supplier, day_of_month, active, last_run, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.ClubID, t.Amount, t.Category, t.Description, t.Supplier,
		t.DayOfMonth, t.Active, t.LastRun, t.CreatedBy, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create recurring expense: %w", err)
	}
	return nil
}

// GetByID obtiene una plantilla por ID.
func (r *RecurringExpenseRepo) GetByID(id string) (*entity.RecurringExpense, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_expenses WHERE id = $1`
	var t entity.RecurringExpense
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ClubID, &t.Amount, &t.Category, &t.Description, &t.Supplier,
		&t.DayOfMonth, &t.Active, &t.LastRun, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recurring expense: %w", err)
	}
	return &t, nil
}

// Update actualiza una plantilla.
func (r *RecurringExpenseRepo) Update(t *entity.RecurringExpense) error {
	query := `
		UPDATE recurring_expenses
		SET amount = $2, category = $3, description = $4, supplier = $5,
		    day_of_month = $6, active = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		t.ID, t.Amount, t.Category, t.Description, t.Supplier, t.DayOfMonth, t.Active, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update recurring expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una plantilla.
func (r *RecurringExpenseRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM recurring_expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recurring expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByClub lista plantillas de un club.
func (r *RecurringExpenseRepo) ListByClub(clubID string, limit, offset int) ([]*entity.RecurringExpense, error) {
	query := `SELECT ` + recurringColumns + `
		FROM recurring_expenses
		WHERE club_id = $1
		ORDER BY day_of_month, description
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clubID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recurring expenses: %w", err)
	}
	defer rows.Close()
	return scanRecurring(rows)
}

// ListActive devuelve todas las plantillas activas de todos los clubes.
func (r *RecurringExpenseRepo) ListActive() ([]*entity.RecurringExpense, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_expenses WHERE active ORDER BY club_id, day_of_month`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list active recurring expenses: %w", err)
	}
	defer rows.Close()
	return scanRecurring(rows)
}

// MarkRun registra la última materialización de la plantilla.
func (r *RecurringExpenseRepo) MarkRun(id string, at time.Time) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE recurring_expenses SET last_run = $2, updated_at = now() WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("mark recurring expense run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanRecurring(rows pgx.Rows) ([]*entity.RecurringExpense, error) {
	var list []*entity.RecurringExpense
	for rows.Next() {
		var t entity.RecurringExpense
		if err := rows.Scan(&t.ID, &t.ClubID, &t.Amount, &t.Category, &t.Description, &t.Supplier,
			&t.DayOfMonth, &t.Active, &t.LastRun, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recurring expense: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
