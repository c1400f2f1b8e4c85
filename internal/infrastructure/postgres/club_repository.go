package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.ClubRepository = (*ClubRepo)(nil)

// ClubRepo implementación sobre PostgreSQL.
type ClubRepo struct {
	q Querier
}

// NewClubRepository construye el adaptador.
func NewClubRepository(q Querier) *ClubRepo {
	return &ClubRepo{q: q}
}

const clubColumns = `id, name, address, phone, status, created_at, updated_at`

// Create persiste un club.
func (r *ClubRepo) Create(c *entity.Club) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `
		INSERT INTO clubs (id, name, address, phone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Address, c.Phone, c.Status, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create club: %w", err)
	}
	return nil
}

// GetByID obtiene un club por ID.
func (r *ClubRepo) GetByID(id string) (*entity.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE id = $1`
	var c entity.Club
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get club: %w", err)
	}
	return &c, nil
}

// Update actualiza un club.
func (r *ClubRepo) Update(c *entity.Club) error {
	query := `
		UPDATE clubs
		SET name = $2, address = $3, phone = $4, status = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Address, c.Phone, c.Status, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update club: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista los clubes con paginación.
func (r *ClubRepo) List(limit, offset int) ([]*entity.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	defer rows.Close()

	var list []*entity.Club
	for rows.Next() {
		var c entity.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan club: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
