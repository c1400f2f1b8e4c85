package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock de un producto en un club. Si no hay fila devuelve
// un stock en cero, no un error: ausencia de fila significa cero existencias.
func (r *StockRepo) Get(productID, clubID string) (*entity.Stock, error) {
	s, err := r.get(productID, clubID, false)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return &entity.Stock{ProductID: productID, ClubID: clubID, Quantity: 0}, nil
	}
	return s, nil
}

// GetForUpdate obtiene el stock bloqueando la fila con SELECT FOR UPDATE.
// Si la fila aún no existe la inserta en cero y la bloquea: FOR UPDATE
// sobre cero filas no bloquea nada, y dos primeros ajustes concurrentes
// del mismo producto se pisarían la cantidad. Solo tiene sentido dentro
// de una transacción.
func (r *StockRepo) GetForUpdate(productID, clubID string) (*entity.Stock, error) {
	s, err := r.get(productID, clubID, true)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}
	seed := `
		INSERT INTO stock (product_id, club_id, quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (product_id, club_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), seed, productID, clubID); err != nil {
		return nil, fmt.Errorf("seed stock: %w", err)
	}
	s, err = r.get(productID, clubID, true)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("lock stock: fila ausente tras insertarla")
	}
	return s, nil
}

func (r *StockRepo) get(productID, clubID string, forUpdate bool) (*entity.Stock, error) {
	query := `SELECT product_id, club_id, quantity, updated_at FROM stock WHERE product_id = $1 AND club_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, clubID).
		Scan(&s.ProductID, &s.ClubID, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert escribe la cantidad actual del producto en el club.
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, club_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, club_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductID, stock.ClubID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByClub lista las existencias de un club con paginación.
func (r *StockRepo) ListByClub(clubID string, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT s.product_id, s.club_id, s.quantity, s.updated_at
		FROM stock s
		JOIN products p ON p.id = s.product_id
		WHERE s.club_id = $1
		ORDER BY p.name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clubID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductID, &s.ClubID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
