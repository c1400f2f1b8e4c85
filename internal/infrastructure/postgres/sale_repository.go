package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta y sus líneas. Se invoca dentro de la transacción
// que descuenta el stock, así venta y existencias quedan consistentes.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales (id, club_id, client_id, total, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ClubID, nullable(sale.ClientID), sale.Total, sale.Date, sale.CreatedAt, sale.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}

	detailQuery := `
		INSERT INTO sale_details (id, sale_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i := range sale.Details {
		d := &sale.Details[i]
		if d.ID == "" {
			d.ID = uuid.New().String()
		}
		d.SaleID = sale.ID
		_, err := r.q.Exec(context.Background(), detailQuery,
			d.ID, d.SaleID, d.ProductID, d.Quantity, d.UnitPrice, d.Subtotal)
		if err != nil {
			return fmt.Errorf("create sale detail: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT id, club_id, client_id, total, date, created_at, created_by FROM sales WHERE id = $1`
	var s entity.Sale
	var clientID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ClubID, &clientID, &s.Total, &s.Date, &s.CreatedAt, &s.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	s.ClientID = fromNullable(clientID)

	details, err := r.loadDetails([]string{s.ID})
	if err != nil {
		return nil, err
	}
	s.Details = details[s.ID]
	return &s, nil
}

// ListByClub lista ventas de un club con sus líneas, más recientes primero.
func (r *SaleRepo) ListByClub(clubID string, from, to *time.Time, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, club_id, client_id, total, date, created_at, created_by
		FROM sales
		WHERE club_id = $1
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date <= $3)
		ORDER BY date DESC, created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, clubID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	var ids []string
	for rows.Next() {
		var s entity.Sale
		var clientID *string
		if err := rows.Scan(&s.ID, &s.ClubID, &clientID, &s.Total, &s.Date, &s.CreatedAt, &s.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		s.ClientID = fromNullable(clientID)
		list = append(list, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	details, err := r.loadDetails(ids)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		s.Details = details[s.ID]
	}
	return list, nil
}

// loadDetails carga las líneas de un conjunto de ventas en una sola consulta.
func (r *SaleRepo) loadDetails(saleIDs []string) (map[string][]entity.SaleDetail, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price, subtotal
		FROM sale_details
		WHERE sale_id = ANY($1)
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("load sale details: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.SaleDetail, len(saleIDs))
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(&d.ID, &d.SaleID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		out[d.SaleID] = append(out[d.SaleID], d)
	}
	return out, rows.Err()
}
