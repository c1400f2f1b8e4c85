package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de lectura para el dashboard. Siempre opera sobre
// el pool: son agregaciones read-only, nunca participan de una transacción.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesMetrics devuelve ingresos brutos y costo estimado de las ventas
// del club en el rango. El costo se estima con el precio de compra de
// catálogo vigente al momento de consultar.
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, clubID string, startDate, endDate time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(d.subtotal), 0) AS revenue,
		       COALESCE(SUM(d.quantity * p.purchase_price), 0) AS cost
		FROM sales s
		JOIN sale_details d ON d.sale_id = s.id
		JOIN products p ON p.id = d.product_id
		WHERE s.club_id = $1 AND s.date >= $2 AND s.date <= $3`
	var revenue, cost decimal.Decimal
	err := r.pool.QueryRow(ctx, query, clubID, startDate, endDate).Scan(&revenue, &cost)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("get sales metrics: %w", err)
	}
	return revenue, cost, nil
}

// GetTopProducts devuelve los productos con mayor ingreso en el período.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, clubID string, startDate, endDate time.Time, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT p.id, p.sku, p.name,
		       SUM(d.quantity) AS units_sold,
		       SUM(d.subtotal) AS gross_revenue,
		       SUM(d.quantity * p.purchase_price) AS total_cost
		FROM sales s
		JOIN sale_details d ON d.sale_id = s.id
		JOIN products p ON p.id = d.product_id
		WHERE s.club_id = $1 AND s.date >= $2 AND s.date <= $3
		GROUP BY p.id, p.sku, p.name
		ORDER BY gross_revenue DESC
		LIMIT $4`
	rows, err := r.pool.Query(ctx, query, clubID, startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("get top products: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var tp repository.TopProductResult
		if err := rows.Scan(&tp.ProductID, &tp.SKU, &tp.ProductName, &tp.UnitsSold,
			&tp.GrossRevenue, &tp.TotalCost); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		results = append(results, tp)
	}
	return results, rows.Err()
}

// GetMonthlySales devuelve la serie de ventas por mes calendario del rango.
// Solo devuelve meses con ventas; los huecos los rellena la capa de aplicación.
func (r *AnalyticsRepo) GetMonthlySales(ctx context.Context, clubID string, startDate, endDate time.Time) ([]repository.MonthlySalesResult, error) {
	query := `
		SELECT EXTRACT(YEAR FROM date)::int AS year,
		       EXTRACT(MONTH FROM date)::int AS month,
		       COALESCE(SUM(total), 0) AS total
		FROM sales
		WHERE club_id = $1 AND date >= $2 AND date <= $3
		GROUP BY 1, 2
		ORDER BY 1, 2`
	rows, err := r.pool.Query(ctx, query, clubID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("get monthly sales: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlySalesResult
	for rows.Next() {
		var m repository.MonthlySalesResult
		if err := rows.Scan(&m.Year, &m.Month, &m.Total); err != nil {
			return nil, fmt.Errorf("scan monthly sales: %w", err)
		}
		results = append(results, m)
	}
	return results, rows.Err()
}
