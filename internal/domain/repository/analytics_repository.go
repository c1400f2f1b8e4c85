package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult resultado crudo de la consulta de productos más vendidos.
type TopProductResult struct {
	ProductID    string
	SKU          string
	ProductName  string
	UnitsSold    int64
	GrossRevenue decimal.Decimal
	TotalCost    decimal.Decimal // qty * purchase_price de catálogo
}

// MonthlySalesResult total de ventas de un mes calendario.
type MonthlySalesResult struct {
	Year  int
	Month int
	Total decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetSalesMetrics devuelve ingresos brutos y costo estimado (COGS por
	// precio de compra de catálogo) de las ventas del club en el rango dado.
	// Usa COALESCE para devolver cero si no hay ventas en el período.
	GetSalesMetrics(ctx context.Context, clubID string, startDate, endDate time.Time) (revenue, cost decimal.Decimal, err error)

	// GetTopProducts devuelve los `limit` productos con mayor ingreso en el período.
	GetTopProducts(ctx context.Context, clubID string, startDate, endDate time.Time, limit int) ([]TopProductResult, error)

	// GetMonthlySales devuelve la serie de ventas por mes del rango, para gráficas.
	GetMonthlySales(ctx context.Context, clubID string, startDate, endDate time.Time) ([]MonthlySalesResult, error)
}
