// Package analytics contiene los casos de uso de reportes de negocio y el
// dashboard financiero del club.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

const dashboardTopProducts = 5 // número de productos en el widget del dashboard

// DashboardUseCase genera el resumen financiero del día y del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). No accede
// directamente a las tablas de ventas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO para el club indicado.
//
// Cuatro llamadas en paralelo:
//  1. GetSalesMetrics(hoy)      → TodaySales + TodayMargin
//  2. GetSalesMetrics(mes)      → MonthlySales + MonthlyMargin
//  3. GetTopProducts(mes, top)  → TopProducts
//  4. GetMonthlySales(12 meses) → SalesByMonth
func (uc *DashboardUseCase) GetSummary(ctx context.Context, clubID string) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Hoy: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	// Serie mensual: últimos 12 meses
	seriesStart := monthStart.AddDate(0, -11, 0)

	type metricsResult struct {
		revenue decimal.Decimal
		cost    decimal.Decimal
		err     error
	}
	type topResult struct {
		products []repository.TopProductResult
		err      error
	}
	type seriesResult struct {
		months []repository.MonthlySalesResult
		err    error
	}

	todayCh := make(chan metricsResult, 1)
	monthCh := make(chan metricsResult, 1)
	topCh := make(chan topResult, 1)
	seriesCh := make(chan seriesResult, 1)

	go func() {
		rev, cost, err := uc.analyticsRepo.GetSalesMetrics(ctx, clubID, todayStart, todayEnd)
		todayCh <- metricsResult{rev, cost, err}
	}()
	go func() {
		rev, cost, err := uc.analyticsRepo.GetSalesMetrics(ctx, clubID, monthStart, monthEnd)
		monthCh <- metricsResult{rev, cost, err}
	}()
	go func() {
		products, err := uc.analyticsRepo.GetTopProducts(ctx, clubID, monthStart, monthEnd, dashboardTopProducts)
		topCh <- topResult{products, err}
	}()
	go func() {
		months, err := uc.analyticsRepo.GetMonthlySales(ctx, clubID, seriesStart, monthEnd)
		seriesCh <- seriesResult{months, err}
	}()

	today := <-todayCh
	month := <-monthCh
	top := <-topCh
	series := <-seriesCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: métricas del mes: %w", month.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}
	if series.err != nil {
		return nil, fmt.Errorf("dashboard: serie mensual: %w", series.err)
	}

	hundred := decimal.NewFromInt(100)
	topDTO := make([]dto.TopProductDTO, 0, len(top.products))
	for _, p := range top.products {
		var marginPct decimal.Decimal
		if p.GrossRevenue.GreaterThan(decimal.Zero) {
			marginPct = p.GrossRevenue.Sub(p.TotalCost).Div(p.GrossRevenue).Mul(hundred).Round(2)
		}
		topDTO = append(topDTO, dto.TopProductDTO{
			ProductID:      p.ProductID,
			SKU:            p.SKU,
			Name:           p.ProductName,
			UnitsSold:      p.UnitsSold,
			GrossRevenue:   p.GrossRevenue.Round(2),
			GrossMarginPct: marginPct,
		})
	}

	seriesDTO := make([]dto.MonthlySalesDTO, 0, len(series.months))
	for _, m := range series.months {
		seriesDTO = append(seriesDTO, dto.MonthlySalesDTO{Year: m.Year, Month: m.Month, Total: m.Total.Round(2)})
	}

	return &dto.DashboardSummaryDTO{
		TodaySales:    today.revenue.Round(2),
		TodayMargin:   today.revenue.Sub(today.cost).Round(2),
		MonthlySales:  month.revenue.Round(2),
		MonthlyMargin: month.revenue.Sub(month.cost).Round(2),
		TopProducts:   topDTO,
		SalesByMonth:  seriesDTO,
		DateLabel:     monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
