package expenses

import (
	"sort"
	"time"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain/finance"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// SummaryUseCase genera el resumen de gastos por categoría y la serie mensual
// para el rango pedido. La agregación es en memoria (finance.SummarizeExpenses);
// el repositorio solo trae los gastos del rango.
type SummaryUseCase struct {
	repo repository.ExpenseRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(repo repository.ExpenseRepository) *SummaryUseCase {
	return &SummaryUseCase{repo: repo}
}

// Summarize trae los gastos del club en [from, to] y devuelve total, subtotal
// y porcentaje por categoría, categoría mayor, umbral de gasto alto y serie
// mensual. by_category se ordena por monto descendente para presentación.
func (uc *SummaryUseCase) Summarize(clubID string, from, to time.Time) (*dto.ExpenseSummaryResponse, error) {
	list, err := uc.repo.ListByClubAndRange(clubID, from, to)
	if err != nil {
		return nil, err
	}

	summary := finance.SummarizeExpenses(list)

	byCategory := make([]dto.CategoryTotalDTO, 0, len(summary.ByCategory))
	for cat, ct := range summary.ByCategory {
		byCategory = append(byCategory, dto.CategoryTotalDTO{
			Category:   cat,
			Amount:     ct.Amount,
			Percentage: ct.Percentage,
		})
	}
	sort.SliceStable(byCategory, func(i, j int) bool {
		if !byCategory[i].Amount.Equal(byCategory[j].Amount) {
			return byCategory[i].Amount.GreaterThan(byCategory[j].Amount)
		}
		return byCategory[i].Category < byCategory[j].Category
	})

	monthly := finance.GroupByMonth(list)
	monthlyDTO := make([]dto.MonthlyTotalDTO, 0, len(monthly))
	for _, m := range monthly {
		monthlyDTO = append(monthlyDTO, dto.MonthlyTotalDTO{
			Year:  m.Year,
			Month: int(m.Month),
			Total: m.Total,
		})
	}

	return &dto.ExpenseSummaryResponse{
		Total:                summary.Total,
		ByCategory:           byCategory,
		TopCategory:          summary.TopCategory,
		HighExpenseThreshold: summary.HighExpenseThreshold,
		HighExpenseIDs:       summary.HighExpenseIDs,
		Monthly:              monthlyDTO,
	}, nil
}
