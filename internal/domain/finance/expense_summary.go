// Package finance contiene los servicios de dominio de agregación financiera:
// resumen de gastos por categoría y agrupación mensual para los reportes.
package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// highExpenseFactor multiplica la media de los montos para obtener el umbral
// de "gasto inusualmente alto". Se marca con desigualdad estricta.
var highExpenseFactor = decimal.NewFromFloat(1.2)

// CategoryTotal subtotal y porcentaje de una categoría dentro del resumen.
type CategoryTotal struct {
	Amount     decimal.Decimal
	Percentage decimal.Decimal // Amount / Total * 100; 0 si Total es 0
}

// ExpenseSummary resultado de agregar una lista de gastos ya filtrada por el
// caller (rango de fechas, club).
type ExpenseSummary struct {
	Total                decimal.Decimal
	ByCategory           map[string]CategoryTotal
	TopCategory          string // categoría con mayor subtotal; vacía si no hay gastos
	HighExpenseThreshold decimal.Decimal
	HighExpenseIDs       []string // gastos con Amount > umbral, en orden de entrada
}

// SummarizeExpenses agrega la lista en una sola pasada por categoría más una
// pasada para las marcas de gasto alto. Con lista vacía devuelve total cero,
// sin categorías y sin marcas; nunca divide por cero.
func SummarizeExpenses(expenses []entity.Expense) ExpenseSummary {
	summary := ExpenseSummary{
		Total:      decimal.Zero,
		ByCategory: make(map[string]CategoryTotal, 5),
	}
	if len(expenses) == 0 {
		return summary
	}

	for _, e := range expenses {
		ct := summary.ByCategory[e.Category]
		ct.Amount = ct.Amount.Add(e.Amount)
		summary.ByCategory[e.Category] = ct
		summary.Total = summary.Total.Add(e.Amount)
	}

	hundred := decimal.NewFromInt(100)
	topAmount := decimal.Zero
	for cat, ct := range summary.ByCategory {
		if summary.Total.GreaterThan(decimal.Zero) {
			ct.Percentage = ct.Amount.Div(summary.Total).Mul(hundred).Round(2)
			summary.ByCategory[cat] = ct
		}
		// Desempate estable: con montos iguales gana la categoría menor alfabéticamente
		if ct.Amount.GreaterThan(topAmount) ||
			(ct.Amount.Equal(topAmount) && (summary.TopCategory == "" || cat < summary.TopCategory)) {
			topAmount = ct.Amount
			summary.TopCategory = cat
		}
	}

	mean := summary.Total.Div(decimal.NewFromInt(int64(len(expenses))))
	summary.HighExpenseThreshold = mean.Mul(highExpenseFactor)
	for _, e := range expenses {
		if e.Amount.GreaterThan(summary.HighExpenseThreshold) {
			summary.HighExpenseIDs = append(summary.HighExpenseIDs, e.ID)
		}
	}
	return summary
}

// MonthlyTotal total de gastos de un mes calendario.
type MonthlyTotal struct {
	Year  int
	Month time.Month
	Total decimal.Decimal
}

// GroupByMonth agrupa los montos por mes calendario (año+mes de la fecha del
// gasto) y devuelve los meses en orden cronológico ascendente.
func GroupByMonth(expenses []entity.Expense) []MonthlyTotal {
	type key struct {
		year  int
		month time.Month
	}
	totals := make(map[key]decimal.Decimal)
	for _, e := range expenses {
		k := key{e.Date.Year(), e.Date.Month()}
		totals[k] = totals[k].Add(e.Amount)
	}

	out := make([]MonthlyTotal, 0, len(totals))
	for k, t := range totals {
		out = append(out, MonthlyTotal{Year: k.year, Month: k.month, Total: t})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}
