package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/finance"
)

func expense(id, category string, amount float64, date time.Time) entity.Expense {
	return entity.Expense{
		ID:       id,
		Category: category,
		Amount:   decimal.NewFromFloat(amount),
		Date:     date,
	}
}

// Lista vacía: total cero, sin categorías, sin umbral ni marcas.
func TestSummarizeExpenses_ListaVacia(t *testing.T) {
	s := finance.SummarizeExpenses(nil)

	assert.True(t, s.Total.IsZero(), "el total debe ser cero")
	assert.Empty(t, s.ByCategory)
	assert.Empty(t, s.TopCategory)
	assert.True(t, s.HighExpenseThreshold.IsZero())
	assert.Empty(t, s.HighExpenseIDs)
}

// Escenario de referencia: services=100, inventory=300 → 25% / 75% y
// top_category=inventory.
func TestSummarizeExpenses_PorcentajesYTopCategory(t *testing.T) {
	now := time.Now()
	s := finance.SummarizeExpenses([]entity.Expense{
		expense("e1", entity.ExpenseCategoryServices, 100, now),
		expense("e2", entity.ExpenseCategoryInventory, 300, now),
	})

	require.Len(t, s.ByCategory, 2)
	assert.True(t, s.Total.Equal(decimal.NewFromInt(400)), "total = 400, got %s", s.Total)

	services := s.ByCategory[entity.ExpenseCategoryServices]
	inventory := s.ByCategory[entity.ExpenseCategoryInventory]
	assert.True(t, services.Percentage.Equal(decimal.NewFromInt(25)), "services = 25%%, got %s", services.Percentage)
	assert.True(t, inventory.Percentage.Equal(decimal.NewFromInt(75)), "inventory = 75%%, got %s", inventory.Percentage)
	assert.Equal(t, entity.ExpenseCategoryInventory, s.TopCategory)
}

// La suma de subtotales por categoría siempre reconstruye el total, y los
// porcentajes suman 100 (con tolerancia de redondeo a 2 decimales).
func TestSummarizeExpenses_SumasConsistentes(t *testing.T) {
	now := time.Now()
	expenses := []entity.Expense{
		expense("e1", entity.ExpenseCategoryServices, 33.33, now),
		expense("e2", entity.ExpenseCategoryInventory, 66.67, now),
		expense("e3", entity.ExpenseCategoryPayroll, 120.5, now),
		expense("e4", entity.ExpenseCategoryServices, 9.99, now),
		expense("e5", entity.ExpenseCategoryLogistics, 75, now),
	}
	s := finance.SummarizeExpenses(expenses)

	sumAmounts := decimal.Zero
	sumPct := decimal.Zero
	for _, ct := range s.ByCategory {
		sumAmounts = sumAmounts.Add(ct.Amount)
		sumPct = sumPct.Add(ct.Percentage)
	}
	assert.True(t, sumAmounts.Equal(s.Total), "Σ subtotales = total")

	tolerance := decimal.NewFromFloat(0.05)
	diff := sumPct.Sub(decimal.NewFromInt(100)).Abs()
	assert.True(t, diff.LessThanOrEqual(tolerance), "Σ porcentajes ≈ 100, got %s", sumPct)
}

// El umbral de gasto alto es media * 1.2 y la comparación es estricta: un
// gasto exactamente en el umbral no se marca.
func TestSummarizeExpenses_UmbralEstricto(t *testing.T) {
	now := time.Now()
	// Media = 100, umbral = 120. e2 queda justo en el umbral.
	s := finance.SummarizeExpenses([]entity.Expense{
		expense("e1", entity.ExpenseCategoryServices, 80, now),
		expense("e2", entity.ExpenseCategoryServices, 120, now),
		expense("e3", entity.ExpenseCategoryInventory, 100, now),
	})

	assert.True(t, s.HighExpenseThreshold.Equal(decimal.NewFromInt(120)), "umbral = 120, got %s", s.HighExpenseThreshold)
	assert.Empty(t, s.HighExpenseIDs, "un gasto igual al umbral no se marca")
}

// Un gasto por encima del umbral sí se marca, en orden de entrada.
func TestSummarizeExpenses_MarcaGastosAltos(t *testing.T) {
	now := time.Now()
	// Media = 125, umbral = 150.
	s := finance.SummarizeExpenses([]entity.Expense{
		expense("e1", entity.ExpenseCategoryServices, 50, now),
		expense("e2", entity.ExpenseCategoryInventory, 200, now),
	})

	require.Len(t, s.HighExpenseIDs, 1)
	assert.Equal(t, "e2", s.HighExpenseIDs[0])
}

// Empate de subtotales: gana la categoría menor alfabéticamente, de forma
// determinista entre ejecuciones.
func TestSummarizeExpenses_DesempateAlfabetico(t *testing.T) {
	now := time.Now()
	for i := 0; i < 20; i++ {
		s := finance.SummarizeExpenses([]entity.Expense{
			expense("e1", entity.ExpenseCategoryServices, 100, now),
			expense("e2", entity.ExpenseCategoryInventory, 100, now),
		})
		assert.Equal(t, entity.ExpenseCategoryInventory, s.TopCategory, "inventory < services alfabéticamente")
	}
}

// GroupByMonth agrupa por mes calendario y devuelve orden cronológico aunque
// la entrada venga desordenada.
func TestGroupByMonth_OrdenCronologico(t *testing.T) {
	s := finance.GroupByMonth([]entity.Expense{
		expense("e1", entity.ExpenseCategoryServices, 10, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)),
		expense("e2", entity.ExpenseCategoryServices, 20, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)),
		expense("e3", entity.ExpenseCategoryServices, 30, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)),
		expense("e4", entity.ExpenseCategoryServices, 40, time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)),
	})

	require.Len(t, s, 3)
	assert.Equal(t, 2025, s[0].Year)
	assert.Equal(t, time.December, s[0].Month)
	assert.Equal(t, 2026, s[1].Year)
	assert.Equal(t, time.January, s[1].Month)
	assert.Equal(t, 2026, s[2].Year)
	assert.Equal(t, time.March, s[2].Month)
	assert.True(t, s[2].Total.Equal(decimal.NewFromInt(40)), "marzo suma 10+30")
}
