package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de gasto.
const (
	ExpenseCategoryInventory = "inventory"
	ExpenseCategoryServices  = "services"
	ExpenseCategoryPayroll   = "payroll"
	ExpenseCategoryLogistics = "logistics"
	ExpenseCategoryOther     = "other"
)

// ValidExpenseCategory indica si la categoría es una de las aceptadas.
func ValidExpenseCategory(c string) bool {
	switch c {
	case ExpenseCategoryInventory, ExpenseCategoryServices, ExpenseCategoryPayroll,
		ExpenseCategoryLogistics, ExpenseCategoryOther:
		return true
	}
	return false
}

// Expense representa un gasto del club. Los totales por categoría y las
// marcas de "gasto alto" no se persisten: se calculan al consultar.
type Expense struct {
	ID          string
	ClubID      string
	Amount      decimal.Decimal // >= 0
	Category    string
	Date        time.Time
	Description string
	Supplier    string
	IsRecurring bool   // true si lo generó una plantilla recurrente
	ReceiptURL  string // comprobante subido, vacío si no hay
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
