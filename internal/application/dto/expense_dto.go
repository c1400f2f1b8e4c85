package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest body para POST /api/expenses.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Supplier    string          `json:"supplier,omitempty"`
}

// UpdateExpenseRequest body para PUT /api/expenses/:id. Campos nil no cambian.
type UpdateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Description *string          `json:"description,omitempty"`
	Supplier    *string          `json:"supplier,omitempty"`
}

// ExpenseResponse representación de un gasto en respuestas.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	ClubID      string          `json:"club_id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Supplier    string          `json:"supplier,omitempty"`
	IsRecurring bool            `json:"is_recurring"`
	ReceiptURL  string          `json:"receipt_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ExpenseListResponse listado paginado de gastos.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CategoryTotalDTO subtotal de una categoría en el resumen de gastos.
type CategoryTotalDTO struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ExpenseSummaryResponse respuesta de GET /api/expenses/summary.
// by_category viene ordenado por monto descendente (solo presentación).
type ExpenseSummaryResponse struct {
	Total                decimal.Decimal    `json:"total"`
	ByCategory           []CategoryTotalDTO `json:"by_category"`
	TopCategory          string             `json:"top_category,omitempty"`
	HighExpenseThreshold decimal.Decimal    `json:"high_expense_threshold"`
	HighExpenseIDs       []string           `json:"high_expense_ids,omitempty"`
	Monthly              []MonthlyTotalDTO  `json:"monthly"`
}

// MonthlyTotalDTO total de un mes para la serie de gasto mensual.
type MonthlyTotalDTO struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// CreateRecurringExpenseRequest body para POST /api/expenses/recurring.
type CreateRecurringExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Supplier    string          `json:"supplier,omitempty"`
	DayOfMonth  int             `json:"day_of_month"`
}

// RecurringExpenseResponse representación de una plantilla recurrente.
type RecurringExpenseResponse struct {
	ID          string          `json:"id"`
	ClubID      string          `json:"club_id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Supplier    string          `json:"supplier,omitempty"`
	DayOfMonth  int             `json:"day_of_month"`
	Active      bool            `json:"active"`
	LastRun     *time.Time      `json:"last_run,omitempty"`
}
