package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringExpense es una plantilla de gasto mensual (arriendo, servicios,
// nómina fija). El procesador de recurrentes la materializa en un Expense
// cuando llega su día del mes.
type RecurringExpense struct {
	ID          string
	ClubID      string
	Amount      decimal.Decimal
	Category    string
	Description string
	Supplier    string
	DayOfMonth  int // 1-28 para evitar meses cortos
	Active      bool
	LastRun     *time.Time // última materialización, nil si nunca
	CreatedBy   string     // usuario que registró la plantilla; se hereda en cada gasto materializado
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
