package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa un empleado del club. El salario alimenta los gastos
// de nómina pero no genera asientos automáticos.
type Employee struct {
	ID        string
	ClubID    string
	Name      string
	Document  string // documento de identidad, único por club
	Position  string
	Salary    decimal.Decimal
	Phone     string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
