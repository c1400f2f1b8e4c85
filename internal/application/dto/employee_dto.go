package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest body para POST /api/employees.
type CreateEmployeeRequest struct {
	Name     string          `json:"name"`
	Document string          `json:"document"`
	Position string          `json:"position,omitempty"`
	Salary   decimal.Decimal `json:"salary"`
	Phone    string          `json:"phone,omitempty"`
}

// UpdateEmployeeRequest body para PUT /api/employees/:id. Campos nil no cambian.
type UpdateEmployeeRequest struct {
	Name     *string          `json:"name,omitempty"`
	Position *string          `json:"position,omitempty"`
	Salary   *decimal.Decimal `json:"salary,omitempty"`
	Phone    *string          `json:"phone,omitempty"`
	Status   *string          `json:"status,omitempty"`
}

// EmployeeResponse representación de un empleado.
type EmployeeResponse struct {
	ID        string          `json:"id"`
	ClubID    string          `json:"club_id"`
	Name      string          `json:"name"`
	Document  string          `json:"document"`
	Position  string          `json:"position,omitempty"`
	Salary    decimal.Decimal `json:"salary"`
	Phone     string          `json:"phone,omitempty"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// EmployeeListResponse listado paginado de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
