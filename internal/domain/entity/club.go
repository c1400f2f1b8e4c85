package entity

import "time"

// Club representa una sede o sucursal del negocio. Ventas, inventario,
// gastos y empleados pertenecen siempre a un club.
type Club struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
