package entity

import "time"

// Stock representa la existencia actual de un producto en un club.
// La cantidad se mantiene consistente con los movimientos dentro de la misma
// transacción que los registra.
type Stock struct {
	ProductID string
	ClubID    string
	Quantity  int64
	UpdatedAt time.Time
}
