// Package ports declara las interfaces que la capa de aplicación espera de la
// infraestructura (inversión de dependencias).
package ports

import "context"

// Nombres de eventos de dominio publicados tras cada mutación.
const (
	EventExpenseCreated     = "expense.created"
	EventMovementRegistered = "movement.registered"
	EventSaleCreated        = "sale.created"
)

// EventPublisher publica eventos de dominio hacia el broker. Las
// implementaciones no deben bloquear el caso de uso: un fallo de publicación
// se registra y se descarta, nunca revierte la mutación ya confirmada.
type EventPublisher interface {
	Publish(ctx context.Context, event string, payload any) error
}
