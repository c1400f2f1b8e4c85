package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleSeller  = "seller"
)

// User representa un usuario del sistema, asociado a un club.
type User struct {
	ID           string
	ClubID       string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | manager | seller
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
