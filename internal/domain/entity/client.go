package entity

import "time"

// Client representa un cliente del club.
type Client struct {
	ID        string
	ClubID    string
	Name      string
	Email     string
	Phone     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
