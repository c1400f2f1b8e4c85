package dto

import "time"

// CreateClubRequest body para POST /api/clubs.
type CreateClubRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// ClubResponse representación de un club (sede).
type ClubResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ClubListResponse listado paginado de clubes.
type ClubListResponse struct {
	Items []ClubResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
