package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// ClubUseCase casos de uso para clubes (sedes).
type ClubUseCase struct {
	repo repository.ClubRepository
}

// NewClubUseCase construye el caso de uso.
func NewClubUseCase(repo repository.ClubRepository) *ClubUseCase {
	return &ClubUseCase{repo: repo}
}

// Create crea un club.
func (uc *ClubUseCase) Create(in dto.CreateClubRequest) (*dto.ClubResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	club := &entity.Club{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(club); err != nil {
		return nil, err
	}
	return toClubResponse(club), nil
}

// GetByID obtiene un club.
func (uc *ClubUseCase) GetByID(id string) (*dto.ClubResponse, error) {
	club, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, domain.ErrNotFound
	}
	return toClubResponse(club), nil
}

// List lista clubes con paginación.
func (uc *ClubUseCase) List(limit, offset int) (*dto.ClubListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClubResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClubResponse(c))
	}
	return &dto.ClubListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toClubResponse(c *entity.Club) *dto.ClubResponse {
	return &dto.ClubResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}
