package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
	"github.com/tu-usuario/gestion-pro/pkg/search"
)

// ProductUseCase casos de uso CRUD para productos. El stock se maneja vía
// movimientos; los precios de catálogo por edición o propagación de un ajuste.
type ProductUseCase struct {
	repo      repository.ProductRepository
	stockRepo repository.StockRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, stockRepo repository.StockRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, stockRepo: stockRepo}
}

// Create crea un producto con sus precios de catálogo.
func (uc *ProductUseCase) Create(clubID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.LessThan(decimal.Zero) || in.SalePrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByClubAndSKU(clubID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		ClubID:        clubID,
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		UnitMeasure:   in.UnitMeasure,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	// La fila de stock nace en cero junto con el producto: los ajustes
	// bloquean con SELECT FOR UPDATE y sin fila no hay nada que bloquear.
	if err := uc.stockRepo.Upsert(&entity.Stock{ProductID: product.ID, ClubID: clubID, UpdatedAt: now}); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del club.
func (uc *ProductUseCase) GetByID(clubID, id string) (*dto.ProductResponse, error) {
	product, err := uc.getOwned(clubID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetStock devuelve la existencia actual del producto en el club.
func (uc *ProductUseCase) GetStock(clubID, id string) (*dto.StockResponse, error) {
	if _, err := uc.getOwned(clubID, id); err != nil {
		return nil, err
	}
	stock, err := uc.stockRepo.Get(id, clubID)
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{
		ProductID: stock.ProductID,
		ClubID:    stock.ClubID,
		Quantity:  stock.Quantity,
		UpdatedAt: stock.UpdatedAt,
	}, nil
}

// Update actualiza un producto. No modifica stock (se maneja vía movimientos).
func (uc *ProductUseCase) Update(clubID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.getOwned(clubID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		if in.SalePrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	if in.UnitMeasure != nil {
		product.UnitMeasure = *in.UnitMeasure
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos del club. Con name no vacío busca por nombre
// normalizado (sin tildes, case-insensitive).
func (uc *ProductUseCase) List(clubID, name string, limit, offset int) (*dto.ProductListResponse, error) {
	var list []*entity.Product
	var err error
	if name != "" {
		list, err = uc.repo.SearchByName(clubID, search.Normalize(name), limit, offset)
	} else {
		list, err = uc.repo.ListByClub(clubID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto del club.
func (uc *ProductUseCase) Delete(clubID, id string) error {
	if _, err := uc.getOwned(clubID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) getOwned(clubID, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.ClubID != clubID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		ClubID:        p.ClubID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		UnitMeasure:   p.UnitMeasure,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
