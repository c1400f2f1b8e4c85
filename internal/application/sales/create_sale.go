package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/ports"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// SaleTxRunner ejecuta el registro de una venta dentro de una transacción:
// la venta con sus líneas más el descuento de stock y sus movimientos.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// CreateSaleUseCase registra ventas. Construye las líneas con un Cart (merge
// de duplicados, precios de catálogo por defecto), recalcula el total en el
// servidor y descuenta stock por cada línea en la misma transacción.
type CreateSaleUseCase struct {
	txRunner    SaleTxRunner
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	saleRepo    repository.SaleRepository // lecturas fuera de tx
	publisher   ports.EventPublisher      // puede ser nil
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner SaleTxRunner,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	saleRepo repository.SaleRepository,
	publisher ports.EventPublisher,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		clientRepo:  clientRepo,
		saleRepo:    saleRepo,
		publisher:   publisher,
	}
}

// Create valida las líneas, arma el carrito y persiste la venta de forma
// transaccional. Stock insuficiente en cualquier línea revierte todo.
func (uc *CreateSaleUseCase) Create(ctx context.Context, clubID, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ClientID != "" {
		client, err := uc.clientRepo.GetByID(in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil || client.ClubID != clubID {
			return nil, domain.ErrNotFound
		}
	}

	// Armar el carrito: merge de duplicados y precios de catálogo por defecto
	cart := NewCart()
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if product.ClubID != clubID {
			return nil, domain.ErrForbidden
		}
		cart.AddItem(product)
		if item.Quantity > 1 {
			if err := cart.SetQuantity(product.ID, cart.QuantityOf(product.ID)+item.Quantity-1); err != nil {
				return nil, err
			}
		}
		if item.UnitPrice != nil {
			if err := cart.SetUnitPrice(product.ID, *item.UnitPrice); err != nil {
				return nil, err
			}
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		ClubID:    clubID,
		ClientID:  in.ClientID,
		Total:     cart.Total(),
		Date:      now,
		CreatedAt: now,
		CreatedBy: userID,
	}
	for _, it := range cart.Items() {
		sale.Details = append(sale.Details, entity.SaleDetail{
			ID:        uuid.New().String(),
			SaleID:    sale.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  decimal.NewFromInt(it.Quantity).Mul(it.UnitPrice),
		})
	}

	err := uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		for _, d := range sale.Details {
			stock, err := stockRepo.GetForUpdate(d.ProductID, clubID)
			if err != nil {
				return err
			}
			if stock.Quantity < d.Quantity {
				return domain.ErrInsufficientStock
			}
			stock.Quantity -= d.Quantity
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}
			price := d.UnitPrice
			mov := &entity.InventoryMovement{
				ID:            uuid.New().String(),
				TransactionID: sale.ID,
				ProductID:     d.ProductID,
				ClubID:        clubID,
				Type:          entity.MovementTypeSale,
				Quantity:      -d.Quantity,
				SalePrice:     &price,
				Date:          now,
				CreatedAt:     now,
				CreatedBy:     userID,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	resp := toSaleResponse(sale)
	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, ports.EventSaleCreated, resp); err != nil {
			log.Warn().Err(err).Str("sale_id", sale.ID).Msg("publicar evento de venta")
		}
	}
	return resp, nil
}

// GetByID obtiene una venta del club con sus líneas.
func (uc *CreateSaleUseCase) GetByID(clubID, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.ClubID != clubID {
		return nil, domain.ErrForbidden
	}
	return toSaleResponse(sale), nil
}

// List lista ventas del club en un rango opcional de fechas.
func (uc *CreateSaleUseCase) List(clubID string, from, to *time.Time, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.ListByClub(clubID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:        s.ID,
		ClubID:    s.ClubID,
		ClientID:  s.ClientID,
		Total:     s.Total,
		Date:      s.Date,
		CreatedBy: s.CreatedBy,
	}
	for _, d := range s.Details {
		resp.Details = append(resp.Details, dto.SaleDetailResponse{
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Subtotal:  d.Subtotal,
		})
	}
	return resp
}
