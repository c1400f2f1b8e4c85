package inventory

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

// AdjustStockUseCase registra un ajuste de inventario: el delta con su razón,
// la mutación del stock y — si se pide — la propagación de precios al catálogo,
// todo dentro de una sola transacción con bloqueo de fila (SELECT FOR UPDATE).
type AdjustStockUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.InventoryMovementRepository // lecturas fuera de tx
	publisher    ports.EventPublisher                   // puede ser nil si no hay broker configurado
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.InventoryMovementRepository,
	publisher ports.EventPublisher,
) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, productRepo: productRepo, movementRepo: movementRepo, publisher: publisher}
}

// AdjustInput entrada para registrar un ajuste de inventario.
type AdjustInput struct {
	ClubID             string
	UserID             string
	ProductID          string
	QuantityDelta      int64 // con signo, distinto de cero
	ReasonType         string
	Notes              string
	PurchasePrice      *decimal.Decimal
	SalePrice          *decimal.Decimal
	UpdateCatalogPrice bool
}

// AdjustFromRequest adapta el request HTTP a AdjustStock(ctx, AdjustInput).
func (uc *AdjustStockUseCase) AdjustFromRequest(ctx context.Context, clubID, userID string, in dto.AdjustStockRequest) (*dto.MovementResponse, error) {
	return uc.AdjustStock(ctx, AdjustInput{
		ClubID:             clubID,
		UserID:             userID,
		ProductID:          in.ProductID,
		QuantityDelta:      in.QuantityDelta,
		ReasonType:         in.ReasonType,
		Notes:              in.Notes,
		PurchasePrice:      in.PurchasePrice,
		SalePrice:          in.SalePrice,
		UpdateCatalogPrice: in.UpdateCatalogPrice,
	})
}

// AdjustStock valida la entrada, inicia la transacción, bloquea la fila de
// stock, aplica el delta (rechazando existencias negativas), guarda el
// movimiento y propaga precios al catálogo si corresponde. Commit o Rollback
// los hace TxRunner.Run.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, input AdjustInput) (*dto.MovementResponse, error) {
	if input.ProductID == "" || input.QuantityDelta == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidMovementType(input.ReasonType) {
		return nil, domain.ErrInvalidInput
	}
	if input.PurchasePrice != nil && input.PurchasePrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if input.SalePrice != nil && input.SalePrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if input.UpdateCatalogPrice && input.PurchasePrice == nil && input.SalePrice == nil {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.ClubID != input.ClubID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	mov := &entity.InventoryMovement{
		ID:            uuid.New().String(),
		TransactionID: uuid.New().String(),
		ProductID:     input.ProductID,
		ClubID:        input.ClubID,
		Type:          input.ReasonType,
		Quantity:      input.QuantityDelta,
		PurchasePrice: input.PurchasePrice,
		SalePrice:     input.SalePrice,
		Notes:         input.Notes,
		Date:          now,
		CreatedAt:     now,
		CreatedBy:     input.UserID,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila de stock del producto en el club
		stock, err := stockRepo.GetForUpdate(input.ProductID, input.ClubID)
		if err != nil {
			return err
		}
		newQty := stock.Quantity + input.QuantityDelta
		if newQty < 0 {
			return domain.ErrInsufficientStock
		}
		stock.Quantity = newQty
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		// Propagación de precio al catálogo: misma transacción que el movimiento
		if input.UpdateCatalogPrice {
			if err := productRepo.UpdatePrices(input.ProductID, input.PurchasePrice, input.SalePrice); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, ports.EventMovementRegistered, toMovementResponse(mov)); err != nil {
			log.Warn().Err(err).Str("movement_id", mov.ID).Msg("publicar evento de movimiento")
		}
	}
	return toMovementResponse(mov), nil
}

// ListByProduct devuelve el historial de movimientos de un producto.
func (uc *AdjustStockUseCase) ListByProduct(clubID, productID string, from, to *time.Time, limit, offset int) (*dto.MovementListResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.ClubID != clubID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.movementRepo.ListByProduct(productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByClub devuelve el historial de movimientos de todo el club,
// más recientes primero.
func (uc *AdjustStockUseCase) ListByClub(clubID string, from, to *time.Time, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.ListByClub(clubID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		ProductID:     m.ProductID,
		ClubID:        m.ClubID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		PurchasePrice: m.PurchasePrice,
		SalePrice:     m.SalePrice,
		Notes:         m.Notes,
		Date:          m.Date,
		CreatedBy:     m.CreatedBy,
	}
}
