package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) GetByClubAndSKU(clubID, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ClubID == clubID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) UpdatePrices(productID string, purchasePrice, salePrice *decimal.Decimal) error {
	return nil
}
func (r *memProductRepo) ListByClub(clubID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) SearchByName(clubID, normalizedName string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type memStockRepo struct {
	stocks map[string]*entity.Stock // clave product_id|club_id
}

func stockKey(productID, clubID string) string { return productID + "|" + clubID }

func (r *memStockRepo) Get(productID, clubID string) (*entity.Stock, error) {
	if s, ok := r.stocks[stockKey(productID, clubID)]; ok {
		return s, nil
	}
	return &entity.Stock{ProductID: productID, ClubID: clubID, Quantity: 0}, nil
}
func (r *memStockRepo) GetForUpdate(productID, clubID string) (*entity.Stock, error) {
	return r.Get(productID, clubID)
}
func (r *memStockRepo) Upsert(s *entity.Stock) error {
	r.stocks[stockKey(s.ProductID, s.ClubID)] = s
	return nil
}
func (r *memStockRepo) ListByClub(clubID string, limit, offset int) ([]*entity.Stock, error) {
	return nil, nil
}

func newProductFixture() (*ProductUseCase, *memProductRepo, *memStockRepo) {
	products := &memProductRepo{products: map[string]*entity.Product{}}
	stocks := &memStockRepo{stocks: map[string]*entity.Stock{}}
	return NewProductUseCase(products, stocks), products, stocks
}

// Crear un producto siembra su fila de stock en cero: sin fila no habría
// nada que bloquear en el primer ajuste de inventario.
func TestProductCreate_SiembraStockEnCero(t *testing.T) {
	uc, _, stocks := newProductFixture()

	out, err := uc.Create("club1", dto.CreateProductRequest{
		SKU:           "CAF-001",
		Name:          "Café molido",
		PurchasePrice: decimal.NewFromInt(8),
		SalePrice:     decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	seeded, ok := stocks.stocks[stockKey(out.ID, "club1")]
	require.True(t, ok, "la fila de stock debe existir desde la creación")
	assert.Equal(t, int64(0), seeded.Quantity)
	assert.Equal(t, "club1", seeded.ClubID)

	stock, err := uc.GetStock("club1", out.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stock.Quantity)
}

// SKU repetido dentro del club se rechaza sin tocar el stock.
func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc, _, stocks := newProductFixture()

	in := dto.CreateProductRequest{
		SKU:           "CAF-001",
		Name:          "Café molido",
		PurchasePrice: decimal.NewFromInt(8),
		SalePrice:     decimal.NewFromInt(12),
	}
	_, err := uc.Create("club1", in)
	require.NoError(t, err)

	_, err = uc.Create("club1", in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, stocks.stocks, 1)
}

func TestProductCreate_EntradaInvalida(t *testing.T) {
	uc, _, _ := newProductFixture()

	_, err := uc.Create("club1", dto.CreateProductRequest{Name: "sin sku"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("club1", dto.CreateProductRequest{
		SKU:           "NEG-001",
		Name:          "precio negativo",
		PurchasePrice: decimal.NewFromInt(-1),
		SalePrice:     decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
