package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (f *fakeProductRepo) GetByClubAndSKU(clubID, sku string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) UpdatePrices(productID string, purchasePrice, salePrice *decimal.Decimal) error {
	p, ok := f.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if purchasePrice != nil {
		p.PurchasePrice = *purchasePrice
	}
	if salePrice != nil {
		p.SalePrice = *salePrice
	}
	return nil
}
func (f *fakeProductRepo) ListByClub(clubID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) SearchByName(clubID, name string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Delete(id string) error { delete(f.products, id); return nil }

type fakeStockRepo struct {
	stock map[string]int64 // productID -> cantidad
}

func (f *fakeStockRepo) key(productID, clubID string) string { return productID + "/" + clubID }
func (f *fakeStockRepo) Get(productID, clubID string) (*entity.Stock, error) {
	return &entity.Stock{ProductID: productID, ClubID: clubID, Quantity: f.stock[f.key(productID, clubID)]}, nil
}
func (f *fakeStockRepo) GetForUpdate(productID, clubID string) (*entity.Stock, error) {
	return f.Get(productID, clubID)
}
func (f *fakeStockRepo) Upsert(s *entity.Stock) error {
	f.stock[f.key(s.ProductID, s.ClubID)] = s.Quantity
	return nil
}
func (f *fakeStockRepo) ListByClub(clubID string, limit, offset int) ([]*entity.Stock, error) {
	return nil, nil
}

type fakeMovementRepo struct {
	movements []*entity.InventoryMovement
}

func (f *fakeMovementRepo) Create(m *entity.InventoryMovement) error {
	f.movements = append(f.movements, m)
	return nil
}
func (f *fakeMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	return f.movements, nil
}
func (f *fakeMovementRepo) ListByClub(clubID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	return f.movements, nil
}

// fakeTxRunner imita la semántica transaccional: si fn falla, restaura el
// estado previo de stock, movimientos y productos.
type fakeTxRunner struct {
	products  *fakeProductRepo
	stock     *fakeStockRepo
	movements *fakeMovementRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
) error) error {
	stockBackup := make(map[string]int64, len(f.stock.stock))
	for k, v := range f.stock.stock {
		stockBackup[k] = v
	}
	productsBackup := make(map[string]*entity.Product, len(f.products.products))
	for k, v := range f.products.products {
		cp := *v
		productsBackup[k] = &cp
	}
	movementsBackup := len(f.movements.movements)

	if err := fn(f.movements, f.stock, f.products); err != nil {
		f.stock.stock = stockBackup
		f.products.products = productsBackup
		f.movements.movements = f.movements.movements[:movementsBackup]
		return err
	}
	return nil
}

func newFixture(initialStock int64) (*AdjustStockUseCase, *fakeProductRepo, *fakeStockRepo, *fakeMovementRepo) {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {
			ID:            "p1",
			ClubID:        "club1",
			SKU:           "SKU-1",
			Name:          "Cerveza artesanal",
			PurchasePrice: decimal.NewFromInt(3),
			SalePrice:     decimal.NewFromInt(5),
		},
	}}
	stock := &fakeStockRepo{stock: map[string]int64{"p1/club1": initialStock}}
	movements := &fakeMovementRepo{}
	runner := &fakeTxRunner{products: products, stock: stock, movements: movements}
	uc := NewAdjustStockUseCase(runner, products, movements, nil)
	return uc, products, stock, movements
}

func adjust(productID string, delta int64, reason string) AdjustInput {
	return AdjustInput{
		ClubID:        "club1",
		UserID:        "user1",
		ProductID:     productID,
		QuantityDelta: delta,
		ReasonType:    reason,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Delta cero no es un ajuste válido.
func TestAdjustStock_DeltaCero(t *testing.T) {
	uc, _, _, _ := newFixture(10)
	_, err := uc.AdjustStock(context.Background(), adjust("p1", 0, entity.MovementTypeRestock))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Razón desconocida se rechaza; "sale" tampoco se acepta desde la API.
func TestAdjustStock_RazonInvalida(t *testing.T) {
	uc, _, _, _ := newFixture(10)

	_, err := uc.AdjustStock(context.Background(), adjust("p1", 5, "regalo"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AdjustStock(context.Background(), adjust("p1", -1, entity.MovementTypeSale))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sale solo lo genera el registro de ventas")
}

// Un delta positivo suma al stock y deja registrado el movimiento.
func TestAdjustStock_EntradaActualizaStock(t *testing.T) {
	uc, _, stock, movements := newFixture(10)

	out, err := uc.AdjustStock(context.Background(), adjust("p1", 5, entity.MovementTypePurchase))
	require.NoError(t, err)

	assert.Equal(t, int64(15), stock.stock["p1/club1"])
	require.Len(t, movements.movements, 1)
	assert.Equal(t, int64(5), movements.movements[0].Quantity)
	assert.Equal(t, entity.MovementTypePurchase, out.Type)
	assert.NotEmpty(t, out.TransactionID)
}

// Un delta que dejaría el stock negativo se rechaza y no queda rastro: ni
// movimiento ni cambio de existencias.
func TestAdjustStock_StockInsuficienteRevierteTodo(t *testing.T) {
	uc, _, stock, movements := newFixture(3)

	_, err := uc.AdjustStock(context.Background(), adjust("p1", -5, entity.MovementTypeDamaged))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(3), stock.stock["p1/club1"], "el stock no debe cambiar")
	assert.Empty(t, movements.movements, "no debe quedar movimiento registrado")
}

// Llegar exactamente a cero sí es válido.
func TestAdjustStock_SalidaHastaCero(t *testing.T) {
	uc, _, stock, _ := newFixture(5)

	_, err := uc.AdjustStock(context.Background(), adjust("p1", -5, entity.MovementTypeUseInPrepared))
	require.NoError(t, err)
	assert.Equal(t, int64(0), stock.stock["p1/club1"])
}

// Con update_catalog_price los precios declarados se propagan al producto en
// la misma operación.
func TestAdjustStock_PropagaPreciosAlCatalogo(t *testing.T) {
	uc, products, _, _ := newFixture(10)

	purchase := decimal.NewFromFloat(3.5)
	sale := decimal.NewFromInt(6)
	in := adjust("p1", 20, entity.MovementTypePurchase)
	in.PurchasePrice = &purchase
	in.SalePrice = &sale
	in.UpdateCatalogPrice = true

	_, err := uc.AdjustStock(context.Background(), in)
	require.NoError(t, err)

	p := products.products["p1"]
	assert.True(t, p.PurchasePrice.Equal(purchase), "purchase_price propagado")
	assert.True(t, p.SalePrice.Equal(sale), "sale_price propagado")
}

// Sin update_catalog_price los precios del movimiento no tocan el catálogo.
func TestAdjustStock_SinPropagacionNoTocaCatalogo(t *testing.T) {
	uc, products, _, _ := newFixture(10)

	purchase := decimal.NewFromInt(99)
	in := adjust("p1", 20, entity.MovementTypePurchase)
	in.PurchasePrice = &purchase

	_, err := uc.AdjustStock(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, products.products["p1"].PurchasePrice.Equal(decimal.NewFromInt(3)))
}

// Pedir propagación sin declarar ningún precio es un error de entrada.
func TestAdjustStock_PropagacionSinPrecios(t *testing.T) {
	uc, _, _, _ := newFixture(10)

	in := adjust("p1", 5, entity.MovementTypeRestock)
	in.UpdateCatalogPrice = true

	_, err := uc.AdjustStock(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un producto de otro club no se puede ajustar.
func TestAdjustStock_ProductoDeOtroClub(t *testing.T) {
	uc, _, _, _ := newFixture(10)

	in := adjust("p1", 5, entity.MovementTypeRestock)
	in.ClubID = "club2"

	_, err := uc.AdjustStock(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// El historial del club devuelve todos los movimientos registrados.
func TestListByClub_HistorialCompleto(t *testing.T) {
	uc, _, _, _ := newFixture(10)

	_, err := uc.AdjustStock(context.Background(), adjust("p1", 5, entity.MovementTypePurchase))
	require.NoError(t, err)
	_, err = uc.AdjustStock(context.Background(), adjust("p1", -2, entity.MovementTypeDamaged))
	require.NoError(t, err)

	out, err := uc.ListByClub("club1", nil, nil, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, entity.MovementTypePurchase, out.Items[0].Type)
	assert.Equal(t, entity.MovementTypeDamaged, out.Items[1].Type)
	assert.Equal(t, 20, out.Page.Limit)
}

// Precios negativos en el movimiento se rechazan.
func TestAdjustStock_PrecioNegativo(t *testing.T) {
	uc, _, _, _ := newFixture(10)

	negative := decimal.NewFromInt(-1)
	in := adjust("p1", 5, entity.MovementTypePurchase)
	in.PurchasePrice = &negative

	_, err := uc.AdjustStock(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
