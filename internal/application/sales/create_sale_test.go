package sales

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
}

func (f *memProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (f *memProductRepo) GetByClubAndSKU(clubID, sku string) (*entity.Product, error) {
	return nil, nil
}
func (f *memProductRepo) Update(p *entity.Product) error { return nil }
func (f *memProductRepo) UpdatePrices(id string, pp, sp *decimal.Decimal) error {
	return nil
}
func (f *memProductRepo) ListByClub(clubID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *memProductRepo) SearchByName(clubID, name string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *memProductRepo) Delete(id string) error { return nil }

type memClientRepo struct {
	clients map[string]*entity.Client
}

func (f *memClientRepo) Create(c *entity.Client) error { f.clients[c.ID] = c; return nil }
func (f *memClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (f *memClientRepo) Update(c *entity.Client) error { return nil }
func (f *memClientRepo) Delete(id string) error        { return nil }
func (f *memClientRepo) ListByClub(clubID string, limit, offset int) ([]*entity.Client, error) {
	return nil, nil
}
func (f *memClientRepo) SearchByName(clubID, name string, limit, offset int) ([]*entity.Client, error) {
	return nil, nil
}

type memStockRepo struct {
	stock map[string]int64
}

func (f *memStockRepo) Get(productID, clubID string) (*entity.Stock, error) {
	return &entity.Stock{ProductID: productID, ClubID: clubID, Quantity: f.stock[productID]}, nil
}
func (f *memStockRepo) GetForUpdate(productID, clubID string) (*entity.Stock, error) {
	return f.Get(productID, clubID)
}
func (f *memStockRepo) Upsert(s *entity.Stock) error {
	f.stock[s.ProductID] = s.Quantity
	return nil
}
func (f *memStockRepo) ListByClub(clubID string, limit, offset int) ([]*entity.Stock, error) {
	return nil, nil
}

type memMovementRepo struct {
	movements []*entity.InventoryMovement
}

func (f *memMovementRepo) Create(m *entity.InventoryMovement) error {
	f.movements = append(f.movements, m)
	return nil
}
func (f *memMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	return nil, nil
}
func (f *memMovementRepo) ListByClub(clubID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	return nil, nil
}

type memSaleRepo struct {
	sales map[string]*entity.Sale
}

func (f *memSaleRepo) Create(s *entity.Sale) error { f.sales[s.ID] = s; return nil }
func (f *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}
func (f *memSaleRepo) ListByClub(clubID string, from, to *time.Time, limit, offset int) ([]*entity.Sale, error) {
	return nil, nil
}

// memSaleTxRunner restaura stock, movimientos y ventas si fn falla, imitando
// el rollback de la transacción real.
type memSaleTxRunner struct {
	sales     *memSaleRepo
	movements *memMovementRepo
	stock     *memStockRepo
}

func (f *memSaleTxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	stockBackup := make(map[string]int64, len(f.stock.stock))
	for k, v := range f.stock.stock {
		stockBackup[k] = v
	}
	salesBackup := len(f.sales.sales)
	movementsBackup := len(f.movements.movements)

	if err := fn(f.sales, f.movements, f.stock); err != nil {
		f.stock.stock = stockBackup
		f.movements.movements = f.movements.movements[:movementsBackup]
		if len(f.sales.sales) != salesBackup {
			f.sales.sales = make(map[string]*entity.Sale)
		}
		return err
	}
	return nil
}

func newSaleFixture() (*CreateSaleUseCase, *memStockRepo, *memMovementRepo, *memSaleRepo) {
	products := &memProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", ClubID: "club1", SalePrice: decimal.NewFromInt(10)},
		"p2": {ID: "p2", ClubID: "club1", SalePrice: decimal.NewFromInt(4)},
	}}
	clients := &memClientRepo{clients: map[string]*entity.Client{
		"c1": {ID: "c1", ClubID: "club1", Name: "Ana"},
	}}
	stock := &memStockRepo{stock: map[string]int64{"p1": 10, "p2": 2}}
	movements := &memMovementRepo{}
	salesRepo := &memSaleRepo{sales: make(map[string]*entity.Sale)}
	runner := &memSaleTxRunner{sales: salesRepo, movements: movements, stock: stock}
	uc := NewCreateSaleUseCase(runner, products, clients, salesRepo, nil)
	return uc, stock, movements, salesRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Dos líneas del mismo producto se funden en una sola y el total lo calcula
// el servidor.
func TestCreateSale_MergeDeLineasDuplicadas(t *testing.T) {
	uc, stock, movements, _ := newSaleFixture()

	out, err := uc.Create(context.Background(), "club1", "user1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p1", Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Details, 1, "líneas duplicadas se funden")
	assert.Equal(t, int64(3), out.Details[0].Quantity)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(30)), "total = 30, got %s", out.Total)
	assert.Equal(t, int64(7), stock.stock["p1"], "el stock se descuenta")

	require.Len(t, movements.movements, 1)
	assert.Equal(t, entity.MovementTypeSale, movements.movements[0].Type)
	assert.Equal(t, int64(-3), movements.movements[0].Quantity, "movimiento de salida con signo")
	assert.Equal(t, out.ID, movements.movements[0].TransactionID, "movimiento ligado a la venta")
}

// Un precio manual por línea reemplaza el de catálogo.
func TestCreateSale_PrecioManual(t *testing.T) {
	uc, _, _, _ := newSaleFixture()

	custom := decimal.NewFromInt(8)
	out, err := uc.Create(context.Background(), "club1", "user1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 2, UnitPrice: &custom}},
	})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(16)))
}

// Un precio manual inválido rechaza la venta completa.
func TestCreateSale_PrecioManualInvalido(t *testing.T) {
	uc, _, _, _ := newSaleFixture()

	zero := decimal.Zero
	_, err := uc.Create(context.Background(), "club1", "user1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1, UnitPrice: &zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Stock insuficiente en la segunda línea revierte también la primera: no
// queda venta, ni movimientos, ni stock descontado.
func TestCreateSale_StockInsuficienteRevierteTodo(t *testing.T) {
	uc, stock, movements, salesRepo := newSaleFixture()

	_, err := uc.Create(context.Background(), "club1", "user1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 5}, // solo hay 2
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), stock.stock["p1"], "la primera línea también se revierte")
	assert.Equal(t, int64(2), stock.stock["p2"])
	assert.Empty(t, movements.movements)
	assert.Empty(t, salesRepo.sales)
}

// Cantidad no positiva en cualquier línea es error de entrada.
func TestCreateSale_CantidadInvalida(t *testing.T) {
	uc, _, _, _ := newSaleFixture()

	_, err := uc.Create(context.Background(), "club1", "user1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Venta sin líneas se rechaza.
func TestCreateSale_SinLineas(t *testing.T) {
	uc, _, _, _ := newSaleFixture()
	_, err := uc.Create(context.Background(), "club1", "user1", dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cliente de otro club (o inexistente) → ErrNotFound.
func TestCreateSale_ClienteAjeno(t *testing.T) {
	uc, _, _, _ := newSaleFixture()

	_, err := uc.Create(context.Background(), "club1", "user1", dto.CreateSaleRequest{
		ClientID: "desconocido",
		Items:    []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Venta válida con cliente registrado queda asociada a él.
func TestCreateSale_ConCliente(t *testing.T) {
	uc, _, _, _ := newSaleFixture()

	out, err := uc.Create(context.Background(), "club1", "user1", dto.CreateSaleRequest{
		ClientID: "c1",
		Items:    []dto.SaleItemRequest{{ProductID: "p2", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", out.ClientID)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(8)))
}
