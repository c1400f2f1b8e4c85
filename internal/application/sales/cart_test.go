package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

func product(id string, salePrice float64) *entity.Product {
	return &entity.Product{ID: id, SalePrice: decimal.NewFromFloat(salePrice)}
}

// Agregar dos veces el mismo producto no duplica la línea: incrementa la
// cantidad a 2.
func TestCart_AddItemDuplicadoIncrementaCantidad(t *testing.T) {
	cart := NewCart()
	p := product("p1", 10)

	cart.AddItem(p)
	cart.AddItem(p)

	require.Equal(t, 1, cart.Len(), "debe haber una sola línea")
	assert.Equal(t, int64(2), cart.QuantityOf("p1"))
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(20)), "total = 20, got %s", cart.Total())
}

// Con precio 10 y cantidad 2, agregar una unidad más deja cantidad 3 y
// total 30.
func TestCart_TotalSeRecalculaAlAgregar(t *testing.T) {
	cart := NewCart()
	p := product("p1", 10)

	cart.AddItem(p)
	require.NoError(t, cart.SetQuantity("p1", 2))
	cart.AddItem(p)

	assert.Equal(t, int64(3), cart.QuantityOf("p1"))
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(30)), "total = 30, got %s", cart.Total())
}

// Cantidad cero o negativa elimina la línea sin error.
func TestCart_SetQuantityCeroEliminaLinea(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("p1", 10))
	cart.AddItem(product("p2", 5))

	require.NoError(t, cart.SetQuantity("p1", 0))

	assert.Equal(t, 1, cart.Len())
	assert.Equal(t, int64(0), cart.QuantityOf("p1"))
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(5)))
}

// SetQuantity sobre un producto ausente devuelve ErrNotFound.
func TestCart_SetQuantityProductoAusente(t *testing.T) {
	cart := NewCart()
	assert.ErrorIs(t, cart.SetQuantity("nope", 3), domain.ErrNotFound)
}

// Un precio manual inválido devuelve ErrInvalidInput y deja la línea intacta.
func TestCart_SetUnitPriceInvalidoNoModifica(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("p1", 10))

	err := cart.SetUnitPrice("p1", decimal.NewFromInt(-5))
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(10)), "el precio no debe cambiar")
	assert.False(t, items[0].CustomPrice)
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(10)))
}

// Un precio manual válido reemplaza el de catálogo y marca la línea.
func TestCart_SetUnitPriceValido(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("p1", 10))
	require.NoError(t, cart.SetQuantity("p1", 2))

	require.NoError(t, cart.SetUnitPrice("p1", decimal.NewFromInt(8)))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].CustomPrice)
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(16)), "total = 16, got %s", cart.Total())
}

// Items devuelve una copia: mutarla no afecta al carrito.
func TestCart_ItemsEsCopia(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("p1", 10))

	items := cart.Items()
	items[0].Quantity = 99

	assert.Equal(t, int64(1), cart.QuantityOf("p1"))
}
