package sales

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// CartItem línea en construcción de una venta.
type CartItem struct {
	ProductID   string
	Quantity    int64
	UnitPrice   decimal.Decimal
	CustomPrice bool // true si el precio fue editado manualmente
}

// Cart mantiene las líneas de una venta mientras se edita. El total se
// recalcula en cada lectura; la lista es pequeña y la mutación síncrona.
type Cart struct {
	items []CartItem
}

// NewCart construye un carrito vacío.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem agrega el producto al carrito. Si ya está presente incrementa su
// cantidad en 1; si no, lo agrega con cantidad 1 al precio de catálogo.
func (c *Cart) AddItem(product *entity.Product) {
	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{
		ProductID: product.ID,
		Quantity:  1,
		UnitPrice: product.SalePrice,
	})
}

// SetQuantity fija la cantidad de una línea. Cantidad <= 0 elimina la línea
// (se trata como borrado, no como error). Devuelve ErrNotFound si el producto
// no está en el carrito.
func (c *Cart) SetQuantity(productID string, quantity int64) error {
	for i := range c.items {
		if c.items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
		c.items[i].Quantity = quantity
		return nil
	}
	return domain.ErrNotFound
}

// SetUnitPrice fija un precio manual para una línea. Un precio <= 0 devuelve
// ErrInvalidInput y deja la línea intacta: el error se propaga al usuario en
// lugar de ignorarse en silencio.
func (c *Cart) SetUnitPrice(productID string, price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].UnitPrice = price
			c.items[i].CustomPrice = true
			return nil
		}
	}
	return domain.ErrNotFound
}

// Items devuelve una copia de las líneas actuales.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len devuelve el número de líneas.
func (c *Cart) Len() int { return len(c.items) }

// QuantityOf devuelve la cantidad actual de un producto; 0 si no está.
func (c *Cart) QuantityOf(productID string) int64 {
	for _, it := range c.items {
		if it.ProductID == productID {
			return it.Quantity
		}
	}
	return 0
}

// Total recalcula Σ cantidad × precio unitario sobre las líneas actuales.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(decimal.NewFromInt(it.Quantity).Mul(it.UnitPrice))
	}
	return total
}
