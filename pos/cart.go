package pos

import (
	"go-restaurant-pos/models"

	"github.com/shopspring/decimal"
)

// CartEntry is one distinct menu item in the local cart. Quantity is always
// at least one; an entry set to zero is removed instead.
type CartEntry struct {
	MenuItemID string
	Name       string
	UnitPrice  decimal.Decimal
	Quantity   int
}

func (e CartEntry) Amount() decimal.Decimal {
	return e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// line converts the entry to an order line so the one validity predicate
// in models applies to carts and orders alike.
func (e CartEntry) line() models.OrderLine {
	return models.OrderLine{
		Menu_item_id:   e.MenuItemID,
		Menu_item_name: e.Name,
		Quantity:       e.Quantity,
		Price:          e.UnitPrice.InexactFloat64(),
	}
}

// projectOrder seeds a cart from an order, dropping malformed lines and
// merging repeated menu items.
func projectOrder(order models.Order) []CartEntry {
	var cart []CartEntry
	index := map[string]int{}
	for _, l := range order.Items {
		if !l.Valid() {
			continue
		}
		if i, ok := index[l.Menu_item_id]; ok {
			cart[i].Quantity += l.Quantity
			continue
		}
		index[l.Menu_item_id] = len(cart)
		cart = append(cart, CartEntry{
			MenuItemID: l.Menu_item_id,
			Name:       l.Menu_item_name,
			UnitPrice:  decimal.NewFromFloat(l.Price),
			Quantity:   l.Quantity,
		})
	}
	return cart
}

func subtotal(cart []CartEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range cart {
		sum = sum.Add(e.Amount())
	}
	return sum
}

// requestItems builds the submit payload. Prices are never sent.
func requestItems(cart []CartEntry) []models.OrderItemRequest {
	var items []models.OrderItemRequest
	for _, e := range cart {
		if !e.line().Valid() {
			continue
		}
		items = append(items, models.OrderItemRequest{Menu_item_id: e.MenuItemID, Quantity: e.Quantity})
	}
	return items
}
