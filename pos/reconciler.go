// Package pos keeps a terminal's editable cart in step with the table's
// order on the backend.
package pos

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go-restaurant-pos/client"
	"go-restaurant-pos/models"

	"github.com/shopspring/decimal"
)

type Mode int

const (
	// ModeCreate means the table has no unpaid order; submit creates one.
	ModeCreate Mode = iota
	// ModeEdit means the cart mirrors an unpaid order; submit replaces its items.
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

var (
	ErrEmptyCart      = errors.New("cart has no valid items")
	ErrSubmitInFlight = errors.New("an order submission is already in progress")
	ErrNotLoaded      = errors.New("no table loaded")
	ErrTableChanged   = errors.New("another table was loaded while submitting")
	// ErrReloadFailed wraps a reload error after the order itself was saved.
	ErrReloadFailed = errors.New("order saved but reload failed")
)

type NotFoundError struct {
	TableID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("table %s not found", e.TableID)
}

// Backend is the part of the REST API the reconciler needs.
type Backend interface {
	Table(ctx context.Context, tableID string) (models.Table, error)
	Orders(ctx context.Context) ([]models.Order, error)
	Menu(ctx context.Context) ([]models.MenuItem, error)
	CreateOrder(ctx context.Context, req models.OrderRequest) (models.OrderCreated, error)
	UpdateOrder(ctx context.Context, orderID string, req models.OrderRequest) error
}

// Reconciler owns one terminal's view of a table: the menu, the table's
// unpaid order if any, and the local cart being edited.
type Reconciler struct {
	backend Backend

	mu      sync.Mutex
	table   models.Table
	loaded  bool
	mode    Mode
	orderID string
	cart    []CartEntry
	menu    []models.MenuItem
	gen     uint64
	closed  bool

	submitting atomic.Bool
}

func NewReconciler(backend Backend) *Reconciler {
	return &Reconciler{backend: backend}
}

// LoadForTable fetches the table, the order list and the menu, and resets
// the cart from the table's unpaid order, or to empty when there is none.
func (r *Reconciler) LoadForTable(ctx context.Context, tableID string) error {
	unlock, err := lockTable(ctx, tableID)
	if err != nil {
		return err
	}
	defer unlock()
	return r.load(ctx, tableID)
}

func (r *Reconciler) load(ctx context.Context, tableID string) error {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	table, err := r.backend.Table(ctx, tableID)
	if err != nil {
		if client.IsNotFound(err) {
			return &NotFoundError{TableID: tableID}
		}
		return err
	}
	orders, err := r.backend.Orders(ctx)
	if err != nil {
		return err
	}
	menu, err := r.backend.Menu(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || gen != r.gen {
		return nil
	}
	r.table = table
	r.menu = menu
	r.loaded = true
	if order, ok := unpaidOrder(table, orders); ok {
		r.mode = ModeEdit
		r.orderID = order.Order_id
		r.cart = projectOrder(order)
	} else {
		r.mode = ModeCreate
		r.orderID = ""
		r.cart = nil
	}
	return nil
}

// unpaidOrder prefers the table's current order reference and falls back to
// scanning for an unpaid order on the table.
func unpaidOrder(table models.Table, orders []models.Order) (models.Order, bool) {
	if table.Current_order_id != nil {
		for _, o := range orders {
			if o.Order_id == *table.Current_order_id && !o.IsPaid() {
				return o, true
			}
		}
	}
	for _, o := range orders {
		if o.Table_id == table.Table_id && !o.IsPaid() {
			return o, true
		}
	}
	return models.Order{}, false
}

// AddItem adds one of item to the cart and reports whether it did. Items
// that Submit would drop (no id, no name, or a price that is not positive)
// are refused.
func (r *Reconciler) AddItem(item models.MenuItem) bool {
	entry := CartEntry{
		MenuItemID: item.Menu_item_id,
		Name:       item.Name,
		UnitPrice:  decimal.NewFromFloat(item.Price),
		Quantity:   1,
	}
	if !entry.line().Valid() {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.cart {
		if r.cart[i].MenuItemID == item.Menu_item_id {
			r.cart[i].Quantity++
			return true
		}
	}
	r.cart = append(r.cart, entry)
	return true
}

// SetQuantity sets an entry's quantity, removing it when quantity <= 0.
func (r *Reconciler) SetQuantity(menuItemID string, quantity int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.cart {
		if r.cart[i].MenuItemID != menuItemID {
			continue
		}
		if quantity <= 0 {
			r.cart = append(r.cart[:i], r.cart[i+1:]...)
		} else {
			r.cart[i].Quantity = quantity
		}
		return
	}
}

func (r *Reconciler) Subtotal() decimal.Decimal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return subtotal(r.cart)
}

// Submit sends the cart as a create or an item replacement, then reloads
// the table so the cart reflects what the backend accepted. On failure the
// cart is left as it was.
func (r *Reconciler) Submit(ctx context.Context) error {
	if !r.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer r.submitting.Store(false)

	r.mu.Lock()
	loaded, tableID, empty := r.loaded, r.table.Table_id, len(requestItems(r.cart)) == 0
	r.mu.Unlock()

	if !loaded {
		return ErrNotLoaded
	}
	if empty {
		return ErrEmptyCart
	}

	unlock, err := lockTable(ctx, tableID)
	if err != nil {
		return err
	}
	defer unlock()

	// A load for this table may have finished while we waited for the lock.
	r.mu.Lock()
	current, mode, orderID := r.table.Table_id, r.mode, r.orderID
	items := requestItems(r.cart)
	r.mu.Unlock()

	if current != tableID {
		return ErrTableChanged
	}
	if len(items) == 0 {
		return ErrEmptyCart
	}

	req := models.OrderRequest{Table_id: tableID, Items: items}
	if mode == ModeEdit {
		if err := r.backend.UpdateOrder(ctx, orderID, req); err != nil {
			return err
		}
	} else {
		created, err := r.backend.CreateOrder(ctx, req)
		if err != nil {
			return err
		}
		r.mu.Lock()
		if !r.closed && r.table.Table_id == tableID {
			r.mode = ModeEdit
			r.orderID = created.Order_id
		}
		r.mu.Unlock()
	}

	if err := r.load(ctx, tableID); err != nil {
		return fmt.Errorf("%w: %v", ErrReloadFailed, err)
	}
	return nil
}

// Close detaches the reconciler; responses arriving later are discarded.
func (r *Reconciler) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.gen++
}

func (r *Reconciler) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

func (r *Reconciler) OrderID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orderID
}

func (r *Reconciler) Table() models.Table {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.table
}

// Cart returns a copy of the cart entries in insertion order.
func (r *Reconciler) Cart() []CartEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]CartEntry(nil), r.cart...)
}

func (r *Reconciler) Menu() []models.MenuItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.MenuItem(nil), r.menu...)
}

// Categories lists the distinct categories of the loaded menu, sorted.
func (r *Reconciler) Categories() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return MenuCategories(r.menu)
}

// FilterMenu applies FilterMenu to the loaded menu.
func (r *Reconciler) FilterMenu(term, category string) []models.MenuItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return FilterMenu(r.menu, term, category)
}
