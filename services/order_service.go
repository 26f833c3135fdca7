package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"go-restaurant-pos/models"
	"go-restaurant-pos/notify"
	"go-restaurant-pos/repository"

	"github.com/shopspring/decimal"
)

type OrderService struct {
	orders OrderStore
	tables TableStore
	menu   MenuStore
	notify Notifier

	// mu serializes writes so the one-unpaid-order-per-table check and the
	// insert that follows it cannot interleave.
	mu sync.Mutex
}

func NewOrderService(orders OrderStore, tables TableStore, menu MenuStore, n Notifier) *OrderService {
	if n == nil {
		n = nopNotifier{}
	}
	return &OrderService{orders: orders, tables: tables, menu: menu, notify: n}
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) Get(ctx context.Context, orderID string) (models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	return order, notFound(err)
}

// Create opens a new order for a table that has no unpaid order.
func (s *OrderService) Create(ctx context.Context, req models.OrderRequest) (models.OrderCreated, error) {
	order, err := s.create(ctx, req)
	if err != nil {
		return models.OrderCreated{}, err
	}
	s.notify.Broadcast(notify.EventNewOrder, order)
	return models.OrderCreated{Order_id: order.Order_id, Total_amount: order.Total_amount}, nil
}

func (s *OrderService) create(ctx context.Context, req models.OrderRequest) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.tables.FindByID(ctx, req.Table_id)
	if err != nil {
		return models.Order{}, notFound(err)
	}
	if _, err := s.orders.FindUnpaidByTable(ctx, table.Table_id); err == nil {
		return models.Order{}, ErrTableBusy
	} else if !errors.Is(err, repository.ErrNotFound) {
		return models.Order{}, err
	}

	lines, total, err := s.priceLines(ctx, req.Items)
	if err != nil {
		return models.Order{}, err
	}
	order := models.Order{
		Table_id:       table.Table_id,
		Items:          lines,
		Total_amount:   total,
		Status:         models.OrderPending,
		Payment_method: models.PaymentCash,
	}
	if err := s.orders.Insert(ctx, &order); err != nil {
		return models.Order{}, err
	}

	orderID := order.Order_id
	if err := s.tables.SetOccupancy(ctx, table.Table_id, models.TableOccupied, &orderID); err != nil {
		log.Printf("order %s: table %s status update failed: %v", orderID, table.Table_id, err)
	}
	return order, nil
}

// Update replaces the items of an unpaid order wholesale.
func (s *OrderService) Update(ctx context.Context, orderID string, req models.OrderRequest) (models.Order, error) {
	order, err := s.update(ctx, orderID, req)
	if err != nil {
		return models.Order{}, err
	}
	s.notify.Broadcast(notify.EventOrderUpdated, order)
	return order, nil
}

func (s *OrderService) update(ctx context.Context, orderID string, req models.OrderRequest) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return models.Order{}, notFound(err)
	}
	if order.IsPaid() {
		return models.Order{}, ErrOrderPaid
	}
	if req.Table_id != "" && req.Table_id != order.Table_id {
		return models.Order{}, fmt.Errorf("%w: order %s belongs to another table", ErrInvalidInput, orderID)
	}

	lines, total, err := s.priceLines(ctx, req.Items)
	if err != nil {
		return models.Order{}, err
	}
	if err := s.orders.ReplaceItems(ctx, orderID, lines, total); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return models.Order{}, ErrOrderPaid
		}
		return models.Order{}, err
	}
	order.Items = lines
	order.Total_amount = total
	return order, nil
}

// UpdateStatus moves an order through its lifecycle. Paid is terminal and
// releases the table.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, update models.StatusUpdate) error {
	if !models.ValidOrderStatus(update.Status) {
		return ErrInvalidStatus
	}
	order, err := s.updateStatus(ctx, orderID, update)
	if err != nil {
		return err
	}
	s.notify.Broadcast(notify.EventPrepareStatus, order)
	return nil
}

func (s *OrderService) updateStatus(ctx context.Context, orderID string, update models.StatusUpdate) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return models.Order{}, notFound(err)
	}
	if order.IsPaid() {
		return models.Order{}, ErrOrderPaid
	}
	if err := s.orders.UpdateStatus(ctx, orderID, update); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return models.Order{}, ErrOrderPaid
		}
		return models.Order{}, err
	}

	if update.Status == models.OrderPaid {
		if err := s.tables.SetOccupancy(ctx, order.Table_id, models.TableAvailable, nil); err != nil {
			log.Printf("order %s paid but table %s was not released: %v", orderID, order.Table_id, err)
		}
	}
	order.Status = update.Status
	return order, nil
}

// priceLines resolves request items against the menu. Unknown items and
// non-positive quantities are skipped; repeated items are merged.
func (s *OrderService) priceLines(ctx context.Context, items []models.OrderItemRequest) ([]models.OrderLine, float64, error) {
	var ids []string
	qty := map[string]int{}
	for _, item := range items {
		if item.Menu_item_id == "" || item.Quantity <= 0 {
			continue
		}
		if _, seen := qty[item.Menu_item_id]; !seen {
			ids = append(ids, item.Menu_item_id)
		}
		qty[item.Menu_item_id] += item.Quantity
	}

	menu, err := s.menu.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	lines := []models.OrderLine{}
	total := decimal.Zero
	for _, id := range ids {
		menuItem, ok := menu[id]
		if !ok {
			continue
		}
		line := models.OrderLine{
			Menu_item_id:   id,
			Menu_item_name: menuItem.Name,
			Quantity:       qty[id],
			Price:          menuItem.Price,
		}
		lines = append(lines, line)
		total = total.Add(decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return lines, total.Round(2).InexactFloat64(), nil
}
