package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go-restaurant-pos/models"
	"go-restaurant-pos/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeMenu struct {
	items []models.MenuItem
}

func (f *fakeMenu) ListAvailable(ctx context.Context) ([]models.MenuItem, error) {
	var out []models.MenuItem
	for _, item := range f.items {
		if item.Available {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeMenu) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, item := range f.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeMenu) FindByIDs(ctx context.Context, ids []string) (map[string]models.MenuItem, error) {
	out := map[string]models.MenuItem{}
	for _, id := range ids {
		for _, item := range f.items {
			if item.Menu_item_id == id {
				out[id] = item
			}
		}
	}
	return out, nil
}

func (f *fakeMenu) Insert(ctx context.Context, item *models.MenuItem) error {
	item.ID = primitive.NewObjectID()
	item.Menu_item_id = item.ID.Hex()
	f.items = append(f.items, *item)
	return nil
}

type fakeTables struct {
	mu     sync.Mutex
	tables map[string]models.Table
}

func newFakeTables(tables ...models.Table) *fakeTables {
	f := &fakeTables{tables: map[string]models.Table{}}
	for _, t := range tables {
		f.tables[t.Table_id] = t
	}
	return f
}

func (f *fakeTables) List(ctx context.Context) ([]models.Table, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Table
	for _, t := range f.tables {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (f *fakeTables) FindByID(ctx context.Context, tableID string) (models.Table, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tables[tableID]
	if !ok {
		return models.Table{}, repository.ErrNotFound
	}
	return t, nil
}

func (f *fakeTables) Insert(ctx context.Context, table *models.Table) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tables {
		if t.Number == table.Number {
			return repository.ErrDuplicate
		}
	}
	table.ID = primitive.NewObjectID()
	table.Table_id = table.ID.Hex()
	f.tables[table.Table_id] = *table
	return nil
}

func (f *fakeTables) SetOccupancy(ctx context.Context, tableID, status string, currentOrderID *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tables[tableID]
	if !ok {
		return repository.ErrNotFound
	}
	t.Status = status
	t.Current_order_id = currentOrderID
	f.tables[tableID] = t
	return nil
}

type fakeOrders struct {
	mu     sync.Mutex
	orders map[string]models.Order
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{orders: map[string]models.Order{}}
}

func (f *fakeOrders) List(ctx context.Context) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Order
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrders) FindByID(ctx context.Context, orderID string) (models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return models.Order{}, repository.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrders) FindUnpaidByTable(ctx context.Context, tableID string) (models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.Table_id == tableID && !o.IsPaid() {
			return o, nil
		}
	}
	return models.Order{}, repository.ErrNotFound
}

func (f *fakeOrders) Insert(ctx context.Context, order *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order.ID = primitive.NewObjectID()
	order.Order_id = order.ID.Hex()
	f.orders[order.Order_id] = *order
	return nil
}

func (f *fakeOrders) ReplaceItems(ctx context.Context, orderID string, items []models.OrderLine, total float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok || o.IsPaid() {
		return repository.ErrConflict
	}
	o.Items = items
	o.Total_amount = total
	f.orders[orderID] = o
	return nil
}

func (f *fakeOrders) UpdateStatus(ctx context.Context, orderID string, update models.StatusUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok || o.IsPaid() {
		return repository.ErrConflict
	}
	o.Status = update.Status
	if update.Tax_rate != nil {
		o.Tax_rate = *update.Tax_rate
	}
	if update.Tax_amount != nil {
		o.Tax_amount = *update.Tax_amount
	}
	if update.Final_total != nil {
		o.Final_total = *update.Final_total
	}
	if update.Payment_method != nil {
		o.Payment_method = *update.Payment_method
	}
	f.orders[orderID] = o
	return nil
}

type fakeBills struct {
	bills []models.Bill
	rows  []repository.SummaryRow
	from  time.Time
	to    time.Time
}

func (f *fakeBills) Insert(ctx context.Context, bill *models.Bill) error {
	for _, b := range f.bills {
		if b.Invoice_number == bill.Invoice_number || b.Order_id == bill.Order_id {
			return repository.ErrDuplicate
		}
	}
	bill.ID = primitive.NewObjectID()
	bill.Bill_id = bill.ID.Hex()
	f.bills = append(f.bills, *bill)
	return nil
}

func (f *fakeBills) List(ctx context.Context) ([]models.Bill, error) {
	return f.bills, nil
}

func (f *fakeBills) LastInvoiceNumber(ctx context.Context, prefix string) (string, error) {
	last := ""
	for _, b := range f.bills {
		if strings.HasPrefix(b.Invoice_number, prefix) && repository.LaterInvoiceNumber(b.Invoice_number, last) {
			last = b.Invoice_number
		}
	}
	return last, nil
}

func (f *fakeBills) ExistsForOrder(ctx context.Context, orderID string) (bool, error) {
	for _, b := range f.bills {
		if b.Order_id == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBills) Summary(ctx context.Context, from, to time.Time) ([]repository.SummaryRow, error) {
	f.from, f.to = from, to
	return f.rows, nil
}

type fakeUsers struct {
	users map[string]models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]models.User{}}
}

func (f *fakeUsers) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		u.Password = nil
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) FindByID(ctx context.Context, userID string) (models.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	u.Password = nil
	return u, nil
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if *u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (f *fakeUsers) CountByEmailOrPhone(ctx context.Context, email, phone string) (int64, error) {
	var n int64
	for _, u := range f.users {
		if *u.Email == email || *u.Phone == phone {
			n++
		}
	}
	return n, nil
}

func (f *fakeUsers) Insert(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.User_id = user.ID.Hex()
	f.users[user.User_id] = *user
	return nil
}

func (f *fakeUsers) UpdateTokens(ctx context.Context, userID, token, refreshToken string) error {
	u, ok := f.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.Token = &token
	u.Refresh_Token = &refreshToken
	f.users[userID] = u
	return nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingNotifier) Broadcast(event string, payload interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

type fakeSender struct {
	target models.PrinterTarget
	data   []byte
	err    error
}

func (f *fakeSender) Send(ctx context.Context, target models.PrinterTarget, data []byte) error {
	f.target = target
	f.data = data
	return f.err
}
