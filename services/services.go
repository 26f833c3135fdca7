package services

import (
	"context"
	"errors"
	"time"

	"go-restaurant-pos/models"
	"go-restaurant-pos/repository"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrTableBusy        = errors.New("table already has an unpaid order")
	ErrOrderPaid        = errors.New("order is already paid")
	ErrOrderNotPaid     = errors.New("order is not paid")
	ErrDuplicateTable   = errors.New("table number already exists")
	ErrDuplicateInvoice = errors.New("invoice already exists for this order or number")
	ErrDuplicateUser    = errors.New("email or phone number already exists")
	ErrBadCredentials   = errors.New("email or password is incorrect")
)

type MenuStore interface {
	ListAvailable(ctx context.Context) ([]models.MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]models.MenuItem, error)
	Insert(ctx context.Context, item *models.MenuItem) error
}

type TableStore interface {
	List(ctx context.Context) ([]models.Table, error)
	FindByID(ctx context.Context, tableID string) (models.Table, error)
	Insert(ctx context.Context, table *models.Table) error
	SetOccupancy(ctx context.Context, tableID, status string, currentOrderID *string) error
}

type OrderStore interface {
	List(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, orderID string) (models.Order, error)
	FindUnpaidByTable(ctx context.Context, tableID string) (models.Order, error)
	Insert(ctx context.Context, order *models.Order) error
	ReplaceItems(ctx context.Context, orderID string, items []models.OrderLine, total float64) error
	UpdateStatus(ctx context.Context, orderID string, update models.StatusUpdate) error
}

type BillStore interface {
	Insert(ctx context.Context, bill *models.Bill) error
	List(ctx context.Context) ([]models.Bill, error)
	LastInvoiceNumber(ctx context.Context, prefix string) (string, error)
	ExistsForOrder(ctx context.Context, orderID string) (bool, error)
	Summary(ctx context.Context, from, to time.Time) ([]repository.SummaryRow, error)
}

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, userID string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	CountByEmailOrPhone(ctx context.Context, email, phone string) (int64, error)
	Insert(ctx context.Context, user *models.User) error
	UpdateTokens(ctx context.Context, userID, token, refreshToken string) error
}

// Notifier fans order events out to connected terminals.
type Notifier interface {
	Broadcast(event string, payload interface{})
}

type nopNotifier struct{}

func (nopNotifier) Broadcast(string, interface{}) {}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
