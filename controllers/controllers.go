package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go-restaurant-pos/models"
	"go-restaurant-pos/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const requestTimeout = 100 * time.Second

type MenuService interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
}

type TableService interface {
	List(ctx context.Context) ([]models.Table, error)
	Get(ctx context.Context, tableID string) (models.Table, error)
	Create(ctx context.Context, number, capacity int) (models.Table, error)
}

type OrderService interface {
	List(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, orderID string) (models.Order, error)
	Create(ctx context.Context, req models.OrderRequest) (models.OrderCreated, error)
	Update(ctx context.Context, orderID string, req models.OrderRequest) (models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, update models.StatusUpdate) error
}

type BillService interface {
	List(ctx context.Context) ([]models.Bill, error)
	Create(ctx context.Context, bill models.Bill) (models.Bill, error)
	Summary(ctx context.Context, from, to string) (models.SalesSummary, error)
}

type PrintService interface {
	Print(ctx context.Context, req models.PrintRequest) error
}

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, userID string) (models.User, error)
	SignUp(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, login models.Login) (models.User, error)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrTableBusy),
		errors.Is(err, services.ErrOrderPaid),
		errors.Is(err, services.ErrOrderNotPaid),
		errors.Is(err, services.ErrDuplicateTable),
		errors.Is(err, services.ErrDuplicateInvoice),
		errors.Is(err, services.ErrDuplicateUser):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrBadCredentials):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// respondError writes err with the status its kind maps to. Internal errors
// are logged and hidden behind msg.
func respondError(c *gin.Context, err error, msg string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s: %v", msg, err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindAndValidate decodes the JSON body into v and runs its validate tags.
func bindAndValidate(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	if err := validate.Struct(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func HealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}
