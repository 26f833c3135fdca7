package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-restaurant-pos/models"
	"go-restaurant-pos/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubOrders struct {
	created   models.OrderRequest
	createErr error
	statusErr error
	updated   models.StatusUpdate
}

func (s *stubOrders) List(ctx context.Context) ([]models.Order, error) { return nil, nil }

func (s *stubOrders) Get(ctx context.Context, orderID string) (models.Order, error) {
	if orderID != "o1" {
		return models.Order{}, services.ErrNotFound
	}
	return models.Order{Order_id: "o1", Table_id: "t1", Status: models.OrderPending}, nil
}

func (s *stubOrders) Create(ctx context.Context, req models.OrderRequest) (models.OrderCreated, error) {
	s.created = req
	if s.createErr != nil {
		return models.OrderCreated{}, s.createErr
	}
	return models.OrderCreated{Order_id: "o1", Total_amount: 85}, nil
}

func (s *stubOrders) Update(ctx context.Context, orderID string, req models.OrderRequest) (models.Order, error) {
	return models.Order{}, services.ErrOrderPaid
}

func (s *stubOrders) UpdateStatus(ctx context.Context, orderID string, update models.StatusUpdate) error {
	s.updated = update
	return s.statusErr
}

type stubBills struct {
	summaryFrom, summaryTo string
	createErr              error
}

func (s *stubBills) List(ctx context.Context) ([]models.Bill, error) { return nil, errors.New("db down") }

func (s *stubBills) Create(ctx context.Context, bill models.Bill) (models.Bill, error) {
	if s.createErr != nil {
		return models.Bill{}, s.createErr
	}
	bill.Bill_id = "b1"
	if bill.Invoice_number == "" {
		bill.Invoice_number = "INV-20240309-0001"
	}
	return bill, nil
}

func (s *stubBills) Summary(ctx context.Context, from, to string) (models.SalesSummary, error) {
	s.summaryFrom, s.summaryTo = from, to
	return models.SalesSummary{From: from, To: to, Bills: 2, Total: 315}, nil
}

type stubPrinter struct{ err error }

func (s stubPrinter) Print(ctx context.Context, req models.PrintRequest) error { return s.err }

func perform(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func orderRouter(orders OrderService) *gin.Engine {
	r := gin.New()
	r.GET("/orders/:order_id", GetOrder(orders))
	r.POST("/orders", CreateOrder(orders))
	r.PUT("/orders/:order_id", UpdateOrderItems(orders))
	r.PUT("/orders/:order_id/status", UpdateOrderStatus(orders))
	return r
}

func TestCreateOrder(t *testing.T) {
	orders := &stubOrders{}
	r := orderRouter(orders)

	w := perform(r, http.MethodPost, "/orders", gin.H{
		"table_id": "t1",
		"items":    []gin.H{{"menu_item_id": "m1", "quantity": 2}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.OrderCreated
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "o1", created.Order_id)
	assert.Equal(t, 2, orders.created.Items[0].Quantity)
}

func TestCreateOrderValidationAndConflict(t *testing.T) {
	orders := &stubOrders{}
	r := orderRouter(orders)

	w := perform(r, http.MethodPost, "/orders", gin.H{"table_id": "t1", "items": []gin.H{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	orders.createErr = services.ErrTableBusy
	w = perform(r, http.MethodPost, "/orders", gin.H{
		"table_id": "t1",
		"items":    []gin.H{{"menu_item_id": "m1", "quantity": 1}},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), services.ErrTableBusy.Error())
}

func TestGetOrderNotFound(t *testing.T) {
	w := perform(orderRouter(&stubOrders{}), http.MethodGet, "/orders/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderItemsPaidOrder(t *testing.T) {
	w := perform(orderRouter(&stubOrders{}), http.MethodPut, "/orders/o1", gin.H{
		"table_id": "t1",
		"items":    []gin.H{{"menu_item_id": "m1", "quantity": 1}},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	orders := &stubOrders{}
	r := orderRouter(orders)

	w := perform(r, http.MethodPut, "/orders/o1/status", gin.H{
		"status": "paid", "tax_rate": 5, "tax_amount": 4.25, "final_total": 89.25, "payment_method": "card",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, orders.updated.Final_total)
	assert.Equal(t, 89.25, *orders.updated.Final_total)
	assert.Equal(t, "card", *orders.updated.Payment_method)

	w = perform(r, http.MethodPut, "/orders/o1/status", gin.H{"status": "cooking"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	orders.statusErr = services.ErrOrderPaid
	w = perform(r, http.MethodPut, "/orders/o1/status", gin.H{"status": "served"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBillEndpoints(t *testing.T) {
	bills := &stubBills{}
	r := gin.New()
	r.GET("/bills", GetBills(bills))
	r.POST("/bills", CreateBill(bills))
	r.GET("/bills/summary", GetSalesSummary(bills))

	w := perform(r, http.MethodPost, "/bills", gin.H{"order_id": "o1", "subtotal": 85, "tax_rate": 0.05, "tax_amount": 4.25, "total": 89.25})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"bill_id":"b1","invoice_number":"INV-20240309-0001"}`, w.Body.String())

	w = perform(r, http.MethodPost, "/bills", gin.H{"subtotal": 85})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodGet, "/bills", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")

	w = perform(r, http.MethodGet, "/bills/summary?from=2024-03-01&to=2024-03-09", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-03-09", bills.summaryTo)

	w = perform(r, http.MethodGet, "/bills/summary?from=2024-03-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBillConflicts(t *testing.T) {
	bills := &stubBills{}
	r := gin.New()
	r.POST("/bills", CreateBill(bills))
	body := gin.H{"order_id": "o1", "subtotal": 85, "total": 85}

	for _, err := range []error{services.ErrOrderNotPaid, services.ErrDuplicateInvoice} {
		bills.createErr = err
		w := perform(r, http.MethodPost, "/bills", body)
		assert.Equal(t, http.StatusConflict, w.Code, err.Error())
		assert.Contains(t, w.Body.String(), err.Error())
	}
}

func TestPrintBill(t *testing.T) {
	body := gin.H{"invoice_number": "INV-1", "items": []gin.H{{"name": "Tea", "qty": 1, "price": 20}}}

	r := gin.New()
	r.POST("/print-bill", PrintBill(stubPrinter{}))
	w := perform(r, http.MethodPost, "/print-bill", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	r = gin.New()
	r.POST("/print-bill", PrintBill(stubPrinter{err: errors.New("printer offline")}))
	w = perform(r, http.MethodPost, "/print-bill", body)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestHealthCheck(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck())
	w := perform(r, http.MethodGet, "/health", nil)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}
