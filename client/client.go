// Package client talks to the POS backend over its REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-restaurant-pos/models"
)

const defaultTimeout = 30 * time.Second

// APIError is returned for any non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// NetworkError wraps a failure to reach the backend at all.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: backend unreachable: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New returns a client for the API rooted at baseURL, e.g.
// http://localhost:8000/api. An empty token sends no token header.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("token", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func errorMessage(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(b, &body) == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return strings.TrimSpace(string(b))
}

func (c *Client) Menu(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := c.do(ctx, http.MethodGet, "/menu", nil, &items)
	return items, err
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := c.do(ctx, http.MethodGet, "/menu/categories", nil, &categories)
	return categories, err
}

func (c *Client) Tables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	err := c.do(ctx, http.MethodGet, "/tables", nil, &tables)
	return tables, err
}

func (c *Client) Table(ctx context.Context, tableID string) (models.Table, error) {
	var table models.Table
	err := c.do(ctx, http.MethodGet, "/tables/"+url.PathEscape(tableID), nil, &table)
	return table, err
}

func (c *Client) CreateTable(ctx context.Context, number, capacity int) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	body := map[string]int{"number": number, "capacity": capacity}
	err := c.do(ctx, http.MethodPost, "/tables", body, &created)
	return created.ID, err
}

func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := c.do(ctx, http.MethodGet, "/orders", nil, &orders)
	return orders, err
}

func (c *Client) Order(ctx context.Context, orderID string) (models.Order, error) {
	var order models.Order
	err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, &order)
	return order, err
}

func (c *Client) CreateOrder(ctx context.Context, req models.OrderRequest) (models.OrderCreated, error) {
	var created models.OrderCreated
	err := c.do(ctx, http.MethodPost, "/orders", req, &created)
	return created, err
}

func (c *Client) UpdateOrder(ctx context.Context, orderID string, req models.OrderRequest) error {
	return c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(orderID), req, nil)
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, update models.StatusUpdate) error {
	return c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(orderID)+"/status", update, nil)
}

func (c *Client) Bills(ctx context.Context) ([]models.Bill, error) {
	var bills []models.Bill
	err := c.do(ctx, http.MethodGet, "/bills", nil, &bills)
	return bills, err
}

func (c *Client) CreateBill(ctx context.Context, bill models.Bill) (models.BillCreated, error) {
	var created models.BillCreated
	err := c.do(ctx, http.MethodPost, "/bills", bill, &created)
	return created, err
}

// SalesSummary fetches bill totals for the inclusive YYYY-MM-DD range.
func (c *Client) SalesSummary(ctx context.Context, from, to string) (models.SalesSummary, error) {
	var summary models.SalesSummary
	q := url.Values{"from": {from}, "to": {to}}
	err := c.do(ctx, http.MethodGet, "/bills/summary?"+q.Encode(), nil, &summary)
	return summary, err
}

// PrintBill asks the backend to print a receipt. A backend that answers
// with success=false is reported as an error.
func (c *Client) PrintBill(ctx context.Context, req models.PrintRequest) error {
	var result models.PrintResult
	if err := c.do(ctx, http.MethodPost, "/print-bill", req, &result); err != nil {
		return err
	}
	if !result.Success {
		return &APIError{Status: http.StatusOK, Message: result.Error}
	}
	return nil
}
