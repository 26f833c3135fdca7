// Package billing turns a settled order into a payment, a stored invoice and
// a printed receipt.
package billing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"go-restaurant-pos/models"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeTaxRate = errors.New("tax rate must not be negative")
	ErrNotFinite       = errors.New("amount must be a finite number")
	ErrMissingOrder    = errors.New("order has no id")
)

var hundred = decimal.NewFromInt(100)

// PaymentCompletionError means the order could not be marked paid. Nothing
// else was attempted; the caller may retry.
type PaymentCompletionError struct {
	OrderID string
	Err     error
}

func (e *PaymentCompletionError) Error() string {
	return fmt.Sprintf("payment for order %s not completed: %v", e.OrderID, e.Err)
}

func (e *PaymentCompletionError) Unwrap() error { return e.Err }

// Backend is the part of the REST API the calculator needs.
type Backend interface {
	UpdateOrderStatus(ctx context.Context, orderID string, update models.StatusUpdate) error
	CreateBill(ctx context.Context, bill models.Bill) (models.BillCreated, error)
	PrintBill(ctx context.Context, req models.PrintRequest) error
}

type Totals struct {
	TaxRate  decimal.Decimal // Percent
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals prices an order at taxRatePercent. The subtotal is the
// order's total_amount as computed by the backend.
func ComputeTotals(order models.Order, taxRatePercent float64) (Totals, error) {
	if !finite(taxRatePercent) || !finite(order.Total_amount) {
		return Totals{}, ErrNotFinite
	}
	if taxRatePercent < 0 {
		return Totals{}, ErrNegativeTaxRate
	}
	rate := decimal.NewFromFloat(taxRatePercent)
	subtotal := decimal.NewFromFloat(order.Total_amount)
	tax := subtotal.Mul(rate).Div(hundred)
	return Totals{
		TaxRate:  rate,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// InvoiceNumberer picks the invoice number stored with a bill. An empty
// number lets the backend assign one.
type InvoiceNumberer interface {
	InvoiceNumber(order models.Order) string
}

type InvoiceNumberFunc func(order models.Order) string

func (f InvoiceNumberFunc) InvoiceNumber(order models.Order) string { return f(order) }

// OrderIDNumbers reuses the order id as the invoice number.
var OrderIDNumbers = InvoiceNumberFunc(func(order models.Order) string { return order.Order_id })

// BackendNumbers leaves numbering to the backend's dated sequence.
var BackendNumbers = InvoiceNumberFunc(func(models.Order) string { return "" })

type Calculator struct {
	backend Backend
	issuer  models.Issuer

	Numberer InvoiceNumberer
	// Printer overrides the backend's default receipt printer when set.
	Printer *models.PrinterTarget
	// ReceiptURLBase, when set, is joined with the invoice number for the
	// receipt's QR code.
	ReceiptURLBase string

	now func() time.Time
}

func NewCalculator(backend Backend, issuer models.Issuer) *Calculator {
	return &Calculator{
		backend:  backend,
		issuer:   issuer,
		Numberer: OrderIDNumbers,
		now:      time.Now,
	}
}

// FinalizePayment marks the order paid, stores its invoice and prints a
// receipt. Only the first step can fail the payment; invoice and print
// failures are logged and reported in the result.
func (c *Calculator) FinalizePayment(ctx context.Context, order models.Order, taxRatePercent float64, paymentMethod string) (Result, error) {
	p := &payment{order: order, method: paymentMethod, result: Result{Stages: []Stage{PaymentStarted}}}
	if p.method == "" {
		p.method = models.PaymentCash
	}
	if order.Order_id == "" {
		return p.result, ErrMissingOrder
	}
	totals, err := ComputeTotals(order, taxRatePercent)
	if err != nil {
		return p.result, err
	}
	p.result.Totals = totals

	for _, step := range []struct {
		run  func(context.Context, *payment) error
		ok   Stage
		skip Stage
	}{
		{run: c.markPaid, ok: StatusUpdated},
		{run: c.saveInvoice, ok: InvoiceSaved, skip: InvoiceSkipped},
		{run: c.printReceipt, ok: Printed, skip: PrintSkipped},
	} {
		if err := step.run(ctx, p); err != nil {
			if step.skip == 0 {
				return p.result, &PaymentCompletionError{OrderID: order.Order_id, Err: err}
			}
			log.Printf("order %s: %s: %v", order.Order_id, step.skip, err)
			p.result.Stages = append(p.result.Stages, step.skip)
			continue
		}
		p.result.Stages = append(p.result.Stages, step.ok)
	}

	p.result.Success = true
	p.result.Stages = append(p.result.Stages, Done)
	return p.result, nil
}

type payment struct {
	order  models.Order
	method string
	result Result
}

func (c *Calculator) markPaid(ctx context.Context, p *payment) error {
	t := p.result.Totals
	rate := t.TaxRate.InexactFloat64()
	tax := t.Tax.Round(2).InexactFloat64()
	final := t.Total.Round(2).InexactFloat64()
	method := p.method
	return c.backend.UpdateOrderStatus(ctx, p.order.Order_id, models.StatusUpdate{
		Status:         models.OrderPaid,
		Tax_rate:       &rate,
		Tax_amount:     &tax,
		Final_total:    &final,
		Payment_method: &method,
	})
}

func (c *Calculator) saveInvoice(ctx context.Context, p *payment) error {
	t := p.result.Totals
	numberer := c.Numberer
	if numberer == nil {
		numberer = OrderIDNumbers
	}
	bill := models.Bill{
		Order_id:       p.order.Order_id,
		Invoice_number: numberer.InvoiceNumber(p.order),
		Issuer:         c.issuer,
		Subtotal:       t.Subtotal.Round(2).InexactFloat64(),
		Tax_rate:       t.TaxRate.Div(hundred).InexactFloat64(),
		Tax_amount:     t.Tax.Round(2).InexactFloat64(),
		Total:          t.Total.Round(2).InexactFloat64(),
		Payment_method: p.method,
		Bill_date:      c.now().UTC(),
	}
	created, err := c.backend.CreateBill(ctx, bill)
	if err != nil {
		p.result.InvoiceErr = err
		return err
	}
	p.result.InvoiceSaved = true
	p.result.InvoiceNumber = created.Invoice_number
	return nil
}

func (c *Calculator) printReceipt(ctx context.Context, p *payment) error {
	number := p.result.InvoiceNumber
	if number == "" {
		number = p.order.Order_id
	}
	now := c.now()

	receipt := models.Receipt{
		Issuer:         c.issuer,
		Invoice_number: number,
		Date:           now.Format("02/01/2006"),
		Time:           now.Format("03:04 pm"),
		Tax_rate:       p.result.Totals.TaxRate.Div(hundred).InexactFloat64(),
		Payment_method: p.method,
	}
	if c.ReceiptURLBase != "" {
		receipt.Receipt_url = c.ReceiptURLBase + number
	}
	for _, l := range p.order.Items {
		if l.Valid() {
			receipt.Items = append(receipt.Items, models.ReceiptItem{Name: l.Menu_item_name, Qty: l.Quantity, Price: l.Price})
		}
	}

	if err := c.backend.PrintBill(ctx, models.PrintRequest{Receipt: receipt, Printer: c.Printer}); err != nil {
		p.result.PrintErr = err
		return err
	}
	p.result.PrintSuccess = true
	return nil
}
