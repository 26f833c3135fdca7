package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-restaurant-pos/models"
	"go-restaurant-pos/notify"
	"go-restaurant-pos/repository"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type BillService struct {
	bills  BillStore
	orders OrderStore
	issuer models.Issuer
	notify Notifier
	now    func() time.Time
}

func NewBillService(bills BillStore, orders OrderStore, issuer models.Issuer, n Notifier) *BillService {
	if n == nil {
		n = nopNotifier{}
	}
	return &BillService{bills: bills, orders: orders, issuer: issuer, notify: n, now: time.Now}
}

func (s *BillService) List(ctx context.Context) ([]models.Bill, error) {
	return s.bills.List(ctx)
}

// Create stores the single invoice of a paid order. Missing issuer fields come
// from the restaurant profile and a missing invoice number is generated.
func (s *BillService) Create(ctx context.Context, bill models.Bill) (models.Bill, error) {
	if bill.Subtotal < 0 || bill.Tax_rate < 0 || bill.Tax_amount < 0 || bill.Total < 0 {
		return models.Bill{}, fmt.Errorf("%w: bill amounts must not be negative", ErrInvalidInput)
	}
	order, err := s.orders.FindByID(ctx, bill.Order_id)
	if err != nil {
		return models.Bill{}, notFound(err)
	}
	if !order.IsPaid() {
		return models.Bill{}, ErrOrderNotPaid
	}
	billed, err := s.bills.ExistsForOrder(ctx, bill.Order_id)
	if err != nil {
		return models.Bill{}, err
	}
	if billed {
		return models.Bill{}, ErrDuplicateInvoice
	}

	bill.Issuer.FillFrom(s.issuer)
	if bill.Payment_method == "" {
		bill.Payment_method = models.PaymentCash
	}
	if bill.Bill_date.IsZero() {
		bill.Bill_date = s.now().UTC()
	}
	if strings.TrimSpace(bill.Invoice_number) == "" {
		number, err := s.generateInvoiceNumber(ctx)
		if err != nil {
			return models.Bill{}, err
		}
		bill.Invoice_number = number
	}

	if err := s.bills.Insert(ctx, &bill); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.Bill{}, ErrDuplicateInvoice
		}
		return models.Bill{}, err
	}
	s.notify.Broadcast(notify.EventBillCreated, bill)
	return bill, nil
}

// generateInvoiceNumber returns the next INV-YYYYMMDD-NNNN for today in UTC,
// the same day Bill_date is stored in. The sequence widens past 9999.
func (s *BillService) generateInvoiceNumber(ctx context.Context) (string, error) {
	date := s.now().UTC().Format("20060102")
	prefix := fmt.Sprintf("INV-%s-", date)

	last, err := s.bills.LastInvoiceNumber(ctx, prefix)
	if err != nil {
		return "", err
	}
	sequence := 1
	if last != "" {
		seq, err := strconv.Atoi(strings.TrimPrefix(last, prefix))
		if err != nil {
			return "", fmt.Errorf("invalid invoice number format %q", last)
		}
		sequence = seq + 1
	}
	return fmt.Sprintf("%s%04d", prefix, sequence), nil
}

// Summary reports bill totals for the inclusive date range [from, to].
func (s *BillService) Summary(ctx context.Context, from, to string) (models.SalesSummary, error) {
	start, err := time.Parse(dateLayout, from)
	if err != nil {
		return models.SalesSummary{}, fmt.Errorf("%w: invalid start date format", ErrInvalidInput)
	}
	end, err := time.Parse(dateLayout, to)
	if err != nil {
		return models.SalesSummary{}, fmt.Errorf("%w: invalid end date format", ErrInvalidInput)
	}
	if end.Before(start) {
		return models.SalesSummary{}, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}

	rows, err := s.bills.Summary(ctx, start, end.AddDate(0, 0, 1))
	if err != nil {
		return models.SalesSummary{}, err
	}

	summary := models.SalesSummary{From: from, To: to, By_payment_method: map[string]float64{}}
	subtotal, tax, total := decimal.Zero, decimal.Zero, decimal.Zero
	for _, row := range rows {
		summary.Bills += row.Bills
		subtotal = subtotal.Add(decimal.NewFromFloat(row.Subtotal))
		tax = tax.Add(decimal.NewFromFloat(row.Tax))
		rowTotal := decimal.NewFromFloat(row.Total)
		total = total.Add(rowTotal)
		summary.By_payment_method[row.Method] = rowTotal.Round(2).InexactFloat64()
	}
	summary.Subtotal = subtotal.Round(2).InexactFloat64()
	summary.Tax_amount = tax.Round(2).InexactFloat64()
	summary.Total = total.Round(2).InexactFloat64()
	return summary, nil
}
