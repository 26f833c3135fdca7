package printer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go-restaurant-pos/models"

	"github.com/shopspring/decimal"
)

const lineWidth = 48

var separator = strings.Repeat("-", lineWidth)

// RestaurantReceipt lays out a tax invoice. Amounts are recomputed from the
// items so the printout always adds up, whatever the payload's totals say.
func RestaurantReceipt(r models.Receipt) []byte {
	b := NewBuilder().Init()

	b.Align(AlignCenter).Size(SizeDoubleHeight).Bold(true)
	b.Line(r.Restaurant_name)
	b.Size(SizeNormal).Bold(false)
	b.Line(r.Address)
	b.Line(fmt.Sprintf("State: %s (%s)", r.State, r.State_code))
	b.Line("Phone: " + r.Phone)
	b.Line("GSTIN: " + r.Gstin)
	b.Line("FSSAI: " + r.Fssai)
	b.Line(separator)

	b.Bold(true).Line("Tax Invoice").Bold(false)
	b.Align(AlignLeft)
	b.Line(saleLabel(r.Payment_method))
	b.Line("Place of Supply:")
	b.Line(r.Place_of_supply)
	b.Line("Date: " + r.Date)
	b.Line("Time: " + r.Time)
	b.Line("Invoice no: " + r.Invoice_number)

	b.Line(separator)
	b.Line(fmt.Sprintf("%-20s %5s %10s %10s", "Item Name", "Qty", "Price", "Amount"))
	b.Line(separator)

	subtotal := decimal.Zero
	for _, item := range r.Items {
		price := decimal.NewFromFloat(item.Price)
		amount := price.Mul(decimal.NewFromInt(int64(item.Qty)))
		subtotal = subtotal.Add(amount)
		b.Line(fmt.Sprintf("%-20s %5s %10s %10s",
			truncate(item.Name, 20), fmt.Sprintf("x%d", item.Qty), price.StringFixed(2), amount.StringFixed(2)))
	}
	b.Line(separator)

	rate := decimal.NewFromFloat(r.Tax_rate)
	tax := subtotal.Mul(rate)
	total := subtotal.Add(tax)

	b.Line(totalLine("Subtotal", subtotal))
	if rate.IsPositive() {
		b.Line(totalLine("Taxes", tax))
	}
	b.Bold(true).Line(totalLine("Total", total)).Bold(false)
	b.Line(separator)

	if rate.IsPositive() {
		b.Line(fmt.Sprintf("%-18s%15s%15s", "Tax Type", "Taxable Amt", "Tax Amt"))
		b.Line(separator)
		gst := "GST@" + rate.Mul(decimal.NewFromInt(100)).String() + "%"
		b.Line(fmt.Sprintf("%-18s%15s%15s", gst, subtotal.StringFixed(2), tax.StringFixed(2)))
		b.Line(separator)
	}

	b.Align(AlignCenter).Newline()
	b.Line("Thank you for your visit!")
	if r.Receipt_url != "" {
		b.QR(r.Receipt_url, 6).Newline()
	}
	b.Feed(3).Cut()
	return b.Bytes()
}

func saleLabel(method string) string {
	switch method {
	case "", models.PaymentCash:
		return "Cash Sale"
	case models.PaymentCard:
		return "Card Sale"
	}
	return strings.ToUpper(method[:1]) + method[1:] + " Sale"
}

func totalLine(label string, amount decimal.Decimal) string {
	return fmt.Sprintf("%-*s%s", lineWidth-12, label, fmt.Sprintf("%12s", amount.StringFixed(2)))
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
