package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentCash    = "cash"
	PaymentCard    = "card"
	PaymentDigital = "digital"
)

// Issuer holds the restaurant identity printed on and stored with every bill.
type Issuer struct {
	Restaurant_name string `json:"restaurant_name" yaml:"restaurant_name"`
	Address         string `json:"address" yaml:"address"`
	State           string `json:"state" yaml:"state"`
	State_code      string `json:"state_code" yaml:"state_code"`
	Phone           string `json:"phone" yaml:"phone"`
	Gstin           string `json:"gstin" yaml:"gstin"`
	Fssai           string `json:"fssai" yaml:"fssai"`
	Place_of_supply string `json:"place_of_supply" yaml:"place_of_supply"`
}

// FillFrom copies every empty field of i from defaults.
func (i *Issuer) FillFrom(defaults Issuer) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&i.Restaurant_name, defaults.Restaurant_name)
	fill(&i.Address, defaults.Address)
	fill(&i.State, defaults.State)
	fill(&i.State_code, defaults.State_code)
	fill(&i.Phone, defaults.Phone)
	fill(&i.Gstin, defaults.Gstin)
	fill(&i.Fssai, defaults.Fssai)
	fill(&i.Place_of_supply, defaults.Place_of_supply)
}

type Bill struct {
	ID             primitive.ObjectID `bson:"_id" json:"-"`
	Bill_id        string             `json:"id"`
	Order_id       string             `json:"order_id" validate:"required"`
	Invoice_number string             `json:"invoice_number"`
	Issuer         `bson:",inline"`
	Subtotal       float64   `json:"subtotal" validate:"gte=0"`
	Tax_rate       float64   `json:"tax_rate" validate:"gte=0"` // Fraction, 0.05 for 5%
	Tax_amount     float64   `json:"tax_amount" validate:"gte=0"`
	Total          float64   `json:"total" validate:"gte=0"`
	Payment_method string    `json:"payment_method"`
	Bill_date      time.Time `json:"bill_date"`
	Created_at     time.Time `json:"created_at"`
}

type BillCreated struct {
	Bill_id        string `json:"bill_id"`
	Invoice_number string `json:"invoice_number"`
}

// SalesSummary aggregates the bills issued in an inclusive date range.
type SalesSummary struct {
	From              string             `json:"from"`
	To                string             `json:"to"`
	Bills             int                `json:"bills"`
	Subtotal          float64            `json:"subtotal"`
	Tax_amount        float64            `json:"tax_amount"`
	Total             float64            `json:"total"`
	By_payment_method map[string]float64 `json:"by_payment_method"`
}
