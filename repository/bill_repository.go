package repository

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go-restaurant-pos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BillRepository struct {
	col *mongo.Collection
}

func NewBillRepository(col *mongo.Collection) *BillRepository {
	return &BillRepository{col: col}
}

func (r *BillRepository) Insert(ctx context.Context, bill *models.Bill) error {
	bill.ID = primitive.NewObjectID()
	bill.Bill_id = bill.ID.Hex()
	bill.Created_at = now()
	if bill.Bill_date.IsZero() {
		bill.Bill_date = bill.Created_at
	}
	_, err := r.col.InsertOne(ctx, bill)
	return translate(err)
}

func (r *BillRepository) List(ctx context.Context) ([]models.Bill, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	bills := []models.Bill{}
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// ExistsForOrder reports whether orderID already has a bill.
func (r *BillRepository) ExistsForOrder(ctx context.Context, orderID string) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"order_id": orderID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// LastInvoiceNumber returns the invoice number starting with prefix that has
// the highest numeric suffix, or "" when there is none. Suffixes are compared
// by length first so 10000 sorts after 9999.
func (r *BillRepository) LastInvoiceNumber(ctx context.Context, prefix string) (string, error) {
	filter := bson.M{
		"invoice_number": bson.M{"$regex": fmt.Sprintf("^%s", regexp.QuoteMeta(prefix))},
	}
	opts := options.Find().SetProjection(bson.M{"invoice_number": 1})

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return "", err
	}
	defer cursor.Close(ctx)

	last := ""
	for cursor.Next(ctx) {
		var bill models.Bill
		if err := cursor.Decode(&bill); err != nil {
			return "", err
		}
		if LaterInvoiceNumber(bill.Invoice_number, last) {
			last = bill.Invoice_number
		}
	}
	return last, cursor.Err()
}

// LaterInvoiceNumber reports whether a sorts after b within one prefix.
func LaterInvoiceNumber(a, b string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a > b
}

// SummaryRow is one payment method's share of a sales summary.
type SummaryRow struct {
	Method   string  `bson:"_id"`
	Bills    int     `bson:"bills"`
	Subtotal float64 `bson:"subtotal"`
	Tax      float64 `bson:"tax_amount"`
	Total    float64 `bson:"total"`
}

// Summary aggregates bills dated in [from, to).
func (r *BillRepository) Summary(ctx context.Context, from, to time.Time) ([]SummaryRow, error) {
	match := bson.D{{Key: "$match", Value: bson.D{{Key: "bill_date", Value: bson.D{
		{Key: "$gte", Value: from},
		{Key: "$lt", Value: to},
	}}}}}
	group := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$payment_method"},
		{Key: "bills", Value: bson.D{{Key: "$sum", Value: 1}}},
		{Key: "subtotal", Value: bson.D{{Key: "$sum", Value: "$subtotal"}}},
		{Key: "tax_amount", Value: bson.D{{Key: "$sum", Value: "$tax_amount"}}},
		{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
	}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}}

	cursor, err := r.col.Aggregate(ctx, mongo.Pipeline{match, group, sortStage})
	if err != nil {
		return nil, err
	}
	rows := []SummaryRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
