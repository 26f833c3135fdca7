package repository

import (
	"context"

	"go-restaurant-pos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(col *mongo.Collection) *OrderRepository {
	return &OrderRepository{col: col}
}

func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, orderID string) (models.Order, error) {
	var order models.Order
	err := r.col.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&order)
	return order, translate(err)
}

func (r *OrderRepository) FindUnpaidByTable(ctx context.Context, tableID string) (models.Order, error) {
	var order models.Order
	filter := bson.M{"table_id": tableID, "status": bson.M{"$ne": models.OrderPaid}}
	err := r.col.FindOne(ctx, filter).Decode(&order)
	return order, translate(err)
}

func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	order.Order_id = order.ID.Hex()
	order.Created_at = now()
	order.Updated_at = order.Created_at
	_, err := r.col.InsertOne(ctx, order)
	return translate(err)
}

// ReplaceItems swaps the order's lines and total. Paid orders are never
// matched, so an order paid in the meantime yields ErrConflict.
func (r *OrderRepository) ReplaceItems(ctx context.Context, orderID string, items []models.OrderLine, total float64) error {
	var updateObj primitive.D
	updateObj = append(updateObj, bson.E{Key: "items", Value: items})
	updateObj = append(updateObj, bson.E{Key: "total_amount", Value: total})
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: now()})
	return r.guardedUpdate(ctx, orderID, updateObj)
}

// UpdateStatus applies a status change plus any payment fields. Like
// ReplaceItems it refuses to touch a paid order.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID string, update models.StatusUpdate) error {
	var updateObj primitive.D
	updateObj = append(updateObj, bson.E{Key: "status", Value: update.Status})
	if update.Tax_rate != nil {
		updateObj = append(updateObj, bson.E{Key: "tax_rate", Value: *update.Tax_rate})
	}
	if update.Tax_amount != nil {
		updateObj = append(updateObj, bson.E{Key: "tax_amount", Value: *update.Tax_amount})
	}
	if update.Final_total != nil {
		updateObj = append(updateObj, bson.E{Key: "final_total", Value: *update.Final_total})
	}
	if update.Payment_method != nil {
		updateObj = append(updateObj, bson.E{Key: "payment_method", Value: *update.Payment_method})
	}
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: now()})
	return r.guardedUpdate(ctx, orderID, updateObj)
}

func (r *OrderRepository) guardedUpdate(ctx context.Context, orderID string, updateObj primitive.D) error {
	filter := bson.M{"order_id": orderID, "status": bson.M{"$ne": models.OrderPaid}}
	result, err := r.col.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: updateObj}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrConflict
	}
	return nil
}
