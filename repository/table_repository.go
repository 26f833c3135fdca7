package repository

import (
	"context"

	"go-restaurant-pos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TableRepository struct {
	col *mongo.Collection
}

func NewTableRepository(col *mongo.Collection) *TableRepository {
	return &TableRepository{col: col}
}

func (r *TableRepository) List(ctx context.Context) ([]models.Table, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "number", Value: 1}}))
	if err != nil {
		return nil, err
	}
	tables := []models.Table{}
	if err := cursor.All(ctx, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *TableRepository) FindByID(ctx context.Context, tableID string) (models.Table, error) {
	var table models.Table
	err := r.col.FindOne(ctx, bson.M{"table_id": tableID}).Decode(&table)
	return table, translate(err)
}

func (r *TableRepository) Insert(ctx context.Context, table *models.Table) error {
	table.ID = primitive.NewObjectID()
	table.Table_id = table.ID.Hex()
	table.Created_at = now()
	table.Updated_at = table.Created_at
	_, err := r.col.InsertOne(ctx, table)
	return translate(err)
}

// SetOccupancy records the table's status and its current order reference.
func (r *TableRepository) SetOccupancy(ctx context.Context, tableID, status string, currentOrderID *string) error {
	var updateObj primitive.D
	updateObj = append(updateObj, bson.E{Key: "status", Value: status})
	updateObj = append(updateObj, bson.E{Key: "current_order_id", Value: currentOrderID})
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: now()})

	result, err := r.col.UpdateOne(ctx, bson.M{"table_id": tableID}, bson.D{{Key: "$set", Value: updateObj}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
