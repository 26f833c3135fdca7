package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-restaurant-pos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var sampleMenu = []models.MenuItem{
	{Name: "Margherita Pizza", Description: "Classic tomato and mozzarella", Price: 299.00, Category: "Pizza"},
	{Name: "Pepperoni Pizza", Description: "Spicy pepperoni with cheese", Price: 399.00, Category: "Pizza"},
	{Name: "Caesar Salad", Description: "Fresh romaine with caesar dressing", Price: 199.00, Category: "Salad"},
	{Name: "Chicken Wings", Description: "Crispy wings with choice of sauce", Price: 299.00, Category: "Appetizer"},
	{Name: "Pasta Carbonara", Description: "Creamy pasta with bacon", Price: 349.00, Category: "Pasta"},
	{Name: "Chocolate Cake", Description: "Rich chocolate layer cake", Price: 149.00, Category: "Dessert"},
	{Name: "Iced Tea", Description: "Refreshing iced tea", Price: 49.00, Category: "Beverage"},
	{Name: "Coffee", Description: "Fresh brewed coffee", Price: 39.00, Category: "Beverage"},
}

const sampleTables = 10

// Seed fills empty menu and table collections with sample data. Collections
// that already hold documents are left alone.
func Seed(ctx context.Context, db *mongo.Database) error {
	now, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))

	menu := db.Collection(MenuCollection)
	count, err := menu.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count menu: %w", err)
	}
	if count == 0 {
		docs := make([]interface{}, 0, len(sampleMenu))
		for _, item := range sampleMenu {
			item.ID = primitive.NewObjectID()
			item.Menu_item_id = item.ID.Hex()
			item.Available = true
			item.Created_at = now
			item.Updated_at = now
			docs = append(docs, item)
		}
		if _, err := menu.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("seed menu: %w", err)
		}
		log.Printf("seeded %d menu items", len(docs))
	}

	tables := db.Collection(TableCollection)
	count, err = tables.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count tables: %w", err)
	}
	if count == 0 {
		docs := make([]interface{}, 0, sampleTables)
		for i := 1; i <= sampleTables; i++ {
			table := models.Table{
				ID:         primitive.NewObjectID(),
				Number:     i,
				Capacity:   models.DefaultTableCapacity,
				Status:     models.TableAvailable,
				Created_at: now,
				Updated_at: now,
			}
			table.Table_id = table.ID.Hex()
			docs = append(docs, table)
		}
		if _, err := tables.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("seed tables: %w", err)
		}
		log.Printf("seeded %d tables", len(docs))
	}
	return nil
}
