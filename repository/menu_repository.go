package repository

import (
	"context"
	"sort"

	"go-restaurant-pos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(col *mongo.Collection) *MenuRepository {
	return &MenuRepository{col: col}
}

func (r *MenuRepository) ListAvailable(ctx context.Context) ([]models.MenuItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"available": true}, opts)
	if err != nil {
		return nil, err
	}
	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) Categories(ctx context.Context) ([]string, error) {
	values, err := r.col.Distinct(ctx, "category", bson.M{"available": true})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// FindByIDs returns the menu items among ids, keyed by id. Unknown ids are
// absent from the map.
func (r *MenuRepository) FindByIDs(ctx context.Context, ids []string) (map[string]models.MenuItem, error) {
	found := map[string]models.MenuItem{}
	if len(ids) == 0 {
		return found, nil
	}
	cursor, err := r.col.Find(ctx, bson.M{"menu_item_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	for _, item := range items {
		found[item.Menu_item_id] = item
	}
	return found, nil
}

func (r *MenuRepository) Insert(ctx context.Context, item *models.MenuItem) error {
	item.ID = primitive.NewObjectID()
	item.Menu_item_id = item.ID.Hex()
	item.Created_at = now()
	item.Updated_at = item.Created_at
	_, err := r.col.InsertOne(ctx, item)
	return translate(err)
}
