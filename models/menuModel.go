package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id" json:"-"`
	Menu_item_id string             `json:"id"`
	Name         string             `json:"name" validate:"required,min=1,max=100"`
	Description  string             `json:"description"`
	Price        float64            `json:"price" validate:"required,gt=0"`
	Category     string             `json:"category" validate:"max=50"`
	Available    bool               `json:"-"`
	Created_at   time.Time          `json:"created_at"`
	Updated_at   time.Time          `json:"updated_at"`
}

// DefaultCategory is assigned to menu items created without one.
const DefaultCategory = "General"
