package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
)

// DefaultTableCapacity is used when a table is created without a capacity.
const DefaultTableCapacity = 4

type Table struct {
	ID       primitive.ObjectID `bson:"_id" json:"-"`
	Table_id string             `json:"id"`
	Number   int                `json:"number" validate:"required,gt=0"`
	Capacity int                `json:"capacity" validate:"gte=0"`
	Status   string             `json:"status"`
	// Current_order_id points at the table's unpaid order, nil when none.
	Current_order_id *string   `json:"current_order_id"`
	Created_at       time.Time `json:"created_at"`
	Updated_at       time.Time `json:"updated_at"`
}
