package repository

import "time"

type LocationEntity struct {
	ID           string    `bson:"_id"`
	WarehouseID  string    `bson:"warehouseId"`
	LocationID   string    `bson:"locationId"`
	LocationName string    `bson:"locationName"`
	LocationType string    `bson:"locationType,omitempty"`
	Capacity     float64   `bson:"capacity"`
	Remarks      string    `bson:"remarks,omitempty"`
	Status       string    `bson:"status"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}
