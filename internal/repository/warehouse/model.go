package repository

import "time"

type WarehouseEntity struct {
	ID          string    `bson:"_id"`
	WarehouseID string    `bson:"warehouseId"`
	Code        string    `bson:"warehouseCode"`
	Name        string    `bson:"warehouseName"`
	Location    string    `bson:"location,omitempty"`
	Capacity    float64   `bson:"capacity"`
	Remarks     string    `bson:"remarks,omitempty"`
	Status      string    `bson:"status"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}
