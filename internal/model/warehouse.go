package model

import "time"

type Warehouse struct {
	ID          string `json:"id"`
	WarehouseID string `json:"warehouseId"`
	Code        string `json:"warehouseCode"`
	Name        string `json:"warehouseName"`
	Location    string `json:"location,omitempty"`
	// Capacity of zero means the warehouse has no capacity limit.
	Capacity  float64      `json:"capacity"`
	Remarks   string       `json:"remarks,omitempty"`
	Status    RecordStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type WarehouseLocation struct {
	ID           string       `json:"id"`
	WarehouseID  string       `json:"warehouseId"`
	LocationID   string       `json:"locationId"`
	LocationName string       `json:"locationName"`
	LocationType string       `json:"locationType,omitempty"`
	Capacity     float64      `json:"capacity"`
	Remarks      string       `json:"remarks,omitempty"`
	Status       RecordStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
