package repository

import "time"

type PartEntity struct {
	ID          string `bson:"_id"`
	SAPNumber   string `bson:"sapNumber"`
	InternalRef string `bson:"internalRef,omitempty"`
	Name        string `bson:"name"`
	Category    string `bson:"category,omitempty"`
	Unit        string `bson:"unit,omitempty"`
	// nil while the part is pending group assignment
	MaterialGroupID *string   `bson:"materialGroupId"`
	RackNumber      string    `bson:"rackNumber,omitempty"`
	RackLevel       string    `bson:"rackLevel,omitempty"`
	CurrentStock    int64     `bson:"currentStock"`
	SafetyLevel     int64     `bson:"safetyLevel"`
	MinStockLevel   int64     `bson:"minStockLevel,omitempty"`
	UnitPrice       float64   `bson:"unitPrice"`
	CreatedAt       time.Time `bson:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt"`
}
