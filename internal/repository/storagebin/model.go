package repository

import "time"

type StorageBinEntity struct {
	ID            string    `bson:"_id"`
	BinID         string    `bson:"binId"`
	MaterialGroup string    `bson:"materialGroup,omitempty"`
	Description   string    `bson:"description,omitempty"`
	RackNumber    string    `bson:"rackNumber"`
	RackLevel     string    `bson:"rackLevel"`
	CreatedAt     time.Time `bson:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}
