package repository

import "time"

type MachineEntity struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Model        string    `bson:"model,omitempty"`
	SerialNumber string    `bson:"serialNumber"`
	Location     string    `bson:"location,omitempty"`
	Status       string    `bson:"status"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}
