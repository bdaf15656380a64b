package repository

import "time"

type SupplierEntity struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	ContactPerson string    `bson:"contactPerson,omitempty"`
	Email         string    `bson:"email,omitempty"`
	Phone         string    `bson:"phone,omitempty"`
	Address       string    `bson:"address,omitempty"`
	Country       string    `bson:"country,omitempty"`
	CreatedAt     time.Time `bson:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}
