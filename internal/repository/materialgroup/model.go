package repository

import "time"

type MaterialGroupEntity struct {
	ID          string    `bson:"_id"`
	GroupID     string    `bson:"groupId"`
	Name        string    `bson:"materialGroup"`
	Description string    `bson:"description,omitempty"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}
