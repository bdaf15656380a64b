package repository

import "time"

type DepartmentEntity struct {
	ID           string    `bson:"_id"`
	DepartmentID string    `bson:"departmentId"`
	Code         string    `bson:"departmentCode"`
	Name         string    `bson:"departmentName"`
	Description  string    `bson:"description,omitempty"`
	Status       string    `bson:"status"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}
