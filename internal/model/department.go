package model

import "time"

type Department struct {
	ID           string       `json:"id"`
	DepartmentID string       `json:"departmentId"`
	Code         string       `json:"departmentCode"`
	Name         string       `json:"departmentName"`
	Description  string       `json:"description,omitempty"`
	Status       RecordStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
