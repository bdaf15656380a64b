package model

import "time"

type Machine struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Model        string       `json:"model,omitempty"`
	SerialNumber string       `json:"serialNumber"`
	Location     string       `json:"location,omitempty"`
	Status       RecordStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
