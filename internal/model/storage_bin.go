package model

import "time"

// StorageBin is a physical bin addressed by rack number and level.
type StorageBin struct {
	ID            string    `json:"id"`
	BinID         string    `json:"binId"`
	MaterialGroup string    `json:"materialGroup,omitempty"`
	Description   string    `json:"description,omitempty"`
	RackNumber    string    `json:"rackNumber"`
	RackLevel     string    `json:"rackLevel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (b StorageBin) Location() string { return FormatLocation(b.RackNumber, b.RackLevel) }
