package model

import (
	"fmt"
	"time"
)

// Stored part field names used by partial updates outside the part master.
const (
	PartFieldCurrentStock    = "currentStock"
	PartFieldMaterialGroupID = "materialGroupId"
	PartFieldRackNumber      = "rackNumber"
	PartFieldRackLevel       = "rackLevel"
)

const DefaultUnit = "PCS"

type Part struct {
	ID          string `json:"id"`
	SAPNumber   string `json:"sapNumber"`
	InternalRef string `json:"internalRef,omitempty"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Unit        string `json:"unit,omitempty"`
	// Empty MaterialGroupID means the part is pending group assignment.
	MaterialGroupID string    `json:"materialGroupId"`
	RackNumber      string    `json:"rackNumber,omitempty"`
	RackLevel       string    `json:"rackLevel,omitempty"`
	CurrentStock    int64     `json:"currentStock"`
	SafetyLevel     int64     `json:"safetyLevel"`
	MinStockLevel   int64     `json:"minStockLevel,omitempty"`
	UnitPrice       float64   `json:"unitPrice"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (p Part) Pending() bool { return p.MaterialGroupID == "" }

// Location renders the rack position as "RR-L", or "Not Specified".
func (p Part) Location() string {
	return FormatLocation(p.RackNumber, p.RackLevel)
}

// EffectiveSafetyLevel falls back to MinStockLevel when no safety level is set.
func (p Part) EffectiveSafetyLevel() int64 {
	if p.SafetyLevel > 0 {
		return p.SafetyLevel
	}
	return p.MinStockLevel
}

func FormatLocation(rackNumber, rackLevel string) string {
	if rackNumber == "" && rackLevel == "" {
		return "Not Specified"
	}
	return fmt.Sprintf("%s-%s", rackNumber, rackLevel)
}
