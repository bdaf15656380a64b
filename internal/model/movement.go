package model

import "time"

type MovementType string

const (
	MovementIn        MovementType = "IN"
	MovementOut       MovementType = "OUT"
	MovementTransfer  MovementType = "TRANSFER"
	MovementStockTake MovementType = "STOCK TAKE"
)

const DefaultCurrency = "USD"

// MovementLog is an append-only audit record of a stock mutation.
type MovementLog struct {
	ID        string       `json:"id"`
	Type      MovementType `json:"type"`
	PartID    string       `json:"partId"`
	PartName  string       `json:"partName"`
	SAPNumber string       `json:"sapNumber"`
	Quantity  int64        `json:"quantity"`
	Date      time.Time    `json:"date"`
	UserID    string       `json:"userId"`
	UserName  string       `json:"userName"`
	Remarks   string       `json:"remarks,omitempty"`

	// IN
	Supplier            string     `json:"supplier,omitempty"`
	DeliveryOrderNumber string     `json:"deliveryOrderNumber,omitempty"`
	DateOfReceipt       *time.Time `json:"dateOfReceipt,omitempty"`
	CostPerUnit         float64    `json:"costPerUnit,omitempty"`
	Currency            string     `json:"currency,omitempty"`
	TotalCost           float64    `json:"totalCost,omitempty"`

	// OUT
	Receiver    string     `json:"receiver,omitempty"`
	MRFNumber   string     `json:"mrfNumber,omitempty"`
	DateOfIssue *time.Time `json:"dateOfIssue,omitempty"`

	// TRANSFER
	FromLocation string `json:"fromLocation,omitempty"`
	ToLocation   string `json:"toLocation,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

type MovementFilter struct {
	Search string
	// Empty Type means all types.
	Type MovementType
	From *time.Time
	To   *time.Time
}

// MovementRecorded is published after a movement log has been written.
type MovementRecorded struct {
	EventID     string       `json:"eventId"`
	MovementID  string       `json:"movementId"`
	Type        MovementType `json:"type"`
	PartID      string       `json:"partId"`
	SAPNumber   string       `json:"sapNumber"`
	PartName    string       `json:"partName"`
	Quantity    int64        `json:"quantity"`
	StockAfter  int64        `json:"stockAfter"`
	SafetyLevel int64        `json:"safetyLevel"`
	OccurredAt  time.Time    `json:"occurredAt"`
}
