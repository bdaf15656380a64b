package repository

import "time"

type CountEntity struct {
	SAPNumber string `bson:"sapNumber"`
	PartID    string `bson:"partId"`
	PartName  string `bson:"partName"`
	Location  string `bson:"location"`
	StockQty  int64  `bson:"stockQty"`
	// null until counted
	CountQty *int64 `bson:"countQty"`
}

type SessionEntity struct {
	ID                 string        `bson:"_id"`
	Month              int           `bson:"month"`
	Year               int           `bson:"year"`
	SelectionMode      string        `bson:"selectionMode"`
	SelectedLocationID string        `bson:"selectedLocationId,omitempty"`
	SelectedGroupID    string        `bson:"selectedGroupId,omitempty"`
	StartedBy          string        `bson:"startedBy"`
	StartDate          time.Time     `bson:"startDate"`
	Status             string        `bson:"status"`
	Items              []CountEntity `bson:"items"`
	ApprovalComments   string        `bson:"approvalComments,omitempty"`
	ApprovedBy         string        `bson:"approvedBy,omitempty"`
	ApprovedAt         *time.Time    `bson:"approvedAt,omitempty"`
	CreatedAt          time.Time     `bson:"createdAt"`
	UpdatedAt          time.Time     `bson:"updatedAt"`
}
