package repository

import "time"

type MRFItemEntity struct {
	SAPNumber      string `bson:"sapNumber"`
	PartName       string `bson:"partName"`
	Quantity       int64  `bson:"quantity"`
	Unit           string `bson:"unit"`
	StockAvailable int64  `bson:"stockAvailable"`
	Urgent         bool   `bson:"urgent"`
	Notes          string `bson:"notes,omitempty"`
}

type MRFEntity struct {
	ID            string          `bson:"_id"`
	Number        string          `bson:"mrfNumber"`
	Date          time.Time       `bson:"date"`
	RequestedBy   string          `bson:"requestedBy"`
	Department    string          `bson:"department,omitempty"`
	Project       string          `bson:"project,omitempty"`
	Priority      string          `bson:"priority"`
	RequiredDate  *time.Time      `bson:"requiredDate,omitempty"`
	Justification string          `bson:"justification,omitempty"`
	Items         []MRFItemEntity `bson:"items"`
	Status        string          `bson:"status"`
	TotalItems    int             `bson:"totalItems"`
	TotalQuantity int64           `bson:"totalQuantity"`
	CreatedBy     string          `bson:"createdBy,omitempty"`

	ApprovedBy        string     `bson:"approvedBy,omitempty"`
	ApprovalComments  string     `bson:"approvalComments,omitempty"`
	ApprovalDate      *time.Time `bson:"approvalDate,omitempty"`
	RejectedBy        string     `bson:"rejectedBy,omitempty"`
	RejectionComments string     `bson:"rejectionComments,omitempty"`
	RejectionDate     *time.Time `bson:"rejectionDate,omitempty"`

	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}
