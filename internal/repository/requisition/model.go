package repository

import "time"

type LineEntity struct {
	PartID     string  `bson:"partId"`
	PartName   string  `bson:"partName"`
	SAPNumber  string  `bson:"sapNumber"`
	Unit       string  `bson:"unit,omitempty"`
	Quantity   int64   `bson:"quantity"`
	UnitPrice  float64 `bson:"unitPrice"`
	TotalPrice float64 `bson:"totalPrice"`
	Remarks    string  `bson:"remarks,omitempty"`
}

type RequisitionEntity struct {
	ID                  string       `bson:"_id"`
	SupplierID          string       `bson:"supplierId"`
	SupplierName        string       `bson:"supplierName"`
	PRDate              time.Time    `bson:"prDate"`
	RequiredDate        time.Time    `bson:"requiredDate"`
	StorageLocationID   string       `bson:"storageLocationId"`
	StorageLocationName string       `bson:"storageLocationName"`
	Remarks             string       `bson:"remarks,omitempty"`
	Lines               []LineEntity `bson:"lines"`
	TotalAmount         float64      `bson:"totalAmount"`
	RequesterID         string       `bson:"requesterId"`
	RequesterName       string       `bson:"requesterName"`
	Status              string       `bson:"status"`
	ApproverID          string       `bson:"approverId,omitempty"`
	ApproverName        string       `bson:"approverName,omitempty"`
	ApprovedAt          *time.Time   `bson:"approvedAt,omitempty"`
	RejectionReason     string       `bson:"rejectionReason,omitempty"`
	CreatedAt           time.Time    `bson:"createdAt"`
	UpdatedAt           time.Time    `bson:"updatedAt"`
}
