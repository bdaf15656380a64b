package model

import "time"

type PRStatus string

const (
	PRPending  PRStatus = "Pending"
	PRApproved PRStatus = "Approved"
	PRRejected PRStatus = "Rejected"
)

// CanTransition allows only Pending → Approved|Rejected; both are terminal.
func (s PRStatus) CanTransition(to PRStatus) bool {
	return s == PRPending && (to == PRApproved || to == PRRejected)
}

type PRLine struct {
	PartID     string  `json:"partId"`
	PartName   string  `json:"partName"`
	SAPNumber  string  `json:"sapNumber"`
	Unit       string  `json:"unit,omitempty"`
	Quantity   int64   `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
	Remarks    string  `json:"remarks,omitempty"`
}

type PurchaseRequisition struct {
	ID                  string     `json:"id"`
	SupplierID          string     `json:"supplierId"`
	SupplierName        string     `json:"supplierName"`
	PRDate              time.Time  `json:"prDate"`
	RequiredDate        time.Time  `json:"requiredDate"`
	StorageLocationID   string     `json:"storageLocationId"`
	StorageLocationName string     `json:"storageLocationName"`
	Remarks             string     `json:"remarks,omitempty"`
	Lines               []PRLine   `json:"lines"`
	TotalAmount         float64    `json:"totalAmount"`
	RequesterID         string     `json:"requesterId"`
	RequesterName       string     `json:"requesterName"`
	Status              PRStatus   `json:"status"`
	ApproverID          string     `json:"approverId,omitempty"`
	ApproverName        string     `json:"approverName,omitempty"`
	ApprovedAt          *time.Time `json:"approvedAt,omitempty"`
	RejectionReason     string     `json:"rejectionReason,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

type PRStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
