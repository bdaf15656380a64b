package model

import "time"

type MRFStatus string

const (
	MRFDraft     MRFStatus = "Draft"
	MRFSubmitted MRFStatus = "Submitted"
	MRFApproved  MRFStatus = "Approved"
	MRFRejected  MRFStatus = "Rejected"
)

var mrfTransitions = map[MRFStatus][]MRFStatus{
	MRFDraft:     {MRFSubmitted},
	MRFSubmitted: {MRFApproved, MRFRejected},
}

func (s MRFStatus) CanTransition(to MRFStatus) bool {
	for _, next := range mrfTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type MRFItem struct {
	SAPNumber      string `json:"sapNumber"`
	PartName       string `json:"partName"`
	Quantity       int64  `json:"quantity"`
	Unit           string `json:"unit"`
	StockAvailable int64  `json:"stockAvailable"`
	Urgent         bool   `json:"urgent"`
	Notes          string `json:"notes,omitempty"`
}

// MRF is a material requisition form.
type MRF struct {
	ID            string     `json:"id"`
	Number        string     `json:"mrfNumber"`
	Date          time.Time  `json:"date"`
	RequestedBy   string     `json:"requestedBy"`
	Department    string     `json:"department,omitempty"`
	Project       string     `json:"project,omitempty"`
	Priority      Priority   `json:"priority"`
	RequiredDate  *time.Time `json:"requiredDate,omitempty"`
	Justification string     `json:"justification,omitempty"`
	Items         []MRFItem  `json:"items"`
	Status        MRFStatus  `json:"status"`
	TotalItems    int        `json:"totalItems"`
	TotalQuantity int64      `json:"totalQuantity"`
	CreatedBy     string     `json:"createdBy,omitempty"`

	ApprovedBy        string     `json:"approvedBy,omitempty"`
	ApprovalComments  string     `json:"approvalComments,omitempty"`
	ApprovalDate      *time.Time `json:"approvalDate,omitempty"`
	RejectedBy        string     `json:"rejectedBy,omitempty"`
	RejectionComments string     `json:"rejectionComments,omitempty"`
	RejectionDate     *time.Time `json:"rejectionDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MRFFilter struct {
	Search   string
	Status   MRFStatus
	Priority Priority
	From     *time.Time
	To       *time.Time
}

type MRFStats struct {
	Total    int `json:"total"`
	Draft    int `json:"draft"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
