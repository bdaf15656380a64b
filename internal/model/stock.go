package model

import "time"

type StockInParams struct {
	PartID              string
	Quantity            int64
	Supplier            string
	DeliveryOrderNumber string
	DateOfReceipt       *time.Time
	CostPerUnit         float64
	Currency            string
	Remarks             string
}

type StockOutParams struct {
	PartID      string
	Quantity    int64
	Receiver    string
	MRFNumber   string
	DateOfIssue *time.Time
	Remarks     string
}

type TransferParams struct {
	PartID        string
	NewRackNumber string
	NewRackLevel  string
	Remarks       string
}

// AdjustParams sets a part's stock to a counted quantity. Variance is the
// count minus the stock recorded when counting started; it is logged as
// is, even if stock moved since.
type AdjustParams struct {
	PartID     string
	CountedQty int64
	Variance   int64
	Remarks    string
}
