package repository

import "time"

type MovementEntity struct {
	ID        string    `bson:"_id"`
	Type      string    `bson:"type"`
	PartID    string    `bson:"partId"`
	PartName  string    `bson:"partName"`
	SAPNumber string    `bson:"sapNumber"`
	Quantity  int64     `bson:"quantity"`
	Date      time.Time `bson:"date"`
	UserID    string    `bson:"userId"`
	UserName  string    `bson:"userName"`
	Remarks   string    `bson:"remarks,omitempty"`

	Supplier            string     `bson:"supplier,omitempty"`
	DeliveryOrderNumber string     `bson:"deliveryOrderNumber,omitempty"`
	DateOfReceipt       *time.Time `bson:"dateOfReceipt,omitempty"`
	CostPerUnit         float64    `bson:"costPerUnit,omitempty"`
	Currency            string     `bson:"currency,omitempty"`
	TotalCost           float64    `bson:"totalCost,omitempty"`

	Receiver    string     `bson:"receiver,omitempty"`
	MRFNumber   string     `bson:"mrfNumber,omitempty"`
	DateOfIssue *time.Time `bson:"dateOfIssue,omitempty"`

	FromLocation string `bson:"fromLocation,omitempty"`
	ToLocation   string `bson:"toLocation,omitempty"`

	CreatedAt time.Time `bson:"createdAt"`
}
