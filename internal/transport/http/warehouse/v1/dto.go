package http

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/masterdata/supplier"
)

type supplierAddress struct {
	HouseNo    string `json:"houseNo"`
	Building   string `json:"building"`
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	State      string `json:"state"`
	Country    string `json:"country"`
}

type supplierRequest struct {
	Name          string           `json:"name" validate:"required"`
	ContactPerson string           `json:"contactPerson"`
	Email         string           `json:"email" validate:"omitempty,email"`
	Phone         string           `json:"phone"`
	Address       string           `json:"address"`
	Country       string           `json:"country"`
	AddressParts  *supplierAddress `json:"addressParts"`
}

func (req supplierRequest) toModel() model.Supplier {
	d := supplier.Draft{Supplier: model.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Country:       req.Country,
	}}
	if a := req.AddressParts; a != nil {
		d.AddressParts = &model.SupplierAddress{
			HouseNo:    a.HouseNo,
			Building:   a.Building,
			Street:     a.Street,
			PostalCode: a.PostalCode,
			State:      a.State,
			Country:    a.Country,
		}
	}
	return d.Compose()
}

type assignPartsRequest struct {
	PartIDs []string `json:"partIds" validate:"required,min=1,dive,required"`
}

type labelsRequest struct {
	BinIDs []string `json:"binIds"`
}

type stockInRequest struct {
	PartID              string     `json:"partId" validate:"required"`
	Quantity            int64      `json:"quantity" validate:"gt=0"`
	Supplier            string     `json:"supplier"`
	DeliveryOrderNumber string     `json:"deliveryOrderNumber"`
	DateOfReceipt       *time.Time `json:"dateOfReceipt"`
	CostPerUnit         float64    `json:"costPerUnit" validate:"gte=0"`
	Currency            string     `json:"currency" validate:"omitempty,len=3"`
	Remarks             string     `json:"remarks"`
}

func (req stockInRequest) toParams() model.StockInParams {
	return model.StockInParams{
		PartID:              req.PartID,
		Quantity:            req.Quantity,
		Supplier:            req.Supplier,
		DeliveryOrderNumber: req.DeliveryOrderNumber,
		DateOfReceipt:       req.DateOfReceipt,
		CostPerUnit:         req.CostPerUnit,
		Currency:            req.Currency,
		Remarks:             req.Remarks,
	}
}

type stockOutRequest struct {
	PartID      string     `json:"partId" validate:"required"`
	Quantity    int64      `json:"quantity" validate:"gt=0"`
	Receiver    string     `json:"receiver"`
	MRFNumber   string     `json:"mrfNumber"`
	DateOfIssue *time.Time `json:"dateOfIssue"`
	Remarks     string     `json:"remarks"`
}

func (req stockOutRequest) toParams() model.StockOutParams {
	return model.StockOutParams{
		PartID:      req.PartID,
		Quantity:    req.Quantity,
		Receiver:    req.Receiver,
		MRFNumber:   req.MRFNumber,
		DateOfIssue: req.DateOfIssue,
		Remarks:     req.Remarks,
	}
}

type transferRequest struct {
	PartID        string `json:"partId" validate:"required"`
	NewRackNumber string `json:"newRackNumber" validate:"required"`
	NewRackLevel  string `json:"newRackLevel" validate:"required"`
	Remarks       string `json:"remarks"`
}

func (req transferRequest) toParams() model.TransferParams {
	return model.TransferParams{
		PartID:        req.PartID,
		NewRackNumber: req.NewRackNumber,
		NewRackLevel:  req.NewRackLevel,
		Remarks:       req.Remarks,
	}
}

type mrfItemRequest struct {
	SAPNumber string `json:"sapNumber" validate:"required"`
	PartName  string `json:"partName"`
	Quantity  int64  `json:"quantity" validate:"gt=0"`
	Unit      string `json:"unit"`
	Urgent    bool   `json:"urgent"`
	Notes     string `json:"notes"`
}

type mrfRequest struct {
	Date          *time.Time       `json:"date"`
	RequestedBy   string           `json:"requestedBy" validate:"required"`
	Department    string           `json:"department"`
	Project       string           `json:"project"`
	Priority      model.Priority   `json:"priority"`
	RequiredDate  *time.Time       `json:"requiredDate"`
	Justification string           `json:"justification"`
	Items         []mrfItemRequest `json:"items" validate:"required,min=1,dive"`
	Submit        bool             `json:"submit"`
}

func (req mrfRequest) toModel(id string) model.MRF {
	m := model.MRF{
		ID:            id,
		RequestedBy:   req.RequestedBy,
		Department:    req.Department,
		Project:       req.Project,
		Priority:      model.Priority(strings.ToUpper(string(req.Priority))),
		RequiredDate:  req.RequiredDate,
		Justification: req.Justification,
		Items: lo.Map(req.Items, func(it mrfItemRequest, _ int) model.MRFItem {
			return model.MRFItem{
				SAPNumber: it.SAPNumber,
				PartName:  it.PartName,
				Quantity:  it.Quantity,
				Unit:      it.Unit,
				Urgent:    it.Urgent,
				Notes:     it.Notes,
			}
		}),
	}
	if req.Date != nil {
		m.Date = *req.Date
	}
	return m
}

type commentsRequest struct {
	Comments string `json:"comments"`
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type prLineRequest struct {
	PartID    string  `json:"partId" validate:"required"`
	PartName  string  `json:"partName"`
	SAPNumber string  `json:"sapNumber"`
	Unit      string  `json:"unit"`
	Quantity  int64   `json:"quantity" validate:"gt=0"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
	Remarks   string  `json:"remarks"`
}

type requisitionRequest struct {
	SupplierID          string          `json:"supplierId" validate:"required"`
	SupplierName        string          `json:"supplierName"`
	RequiredDate        time.Time       `json:"requiredDate" validate:"required"`
	StorageLocationID   string          `json:"storageLocationId" validate:"required"`
	StorageLocationName string          `json:"storageLocationName"`
	Remarks             string          `json:"remarks"`
	Lines               []prLineRequest `json:"lines" validate:"required,min=1,dive"`
}

func (req requisitionRequest) toModel(id string) model.PurchaseRequisition {
	return model.PurchaseRequisition{
		ID:                  id,
		SupplierID:          req.SupplierID,
		SupplierName:        req.SupplierName,
		RequiredDate:        req.RequiredDate,
		StorageLocationID:   req.StorageLocationID,
		StorageLocationName: req.StorageLocationName,
		Remarks:             req.Remarks,
		Lines: lo.Map(req.Lines, func(l prLineRequest, _ int) model.PRLine {
			return model.PRLine{
				PartID:    l.PartID,
				PartName:  l.PartName,
				SAPNumber: l.SAPNumber,
				Unit:      l.Unit,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice,
				Remarks:   l.Remarks,
			}
		}),
	}
}

type stockTakeStartRequest struct {
	Month              int                 `json:"month" validate:"min=1,max=12"`
	Year               int                 `json:"year" validate:"min=2000"`
	SelectionMode      model.SelectionMode `json:"selectionMode" validate:"omitempty,oneof=All ByLocation ByGroup"`
	SelectedLocationID string              `json:"selectedLocationId"`
	SelectedGroupID    string              `json:"selectedGroupId"`
}

func (req stockTakeStartRequest) toParams() model.StockTakeParams {
	return model.StockTakeParams{
		Month:              time.Month(req.Month),
		Year:               req.Year,
		SelectionMode:      req.SelectionMode,
		SelectedLocationID: req.SelectedLocationID,
		SelectedGroupID:    req.SelectedGroupID,
	}
}

type countsRequest struct {
	Counts map[string]int64 `json:"counts" validate:"required"`
}

type approveStockTakeRequest struct {
	Comments string `json:"comments" validate:"required"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

type filtersRequest struct {
	Filters []model.FieldFilter     `json:"filters"`
	Logic   model.FilterLogic       `json:"logic" validate:"omitempty,oneof=AND OR"`
	Status  model.StockAvailability `json:"stockStatus"`
}
