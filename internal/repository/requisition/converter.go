package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

const fieldLines = "lines"

func EntityToModel(e RequisitionEntity) model.PurchaseRequisition {
	lines := make([]model.PRLine, 0, len(e.Lines))
	for _, l := range e.Lines {
		lines = append(lines, model.PRLine{
			PartID:     l.PartID,
			PartName:   l.PartName,
			SAPNumber:  l.SAPNumber,
			Unit:       l.Unit,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TotalPrice: l.TotalPrice,
			Remarks:    l.Remarks,
		})
	}

	return model.PurchaseRequisition{
		ID:                  e.ID,
		SupplierID:          e.SupplierID,
		SupplierName:        e.SupplierName,
		PRDate:              e.PRDate,
		RequiredDate:        e.RequiredDate,
		StorageLocationID:   e.StorageLocationID,
		StorageLocationName: e.StorageLocationName,
		Remarks:             e.Remarks,
		Lines:               lines,
		TotalAmount:         e.TotalAmount,
		RequesterID:         e.RequesterID,
		RequesterName:       e.RequesterName,
		Status:              model.PRStatus(e.Status),
		ApproverID:          e.ApproverID,
		ApproverName:        e.ApproverName,
		ApprovedAt:          e.ApprovedAt,
		RejectionReason:     e.RejectionReason,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func EntityFromModel(pr model.PurchaseRequisition) RequisitionEntity {
	return RequisitionEntity{
		ID:                  pr.ID,
		SupplierID:          pr.SupplierID,
		SupplierName:        pr.SupplierName,
		PRDate:              pr.PRDate,
		RequiredDate:        pr.RequiredDate,
		StorageLocationID:   pr.StorageLocationID,
		StorageLocationName: pr.StorageLocationName,
		Remarks:             pr.Remarks,
		Lines:               linesFromModel(pr.Lines),
		TotalAmount:         pr.TotalAmount,
		RequesterID:         pr.RequesterID,
		RequesterName:       pr.RequesterName,
		Status:              string(pr.Status),
		ApproverID:          pr.ApproverID,
		ApproverName:        pr.ApproverName,
		ApprovedAt:          pr.ApprovedAt,
		RejectionReason:     pr.RejectionReason,
		CreatedAt:           pr.CreatedAt,
		UpdatedAt:           pr.UpdatedAt,
	}
}

func FieldsToBSON(fields model.Fields) bson.M {
	out := make(bson.M, len(fields))
	for k, v := range fields {
		if lines, ok := v.([]model.PRLine); ok && k == fieldLines {
			out[k] = linesFromModel(lines)
			continue
		}
		out[k] = v
	}
	return out
}

func linesFromModel(lines []model.PRLine) []LineEntity {
	out := make([]LineEntity, 0, len(lines))
	for _, l := range lines {
		out = append(out, LineEntity{
			PartID:     l.PartID,
			PartName:   l.PartName,
			SAPNumber:  l.SAPNumber,
			Unit:       l.Unit,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TotalPrice: l.TotalPrice,
			Remarks:    l.Remarks,
		})
	}
	return out
}
