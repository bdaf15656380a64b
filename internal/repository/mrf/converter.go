package repository

import (
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

const fieldItems = "items"

func EntityToModel(e MRFEntity) model.MRF {
	return model.MRF{
		ID:                e.ID,
		Number:            e.Number,
		Date:              e.Date,
		RequestedBy:       e.RequestedBy,
		Department:        e.Department,
		Project:           e.Project,
		Priority:          model.Priority(e.Priority),
		RequiredDate:      e.RequiredDate,
		Justification:     e.Justification,
		Items:             lo.Map(e.Items, func(it MRFItemEntity, _ int) model.MRFItem { return itemToModel(it) }),
		Status:            model.MRFStatus(e.Status),
		TotalItems:        e.TotalItems,
		TotalQuantity:     e.TotalQuantity,
		CreatedBy:         e.CreatedBy,
		ApprovedBy:        e.ApprovedBy,
		ApprovalComments:  e.ApprovalComments,
		ApprovalDate:      e.ApprovalDate,
		RejectedBy:        e.RejectedBy,
		RejectionComments: e.RejectionComments,
		RejectionDate:     e.RejectionDate,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func EntityFromModel(m model.MRF) MRFEntity {
	return MRFEntity{
		ID:                m.ID,
		Number:            m.Number,
		Date:              m.Date,
		RequestedBy:       m.RequestedBy,
		Department:        m.Department,
		Project:           m.Project,
		Priority:          string(m.Priority),
		RequiredDate:      m.RequiredDate,
		Justification:     m.Justification,
		Items:             itemsFromModel(m.Items),
		Status:            string(m.Status),
		TotalItems:        m.TotalItems,
		TotalQuantity:     m.TotalQuantity,
		CreatedBy:         m.CreatedBy,
		ApprovedBy:        m.ApprovedBy,
		ApprovalComments:  m.ApprovalComments,
		ApprovalDate:      m.ApprovalDate,
		RejectedBy:        m.RejectedBy,
		RejectionComments: m.RejectionComments,
		RejectionDate:     m.RejectionDate,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FieldsToBSON converts line items to their stored form.
func FieldsToBSON(fields model.Fields) bson.M {
	out := make(bson.M, len(fields))
	for k, v := range fields {
		if items, ok := v.([]model.MRFItem); ok && k == fieldItems {
			out[k] = itemsFromModel(items)
			continue
		}
		out[k] = v
	}
	return out
}

func itemToModel(e MRFItemEntity) model.MRFItem {
	return model.MRFItem{
		SAPNumber:      e.SAPNumber,
		PartName:       e.PartName,
		Quantity:       e.Quantity,
		Unit:           e.Unit,
		StockAvailable: e.StockAvailable,
		Urgent:         e.Urgent,
		Notes:          e.Notes,
	}
}

func itemsFromModel(items []model.MRFItem) []MRFItemEntity {
	out := make([]MRFItemEntity, 0, len(items))
	for _, it := range items {
		out = append(out, MRFItemEntity{
			SAPNumber:      it.SAPNumber,
			PartName:       it.PartName,
			Quantity:       it.Quantity,
			Unit:           it.Unit,
			StockAvailable: it.StockAvailable,
			Urgent:         it.Urgent,
			Notes:          it.Notes,
		})
	}
	return out
}
