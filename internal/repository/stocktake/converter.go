package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

const fieldItems = "items"

func EntityToModel(e SessionEntity) model.StockTakeSession {
	items := make([]model.CountEntry, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, model.CountEntry{
			SAPNumber: it.SAPNumber,
			PartID:    it.PartID,
			PartName:  it.PartName,
			Location:  it.Location,
			StockQty:  it.StockQty,
			CountQty:  it.CountQty,
		})
	}

	return model.StockTakeSession{
		ID:                 e.ID,
		Month:              time.Month(e.Month),
		Year:               e.Year,
		SelectionMode:      model.SelectionMode(e.SelectionMode),
		SelectedLocationID: e.SelectedLocationID,
		SelectedGroupID:    e.SelectedGroupID,
		StartedBy:          e.StartedBy,
		StartDate:          e.StartDate,
		Status:             model.StockTakeStatus(e.Status),
		Items:              items,
		ApprovalComments:   e.ApprovalComments,
		ApprovedBy:         e.ApprovedBy,
		ApprovedAt:         e.ApprovedAt,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func EntityFromModel(s model.StockTakeSession) SessionEntity {
	return SessionEntity{
		ID:                 s.ID,
		Month:              int(s.Month),
		Year:               s.Year,
		SelectionMode:      string(s.SelectionMode),
		SelectedLocationID: s.SelectedLocationID,
		SelectedGroupID:    s.SelectedGroupID,
		StartedBy:          s.StartedBy,
		StartDate:          s.StartDate,
		Status:             string(s.Status),
		Items:              itemsFromModel(s.Items),
		ApprovalComments:   s.ApprovalComments,
		ApprovedBy:         s.ApprovedBy,
		ApprovedAt:         s.ApprovedAt,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func FieldsToBSON(fields model.Fields) bson.M {
	out := make(bson.M, len(fields))
	for k, v := range fields {
		if items, ok := v.([]model.CountEntry); ok && k == fieldItems {
			out[k] = itemsFromModel(items)
			continue
		}
		out[k] = v
	}
	return out
}

func itemsFromModel(items []model.CountEntry) []CountEntity {
	out := make([]CountEntity, 0, len(items))
	for _, it := range items {
		out = append(out, CountEntity{
			SAPNumber: it.SAPNumber,
			PartID:    it.PartID,
			PartName:  it.PartName,
			Location:  it.Location,
			StockQty:  it.StockQty,
			CountQty:  it.CountQty,
		})
	}
	return out
}
