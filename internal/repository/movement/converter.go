package repository

import "github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"

func EntityToModel(e MovementEntity) model.MovementLog {
	return model.MovementLog{
		ID:                  e.ID,
		Type:                model.MovementType(e.Type),
		PartID:              e.PartID,
		PartName:            e.PartName,
		SAPNumber:           e.SAPNumber,
		Quantity:            e.Quantity,
		Date:                e.Date,
		UserID:              e.UserID,
		UserName:            e.UserName,
		Remarks:             e.Remarks,
		Supplier:            e.Supplier,
		DeliveryOrderNumber: e.DeliveryOrderNumber,
		DateOfReceipt:       e.DateOfReceipt,
		CostPerUnit:         e.CostPerUnit,
		Currency:            e.Currency,
		TotalCost:           e.TotalCost,
		Receiver:            e.Receiver,
		MRFNumber:           e.MRFNumber,
		DateOfIssue:         e.DateOfIssue,
		FromLocation:        e.FromLocation,
		ToLocation:          e.ToLocation,
		CreatedAt:           e.CreatedAt,
	}
}

func EntityFromModel(m model.MovementLog) MovementEntity {
	return MovementEntity{
		ID:                  m.ID,
		Type:                string(m.Type),
		PartID:              m.PartID,
		PartName:            m.PartName,
		SAPNumber:           m.SAPNumber,
		Quantity:            m.Quantity,
		Date:                m.Date,
		UserID:              m.UserID,
		UserName:            m.UserName,
		Remarks:             m.Remarks,
		Supplier:            m.Supplier,
		DeliveryOrderNumber: m.DeliveryOrderNumber,
		DateOfReceipt:       m.DateOfReceipt,
		CostPerUnit:         m.CostPerUnit,
		Currency:            m.Currency,
		TotalCost:           m.TotalCost,
		Receiver:            m.Receiver,
		MRFNumber:           m.MRFNumber,
		DateOfIssue:         m.DateOfIssue,
		FromLocation:        m.FromLocation,
		ToLocation:          m.ToLocation,
		CreatedAt:           m.CreatedAt,
	}
}
