package repository

import "github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"

func EntityToModel(e WarehouseEntity) model.Warehouse {
	return model.Warehouse{
		ID:          e.ID,
		WarehouseID: e.WarehouseID,
		Code:        e.Code,
		Name:        e.Name,
		Location:    e.Location,
		Capacity:    e.Capacity,
		Remarks:     e.Remarks,
		Status:      model.RecordStatus(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func EntityFromModel(w model.Warehouse) WarehouseEntity {
	return WarehouseEntity{
		ID:          w.ID,
		WarehouseID: w.WarehouseID,
		Code:        w.Code,
		Name:        w.Name,
		Location:    w.Location,
		Capacity:    w.Capacity,
		Remarks:     w.Remarks,
		Status:      string(w.Status),
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
