package repository

import "github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"

func EntityToModel(e LocationEntity) model.WarehouseLocation {
	return model.WarehouseLocation{
		ID:           e.ID,
		WarehouseID:  e.WarehouseID,
		LocationID:   e.LocationID,
		LocationName: e.LocationName,
		LocationType: e.LocationType,
		Capacity:     e.Capacity,
		Remarks:      e.Remarks,
		Status:       model.RecordStatus(e.Status),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func EntityFromModel(l model.WarehouseLocation) LocationEntity {
	return LocationEntity{
		ID:           l.ID,
		WarehouseID:  l.WarehouseID,
		LocationID:   l.LocationID,
		LocationName: l.LocationName,
		LocationType: l.LocationType,
		Capacity:     l.Capacity,
		Remarks:      l.Remarks,
		Status:       string(l.Status),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}
