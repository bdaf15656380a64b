package repository

import "github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"

func EntityToModel(e StorageBinEntity) model.StorageBin {
	return model.StorageBin{
		ID:            e.ID,
		BinID:         e.BinID,
		MaterialGroup: e.MaterialGroup,
		Description:   e.Description,
		RackNumber:    e.RackNumber,
		RackLevel:     e.RackLevel,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func EntityFromModel(b model.StorageBin) StorageBinEntity {
	return StorageBinEntity{
		ID:            b.ID,
		BinID:         b.BinID,
		MaterialGroup: b.MaterialGroup,
		Description:   b.Description,
		RackNumber:    b.RackNumber,
		RackLevel:     b.RackLevel,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
