package repository

import "github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"

func EntityToModel(e MaterialGroupEntity) model.MaterialGroup {
	return model.MaterialGroup{
		ID:          e.ID,
		GroupID:     e.GroupID,
		Name:        e.Name,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func EntityFromModel(g model.MaterialGroup) MaterialGroupEntity {
	return MaterialGroupEntity{
		ID:          g.ID,
		GroupID:     g.GroupID,
		Name:        g.Name,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
