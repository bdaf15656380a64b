package repository

import "github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"

func EntityToModel(e DepartmentEntity) model.Department {
	return model.Department{
		ID:           e.ID,
		DepartmentID: e.DepartmentID,
		Code:         e.Code,
		Name:         e.Name,
		Description:  e.Description,
		Status:       model.RecordStatus(e.Status),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func EntityFromModel(d model.Department) DepartmentEntity {
	return DepartmentEntity{
		ID:           d.ID,
		DepartmentID: d.DepartmentID,
		Code:         d.Code,
		Name:         d.Name,
		Description:  d.Description,
		Status:       string(d.Status),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
