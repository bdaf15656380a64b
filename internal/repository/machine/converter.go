package repository

import "github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"

func EntityToModel(e MachineEntity) model.Machine {
	return model.Machine{
		ID:           e.ID,
		Name:         e.Name,
		Model:        e.Model,
		SerialNumber: e.SerialNumber,
		Location:     e.Location,
		Status:       model.RecordStatus(e.Status),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func EntityFromModel(m model.Machine) MachineEntity {
	return MachineEntity{
		ID:           m.ID,
		Name:         m.Name,
		Model:        m.Model,
		SerialNumber: m.SerialNumber,
		Location:     m.Location,
		Status:       string(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
