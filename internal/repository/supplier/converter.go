package repository

import "github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"

func EntityToModel(e SupplierEntity) model.Supplier {
	return model.Supplier{
		ID:            e.ID,
		Name:          e.Name,
		ContactPerson: e.ContactPerson,
		Email:         e.Email,
		Phone:         e.Phone,
		Address:       e.Address,
		Country:       e.Country,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func EntityFromModel(s model.Supplier) SupplierEntity {
	return SupplierEntity{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		Country:       s.Country,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
