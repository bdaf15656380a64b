package repository

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/document"
)

var Indexes = []string{"name", "serialNumber"}

func NewMachineRepository(coll *mongo.Collection, opts ...document.Option) *document.Store[model.Machine, MachineEntity] {
	return document.New(coll, document.Codec[model.Machine, MachineEntity]{
		ToModel:   EntityToModel,
		FromModel: EntityFromModel,
		ID:        func(m model.Machine) string { return m.ID },
		WithID: func(m model.Machine, id string) model.Machine {
			m.ID = id
			return m
		},
	}, opts...)
}
