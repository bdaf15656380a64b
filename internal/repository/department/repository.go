package repository

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/document"
)

// Indexes lists the lookup fields indexed at startup.
var Indexes = []string{"departmentId", "departmentCode"}

func NewDepartmentRepository(coll *mongo.Collection, opts ...document.Option) *document.Store[model.Department, DepartmentEntity] {
	return document.New(coll, document.Codec[model.Department, DepartmentEntity]{
		ToModel:   EntityToModel,
		FromModel: EntityFromModel,
		ID:        func(d model.Department) string { return d.ID },
		WithID: func(d model.Department, id string) model.Department {
			d.ID = id
			return d
		},
	}, opts...)
}
