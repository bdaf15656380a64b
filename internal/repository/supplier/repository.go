package repository

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/document"
)

var Indexes = []string{"name"}

func NewSupplierRepository(coll *mongo.Collection, opts ...document.Option) *document.Store[model.Supplier, SupplierEntity] {
	return document.New(coll, document.Codec[model.Supplier, SupplierEntity]{
		ToModel:   EntityToModel,
		FromModel: EntityFromModel,
		ID:        func(s model.Supplier) string { return s.ID },
		WithID: func(s model.Supplier, id string) model.Supplier {
			s.ID = id
			return s
		},
	}, opts...)
}
