package repository

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/document"
)

var Indexes = []string{"warehouseId", "warehouseCode"}

func NewWarehouseRepository(coll *mongo.Collection, opts ...document.Option) *document.Store[model.Warehouse, WarehouseEntity] {
	return document.New(coll, document.Codec[model.Warehouse, WarehouseEntity]{
		ToModel:   EntityToModel,
		FromModel: EntityFromModel,
		ID:        func(w model.Warehouse) string { return w.ID },
		WithID: func(w model.Warehouse, id string) model.Warehouse {
			w.ID = id
			return w
		},
	}, opts...)
}
