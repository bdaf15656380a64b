package repository

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/document"
)

var Indexes = []string{"warehouseId", "locationId"}

func NewLocationRepository(coll *mongo.Collection, opts ...document.Option) *document.Store[model.WarehouseLocation, LocationEntity] {
	return document.New(coll, document.Codec[model.WarehouseLocation, LocationEntity]{
		ToModel:   EntityToModel,
		FromModel: EntityFromModel,
		ID:        func(l model.WarehouseLocation) string { return l.ID },
		WithID: func(l model.WarehouseLocation, id string) model.WarehouseLocation {
			l.ID = id
			return l
		},
	}, opts...)
}
