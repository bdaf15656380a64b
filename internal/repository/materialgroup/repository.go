package repository

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/document"
)

var Indexes = []string{"groupId"}

func NewMaterialGroupRepository(coll *mongo.Collection, opts ...document.Option) *document.Store[model.MaterialGroup, MaterialGroupEntity] {
	return document.New(coll, document.Codec[model.MaterialGroup, MaterialGroupEntity]{
		ToModel:   EntityToModel,
		FromModel: EntityFromModel,
		ID:        func(g model.MaterialGroup) string { return g.ID },
		WithID: func(g model.MaterialGroup, id string) model.MaterialGroup {
			g.ID = id
			return g
		},
	}, opts...)
}
