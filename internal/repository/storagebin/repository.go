package repository

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/document"
)

var Indexes = []string{"binId"}

func NewStorageBinRepository(coll *mongo.Collection, opts ...document.Option) *document.Store[model.StorageBin, StorageBinEntity] {
	return document.New(coll, document.Codec[model.StorageBin, StorageBinEntity]{
		ToModel:   EntityToModel,
		FromModel: EntityFromModel,
		ID:        func(b model.StorageBin) string { return b.ID },
		WithID: func(b model.StorageBin, id string) model.StorageBin {
			b.ID = id
			return b
		},
	}, opts...)
}
