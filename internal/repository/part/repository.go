package repository

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/document"
)

var Indexes = []string{"sapNumber", "materialGroupId", "category"}

func NewPartRepository(coll *mongo.Collection, opts ...document.Option) *document.Store[model.Part, PartEntity] {
	return document.New(coll, document.Codec[model.Part, PartEntity]{
		ToModel:   EntityToModel,
		FromModel: EntityFromModel,
		ID:        func(p model.Part) string { return p.ID },
		WithID: func(p model.Part, id string) model.Part {
			p.ID = id
			return p
		},
		Fields: FieldsToBSON,
	}, opts...)
}
