package repository

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/document"
)

var Indexes = []string{"mrfNumber", "status"}

func NewMRFRepository(coll *mongo.Collection, opts ...document.Option) *document.Store[model.MRF, MRFEntity] {
	return document.New(coll, document.Codec[model.MRF, MRFEntity]{
		ToModel:   EntityToModel,
		FromModel: EntityFromModel,
		ID:        func(m model.MRF) string { return m.ID },
		WithID: func(m model.MRF, id string) model.MRF {
			m.ID = id
			return m
		},
		Fields: FieldsToBSON,
	}, opts...)
}
