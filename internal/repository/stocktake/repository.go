package repository

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/document"
)

var Indexes = []string{"status", "year"}

func NewStockTakeRepository(coll *mongo.Collection, opts ...document.Option) *document.Store[model.StockTakeSession, SessionEntity] {
	return document.New(coll, document.Codec[model.StockTakeSession, SessionEntity]{
		ToModel:   EntityToModel,
		FromModel: EntityFromModel,
		ID:        func(s model.StockTakeSession) string { return s.ID },
		WithID: func(s model.StockTakeSession, id string) model.StockTakeSession {
			s.ID = id
			return s
		},
		Fields: FieldsToBSON,
	}, opts...)
}
