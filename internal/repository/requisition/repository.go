package repository

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/document"
)

var Indexes = []string{"status", "supplierId"}

func NewRequisitionRepository(coll *mongo.Collection, opts ...document.Option) *document.Store[model.PurchaseRequisition, RequisitionEntity] {
	return document.New(coll, document.Codec[model.PurchaseRequisition, RequisitionEntity]{
		ToModel:   EntityToModel,
		FromModel: EntityFromModel,
		ID:        func(pr model.PurchaseRequisition) string { return pr.ID },
		WithID: func(pr model.PurchaseRequisition, id string) model.PurchaseRequisition {
			pr.ID = id
			return pr
		},
		Fields: FieldsToBSON,
	}, opts...)
}
