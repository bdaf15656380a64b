package repository

import (
	"github.com/bwmarrin/snowflake"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/document"
)

var Indexes = []string{"partId", "sapNumber", "type", "date"}

// NewMovementRepository stores movement logs under time-ordered snowflake
// ids generated by node.
func NewMovementRepository(coll *mongo.Collection, node *snowflake.Node, opts ...document.Option) *document.Store[model.MovementLog, MovementEntity] {
	opts = append([]document.Option{
		document.WithIDGenerator(func() string { return node.Generate().String() }),
	}, opts...)

	return document.New(coll, document.Codec[model.MovementLog, MovementEntity]{
		ToModel:   EntityToModel,
		FromModel: EntityFromModel,
		ID:        func(m model.MovementLog) string { return m.ID },
		WithID: func(m model.MovementLog, id string) model.MovementLog {
			m.ID = id
			return m
		},
	}, opts...)
}
