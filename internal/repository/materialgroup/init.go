package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

type BatchCreator interface {
	CreateBatch(ctx context.Context, groups []model.MaterialGroup) error
}

// MaterialGroupsBootstrap seeds demo groups and returns them with their
// store ids so parts can reference them.
func MaterialGroupsBootstrap(ctx context.Context, c BatchCreator) ([]model.MaterialGroup, error) {
	now := time.Now()

	groups := []model.MaterialGroup{
		{ID: uuid.NewString(), GroupID: "BEAR", Name: "BEARINGS", Description: "Ball and roller bearings", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), GroupID: "BELT", Name: "BELTS", Description: "Drive and conveyor belts", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), GroupID: "SEAL", Name: "SEALS", Description: "Oil seals and o-rings", CreatedAt: now, UpdatedAt: now},
	}

	if err := c.CreateBatch(ctx, groups); err != nil {
		return nil, err
	}
	return groups, nil
}
