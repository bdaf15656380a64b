package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

type BatchCreator interface {
	CreateBatch(ctx context.Context, parts []model.Part) error
}

// PartsBootstrap seeds a small demo catalogue. groupIDs maps a material
// group code to its store id. Two of the parts have no material group so
// the pending-assignment flow has something to show.
func PartsBootstrap(ctx context.Context, c BatchCreator, groupIDs map[string]string) error {
	now := time.Now()

	parts := []model.Part{
		{
			ID:              uuid.NewString(),
			SAPNumber:       "SP-BEARING-6205",
			InternalRef:     "BRG-001",
			Name:            "Deep Groove Ball Bearing 6205",
			Category:        "Bearings",
			Unit:            model.DefaultUnit,
			MaterialGroupID: groupIDs["BEAR"],
			RackNumber:      "01",
			RackLevel:       "A",
			CurrentStock:    24,
			SafetyLevel:     10,
			UnitPrice:       12.5,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              uuid.NewString(),
			SAPNumber:       "SP-BEARING-6308",
			InternalRef:     "BRG-002",
			Name:            "Deep Groove Ball Bearing 6308",
			Category:        "Bearings",
			Unit:            model.DefaultUnit,
			MaterialGroupID: groupIDs["BEAR"],
			RackNumber:      "01",
			RackLevel:       "B",
			CurrentStock:    6,
			SafetyLevel:     8,
			UnitPrice:       21.9,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              uuid.NewString(),
			SAPNumber:       "SP-BELT-A42",
			InternalRef:     "BLT-042",
			Name:            "V-Belt A42",
			Category:        "Belts",
			Unit:            model.DefaultUnit,
			MaterialGroupID: groupIDs["BELT"],
			RackNumber:      "02",
			RackLevel:       "A",
			CurrentStock:    11,
			SafetyLevel:     10,
			UnitPrice:       8.75,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:            uuid.NewString(),
			SAPNumber:     "SP-SEAL-35X52",
			Name:          "Oil Seal 35x52x7",
			Category:      "Seals",
			Unit:          model.DefaultUnit,
			RackNumber:    "03",
			RackLevel:     "C",
			CurrentStock:  0,
			SafetyLevel:   5,
			MinStockLevel: 2,
			UnitPrice:     3.2,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:           uuid.NewString(),
			SAPNumber:    "SP-FUSE-10A",
			Name:         "Cartridge Fuse 10A",
			Category:     "Electrical",
			Unit:         "BOX",
			CurrentStock: 40,
			SafetyLevel:  10,
			UnitPrice:    15,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	return c.CreateBatch(ctx, parts)
}
