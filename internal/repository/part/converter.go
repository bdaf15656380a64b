package repository

import (
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

func EntityToModel(e PartEntity) model.Part {
	return model.Part{
		ID:              e.ID,
		SAPNumber:       e.SAPNumber,
		InternalRef:     e.InternalRef,
		Name:            e.Name,
		Category:        e.Category,
		Unit:            e.Unit,
		MaterialGroupID: lo.FromPtr(e.MaterialGroupID),
		RackNumber:      e.RackNumber,
		RackLevel:       e.RackLevel,
		CurrentStock:    e.CurrentStock,
		SafetyLevel:     e.SafetyLevel,
		MinStockLevel:   e.MinStockLevel,
		UnitPrice:       e.UnitPrice,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func EntityFromModel(p model.Part) PartEntity {
	return PartEntity{
		ID:              p.ID,
		SAPNumber:       p.SAPNumber,
		InternalRef:     p.InternalRef,
		Name:            p.Name,
		Category:        p.Category,
		Unit:            p.Unit,
		MaterialGroupID: groupRef(p.MaterialGroupID),
		RackNumber:      p.RackNumber,
		RackLevel:       p.RackLevel,
		CurrentStock:    p.CurrentStock,
		SafetyLevel:     p.SafetyLevel,
		MinStockLevel:   p.MinStockLevel,
		UnitPrice:       p.UnitPrice,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// FieldsToBSON stores an empty material group as null.
func FieldsToBSON(fields model.Fields) bson.M {
	out := make(bson.M, len(fields))
	for k, v := range fields {
		if k == model.PartFieldMaterialGroupID {
			if s, ok := v.(string); ok {
				out[k] = groupRef(s)
				continue
			}
		}
		out[k] = v
	}
	return out
}

func groupRef(id string) *string {
	if id == "" {
		return nil
	}
	return lo.ToPtr(id)
}
