package listctl

import (
	"errors"
	"time"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

var errBoom = errors.New("boom")

var admin = model.AuthorizationContext{UserID: "u-1", UserName: "Admin", GroupID: "a"}

// departmentSchema is a small schema used across the controller tests.
func departmentSchema() Schema[model.Department] {
	return Schema[model.Department]{
		Resource: model.ResourceDepartmentMaster,
		ID:       func(d model.Department) string { return d.ID },
		Normalize: func(d model.Department) model.Department {
			d.Code = NormalizeCode(d.Code)
			d.Name = NormalizeCode(d.Name)
			if d.Status == "" {
				d.Status = model.StatusActive
			}
			return d
		},
		Validate: func(d model.Department) error {
			return Required("department code", d.Code, "department name", d.Name)
		},
		Keys: []Key[model.Department]{
			{Name: "department code", Value: func(d model.Department) string { return d.Code }},
		},
		Searchable: func(d model.Department) []string {
			return []string{d.DepartmentID, d.Code, d.Name}
		},
		Fields: func(d model.Department) model.Fields {
			return model.Fields{
				"departmentCode": d.Code,
				"departmentName": d.Name,
				"status":         d.Status,
			}
		},
		Stamp: func(d model.Department, now time.Time) model.Department {
			d.CreatedAt, d.UpdatedAt = now, now
			return d
		},
	}
}
