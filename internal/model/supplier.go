package model

import (
	"strings"
	"time"
)

const DefaultCountry = "Malaysia"

type Supplier struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	Country       string    `json:"country,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type SupplierAddress struct {
	HouseNo    string
	Building   string
	Street     string
	PostalCode string
	State      string
	Country    string
}

// String joins the non-empty address parts with ", ".
func (a SupplierAddress) String() string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.HouseNo, a.Building, a.Street, a.PostalCode, a.State, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
