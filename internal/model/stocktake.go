package model

import (
	"fmt"
	"time"
)

type StockTakeStatus string

const (
	StockTakeNotStarted StockTakeStatus = "Not Started"
	StockTakeInProgress StockTakeStatus = "In Progress"
	StockTakeApproved   StockTakeStatus = "Approved"
	StockTakeRejected   StockTakeStatus = "Rejected"
	StockTakeComplete   StockTakeStatus = "Complete"
)

var stockTakeTransitions = map[StockTakeStatus][]StockTakeStatus{
	StockTakeNotStarted: {StockTakeInProgress},
	StockTakeInProgress: {StockTakeApproved, StockTakeRejected, StockTakeComplete},
}

func (s StockTakeStatus) Valid() bool {
	switch s {
	case StockTakeNotStarted, StockTakeInProgress, StockTakeApproved, StockTakeRejected, StockTakeComplete:
		return true
	}
	return false
}

func (s StockTakeStatus) CanTransition(to StockTakeStatus) bool {
	for _, next := range stockTakeTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type SelectionMode string

const (
	SelectAll        SelectionMode = "All"
	SelectByLocation SelectionMode = "ByLocation"
	SelectByGroup    SelectionMode = "ByGroup"
)

type CountEntry struct {
	SAPNumber string `json:"sapNumber"`
	PartID    string `json:"partId"`
	PartName  string `json:"partName"`
	Location  string `json:"location"`
	// StockQty is the system quantity captured when the session started.
	StockQty int64 `json:"stockQty"`
	// CountQty is nil until the item has been counted.
	CountQty *int64 `json:"countQty"`
}

func (e CountEntry) Counted() bool { return e.CountQty != nil }

func (e CountEntry) Variance() int64 {
	if e.CountQty == nil {
		return 0
	}
	return *e.CountQty - e.StockQty
}

type StockTakeSession struct {
	ID                 string          `json:"id"`
	Month              time.Month      `json:"month"`
	Year               int             `json:"year"`
	SelectionMode      SelectionMode   `json:"selectionMode"`
	SelectedLocationID string          `json:"selectedLocationId,omitempty"`
	SelectedGroupID    string          `json:"selectedGroupId,omitempty"`
	StartedBy          string          `json:"startedBy"`
	StartDate          time.Time       `json:"startDate"`
	Status             StockTakeStatus `json:"status"`
	Items              []CountEntry    `json:"items"`
	ApprovalComments   string          `json:"approvalComments,omitempty"`
	ApprovedBy         string          `json:"approvedBy,omitempty"`
	ApprovedAt         *time.Time      `json:"approvedAt,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// Period renders the session period, e.g. "March 2025".
func (s StockTakeSession) Period() string {
	return fmt.Sprintf("%s %d", s.Month, s.Year)
}

func (s StockTakeSession) Progress() StockTakeProgress {
	p := StockTakeProgress{Total: len(s.Items)}
	for _, it := range s.Items {
		if it.Counted() {
			p.Counted++
		}
	}
	p.Remaining = p.Total - p.Counted
	if p.Total > 0 {
		p.Percentage = float64(p.Counted) * 100 / float64(p.Total)
	}
	return p
}

type StockTakeProgress struct {
	Total      int     `json:"total"`
	Counted    int     `json:"counted"`
	Remaining  int     `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

type VarianceLine struct {
	CountEntry
	Variance int64 `json:"variance"`
}

type VarianceReport struct {
	Lines    []VarianceLine `json:"lines"`
	Zero     int            `json:"zero"`
	Positive int            `json:"positive"`
	Negative int            `json:"negative"`
}

func (s StockTakeSession) Variance() VarianceReport {
	r := VarianceReport{Lines: make([]VarianceLine, 0, len(s.Items))}
	for _, it := range s.Items {
		v := it.Variance()
		r.Lines = append(r.Lines, VarianceLine{CountEntry: it, Variance: v})
		switch {
		case v > 0:
			r.Positive++
		case v < 0:
			r.Negative++
		default:
			r.Zero++
		}
	}
	return r
}

type StockTakeParams struct {
	Month              time.Month
	Year               int
	SelectionMode      SelectionMode
	SelectedLocationID string
	SelectedGroupID    string
}

func (m SelectionMode) Valid() bool {
	switch m {
	case SelectAll, SelectByLocation, SelectByGroup:
		return true
	}
	return false
}
