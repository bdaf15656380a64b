package model

// Fields is a partial document update keyed by stored field name.
type Fields map[string]any

type RecordStatus string

const (
	StatusActive   RecordStatus = "Active"
	StatusInactive RecordStatus = "Inactive"
)

func (s RecordStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Page is one window of a filtered list.
type Page[T any] struct {
	Items    []T  `json:"items"`
	Start    int  `json:"start"`
	PageSize int  `json:"pageSize"`
	Total    int  `json:"total"`
	Filtered int  `json:"filtered"`
	HasPrev  bool `json:"hasPrev"`
	HasNext  bool `json:"hasNext"`
}
