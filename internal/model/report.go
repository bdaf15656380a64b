package model

type FilterLogic string

const (
	MatchAll FilterLogic = "AND"
	MatchAny FilterLogic = "OR"
)

// FieldFilter is a case-insensitive "contains" match on a named field.
type FieldFilter struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type LowStockRow struct {
	PartID       string     `json:"partId"`
	SAPNumber    string     `json:"sapNumber"`
	Name         string     `json:"name"`
	Location     string     `json:"location"`
	CurrentStock int64      `json:"currentStock"`
	SafetyLevel  int64      `json:"safetyLevel"`
	Status       StockLevel `json:"status"`
}

type ValuationRow struct {
	PartID       string  `json:"partId"`
	SAPNumber    string  `json:"sapNumber"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	InternalRef  string  `json:"internalRef"`
	CurrentStock int64   `json:"currentStock"`
	UnitPrice    float64 `json:"unitPrice"`
	TotalValue   float64 `json:"totalValue"`
}

type ValuationReport struct {
	Rows       []ValuationRow `json:"rows"`
	TotalValue float64        `json:"totalValue"`
}

type InquiryRow struct {
	PartID       string            `json:"partId"`
	SAPNumber    string            `json:"sapNumber"`
	Name         string            `json:"name"`
	InternalRef  string            `json:"internalRef"`
	Category     string            `json:"category"`
	RackNumber   string            `json:"rackNumber"`
	RackLevel    string            `json:"rackLevel"`
	Location     string            `json:"location"`
	CurrentStock int64             `json:"currentStock"`
	SafetyLevel  int64             `json:"safetyLevel"`
	StockStatus  StockAvailability `json:"stockStatus"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type Dashboard struct {
	TotalParts      int             `json:"totalParts"`
	LowStockCount   int             `json:"lowStockCount"`
	PendingPRs      int             `json:"pendingPRs"`
	TotalStockValue float64         `json:"totalStockValue"`
	Categories      []CategoryCount `json:"categories"`
}
