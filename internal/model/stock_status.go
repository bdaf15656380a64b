package model

// Two stock classifications are in use and intentionally kept apart: the
// low-stock report grades against a 25% buffer above the safety level,
// while stock inquiry uses a plain below-safety check.

type StockLevel string

const (
	StockCritical StockLevel = "Critical"
	StockWarning  StockLevel = "Warning"
	StockGood     StockLevel = "Good"
)

const warningBuffer = 1.25

// ClassifyStock grades stock for the low-stock report.
func ClassifyStock(current, safety int64) StockLevel {
	switch {
	case current < safety:
		return StockCritical
	case float64(current) <= float64(safety)*warningBuffer:
		return StockWarning
	default:
		return StockGood
	}
}

func (l StockLevel) Rank() int {
	switch l {
	case StockCritical:
		return 1
	case StockWarning:
		return 2
	default:
		return 3
	}
}

type StockAvailability string

const (
	InStock    StockAvailability = "In Stock"
	LowStock   StockAvailability = "Low Stock"
	OutOfStock StockAvailability = "Out of Stock"
)

// ClassifyAvailability is the binary rule used by stock inquiry.
func ClassifyAvailability(current, safety int64) StockAvailability {
	switch {
	case current <= 0:
		return OutOfStock
	case current < safety:
		return LowStock
	default:
		return InStock
	}
}

// BelowMinimum is the dashboard's low-stock counter rule. It compares
// against the minimum stock level only, never the safety level.
func BelowMinimum(current, minimum int64) bool {
	return current <= minimum
}
