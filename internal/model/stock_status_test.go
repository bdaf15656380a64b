package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current int64
		safety  int64
		want    StockLevel
	}{
		{name: "below safety", current: 5, safety: 10, want: StockCritical},
		{name: "just below safety", current: 9, safety: 10, want: StockCritical},
		{name: "at safety", current: 10, safety: 10, want: StockWarning},
		{name: "within buffer", current: 11, safety: 10, want: StockWarning},
		{name: "at buffer edge", current: 125, safety: 100, want: StockWarning},
		{name: "above buffer", current: 126, safety: 100, want: StockGood},
		{name: "well stocked", current: 20, safety: 10, want: StockGood},
		{name: "no safety level, empty", current: 0, safety: 0, want: StockWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClassifyStock(tt.current, tt.safety))
		})
	}
}

func TestClassifyAvailability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current int64
		safety  int64
		want    StockAvailability
	}{
		{name: "empty", current: 0, safety: 10, want: OutOfStock},
		{name: "below safety", current: 5, safety: 10, want: LowStock},
		{name: "at safety", current: 10, safety: 10, want: InStock},
		{name: "within warning buffer is still in stock", current: 11, safety: 10, want: InStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClassifyAvailability(tt.current, tt.safety))
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	t.Parallel()

	assert.True(t, MRFDraft.CanTransition(MRFSubmitted))
	assert.True(t, MRFSubmitted.CanTransition(MRFApproved))
	assert.True(t, MRFSubmitted.CanTransition(MRFRejected))
	assert.False(t, MRFDraft.CanTransition(MRFApproved))
	assert.False(t, MRFApproved.CanTransition(MRFRejected))

	assert.True(t, PRPending.CanTransition(PRApproved))
	assert.True(t, PRPending.CanTransition(PRRejected))
	assert.False(t, PRApproved.CanTransition(PRRejected))
	assert.False(t, PRRejected.CanTransition(PRPending))

	assert.True(t, StockTakeNotStarted.CanTransition(StockTakeInProgress))
	assert.True(t, StockTakeInProgress.CanTransition(StockTakeComplete))
	assert.False(t, StockTakeNotStarted.CanTransition(StockTakeApproved))
	assert.False(t, StockTakeApproved.CanTransition(StockTakeInProgress))
}

func TestStockTakeProgressAndVariance(t *testing.T) {
	t.Parallel()

	qty := func(n int64) *int64 { return &n }
	s := StockTakeSession{
		Items: []CountEntry{
			{SAPNumber: "100", StockQty: 10, CountQty: qty(10)},
			{SAPNumber: "200", StockQty: 5, CountQty: qty(7)},
			{SAPNumber: "300", StockQty: 8, CountQty: qty(3)},
			{SAPNumber: "400", StockQty: 4},
		},
	}

	p := s.Progress()
	assert.Equal(t, StockTakeProgress{Total: 4, Counted: 3, Remaining: 1, Percentage: 75}, p)

	v := s.Variance()
	assert.Equal(t, 2, v.Zero) // uncounted items have no variance
	assert.Equal(t, 1, v.Positive)
	assert.Equal(t, 1, v.Negative)
	assert.Equal(t, int64(2), v.Lines[1].Variance)
	assert.Equal(t, int64(-5), v.Lines[2].Variance)
}
