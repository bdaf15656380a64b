package listctl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

func TestCodeValidators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		check func(string) bool
		in    string
		want  bool
	}{
		{"group code four letters", IsGroupCode, "BEAR", true},
		{"group code with digit", IsGroupCode, "BEA1", false},
		{"group code too long", IsGroupCode, "TOOLONG", false},
		{"group code empty", IsGroupCode, "", false},
		{"group code lower case", IsGroupCode, "bear", false},
		{"bin code", IsBinCode, "RACK", true},
		{"rack number two digits", IsRackNumber, "01", true},
		{"rack number one digit", IsRackNumber, "1", false},
		{"rack number three digits", IsRackNumber, "001", false},
		{"rack number letters", IsRackNumber, "AB", false},
		{"rack level upper", IsRackLevel, "A", true},
		{"rack level D", IsRackLevel, "D", true},
		{"rack level lower", IsRackLevel, "c", true},
		{"rack level E", IsRackLevel, "E", false},
		{"rack level two chars", IsRackLevel, "AB", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.check(tt.in))
		})
	}
}

func TestRequired(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Required("code", "X", "name", "Y"))

	err := Required("code", "X", "name", "   ")
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.EqualError(t, err, "validation failed: name is required")
}

func TestNormalizeCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BEAR", NormalizeCode("  bear "))
	assert.Equal(t, "", NormalizeCode("   "))
}
