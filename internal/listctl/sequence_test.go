package listctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing []string
		prefix   string
		width    int
		want     string
	}{
		{"empty", nil, "DEPT-", 3, "DEPT-001"},
		{"gap uses highest", []string{"DEPT-001", "DEPT-007", "DEPT-003"}, "DEPT-", 3, "DEPT-008"},
		{"ignores other prefixes and garbage", []string{"WH-009", "DEPT-abc", "DEPT-", "DEPT-002"}, "DEPT-", 3, "DEPT-003"},
		{"prefix is case-insensitive", []string{"dept-004"}, "DEPT-", 3, "DEPT-005"},
		{"widens past padding", []string{"M-99"}, "M-", 2, "M-100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NextSequence(tt.existing, tt.prefix, tt.width))
		})
	}
}
