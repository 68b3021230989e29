package period

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDays(t *testing.T) {
	tests := []struct {
		period string
		want   int
	}{
		{"30 дней", 30},
		{"1 день", 1},
		{"90 дней", 90},
		{"Одноразовая покупка", 0},
		{"навсегда", 0},
		{"", 0},
		{"дней", 0},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			assert.Equal(t, tt.want, Days(tt.period))
		})
	}
}

func TestIsDayCount(t *testing.T) {
	tests := []struct {
		period string
		want   bool
	}{
		{"30 дней", true},
		{"1 день", true},
		{"Одноразовая покупка", false},
		{"навсегда", false},
		{"", false},
		{"подписка навсегда, 365 дней в году", false},
		{"lifetime", false},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDayCount(tt.period))
		})
	}
}
