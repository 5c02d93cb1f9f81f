package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		mv   int
		want int
	}{
		{mv: 0, want: 0},
		{mv: 3500, want: 0},
		{mv: 3535, want: 5},
		{mv: 3850, want: 50},
		{mv: 4199, want: 99},
		{mv: 4200, want: 100},
		{mv: 5000, want: 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, percent(tt.mv, 3500, 4200), "%d mV", tt.mv)
	}
}
