package streak

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrent(t *testing.T) {
	tests := []struct {
		name string
		days []string
		want int
	}{
		{"no completed days", nil, 0},
		{"single day", []string{"2025-03-10"}, 1},
		{"three consecutive days", []string{"2025-03-10", "2025-03-09", "2025-03-08"}, 3},
		{"gap after most recent", []string{"2025-03-10", "2025-03-07"}, 1},
		{"gap mid-run", []string{"2025-03-10", "2025-03-09", "2025-03-06", "2025-03-05"}, 2},
		{"month boundary", []string{"2025-03-01", "2025-02-28", "2025-02-27"}, 3},
		{"year boundary", []string{"2025-01-01", "2024-12-31"}, 2},
		{"stale run still counts", []string{"2025-02-20", "2025-02-19"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Current(tt.days))
		})
	}
}

func TestRate(t *testing.T) {
	assert.Equal(t, 0, Rate(0, 0), "empty window avoids division by zero")
	assert.Equal(t, 57, Rate(4, 7), "round(4/7*100)")
	assert.Equal(t, 100, Rate(7, 7))
	assert.Equal(t, 50, Rate(1, 2))
	assert.Equal(t, 33, Rate(1, 3))
	assert.Equal(t, 67, Rate(2, 3))
	assert.Equal(t, 0, Rate(0, 5))
}
