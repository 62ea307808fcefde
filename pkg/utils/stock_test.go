package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampStock(t *testing.T) {
	cases := []struct {
		name  string
		input float64
		want  int64
	}{
		{"zero", 0, 0},
		{"negative", -5, 0},
		{"positive integer", 7, 7},
		{"fractional floors", 3.9, 3},
		{"small fraction floors to zero", 0.4, 0},
		{"large", 100000, 100000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClampStock(tc.input))
		})
	}
}

func TestDeriveInStock_ZeroStockAlwaysWins(t *testing.T) {
	yes := true
	assert.False(t, DeriveInStock(0, nil))
	assert.False(t, DeriveInStock(0, &yes))
}

func TestDeriveInStock_OverrideApplies(t *testing.T) {
	no := false
	yes := true
	assert.True(t, DeriveInStock(5, nil))
	assert.True(t, DeriveInStock(5, &yes))
	assert.False(t, DeriveInStock(5, &no))
}
