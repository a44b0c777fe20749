package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name               string
		page, size         int
		wantOffset, wantLm int
	}{
		{name: "first page", page: 1, size: 10, wantOffset: 0, wantLm: 10},
		{name: "third page", page: 3, size: 10, wantOffset: 20, wantLm: 10},
		{name: "zero page", page: 0, size: 5, wantOffset: 0, wantLm: 5},
		{name: "default size", page: 2, size: 0, wantOffset: DefaultPageSize, wantLm: DefaultPageSize},
		{name: "clamped size", page: 1, size: 1000, wantOffset: 0, wantLm: MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := Calculate(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLm, limit)
		})
	}
}

func TestNewMeta(t *testing.T) {
	m := NewMeta(2, 20, 20, 45)
	assert.Equal(t, int64(3), m.TotalPages)
	assert.True(t, m.HasPrev)
	assert.True(t, m.HasNext)

	last := NewMeta(3, 40, 20, 45)
	assert.False(t, last.HasNext)
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 4, ParseIntDefault("4", 1))
	assert.Equal(t, 1, ParseIntDefault("", 1))
	assert.Equal(t, 1, ParseIntDefault("x", 1))
}
