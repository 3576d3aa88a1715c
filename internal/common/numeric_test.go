package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	v, moved := Clamp(int64(0), int64(-5), int64(9999))
	assert.Equal(t, int64(0), v)
	assert.True(t, moved)

	v, moved = Clamp(int64(0), int64(10005), int64(9999))
	assert.Equal(t, int64(9999), v)
	assert.True(t, moved)

	v, moved = Clamp(int64(0), int64(42), int64(9999))
	assert.Equal(t, int64(42), v)
	assert.False(t, moved)
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"0000", 0, true},
		{"0010", 10, true},
		{"10000", 10000, true},
		{"", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"1a", 0, false},
		{" 1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDecimal(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPadDecimal(t *testing.T) {
	assert.Equal(t, "00", PadDecimal(0, 2))
	assert.Equal(t, "0042", PadDecimal(42, 4))
	assert.Equal(t, "10000", PadDecimal(10000, 4))
	assert.Equal(t, "100", PadDecimal(100, 2))
}

func TestCompareNumeric(t *testing.T) {
	assert.Equal(t, -1, CompareNumeric("2", "10"))
	assert.Equal(t, 1, CompareNumeric("10", "02"))
	assert.Equal(t, -1, CompareNumeric("99", "x"))
	assert.Equal(t, 1, CompareNumeric("x", "00"))
	assert.Equal(t, 0, CompareNumeric("01", "01"))
	assert.Equal(t, -1, CompareNumeric("01", "1"))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"00", "02", "01"}, Unique([]string{"00", "02", "00", "01", "02"}))
	assert.Empty(t, Unique([]string{}))
}

func TestReplaceAndRemove(t *testing.T) {
	in := []string{"00", "01", "00"}
	assert.Equal(t, []string{"05", "01", "05"}, Replace(in, "00", "05"))
	assert.Equal(t, []string{"01"}, Remove(in, "00"))
	assert.Equal(t, []string{"00", "01", "00"}, in)
}

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(int64(0), int64(0), int64(9999)))
	assert.True(t, IsInRange(int64(0), int64(9999), int64(9999)))
	assert.False(t, IsInRange(int64(0), int64(10000), int64(9999)))
}
