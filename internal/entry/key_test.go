package entry

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeOffset(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  Offset
	}{
		{"index minus value", "00.0010", "00000005", Offset{Value: 5, Valid: true}},
		{"hex value", "01.0100", "00000050", Offset{Value: 20, Valid: true}},
		{"negative", "01.0005", "00000015", Offset{Value: -16, Valid: true}},
		{"lowercase hex", "00.0255", "000000ff", Offset{Value: 0, Valid: true}},
		{"bad index", "00.00x0", "00000000", Offset{}},
		{"no separator", "000010", "00000000", Offset{}},
		{"bad value", "00.0010", "zz", Offset{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeOffset(tt.key, tt.value))
		})
	}
}

func TestOffset_String(t *testing.T) {
	assert.Equal(t, "-256", Offset{Value: -256, Valid: true}.String())
	assert.Equal(t, "NaN", Offset{}.String())
	assert.True(t, Offset{Valid: true}.IsZero())
	assert.False(t, Offset{}.IsZero())
}

func TestCompareKeys(t *testing.T) {
	keys := []string{"10.0000", "02.0010", "02.0002", "junk", "1.0005", "02.10000"}
	slices.SortFunc(keys, CompareKeys)

	assert.Equal(t, []string{"1.0005", "02.0002", "02.0010", "02.10000", "10.0000", "junk"}, keys)
}

func TestFormatKey(t *testing.T) {
	assert.Equal(t, "01.0007", FormatKey("01", 7))
	assert.Equal(t, "01.10000", FormatKey("01", 10000))
}

func TestParseSection(t *testing.T) {
	s, err := ParseSection("sources")
	assert.NoError(t, err)
	assert.Equal(t, Sources, s)
	assert.Equal(t, "Targets", Targets.String())

	_, err = ParseSection("layers")
	assert.Error(t, err)
}
