package entry

import (
	"strconv"
	"strings"

	"mappy/internal/common"
	"mappy/internal/validate"
)

// Separator splits an entry key into its layer and index tokens.
const Separator = "."

// SplitKey returns the layer and index tokens of key.
func SplitKey(key string) (layer, index string, ok bool) {
	return strings.Cut(key, Separator)
}

// LayerOf returns the layer token of key, or "" if key has no separator.
func LayerOf(key string) string {
	layer, _, ok := SplitKey(key)
	if !ok {
		return ""
	}

	return layer
}

// ParseIndex returns the numeric index of key.
func ParseIndex(key string) (int64, bool) {
	_, index, ok := SplitKey(key)
	if !ok {
		return 0, false
	}

	return common.ParseDecimal(index)
}

// FormatKey builds "<layer>.<index>" with the index padded to four digits.
func FormatKey(layer string, index int64) string {
	return layer + Separator + common.PadDecimal(index, validate.IndexWidth)
}

// CompareKeys orders keys by numeric layer, then numeric index.
// Keys that do not parse sort after the ones that do.
func CompareKeys(a, b string) int {
	la, ia, okA := SplitKey(a)
	lb, ib, okB := SplitKey(b)

	switch {
	case okA && !okB:
		return -1
	case !okA && okB:
		return 1
	case !okA && !okB:
		return strings.Compare(a, b)
	}

	if c := common.CompareNumeric(la, lb); c != 0 {
		return c
	}

	if c := common.CompareNumeric(ia, ib); c != 0 {
		return c
	}

	return strings.Compare(a, b)
}

// Offset is the signed distance between an entry's index and its value.
// Valid is false when either part does not parse.
type Offset struct {
	Value int64
	Valid bool
}

// ComputeOffset returns decimal(index) - hex(value) for key and value.
func ComputeOffset(key, value string) Offset {
	index, ok := ParseIndex(key)
	if !ok {
		return Offset{}
	}

	n, ok := validate.ParseHex(value)
	if !ok {
		return Offset{}
	}

	return Offset{Value: index - int64(n), Valid: true}
}

// IsZero reports a valid zero offset.
func (o Offset) IsZero() bool {
	return o.Valid && o.Value == 0
}

func (o Offset) String() string {
	if !o.Valid {
		return "NaN"
	}

	return strconv.FormatInt(o.Value, 10)
}
