package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names the part of an entry that failed validation.
type Field string

const (
	FieldKey   Field = "key"
	FieldValue Field = "value"
)

const (
	// LayerKeyWidth is the minimum number of digits in a layer key.
	LayerKeyWidth = 2
	// IndexWidth is the minimum number of digits in an entry index.
	IndexWidth = 4
	// HexWidth is the exact number of hex digits in an entry value.
	HexWidth = 8
	// MaxIndex is the largest index transforms will produce.
	MaxIndex = 9999
	// MaxValue is the largest entry value.
	MaxValue = 0xFFFFFFFF

	keySeparator = "."
)

// ValidationError describes a malformed key or value.
type ValidationError struct {
	Field   Field
	Input   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Message)
}

func keyError(input, format string, args ...any) *ValidationError {
	return &ValidationError{Field: FieldKey, Input: input, Message: fmt.Sprintf(format, args...)}
}

// LayerKey checks that k is a decimal layer key of at least two digits.
func LayerKey(k string) error {
	if k == "" {
		return keyError(k, "layer key is empty")
	}

	if !isDigits(k) {
		return keyError(k, "layer key must be decimal digits")
	}

	if len(k) < LayerKeyWidth {
		return keyError(k, "layer key must have at least %d digits", LayerKeyWidth)
	}

	return nil
}

// EntryKey checks that k has the "<layer>.<index>" shape.
func EntryKey(k string) error {
	layer, index, ok := strings.Cut(k, keySeparator)
	if !ok {
		return keyError(k, "entry key must be <layer>%s<index>", keySeparator)
	}

	if err := LayerKey(layer); err != nil {
		return keyError(k, "%s", err.(*ValidationError).Message)
	}

	if !isDigits(index) {
		return keyError(k, "index must be decimal digits")
	}

	if len(index) < IndexWidth {
		return keyError(k, "index must have at least %d digits", IndexWidth)
	}

	return nil
}

// Value checks that v is exactly eight hex digits.
func Value(v string) error {
	if len(v) != HexWidth {
		return &ValidationError{
			Field:   FieldValue,
			Input:   v,
			Message: fmt.Sprintf("value must be exactly %d hex digits", HexWidth),
		}
	}

	if !isHex(v) {
		return &ValidationError{Field: FieldValue, Input: v, Message: "value must be hexadecimal"}
	}

	return nil
}

// Entry validates key then value and returns the first failure.
func Entry(key, value string) error {
	if err := EntryKey(key); err != nil {
		return err
	}

	return Value(value)
}

// FormatHex renders n as canonical eight-digit uppercase hex.
func FormatHex(n uint32) string {
	return fmt.Sprintf("%08X", n)
}

// ParseHex parses an entry value of any case. It accepts up to eight
// hex digits so hand-edited short values still produce an offset.
func ParseHex(v string) (uint32, bool) {
	if v == "" || len(v) > HexWidth || !isHex(v) {
		return 0, false
	}

	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return 0, false
	}

	return uint32(n), true
}

// SanitizeHex turns free-form input into a canonical value: an optional
// 0x prefix is dropped, non-hex characters are discarded, the result is
// left-padded with zeros and cut to eight digits.
func SanitizeHex(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	var b strings.Builder

	for _, r := range s {
		if isHexRune(r) {
			b.WriteRune(r)
		}
	}

	out := b.String()
	if len(out) < HexWidth {
		out = strings.Repeat("0", HexWidth-len(out)) + out
	}

	return strings.ToUpper(out[:HexWidth])
}

// CanonicalHex uppercases a valid value and leaves anything else alone.
func CanonicalHex(v string) string {
	if Value(v) != nil {
		return v
	}

	return strings.ToUpper(v)
}

// EqualHex compares two values ignoring case.
func EqualHex(a, b string) bool {
	return strings.EqualFold(a, b)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func isHex(s string) bool {
	for _, r := range s {
		if !isHexRune(r) {
			return false
		}
	}

	return true
}

func isHexRune(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
