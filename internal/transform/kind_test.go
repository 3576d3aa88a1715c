package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []string{"shift_keys", "shift_values", "number_values", "set_same_value"}, r.Names())
	assert.True(t, r.Has("Shift_Keys"))

	k, err := r.Lookup(" number_values ")
	require.NoError(t, err)
	assert.Equal(t, NumberValues, k)

	def := r.Get("number_values")
	require.NotNil(t, def)
	assert.Equal(t, []string{"start", "step"}, def.Params)

	_, err = r.Lookup("rotate")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "set_same_value", SetSameValue.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
