package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_ErrorCombinesMessages(t *testing.T) {
	d := &Diagnostics{}
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddError("invalid_key", "bad key", "Targets", "0.1")
	d.AddError("invalid_value", "bad value", "Targets", "00.0001")
	d.AddWarning("unknown_layer", "layer not declared", "Sources", "07.0000")

	assert.False(t, d.IsValid())
	assert.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[Targets] 0.1: [invalid_key] bad key; [Targets] 00.0001: [invalid_value] bad value",
		err.Error())
}

func TestDiagnostics_MergeAndCodes(t *testing.T) {
	a := &Diagnostics{}
	a.AddInfo("nonzero_offset", "offset 5", "", "")

	b := Diagnostics{}
	b.AddWarning("w", "warn", "", "")
	b.AddError("e", "err", "", "")

	a.Merge(b)
	assert.Equal(t, []string{"e", "w", "nonzero_offset"}, a.Codes())
}

func TestDiagnostic_StringWithoutScope(t *testing.T) {
	d := Diagnostic{Code: "x", Message: "plain"}
	assert.Equal(t, "[x] plain", d.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
