package mapfile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mappy/internal/entry"
)

func TestRepairOrder(t *testing.T) {
	layers := map[string]string{"00": "", "01": "", "02": ""}

	assert.Equal(t, []string{"00", "02", "01"}, RepairOrder(layers, []string{"00", "02"}))
	assert.Equal(t, []string{"00", "01", "02"}, RepairOrder(layers, nil))
	assert.Equal(t, []string{"02", "02", "00", "01"}, RepairOrder(layers, []string{"02", "x", "02"}))
	assert.Empty(t, RepairOrder(nil, []string{"00"}))
}

func TestRepairOrder_NumericNotLexical(t *testing.T) {
	layers := map[string]string{"100": "", "09": "", "10": ""}
	assert.Equal(t, []string{"09", "10", "100"}, RepairOrder(layers, nil))
}

func TestDocument_NormalizeAndAccessors(t *testing.T) {
	d := &Document{Layers: map[string]string{"01": "a"}}
	d.Normalize()

	assert.Equal(t, []string{"01"}, d.Order)
	assert.NotNil(t, d.Targets)
	assert.NotNil(t, d.Sources)

	d.SetEntries(entry.Sources, entry.Entries{"01.0000": "00000000"})
	assert.Len(t, d.Entries(entry.Sources), 1)
	assert.Empty(t, d.Entries(entry.Targets))

	d.SetEntries(entry.Targets, nil)
	assert.NotNil(t, d.Targets)
	assert.Nil(t, d.Internal())
}

func TestDocument_CloneIsDeep(t *testing.T) {
	d := New()
	d.Layers["00"] = "a"
	d.Order = []string{"00"}
	d.Targets["00.0000"] = "00000000"
	d.Passthrough = []Section{{Name: "Internal", Pairs: []Pair{{"k", "v"}}}}

	c := d.Clone()
	c.Layers["01"] = "b"
	c.Order[0] = "zz"
	c.Targets["00.0001"] = "00000001"
	c.Passthrough[0].Pairs[0].Value = "changed"

	assert.Len(t, d.Layers, 1)
	assert.Equal(t, "00", d.Order[0])
	assert.Len(t, d.Targets, 1)
	assert.Equal(t, "v", d.Internal()[0].Value)
}
