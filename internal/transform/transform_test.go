package transform

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mappy/internal/entry"
)

func section() entry.Entries {
	return entry.Entries{
		"00.0000": "00000000",
		"00.0001": "00000001",
		"00.0002": "00000002",
		"00.0005": "00000005",
		"01.0000": "00000010",
	}
}

func TestPlan_ShiftKeys(t *testing.T) {
	e := section()
	sel := entry.Pick(e, []string{"00.0000", "00.0001"})

	p, err := Plan(e, sel, Op{Kind: ShiftKeys, Amount: 10})
	require.NoError(t, err)
	require.False(t, p.HasConflicts(), spew.Sdump(p.Conflicts))

	assert.Equal(t, "00.0010", p.Changes[0].NewKey)
	assert.Equal(t, "00.0011", p.Changes[1].NewKey)
	assert.Equal(t, "00000001", p.Changes[1].NewValue)
	assert.Equal(t, int64(10), p.Changes[1].NewOffset().Value)
}

func TestPlan_ShiftKeysClamps(t *testing.T) {
	sel := []entry.Entry{{Key: "02.0003", Value: "00000000"}, {Key: "02.9990", Value: "00000000"}}

	p, err := Plan(nil, sel[:1], Op{Kind: ShiftKeys, Amount: -10})
	require.NoError(t, err)
	assert.Equal(t, "02.0000", p.Changes[0].NewKey)
	assert.True(t, p.Changes[0].Clamped)

	p, err = Plan(nil, sel[1:], Op{Kind: ShiftKeys, Amount: 100})
	require.NoError(t, err)
	assert.Equal(t, "02.9999", p.Changes[0].NewKey)
	assert.True(t, p.Changes[0].Clamped)
}

func TestPlan_ExistingConflict(t *testing.T) {
	e := section()
	sel := entry.Pick(e, []string{"00.0000", "00.0001", "00.0002"})

	// Shifting by 3 moves 00.0002 onto unselected 00.0005.
	p, err := Plan(e, sel, Op{Kind: ShiftKeys, Amount: 3})
	require.NoError(t, err)
	require.Len(t, p.Conflicts, 1)

	c := p.Conflicts[0]
	assert.Equal(t, ConflictExisting, c.Kind)
	assert.Equal(t, "00.0002", c.OldKey)
	assert.Equal(t, "00.0005", c.NewKey)
	assert.Equal(t, -1, c.OtherIndex)
}

func TestPlan_MovingOntoSelectedKeyIsFine(t *testing.T) {
	e := section()
	sel := entry.Pick(e, []string{"00.0000", "00.0001", "00.0002"})

	p, err := Plan(e, sel, Op{Kind: ShiftKeys, Amount: 1})
	require.NoError(t, err)
	assert.False(t, p.HasConflicts())

	out, err := Apply(e, p)
	require.NoError(t, err)
	assert.Equal(t, entry.Entries{
		"00.0001": "00000000",
		"00.0002": "00000001",
		"00.0003": "00000002",
		"00.0005": "00000005",
		"01.0000": "00000010",
	}, out)
}

func TestPlan_BatchConflictBlocksApply(t *testing.T) {
	e := entry.Entries{"00.9998": "00000000", "00.9999": "00000001"}
	sel := entry.Sorted(e)

	p, err := Plan(e, sel, Op{Kind: ShiftKeys, Amount: 0})
	require.NoError(t, err)
	assert.False(t, p.HasConflicts())

	p, err = Plan(e, sel, Op{Kind: ShiftKeys, Amount: 5})
	require.NoError(t, err)
	require.Len(t, p.Conflicts, 1)

	c := p.Conflicts[0]
	assert.Equal(t, ConflictBatch, c.Kind)
	assert.Equal(t, 1, c.Index)
	assert.Equal(t, 0, c.OtherIndex)
	assert.ElementsMatch(t, []string{"00.9998", "00.9999"}, p.ConflictingKeys())

	out, err := Apply(e, p)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrUnresolvedConflicts)

	var ce *ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, p.Conflicts, ce.Conflicts)
	assert.Len(t, e, 2, "entries must be untouched")
}

func TestCompute_ShiftValues(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		amount  int64
		want    string
		clamped bool
		invalid bool
	}{
		{"add", "0000000A", 6, "00000010", false, false},
		{"lowercase input", "0000ff00", 1, "0000FF01", false, false},
		{"clamp high", "FFFFFFFF", 1, "FFFFFFFF", true, false},
		{"clamp low", "00000002", -5, "00000000", true, false},
		{"invalid", "xyz", 1, "xyz", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Compute(Op{Kind: ShiftValues, Amount: tt.amount}, 0, entry.Entry{Key: "00.0000", Value: tt.value})
			require.NoError(t, err)

			assert.True(t, strings.EqualFold(tt.want, c.NewValue), "got %s", c.NewValue)
			assert.Equal(t, tt.clamped, c.Clamped)
			assert.Equal(t, tt.invalid, c.Invalid)
			assert.Equal(t, "00.0000", c.NewKey)
		})
	}
}

func TestCompute_NumberValues(t *testing.T) {
	e := section()
	sel := entry.InLayer(e, "00")

	p, err := Plan(e, sel, Op{Kind: NumberValues, Start: 0x100, Step: 2})
	require.NoError(t, err)

	var got []string
	for _, c := range p.Changes {
		got = append(got, c.NewValue)
	}

	assert.Equal(t, []string{"00000100", "00000102", "00000104", "00000106"}, got)
	assert.False(t, p.HasConflicts())
}

func TestCompute_NumberValuesClampsAndSaturates(t *testing.T) {
	c, err := Compute(Op{Kind: NumberValues, Start: 0xFFFFFFFE, Step: 1 << 62}, 3, entry.Entry{Key: "00.0000"})
	require.NoError(t, err)
	assert.Equal(t, "FFFFFFFF", c.NewValue)
	assert.True(t, c.Clamped)

	c, err = Compute(Op{Kind: NumberValues, Start: 5, Step: -3}, 2, entry.Entry{Key: "00.0000"})
	require.NoError(t, err)
	assert.Equal(t, "00000000", c.NewValue)
	assert.True(t, c.Clamped)
}

func TestCompute_SetSameValue(t *testing.T) {
	c, err := Compute(Op{Kind: SetSameValue, Value: "0xbeef"}, 7, entry.Entry{Key: "01.0001", Value: "00000000"})
	require.NoError(t, err)
	assert.Equal(t, "0000BEEF", c.NewValue)
	assert.Equal(t, 7, c.Index)
	assert.True(t, c.Changed())
}

func TestCompute_UnknownKind(t *testing.T) {
	_, err := Compute(Op{}, 0, entry.Entry{})
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = Plan(nil, []entry.Entry{{Key: "00.0000"}}, Op{Kind: Kind(42)})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestCompute_InvalidKeyLeftAlone(t *testing.T) {
	c, err := Compute(Op{Kind: ShiftKeys, Amount: 1}, 0, entry.Entry{Key: "garbage", Value: "00000000"})
	require.NoError(t, err)
	assert.True(t, c.Invalid)
	assert.Equal(t, "garbage", c.NewKey)
	assert.False(t, c.Changed())
}

func TestApplyChunks_SameResultForAnyChunkSize(t *testing.T) {
	e := entry.Entries{}
	for i := range int64(50) {
		e[entry.FormatKey("03", i)] = fmt.Sprintf("%08X", i)
	}

	sel := entry.Sorted(e)

	p, err := Plan(e, sel, Op{Kind: ShiftKeys, Amount: 1})
	require.NoError(t, err)
	require.False(t, p.HasConflicts())

	want, err := Apply(e, p)
	require.NoError(t, err)

	for _, size := range []int{1, 3, 7, 49, 50, 100} {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			var calls []int

			got, err := ApplyChunks(e, p, size, func(done, total int) {
				assert.Equal(t, 50, total)
				calls = append(calls, done)
			})
			require.NoError(t, err)

			assert.Equal(t, want, got)
			assert.Equal(t, 50, calls[len(calls)-1])
		})
	}

	assert.Contains(t, want, "03.0050")
	assert.NotContains(t, want, "03.0000")
}

func TestPreview_Counts(t *testing.T) {
	e := entry.Entries{"00.0000": "00000000", "00.0001": "FFFFFFFF"}

	p, err := Plan(e, entry.Sorted(e), Op{Kind: ShiftValues, Amount: 1})
	require.NoError(t, err)

	changed, clamped := p.Counts()
	assert.Equal(t, 1, changed)
	assert.Equal(t, 1, clamped)
}

func TestConflict_String(t *testing.T) {
	c := Conflict{Kind: ConflictBatch, OldKey: "00.0002", NewKey: "00.0009", OtherIndex: 0, OtherKey: "00.0001"}
	assert.Equal(t, "00.0002 -> 00.0009 collides with 00.0001 (#0) in the same batch", c.String())
	assert.Equal(t, "existing", ConflictExisting.String())
}

func TestPlan_RepeatedKeySelectedOnce(t *testing.T) {
	e := section()
	sel := entry.Pick(e, []string{"00.0001", "00.0001"})
	require.Len(t, sel, 1)

	p, err := Plan(e, sel, Op{Kind: ShiftValues, Amount: 1})
	require.NoError(t, err)
	assert.False(t, p.HasConflicts(), spew.Sdump(p.Conflicts))

	out, err := Apply(e, p)
	require.NoError(t, err)
	assert.Equal(t, "00000002", out["00.0001"])
}

func TestChange_CaseOnlyValueIsUnchanged(t *testing.T) {
	c, err := Compute(Op{Kind: ShiftValues}, 0, entry.Entry{Key: "00.0000", Value: "0000abcd"})
	require.NoError(t, err)

	assert.Equal(t, "0000ABCD", c.NewValue)
	assert.False(t, c.Changed())
}

func TestCompute_ZeroShiftStillClampsWideKey(t *testing.T) {
	c, err := Compute(Op{Kind: ShiftKeys}, 0, entry.Entry{Key: "00.10000", Value: "00002710"})
	require.NoError(t, err)

	assert.Equal(t, "00.9999", c.NewKey)
	assert.True(t, c.Clamped)
}
