package entry

import (
	"maps"
	"slices"

	"mappy/internal/common"
)

// Stats summarizes one layer of a section.
type Stats struct {
	Layer    string
	Count    int
	Adjusted int // valid non-zero offsets
	Invalid  int // unparsable key or value
	MinIndex int64
	MaxIndex int64
}

// Summarize returns per-layer stats ordered by numeric layer key.
func Summarize(e Entries) []Stats {
	groups := GroupByLayer(e)
	layers := slices.SortedFunc(maps.Keys(groups), common.CompareNumeric)

	out := make([]Stats, 0, len(layers))

	for _, layer := range layers {
		st := Stats{Layer: layer, MinIndex: -1, MaxIndex: -1}

		for _, row := range groups[layer] {
			st.Count++

			if !row.Offset.Valid {
				st.Invalid++
				continue
			}

			if row.Offset.Value != 0 {
				st.Adjusted++
			}

			idx, _ := ParseIndex(row.Key)
			if st.MinIndex < 0 || idx < st.MinIndex {
				st.MinIndex = idx
			}

			if idx > st.MaxIndex {
				st.MaxIndex = idx
			}
		}

		out = append(out, st)
	}

	return out
}
