package mapfile

import (
	"fmt"
	"strings"

	"mappy/internal/common"
	"mappy/internal/diagnostic"
	"mappy/internal/entry"
	"mappy/internal/validate"
)

// Check reports malformed keys and values, entries whose layer is not
// declared, and notes every manual correction (non-zero offset).
func Check(d *Document) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if d == nil {
		res.AddError("document_is_nil", "document is nil", "", "")
		return res
	}

	for _, k := range RepairOrder(d.Layers, nil) {
		if err := validate.LayerKey(k); err != nil {
			res.AddError("invalid_layer_key", err.Error(), SectionLayers, k)
		}

		if strings.TrimSpace(d.Layers[k]) == "" {
			res.AddWarning("empty_layer_path", "layer has no path", SectionLayers, k)
		}
	}

	for _, s := range entry.Sections {
		checkEntries(res, d, s)
	}

	return res
}

func checkEntries(res *diagnostic.Diagnostics, d *Document, s entry.Section) {
	scope := s.String()

	for _, en := range entry.Sorted(d.Entries(s)) {
		if err := validate.EntryKey(en.Key); err != nil {
			res.AddError("invalid_key", err.Error(), scope, en.Key)
			continue
		}

		if err := validate.Value(en.Value); err != nil {
			res.AddError("invalid_value", err.Error(), scope, en.Key)
			continue
		}

		if _, ok := d.Layers[entry.LayerOf(en.Key)]; !ok {
			res.AddWarning("unknown_layer",
				fmt.Sprintf("layer %s is not declared in [%s]", entry.LayerOf(en.Key), SectionLayers),
				scope, en.Key)
		}

		if idx, ok := entry.ParseIndex(en.Key); ok && !common.IsInRange(0, idx, validate.MaxIndex) {
			res.AddWarning("wide_index",
				fmt.Sprintf("index above %d; shift_keys clamps it even with a zero amount", validate.MaxIndex),
				scope, en.Key)
		}

		if off := entry.ComputeOffset(en.Key, en.Value); !off.IsZero() {
			res.AddInfo("nonzero_offset", fmt.Sprintf("offset %s", off), scope, en.Key)
		}
	}
}
