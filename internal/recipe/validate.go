package recipe

import (
	"fmt"

	"mappy/internal/diagnostic"
	"mappy/internal/entry"
	"mappy/internal/transform"
	"mappy/internal/validate"
)

// Validate checks a recipe structurally against the transform registry.
// It does not look at any document.
func Validate(f *File, reg *transform.Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("recipe_is_nil", "recipe is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported recipe version %q", f.Version), "", "")
	}

	if len(f.Steps) == 0 {
		res.AddWarning("no_steps", "recipe has no steps", "", "")
	}

	for i := range f.Steps {
		validateStep(res, &f.Steps[i], reg)
	}

	return res
}

func validateStep(res *diagnostic.Diagnostics, s *Step, reg *transform.Registry) {
	if _, err := entry.ParseSection(s.Section); err != nil {
		res.AddError("invalid_section", err.Error(), s.Name, "")
	}

	def := reg.Get(s.Kind)
	if def == nil {
		res.AddError("unknown_kind", fmt.Sprintf("unknown transform kind %q", s.Kind), s.Name, "")
	}

	if s.Layer != "" && len(s.Keys) > 0 {
		res.AddError("ambiguous_selection", "step sets both layer and keys", s.Name, "")
	}

	if s.Layer != "" {
		if err := validate.LayerKey(s.Layer); err != nil {
			res.AddError("invalid_layer", err.Error(), s.Name, s.Layer)
		}
	}

	for _, k := range s.Keys {
		if err := validate.EntryKey(k); err != nil {
			res.AddError("invalid_key", err.Error(), s.Name, k)
		}
	}

	if def == nil {
		return
	}

	switch def.Kind {
	case transform.SetSameValue:
		if s.Value == "" {
			res.AddError("missing_value", "set_same_value needs a value", s.Name, "")
		} else if validate.Value(s.Value) != nil {
			res.AddWarning("sanitized_value",
				fmt.Sprintf("value %q will be used as %s", s.Value, validate.SanitizeHex(s.Value)),
				s.Name, "")
		}
	case transform.ShiftKeys, transform.ShiftValues:
		if s.Amount == 0 {
			res.AddWarning("zero_amount", "amount is zero, step changes nothing", s.Name, "")
		}
	}
}
