package recipe

// File represents the root of a YAML recipe file.
type File struct {
	// Version of the recipe schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Steps run in order.
	Steps []Step `yaml:"steps"`
}

// Step is one transform over one section.
type Step struct {
	// Name is shown in output and errors; defaults to "step N".
	Name string `yaml:"name,omitempty"`

	// Section is "targets" or "sources". Defaults to targets.
	Section string `yaml:"section,omitempty"`

	// Layer selects every entry of one layer.
	Layer string `yaml:"layer,omitempty"`

	// Keys selects explicit entries, in this order.
	Keys []string `yaml:"keys,omitempty"`

	// Kind is a transform registry name, e.g. shift_keys.
	Kind string `yaml:"kind"`

	Amount    int64  `yaml:"amount,omitempty"`
	Start     int64  `yaml:"start,omitempty"`
	Increment int64  `yaml:"step,omitempty"`
	Value     string `yaml:"value,omitempty"`
}
