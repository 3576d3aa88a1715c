package entry

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Section -output=section_string.go

// Section selects one of the two entry sections of a mapping file.
type Section int

const (
	_ Section = iota // zero value is not a section

	Targets
	Sources
)

// Sections lists the entry sections in file order.
var Sections = []Section{Targets, Sources}

// ParseSection resolves a section name case-insensitively.
func ParseSection(name string) (Section, error) {
	for _, s := range Sections {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("unknown section %q (want targets or sources)", name)
}
