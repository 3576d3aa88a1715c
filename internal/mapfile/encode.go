package mapfile

import (
	"fmt"
	"strings"

	"mappy/internal/common"
	"mappy/internal/entry"
)

// Newline conventions.
const (
	LF   = "\n"
	CRLF = "\r\n"
	CR   = "\r"
)

// Format controls the line endings Encode produces.
type Format struct {
	Newline         string
	TrailingNewline bool
}

// DefaultFormat is used for documents that did not come from a file.
var DefaultFormat = Format{Newline: LF, TrailingNewline: true}

// SniffNewline returns the first convention found: "\r\n", then "\r",
// otherwise "\n".
func SniffNewline(text string) string {
	switch {
	case strings.Contains(text, CRLF):
		return CRLF
	case strings.Contains(text, CR):
		return CR
	default:
		return LF
	}
}

// Sniff returns the newline of text and whether text ends with a line
// terminator. Empty text gets DefaultFormat.
func Sniff(text string) Format {
	if text == "" {
		return DefaultFormat
	}

	return Format{
		Newline:         SniffNewline(text),
		TrailingNewline: strings.HasSuffix(text, LF) || strings.HasSuffix(text, CR),
	}
}

// ParseNewline maps a configuration name (lf, crlf, cr) to its terminator.
func ParseNewline(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", "lf":
		return LF, nil
	case "crlf":
		return CRLF, nil
	case "cr":
		return CR, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNewline, name)
	}
}

// NewlineName is the inverse of ParseNewline.
func NewlineName(nl string) string {
	switch nl {
	case CRLF:
		return "crlf"
	case CR:
		return "cr"
	default:
		return "lf"
	}
}

// Encode renders d as mapping-file text.
func Encode(d *Document, f Format) string {
	nl := f.Newline
	if nl == "" {
		nl = LF
	}

	var lines []string

	lines = append(lines, "["+SectionLayers+"]")
	for _, k := range common.Unique(RepairOrder(d.Layers, d.Order)) {
		lines = append(lines, k+"="+quote(d.Layers[k]))
	}

	lines = append(lines, "["+SectionTargets+"]")
	lines = appendEntries(lines, d.Targets)

	lines = append(lines, "["+SectionSources+"]")
	lines = appendEntries(lines, d.Sources)

	for _, s := range orderedPassthrough(d.Passthrough) {
		if len(s.Pairs) == 0 {
			continue
		}

		lines = append(lines, "["+s.Name+"]")
		for _, p := range s.Pairs {
			lines = append(lines, p.Key+"="+p.Value)
		}
	}

	out := strings.Join(lines, nl)
	if f.TrailingNewline {
		out += nl
	}

	return out
}

func appendEntries(lines []string, e entry.Entries) []string {
	for _, en := range entry.Sorted(e) {
		lines = append(lines, en.Key+" = "+en.Value)
	}

	return lines
}

// orderedPassthrough moves Internal to the front, keeping the others in order.
func orderedPassthrough(sections []Section) []Section {
	out := make([]Section, 0, len(sections))

	for _, s := range sections {
		if strings.EqualFold(s.Name, SectionInternal) {
			out = append(out, s)
		}
	}

	for _, s := range sections {
		if !strings.EqualFold(s.Name, SectionInternal) {
			out = append(out, s)
		}
	}

	return out
}

// quote wraps v in double quotes unless it already is.
func quote(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v
	}

	return `"` + v + `"`
}
