package mapfile

import (
	"strings"

	"mappy/internal/entry"
)

// byteOrderMark is dropped from the start of the text before parsing.
const byteOrderMark = "\uFEFF"

// Decode parses text leniently: unusable lines are skipped.
func Decode(text string) (*Document, error) {
	return decode(text, false)
}

// DecodeStrict parses text and fails on the first unusable line.
func DecodeStrict(text string) (*Document, error) {
	return decode(text, true)
}

func decode(text string, strict bool) (*Document, error) {
	d := &Document{
		Layers:  map[string]string{},
		Targets: entry.Entries{},
		Sources: entry.Entries{},
	}

	text = strings.TrimPrefix(text, byteOrderMark)

	var (
		current string
		pass    *Section
		inside  bool
	)

	for i, raw := range splitLines(text) {
		line := strings.TrimSpace(raw)
		if line == "" || isComment(line) {
			continue
		}

		if name, ok := sectionHeader(line); ok {
			current, inside = name, true
			pass = nil

			if !isFixedSection(name) {
				pass = d.passthrough(name)
			}

			continue
		}

		if !inside {
			if strict {
				return nil, &FormatError{Line: i + 1, Text: raw, Message: "key outside of any section"}
			}

			continue
		}

		key, value, ok := strings.Cut(line, "=")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		if !ok || key == "" {
			if strict {
				msg := "missing '='"
				if ok {
					msg = "empty key"
				}

				return nil, &FormatError{Line: i + 1, Text: raw, Message: msg}
			}

			continue
		}

		switch {
		case strings.EqualFold(current, SectionLayers):
			d.Layers[key] = unquote(value)
			d.Order = append(d.Order, key)
		case strings.EqualFold(current, SectionTargets):
			d.Targets[key] = value
		case strings.EqualFold(current, SectionSources):
			d.Sources[key] = value
		default:
			pass.Pairs = append(pass.Pairs, Pair{Key: key, Value: unquote(value)})
		}
	}

	d.Normalize()

	return d, nil
}

// passthrough returns the section called name, creating it on first use.
// The returned pointer is valid until the next call.
func (d *Document) passthrough(name string) *Section {
	if s := d.Section(name); s != nil {
		return s
	}

	d.Passthrough = append(d.Passthrough, Section{Name: name})

	return &d.Passthrough[len(d.Passthrough)-1]
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return strings.Split(text, "\n")
}

func isComment(line string) bool {
	return strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#")
}

func sectionHeader(line string) (string, bool) {
	if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
		return "", false
	}

	return strings.TrimSpace(line[1 : len(line)-1]), true
}

func isFixedSection(name string) bool {
	return strings.EqualFold(name, SectionLayers) ||
		strings.EqualFold(name, SectionTargets) ||
		strings.EqualFold(name, SectionSources)
}

// unquote strips one pair of matching single or double quotes.
func unquote(v string) string {
	if len(v) >= 2 {
		if q := v[0]; (q == '"' || q == '\'') && v[len(v)-1] == q {
			return v[1 : len(v)-1]
		}
	}

	return v
}
