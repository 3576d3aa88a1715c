package mapfile

import (
	"fmt"
	"os"
)

// LoadFile reads and decodes a mapping file, returning the format it used.
func LoadFile(path string, strict bool) (*Document, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Format{}, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	text := string(data)

	decodeFn := Decode
	if strict {
		decodeFn = DecodeStrict
	}

	doc, err := decodeFn(text)
	if err != nil {
		return nil, Format{}, fmt.Errorf("failed to parse mapping file %s: %w", path, err)
	}

	return doc, Sniff(text), nil
}

// WriteFile encodes d with f and writes it to path.
func WriteFile(d *Document, f Format, path string) error {
	if err := os.WriteFile(path, []byte(Encode(d, f)), 0o644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}
