// Package session persists the document being edited in a single
// key-value slot, so an editing session survives restarts.
//
// The slot holds the encoded text plus the file name and newline
// convention; the document is always rebuilt by decoding that text.
package session

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"mappy/internal/mapfile"
)

// ErrEmpty is returned by Store.Load when nothing has been saved.
var ErrEmpty = errors.New("no saved session")

// Snapshot is the persisted form of a session.
type Snapshot struct {
	Text     string `json:"text"`
	FileName string `json:"fileName"`
	Newline  string `json:"newline"`
	// Trailing records whether the source ended with a line terminator.
	Trailing bool `json:"trailing"`
}

// Format returns the encode format recorded in the snapshot.
func (s *Snapshot) Format() mapfile.Format {
	nl, err := mapfile.ParseNewline(s.Newline)
	if err != nil {
		nl = mapfile.LF
	}

	return mapfile.Format{Newline: nl, TrailingNewline: s.Trailing}
}

// Store is a single persistence slot.
type Store interface {
	Load() (*Snapshot, error)
	Save(s *Snapshot) error
	Clear() error
}

// Restored is the outcome of Restore.
type Restored struct {
	Doc      *mapfile.Document
	Snapshot *Snapshot
	// Discarded is set when a saved session could not be decoded and
	// was cleared.
	Discarded bool
}

// Restore loads the saved session. An empty slot yields an empty
// document; a slot that cannot be read back is cleared and also yields an
// empty document, with Discarded set.
func Restore(st Store, strict bool) (*Restored, error) {
	snap, err := st.Load()

	switch {
	case errors.Is(err, ErrEmpty):
		return &Restored{Doc: mapfile.New()}, nil
	case errors.Is(err, errCorrupt):
		return discard(st)
	case err != nil:
		return nil, err
	}

	decode := mapfile.Decode
	if strict {
		decode = mapfile.DecodeStrict
	}

	doc, err := decode(snap.Text)
	if err != nil {
		return discard(st)
	}

	return &Restored{Doc: doc, Snapshot: snap}, nil
}

func discard(st Store) (*Restored, error) {
	if err := st.Clear(); err != nil {
		return nil, fmt.Errorf("clear unreadable session: %w", err)
	}

	return &Restored{Doc: mapfile.New(), Discarded: true}, nil
}

// Save encodes doc with f and stores it under fileName.
func Save(st Store, doc *mapfile.Document, fileName string, f mapfile.Format) error {
	return st.Save(&Snapshot{
		Text:     mapfile.Encode(doc, f),
		FileName: fileName,
		Newline:  mapfile.NewlineName(f.Newline),
		Trailing: f.TrailingNewline,
	})
}

var errCorrupt = errors.New("corrupt session data")

func marshal(s *Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}

	return data, nil
}

func unmarshal(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", errCorrupt, err)
	}

	return &s, nil
}
