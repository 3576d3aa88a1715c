package session

import (
	"os"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// slotKey is the diskv key of the single session slot.
const slotKey = "session.json"

// DiskStore keeps the slot as a file under a base directory.
type DiskStore struct {
	d *diskv.Diskv
}

// NewDiskStore returns a store rooted at basePath. The directory is
// created on first save.
func NewDiskStore(basePath string) *DiskStore {
	return &DiskStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func (s *DiskStore) Load() (*Snapshot, error) {
	if !s.d.Has(slotKey) {
		return nil, ErrEmpty
	}

	data, err := s.d.Read(slotKey)
	if err != nil {
		return nil, err
	}

	return unmarshal(data)
}

func (s *DiskStore) Save(snap *Snapshot) error {
	data, err := marshal(snap)
	if err != nil {
		return err
	}

	return s.d.Write(slotKey, data)
}

func (s *DiskStore) Clear() error {
	err := s.d.Erase(slotKey)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// MemoryStore keeps the slot in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

func (m *MemoryStore) Load() (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		return nil, ErrEmpty
	}

	return unmarshal(m.data)
}

func (m *MemoryStore) Save(snap *Snapshot) error {
	data, err := marshal(snap)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.data = data
	m.mu.Unlock()

	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	m.data = nil
	m.mu.Unlock()

	return nil
}

// SetRaw replaces the stored bytes verbatim.
func (m *MemoryStore) SetRaw(data []byte) {
	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
}
