package session

import "sync"

// Storage keys used by the Store. Values are string-encoded; UserID is
// written in decimal.
const (
	KeyUserID   = "userId"
	KeyUsername = "username"
	KeyName     = "name"
	KeyToken    = "token"
)

// Storage is durable string-keyed storage for session fields. Reads and
// writes are synchronous and atomic at the granularity of one key.
type Storage interface {
	// Get returns the value for key, or ErrKeyNotFound when absent.
	Get(key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// MemoryStorage implements Storage in process memory. It is safe for
// concurrent use and intended for tests and ephemeral sessions.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *MemoryStorage) Set(key, value string) error {
	if key == "" {
		return ErrInvalidKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *MemoryStorage) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
