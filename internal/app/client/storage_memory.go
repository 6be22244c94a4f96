package client

import "sync"

// MemoryStorage - временное in-memory хранилище, когда SQLite недоступен
type MemoryStorage struct {
	mu    sync.RWMutex
	flags map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		flags: make(map[string]string),
	}
}

func (m *MemoryStorage) GetFlag(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, exists := m.flags[key]
	if !exists {
		return "", ErrFlagNotFound
	}
	return value, nil
}

func (m *MemoryStorage) SetFlag(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.flags[key] = value
	return nil
}

func (m *MemoryStorage) DeleteFlag(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.flags, key)
	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}
