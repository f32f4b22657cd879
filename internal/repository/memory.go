package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryPersistence implements Persistence with in-memory storage. Records
// are kept JSON-encoded so reads and writes behave like a real document
// store, pending timestamps included.
type MemoryPersistence struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
}

func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{collections: make(map[string]map[string][]byte)}
}

func (m *MemoryPersistence) Create(_ context.Context, collection string, record interface{}) (string, error) {
	doc, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to marshal record: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.collections[collection] == nil {
		m.collections[collection] = make(map[string][]byte)
	}
	id := uuid.New().String()
	m.collections[collection][id] = doc
	return id, nil
}

func (m *MemoryPersistence) Update(_ context.Context, collection, id string, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, exists := m.collections[collection][id]
	if !exists {
		return ErrRecordNotFound
	}

	var record map[string]interface{}
	if err := json.Unmarshal(doc, &record); err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}
	for key, value := range fields {
		record[key] = value
	}

	patched, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	m.collections[collection][id] = patched
	return nil
}

func (m *MemoryPersistence) Find(_ context.Context, collection, id string, out interface{}) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, exists := m.collections[collection][id]
	if !exists {
		return ErrRecordNotFound
	}
	return json.Unmarshal(doc, out)
}
