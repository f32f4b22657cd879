package checkout

import (
	"context"
	"sync"

	"github.com/Dannyjar1/AgriConnect-sub000/internal/notification"
	"github.com/Dannyjar1/AgriConnect-sub000/internal/repository"
)

// MockPersistence implements repository.Persistence for testing
type MockPersistence struct {
	mu            sync.Mutex
	CreateCalls   int
	UpdateCalls   int
	CreatedDocs   []interface{} // Captures every record passed to Create
	UpdatedFields map[string]interface{}
	CreateErr     error
	UpdateErr     error
	Block         chan struct{} // When non-nil, Create waits until it is closed
}

func (m *MockPersistence) Create(_ context.Context, _ string, record interface{}) (string, error) {
	if m.Block != nil {
		<-m.Block
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	m.CreatedDocs = append(m.CreatedDocs, record)
	return "mock-internal-id", nil
}

func (m *MockPersistence) Update(_ context.Context, _, _ string, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.UpdatedFields = fields
	return nil
}

func (m *MockPersistence) Find(context.Context, string, string, interface{}) error {
	return repository.ErrRecordNotFound
}

func (m *MockPersistence) createCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CreateCalls
}

// MockNotifier implements notification.Notifier for testing
type MockNotifier struct {
	mu       sync.Mutex
	Calls    int
	LastSent *notification.Confirmation
	Receipt  notification.Receipt
	Err      error
}

func (m *MockNotifier) SendOrderConfirmation(_ context.Context, confirmation notification.Confirmation) (notification.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.LastSent = &confirmation
	if m.Err != nil {
		return notification.Receipt{}, m.Err
	}
	return m.Receipt, nil
}
