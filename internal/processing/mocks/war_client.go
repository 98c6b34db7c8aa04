package mocks

import (
	"context"
	"sync"

	"clashberry/internal/app"
)

// WarClient interface defines the methods used by RefreshCoordinator from clash.Client
type WarClient interface {
	GetWarData(ctx context.Context, clanTag string) (*app.WarResponse, error)
}

// MockWarClient is a test double for the clash.Client
type MockWarClient struct {
	mutex sync.Mutex

	// Responses to return
	WarDataResponse *app.WarResponse

	// Errors to return
	WarDataError error

	// Hook run before returning, used to interleave concurrent refreshes
	BeforeReturn func(clanTag string)

	// Call tracking
	GetWarDataCalls      int
	GetWarDataCalledWith []string
}

// NewMockWarClient creates a new mock war client
func NewMockWarClient() *MockWarClient {
	return &MockWarClient{}
}

func (m *MockWarClient) GetWarData(ctx context.Context, clanTag string) (*app.WarResponse, error) {
	m.mutex.Lock()
	m.GetWarDataCalls++
	m.GetWarDataCalledWith = append(m.GetWarDataCalledWith, clanTag)
	resp, err, hook := m.WarDataResponse, m.WarDataError, m.BeforeReturn
	m.mutex.Unlock()

	if hook != nil {
		hook(clanTag)
	}
	return resp, err
}

// Calls returns the number of GetWarData calls so far
func (m *MockWarClient) Calls() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.GetWarDataCalls
}

// Reset clears all call tracking and responses
func (m *MockWarClient) Reset() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.WarDataResponse = nil
	m.WarDataError = nil
	m.BeforeReturn = nil
	m.GetWarDataCalls = 0
	m.GetWarDataCalledWith = nil
}
