package prefstore

import (
	"context"
	"sync"

	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
)

// Memory keeps preferences in process memory. Used when no Redis address is
// configured and in tests; preferences then last only for the process
// lifetime.
type Memory struct {
	mu    sync.Mutex
	prefs domain.Preferences
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) (domain.Preferences, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs, nil
}

func (m *Memory) Save(_ context.Context, prefs domain.Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = prefs
	return nil
}
