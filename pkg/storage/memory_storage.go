package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"seo-pages-go/pkg/catalog"
)

// MemoryStorage is a PageStore kept in memory. Each Save stores an encoded
// copy, so later changes to the registry are not visible until saved again.
type MemoryStorage struct {
	mu    sync.RWMutex
	data  []byte
	saves int
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (ms *MemoryStorage) Load(ctx context.Context) (*catalog.Registry, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	reg := catalog.NewRegistry()
	if ms.data == nil {
		return reg, nil
	}
	if err := json.Unmarshal(ms.data, reg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal data: %w", err)
	}
	return reg, nil
}

func (ms *MemoryStorage) Save(ctx context.Context, reg *catalog.Registry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := reg.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.data = data
	ms.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (ms *MemoryStorage) Saves() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.saves
}
