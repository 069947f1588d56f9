// internal/repository/memory.go
package repository

import (
	"context"
	"sort"
	"sync"

	"issuing-service/internal/domain"
)

type memoryRepo struct {
	mu  sync.RWMutex
	txs map[string]domain.Transaction
}

// NewMemoryRepository returns an in-process store for development and
// tests. Records are copied in and out, so callers never share memory with
// the store.
func NewMemoryRepository() TransactionRepository {
	return &memoryRepo{txs: make(map[string]domain.Transaction)}
}

func (r *memoryRepo) Create(_ context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs[tx.ID] = *tx
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tx, ok := r.txs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &tx, nil
}

func (r *memoryRepo) List(_ context.Context, filter ListFilter) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var txs []domain.Transaction
	for _, tx := range r.txs {
		if filter.MerchantID != "" && tx.MerchantID != filter.MerchantID {
			continue
		}
		if filter.Status != "" && tx.Status != filter.Status {
			continue
		}
		txs = append(txs, tx)
	}

	sort.Slice(txs, func(i, j int) bool { return txs[i].CreatedAt.After(txs[j].CreatedAt) })
	return txs, nil
}

func (r *memoryRepo) Ping(context.Context) error { return nil }
