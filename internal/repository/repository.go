// internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"issuing-service/internal/domain"
)

// ErrNotFound is returned by every backend when no transaction exists for
// the requested id.
var ErrNotFound = errors.New("transaction not found")

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	MerchantID string
	Status     domain.TransactionStatus
}

// TransactionRepository is the id -> record contract the workflow needs.
// Records are immutable after Create; there is no update operation.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context, filter ListFilter) ([]domain.Transaction, error)
	Ping(ctx context.Context) error
}
