// internal/repository/postgres.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"issuing-service/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is applied at startup. Records are write-once, so there are no
// updated_at or versioning columns.
const Schema = `
CREATE TABLE IF NOT EXISTS transactions (
    id            TEXT PRIMARY KEY,
    merchant_id   TEXT NOT NULL,
    amount        DOUBLE PRECISION NOT NULL,
    currency      TEXT NOT NULL,
    status        TEXT NOT NULL,
    response_code TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transactions_merchant_id ON transactions (merchant_id);
CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions (status);
`

type postgresRepo struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns the default, durable backend.
func NewPostgresRepository(db *pgxpool.Pool) TransactionRepository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `
        INSERT INTO transactions (id, merchant_id, amount, currency, status, response_code, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query,
		tx.ID,
		tx.MerchantID,
		tx.Amount,
		tx.Currency,
		tx.Status,
		tx.ResponseCode,
		tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `
        SELECT id, merchant_id, amount, currency, status, response_code, created_at
        FROM transactions
        WHERE id = $1
    `
	var tx domain.Transaction
	err := r.db.QueryRow(ctx, query, id).Scan(
		&tx.ID,
		&tx.MerchantID,
		&tx.Amount,
		&tx.Currency,
		&tx.Status,
		&tx.ResponseCode,
		&tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select transaction: %w", err)
	}
	return &tx, nil
}

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.Transaction, error) {
	query := `
        SELECT id, merchant_id, amount, currency, status, response_code, created_at
        FROM transactions
        WHERE ($1 = '' OR merchant_id = $1)
          AND ($2 = '' OR status = $2)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, filter.MerchantID, string(filter.Status))
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(
			&tx.ID,
			&tx.MerchantID,
			&tx.Amount,
			&tx.Currency,
			&tx.Status,
			&tx.ResponseCode,
			&tx.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

func (r *postgresRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
