// internal/repository/redis.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"issuing-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	txKeyPrefix       = "tx:"
	allTxKey          = "tx:index:all"
	merchantKeyPrefix = "tx:index:merchant:"
	statusKeyPrefix   = "tx:index:status:"
)

type redisRepo struct {
	rdb *redis.Client
}

// NewRedisRepository returns a redis-backed store. Each record is a JSON
// blob under tx:<id>, with index sets per merchant and status so List does
// not have to scan the keyspace.
func NewRedisRepository(rdb *redis.Client) TransactionRepository {
	return &redisRepo{rdb: rdb}
}

func (r *redisRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	payload, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("marshal transaction: %w", err)
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, txKeyPrefix+tx.ID, payload, 0)
	pipe.SAdd(ctx, allTxKey, tx.ID)
	pipe.SAdd(ctx, merchantKeyPrefix+tx.MerchantID, tx.ID)
	pipe.SAdd(ctx, statusKeyPrefix+string(tx.Status), tx.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store transaction: %w", err)
	}
	return nil
}

func (r *redisRepo) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	payload, err := r.rdb.Get(ctx, txKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	var tx domain.Transaction
	if err := json.Unmarshal(payload, &tx); err != nil {
		return nil, fmt.Errorf("unmarshal transaction: %w", err)
	}
	return &tx, nil
}

func (r *redisRepo) List(ctx context.Context, filter ListFilter) ([]domain.Transaction, error) {
	ids, err := r.matchingIDs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = txKeyPrefix + id
	}
	values, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	txs := make([]domain.Transaction, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index member without a record: the record expired or the
			// write was interrupted between pipeline stages.
			continue
		}
		var tx domain.Transaction
		if err := json.Unmarshal([]byte(raw), &tx); err != nil {
			return nil, fmt.Errorf("unmarshal transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	sort.Slice(txs, func(i, j int) bool { return txs[i].CreatedAt.After(txs[j].CreatedAt) })
	return txs, nil
}

func (r *redisRepo) matchingIDs(ctx context.Context, filter ListFilter) ([]string, error) {
	switch {
	case filter.MerchantID != "" && filter.Status != "":
		return r.rdb.SInter(ctx, merchantKeyPrefix+filter.MerchantID, statusKeyPrefix+string(filter.Status)).Result()
	case filter.MerchantID != "":
		return r.rdb.SMembers(ctx, merchantKeyPrefix+filter.MerchantID).Result()
	case filter.Status != "":
		return r.rdb.SMembers(ctx, statusKeyPrefix+string(filter.Status)).Result()
	default:
		return r.rdb.SMembers(ctx, allTxKey).Result()
	}
}

func (r *redisRepo) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}
