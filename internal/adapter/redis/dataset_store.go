package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/akarsten/feedbacklens/internal/app"
	"github.com/akarsten/feedbacklens/internal/domain"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const (
	datasetKeyPrefix = "feedbacklens:dataset:"
	datasetIndexKey  = "feedbacklens:datasets"
)

// DatasetStore is the Redis-backed app.DatasetStore. Datasets are stored
// as JSON values with a TTL; a set indexes live dataset IDs and is pruned
// lazily when expired entries are encountered.
type DatasetStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

var _ app.DatasetStore = (*DatasetStore)(nil)

// NewDatasetStore creates a store whose datasets expire after ttl.
func NewDatasetStore(rdb *goredis.Client, ttl time.Duration) *DatasetStore {
	return &DatasetStore{rdb: rdb, ttl: ttl}
}

func datasetKey(id uuid.UUID) string {
	return datasetKeyPrefix + id.String()
}

func (s *DatasetStore) Save(ctx context.Context, ds *domain.Dataset) error {
	payload, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, datasetKey(ds.ID), payload, s.ttl)
		pipe.SAdd(ctx, datasetIndexKey, ds.ID.String())
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store dataset: %w", err)
	}
	return nil
}

func (s *DatasetStore) Get(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	payload, err := s.rdb.Get(ctx, datasetKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrDatasetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}

	var ds domain.Dataset
	if err := json.Unmarshal(payload, &ds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset: %w", err)
	}
	return &ds, nil
}

func (s *DatasetStore) List(ctx context.Context) ([]*domain.Dataset, error) {
	ids, err := s.rdb.SMembers(ctx, datasetIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}

	out := make([]*domain.Dataset, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.rdb.SRem(ctx, datasetIndexKey, raw)
			continue
		}
		ds, err := s.Get(ctx, id)
		if errors.Is(err, domain.ErrDatasetNotFound) {
			// Value expired; prune the index entry.
			s.rdb.SRem(ctx, datasetIndexKey, raw)
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, ds)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *DatasetStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, datasetKey(id))
		pipe.SRem(ctx, datasetIndexKey, id.String())
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	return nil
}
