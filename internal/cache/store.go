package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/istanbulev/stationfinder/internal/config"
)

// ErrNotFound is returned by a Store when the key has no entry.
var ErrNotFound = errors.New("cache: key not found")

// Store is the persistent key/value layer behind StationCache.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// NewStore builds the backend selected by cfg.Backend.
func NewStore(ctx context.Context, cfg *config.CacheConfig) (Store, error) {
	if cfg == nil {
		cfg = config.DefaultCacheConfig()
	}

	switch cfg.Backend {
	case config.CacheBackendMemory, "":
		return NewMemoryStore(cfg.LRUSize)
	case config.CacheBackendSQLite:
		return NewSQLiteStore(cfg.SQLitePath)
	case config.CacheBackendS3:
		awsCfg, err := NewAWSConfig(ctx, cfg.AWSEndpoint)
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
		return NewS3Store(NewS3Client(awsCfg, cfg.AWSEndpoint), cfg.S3Bucket)
	case config.CacheBackendDynamoDB:
		awsCfg, err := NewAWSConfig(ctx, cfg.AWSEndpoint)
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
		return NewDynamoStore(NewDynamoClient(awsCfg, cfg.AWSEndpoint), cfg.DynamoTable)
	default:
		return nil, fmt.Errorf("unknown cache backend: %q", cfg.Backend)
	}
}
