package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	CacheBackendMemory   = "memory"
	CacheBackendSQLite   = "sqlite"
	CacheBackendS3       = "s3"
	CacheBackendDynamoDB = "dynamodb"
)

// CacheConfig holds all cache-related configuration
type CacheConfig struct {
	Backend           string
	StationTTLMinutes int

	// memory backend
	LRUSize int

	// sqlite backend
	SQLitePath string

	// s3 / dynamodb backends
	S3Bucket    string
	DynamoTable string
	// AWSEndpoint overrides the service endpoint for local development
	AWSEndpoint string
}

const (
	defaultStationTTLMinutes = 30
	defaultLRUSize           = 16
	defaultSQLitePath        = "stationfinder-cache.db"
	defaultDynamoTable       = "stationfinder-cache"
)

// GetCacheConfig returns the cache configuration from environment variables or defaults
func GetCacheConfig() *CacheConfig {
	config := &CacheConfig{
		Backend:           getEnvOrDefault("CACHE_BACKEND", CacheBackendMemory),
		StationTTLMinutes: getEnvInt("CACHE_STATION_TTL_MINUTES", defaultStationTTLMinutes),
		LRUSize:           getEnvInt("CACHE_LRU_SIZE", defaultLRUSize),
		SQLitePath:        getEnvOrDefault("CACHE_SQLITE_PATH", defaultSQLitePath),
		S3Bucket:          os.Getenv("CACHE_S3_BUCKET"),
		DynamoTable:       getEnvOrDefault("CACHE_DYNAMO_TABLE", defaultDynamoTable),
		AWSEndpoint:       os.Getenv("AWS_ENDPOINT"),
	}

	log.Debug().
		Str("Backend", config.Backend).
		Int("StationTTLMinutes", config.StationTTLMinutes).
		Int("LRUSize", config.LRUSize).
		Str("SQLitePath", config.SQLitePath).
		Str("S3Bucket", config.S3Bucket).
		Str("DynamoTable", config.DynamoTable).
		Msg("Cache configuration loaded")

	return config
}

// DefaultCacheConfig is the in-memory configuration used when none is supplied
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Backend:           CacheBackendMemory,
		StationTTLMinutes: defaultStationTTLMinutes,
		LRUSize:           defaultLRUSize,
	}
}

func (c *CacheConfig) GetStationTTL() time.Duration {
	return time.Duration(c.StationTTLMinutes) * time.Minute
}

// Helper functions to get environment variables with defaults
func getEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
		log.Warn().Str("key", key).Msg("Invalid integer value in environment variable, using default")
	}
	return defaultVal
}
