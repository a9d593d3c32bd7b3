package handoff

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storefront/cartsync/internal/domain/cart"
)

// RedisSelectionStore implements cart.SelectionStore using Redis. This is
// suitable for deployments where the payment redirect may land the user on a
// different instance than the one that wrote the selection.
type RedisSelectionStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisSelectionStore creates a new Redis-backed selection store
func NewRedisSelectionStore(cfg RedisConfig) (*RedisSelectionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSelectionStore{
		client:    client,
		keyPrefix: "checkout:selection:",
	}, nil
}

// NewRedisSelectionStoreWithClient creates a store with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisSelectionStoreWithClient(client *redis.Client, keyPrefix string) *RedisSelectionStore {
	if keyPrefix == "" {
		keyPrefix = "checkout:selection:"
	}
	return &RedisSelectionStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Save stores the product ids for the user with a TTL
func (s *RedisSelectionStore) Save(ctx context.Context, userID string, productIDs []string, ttl time.Duration) error {
	payload, err := json.Marshal(productIDs)
	if err != nil {
		return fmt.Errorf("failed to encode checkout selection: %w", err)
	}

	key := s.keyPrefix + userID
	if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save checkout selection: %w", err)
	}
	return nil
}

// Load returns the stored product ids, or an empty slice if none
func (s *RedisSelectionStore) Load(ctx context.Context, userID string) ([]string, error) {
	key := s.keyPrefix + userID

	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to load checkout selection: %w", err)
	}

	var productIDs []string
	if err := json.Unmarshal(payload, &productIDs); err != nil {
		return nil, fmt.Errorf("failed to decode checkout selection: %w", err)
	}
	return productIDs, nil
}

// Clear removes the stored selection
func (s *RedisSelectionStore) Clear(ctx context.Context, userID string) error {
	key := s.keyPrefix + userID
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear checkout selection: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisSelectionStore) Close() error {
	return s.client.Close()
}

// Ensure RedisSelectionStore implements SelectionStore
var _ cart.SelectionStore = (*RedisSelectionStore)(nil)
