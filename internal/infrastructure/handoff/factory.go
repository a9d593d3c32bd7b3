package handoff

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/storefront/cartsync/internal/domain/cart"
	"github.com/storefront/cartsync/internal/infrastructure/config"
)

// SelectionStoreFactory creates selection stores based on configuration
type SelectionStoreFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// SelectionStoreFactoryOption is a functional option for configuring the factory
type SelectionStoreFactoryOption func(*SelectionStoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) SelectionStoreFactoryOption {
	return func(f *SelectionStoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory store
// when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) SelectionStoreFactoryOption {
	return func(f *SelectionStoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewSelectionStoreFactory creates a new factory
func NewSelectionStoreFactory(cfg config.RedisConfig, opts ...SelectionStoreFactoryOption) *SelectionStoreFactory {
	f := &SelectionStoreFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisStore creates a Redis-backed selection store
func (f *SelectionStoreFactory) CreateRedisStore() (cart.SelectionStore, error) {
	store, err := NewRedisSelectionStore(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis selection store: %w", err)
	}

	return store, nil
}

// CreateInMemoryStore creates an in-memory selection store.
// WARNING: in-memory selections do not survive a process restart, so a
// checkout selection written before the payment redirect is lost if the
// process restarts mid-flight. Use Redis in multi-instance deployments.
func (f *SelectionStoreFactory) CreateInMemoryStore() cart.SelectionStore {
	return NewInMemorySelectionStore()
}

// CreateStore creates a selection store, preferring Redis and falling back to
// in-memory when Redis is unavailable and fallback is allowed
func (f *SelectionStoreFactory) CreateStore() (cart.SelectionStore, error) {
	store, err := f.CreateRedisStore()
	if err == nil {
		f.logger.Info("using Redis checkout selection store")
		return store, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for checkout selections but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory checkout selection store. "+
		"In-flight checkout selections will not survive a restart.",
		zap.Error(err),
	)
	return f.CreateInMemoryStore(), nil
}
