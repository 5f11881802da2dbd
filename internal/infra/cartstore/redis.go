// Package cartstore provides the Redis-backed implementation of the session
// cart storage.
package cartstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"boutique/config"
	"boutique/internal/domain/entity"
	"boutique/internal/domain/lifecycle"
	"boutique/internal/domain/repository"
	"boutique/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Carts survive app restarts but not indefinite abandonment.
const cartTTL = 30 * 24 * time.Hour

// ClientParams defines the required parameters for the Redis client.
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Redis client with lifecycle management.
func NewClient(params ClientParams) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil {
		return nil, errors.New("redis configuration is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// redisCartStorage implements the repository.CartStorage interface.
type redisCartStorage struct {
	client *redis.Client
}

// NewCartStorage is the constructor for redisCartStorage.
func NewCartStorage(client *redis.Client) repository.CartStorage {
	return &redisCartStorage{client: client}
}

// FindCart returns the persisted line items for a customer.
func (s *redisCartStorage) FindCart(ctx context.Context, customerID uuid.UUID) ([]entity.LineItem, error) {
	data, err := s.client.Get(ctx, cartKey(customerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "redis get failed")
	}

	var items []entity.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(err, "unmarshal cart failed")
	}

	return items, nil
}

// SaveCart replaces the persisted line items for a customer. An empty cart
// is stored rather than deleted so a deliberate emptying survives reads.
func (s *redisCartStorage) SaveCart(ctx context.Context, customerID uuid.UUID, items []entity.LineItem) error {
	if items == nil {
		items = []entity.LineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "marshal cart failed")
	}

	if err := s.client.Set(ctx, cartKey(customerID), data, cartTTL).Err(); err != nil {
		return errors.Wrap(err, "redis set failed")
	}

	return nil
}

// DeleteCart erases the persisted cart for a customer.
func (s *redisCartStorage) DeleteCart(ctx context.Context, customerID uuid.UUID) error {
	if err := s.client.Del(ctx, cartKey(customerID)).Err(); err != nil {
		return errors.Wrap(err, "redis delete failed")
	}

	return nil
}

func cartKey(customerID uuid.UUID) string {
	return "cart:" + customerID.String()
}
