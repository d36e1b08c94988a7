package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/cart"
	"grocery/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore implements CartStore over a Redis client. Every save rewrites
// the whole blob and resets the expiry, so an abandoned cart disappears one
// TTL after its last touch.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore creates a cart store with the given expiry. A zero or
// negative ttl keeps carts forever.
func NewRedisCartStore(client *redis.Client, ttl time.Duration) (*RedisCartStore, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}

	return &RedisCartStore{client: client, ttl: ttl}, nil
}

// Load retrieves the customer's cart. A missing key yields a fresh empty
// cart, never an error.
func (s *RedisCartStore) Load(ctx context.Context, customerID string) (*cart.Cart, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerID")
	}

	data, err := s.client.Get(ctx, cartKey(customerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.NewCart(customerID)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var dto CartDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}

	return toDomain(dto)
}

// Save persists the cart, replacing any stored copy and resetting the expiry.
func (s *RedisCartStore) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(fromDomain(aggregate))
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := s.client.Set(ctx, cartKey(aggregate.CustomerID()), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

// Clear drops the stored cart. Deleting an absent key is not an error.
func (s *RedisCartStore) Clear(ctx context.Context, customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerID")
	}

	if err := s.client.Del(ctx, cartKey(customerID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}

	return nil
}
