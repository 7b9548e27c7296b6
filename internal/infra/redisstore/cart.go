// Package redisstore keeps guest carts server-side, keyed by the cart id the
// frontend stores in a cookie. Carts expire with the key TTL.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"tienda-api/internal/domain/cart"
	"tienda-api/internal/infra"
)

type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{client: client, ttl: ttl}
}

func cartKey(id uuid.UUID) string {
	return "cart:" + id.String()
}

func (s *CartStore) Get(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	raw, err := s.client.Get(ctx, cartKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cart", err)
	}

	var c cart.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, infra.WrapRepoErr("failed to decode cart", err)
	}
	return &c, nil
}

// Save stores the cart and refreshes its TTL.
func (s *CartStore) Save(ctx context.Context, c *cart.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return infra.WrapRepoErr("failed to encode cart", err)
	}
	if err := s.client.Set(ctx, cartKey(c.ID), raw, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save cart", err)
	}
	return nil
}

func (s *CartStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, cartKey(id)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete cart", err)
	}
	return nil
}
