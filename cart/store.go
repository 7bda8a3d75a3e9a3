package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/models"
)

// Namespace is the fixed storage key prefix for persisted carts.
const Namespace = "brenda_shop_cart_v1"

var ErrDuplicateItem = errors.New("item is already in the cart")

type kvClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store persists each user's cart as a single JSON list under a namespaced
// key, mirroring a browser local-storage cart: every mutation rewrites the
// whole list synchronously and order of insertion is preserved.
type Store struct {
	kv kvClient
}

func NewStore(kv kvClient) *Store {
	return &Store{kv: kv}
}

func cartKey(userID uint) string {
	return fmt.Sprintf("%s:%d", Namespace, userID)
}

// Add appends item unless a line with the same product id already exists.
// Duplicates are rejected, not merged.
func (s *Store) Add(ctx context.Context, userID uint, item models.CartItem) error {
	items, err := s.List(ctx, userID)
	if err != nil {
		return err
	}

	for _, existing := range items {
		if existing.ID == item.ID {
			return ErrDuplicateItem
		}
	}

	return s.save(ctx, userID, append(items, item))
}

// Remove deletes the line with the given product id. Removing an absent id is
// a no-op.
func (s *Store) Remove(ctx context.Context, userID uint, productID uint) error {
	items, err := s.List(ctx, userID)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}

	return s.save(ctx, userID, kept)
}

// List returns the current items in insertion order. A missing cart is an
// empty cart, not an error.
func (s *Store) List(ctx context.Context, userID uint) ([]models.CartItem, error) {
	raw, err := s.kv.Get(ctx, cartKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) Clear(ctx context.Context, userID uint) error {
	return s.kv.Del(ctx, cartKey(userID)).Err()
}

func (s *Store) save(ctx context.Context, userID uint, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, cartKey(userID), data, 0).Err()
}
