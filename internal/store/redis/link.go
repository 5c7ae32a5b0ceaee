package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"linkdeck/internal/domain"
)

// createRetries bounds the optimistic-transaction retry loop when two
// creates race on the order index.
const createRetries = 5

// Store handles Redis operations for links, users and sessions.
//
// Links are stored as one JSON blob per key plus a sorted set indexing
// every link ID by its order value, so listing serves ascending display
// order straight from the index.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Ping checks store connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// ListLinks retrieves all links ascending by order. IDs present in the
// index without a readable record are skipped.
func (s *Store) ListLinks(ctx context.Context) ([]domain.LinkItem, error) {
	ids, err := s.client.ZRange(ctx, LinkIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read link index: %w", err)
	}

	links := make([]domain.LinkItem, 0, len(ids))
	for _, id := range ids {
		link, err := s.GetLink(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		links = append(links, *link)
	}

	return links, nil
}

// CountLinks returns the number of indexed links.
func (s *Store) CountLinks(ctx context.Context) (int64, error) {
	n, err := s.client.ZCard(ctx, LinkIndexKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count links: %w", err)
	}
	return n, nil
}

// GetLink retrieves a link by ID. A missing link reports
// domain.ErrNotFound; callers treat that as a normal outcome.
func (s *Store) GetLink(ctx context.Context, id string) (*domain.LinkItem, error) {
	data, err := s.client.Get(ctx, LinkKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("link %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get link %s: %w", id, err)
	}

	var link domain.LinkItem
	if err := json.Unmarshal(data, &link); err != nil {
		return nil, fmt.Errorf("failed to unmarshal link %s: %w", id, err)
	}

	return &link, nil
}

// CreateLink stores a new link appended at max(order)+1, or 0 when the
// collection is empty. The next-order read and the write happen inside
// one WATCH/MULTI round trip on the index key, so two concurrent
// creates cannot observe the same maximum; a conflicting create retries
// a bounded number of times.
func (s *Store) CreateLink(ctx context.Context, title, url string) (*domain.LinkItem, error) {
	link := &domain.LinkItem{
		ID:        uuid.NewString(),
		Title:     title,
		URL:       url,
		CreatedAt: time.Now().UnixMilli(),
	}

	txf := func(tx *redis.Tx) error {
		top, err := tx.ZRevRangeWithScores(ctx, LinkIndexKey(), 0, 0).Result()
		if err != nil {
			return err
		}
		link.Order = 0
		if len(top) > 0 {
			link.Order = int64(top[0].Score) + 1
		}

		data, err := json.Marshal(link)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, LinkKey(link.ID), data, 0)
			pipe.ZAdd(ctx, LinkIndexKey(), redis.Z{Score: float64(link.Order), Member: link.ID})
			return nil
		})
		return err
	}

	for i := 0; i < createRetries; i++ {
		err := s.client.Watch(ctx, txf, LinkIndexKey())
		if err == nil {
			return link, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	return nil, fmt.Errorf("failed to create link after %d attempts: %w", createRetries, redis.TxFailedErr)
}

// UpdateLink rewrites title and url of an existing link. Order and
// CreatedAt are left untouched.
func (s *Store) UpdateLink(ctx context.Context, id, title, url string) error {
	link, err := s.GetLink(ctx, id)
	if err != nil {
		return err
	}

	link.Title = title
	link.URL = url

	data, err := json.Marshal(link)
	if err != nil {
		return fmt.Errorf("failed to marshal link %s: %w", id, err)
	}

	if err := s.client.Set(ctx, LinkKey(id), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to update link %s: %w", id, err)
	}

	return nil
}

// DeleteLink removes a link. Deleting an id that does not exist is a
// no-op at the store boundary.
func (s *Store) DeleteLink(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, LinkKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete link %s: %w", id, err)
	}

	if err := s.client.ZRem(ctx, LinkIndexKey(), id).Err(); err != nil {
		return fmt.Errorf("failed to remove link %s from index: %w", id, err)
	}

	return nil
}

// ReorderLinks writes every given link's order field in one MULTI/EXEC
// transaction: all succeed or all fail together. This is the only
// operation with a transactional guarantee; a reorder is never observed
// partially renumbered by a concurrent reader.
func (s *Store) ReorderLinks(ctx context.Context, updates []domain.OrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	links := make([]*domain.LinkItem, 0, len(updates))
	for _, u := range updates {
		link, err := s.GetLink(ctx, u.ID)
		if err != nil {
			return fmt.Errorf("reorder: %w", err)
		}
		link.Order = u.Order
		links = append(links, link)
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, link := range links {
			data, err := json.Marshal(link)
			if err != nil {
				return fmt.Errorf("failed to marshal link %s: %w", link.ID, err)
			}
			pipe.Set(ctx, LinkKey(link.ID), data, 0)
			pipe.ZAdd(ctx, LinkIndexKey(), redis.Z{Score: float64(link.Order), Member: link.ID})
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to apply reorder batch: %w", err)
	}

	return nil
}
