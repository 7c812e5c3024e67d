package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrSlotContended is returned when another submission holds the lock for one
// of the requested halls on the same date. Callers should retry shortly.
var ErrSlotContended = errors.New("another booking for these halls is being processed, please retry")

// SlotLocker serializes the check-then-persist sequence per hall and date.
// Without it, two concurrent submissions for the same window can both observe
// "available" and both be persisted.
type SlotLocker interface {
	Acquire(ctx context.Context, date string, halls []string) (release func(), err error)
}

// RedisSlotLocker implements SlotLocker with short-lived SETNX keys. The TTL
// bounds how long a crashed request can hold a hall.
type RedisSlotLocker struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSlotLocker(client *redis.Client) *RedisSlotLocker {
	return &RedisSlotLocker{Client: client, TTL: 15 * time.Second}
}

// Acquire locks every requested hall for the date. Halls are locked in sorted
// order so concurrent requests for overlapping hall sets cannot deadlock.
func (l *RedisSlotLocker) Acquire(ctx context.Context, date string, halls []string) (func(), error) {
	keys := make([]string, 0, len(halls))
	for _, hall := range halls {
		keys = append(keys, fmt.Sprintf("booking_lock:%s:%s", date, hall))
	}
	sort.Strings(keys)

	var held []string
	releaseHeld := func() {
		if len(held) > 0 {
			l.Client.Del(context.Background(), held...)
		}
	}

	for _, key := range keys {
		ok, err := l.Client.SetNX(ctx, key, "1", l.TTL).Result()
		if err != nil {
			releaseHeld()
			return nil, fmt.Errorf("slot lock unavailable: %w", err)
		}
		if !ok {
			releaseHeld()
			return nil, ErrSlotContended
		}
		held = append(held, key)
	}

	return releaseHeld, nil
}
