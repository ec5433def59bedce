// Package redis provides the Redis-backed assignment fence. The fence is an
// optimization in front of the delivery ledger's unique order index, not a
// correctness mechanism: if Redis is down or the lock expires mid-flight the
// database still rejects the second writer.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix  = "assignment:"
	defaultLockTTL = 10 * time.Second
)

// AssignmentLock serializes assignment attempts per order via SET NX with a
// TTL, so a crashed holder never wedges the order.
type AssignmentLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAssignmentLock creates a lock over the given client with the default TTL.
func NewAssignmentLock(client *redis.Client) *AssignmentLock {
	return &AssignmentLock{client: client, ttl: defaultLockTTL}
}

// Acquire takes the per-order lock. It returns false without error when
// another attempt currently holds it.
func (l *AssignmentLock) Acquire(ctx context.Context, orderID string) (bool, error) {
	return l.client.SetNX(ctx, lockKeyPrefix+orderID, 1, l.ttl).Result()
}

// Release drops the per-order lock. Errors are swallowed: the TTL reclaims
// the key anyway and the caller has nothing useful to do with the failure.
func (l *AssignmentLock) Release(ctx context.Context, orderID string) {
	_ = l.client.Del(ctx, lockKeyPrefix+orderID).Err()
}
