package classify

import "context"

// CacheRepository is the durable key-to-record store behind the resolver.
// Get returns (nil, nil) on a miss; implementations treat unreadable entries
// as misses rather than failures.
type CacheRepository interface {
	Get(ctx context.Context, key string) (*Record, error)
	Put(ctx context.Context, key string, rec *Record) error
	Delete(ctx context.Context, key string) error
}
