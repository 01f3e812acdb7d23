package interfaces

import (
	"context"
	"time"
)

// ICacheRepository is the key-value cache behind the pricing cascade. Values
// are JSON-encoded level responses; a miss is (_, false), never an error the
// caller has to branch on.

type ICacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
