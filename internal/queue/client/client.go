package client

import (
	"context"
	"sync"

	"github.com/hibiken/asynq"
)

type ctxKey int

const (
	_ ctxKey = iota
	asynqCtxKey
)

var (
	globalClient *asynq.Client
	globalMu     sync.RWMutex
)

// NewContext returns a context carrying its own asynq client, overriding the
// global one. Used by tests to inject a fake-backed client per request.
func NewContext(ctx context.Context, client *asynq.Client) context.Context {
	return context.WithValue(ctx, asynqCtxKey, client)
}

// GetClient returns the client from ctx if one was attached, otherwise the
// global client set with SetClient. Safe for concurrent use; returns nil when
// no client is configured.
func GetClient(ctx context.Context) *asynq.Client {
	c := ctx.Value(asynqCtxKey)
	if c != nil {
		client, ok := c.(*asynq.Client)
		if !ok {
			return nil
		}

		return client
	}

	globalMu.RLock()
	client := globalClient
	globalMu.RUnlock()

	return client
}

// SetClient replaces the global client, and returns a function restoring the
// previous one. Safe for concurrent use.
func SetClient(client *asynq.Client) func() {
	globalMu.Lock()
	prev := globalClient
	globalClient = client
	globalMu.Unlock()
	return func() { SetClient(prev) }
}
