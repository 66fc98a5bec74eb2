// Package redis implements the relay outbox on top of Redis lists.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

// DefaultOutboxKey is the list holding queued relay extrinsics.
const DefaultOutboxKey = "palletsapi:relay:outbox"

type client struct {
	conn      *redis.Client
	outboxKey string
}

// Option customises a client.
type Option func(*client)

// WithOutboxKey stores the outbox under key instead of DefaultOutboxKey.
func WithOutboxKey(key string) Option {
	return func(c *client) {
		if key != "" {
			c.outboxKey = key
		}
	}
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to the Redis server at addr and checks it answers a PING.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	c := &client{
		conn:      conn,
		outboxKey: DefaultOutboxKey,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}
