package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/palletsapi/internal/pkg/logger"
	"github.com/gabapcia/palletsapi/internal/relayqueue"
)

// Push appends entry, JSON encoded, to the tail of the outbox list.
func (c *client) Push(ctx context.Context, entry relayqueue.Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode outbox entry: %w", err)
	}

	return c.conn.RPush(ctx, c.outboxKey, payload).Err()
}

// Peek returns up to n entries from the head of the outbox list. Elements
// that do not decode are removed from the list and logged.
func (c *client) Peek(ctx context.Context, n int64) ([]relayqueue.Entry, error) {
	if n <= 0 {
		return nil, nil
	}

	raw, err := c.conn.LRange(ctx, c.outboxKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]relayqueue.Entry, 0, len(raw))
	for _, item := range raw {
		var entry relayqueue.Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			logger.Warn(ctx, "dropping malformed outbox entry", "key", c.outboxKey, "error", err)
			if err := c.conn.LRem(ctx, c.outboxKey, 1, item).Err(); err != nil {
				return nil, err
			}
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Ack removes the first list element equal to the JSON encoding of entry.
//
// Entries are compared byte for byte, so entry must be the value Peek
// returned.
func (c *client) Ack(ctx context.Context, entry relayqueue.Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode outbox entry: %w", err)
	}

	return c.conn.LRem(ctx, c.outboxKey, 1, payload).Err()
}

// Len returns the length of the outbox list.
func (c *client) Len(ctx context.Context) (int64, error) {
	return c.conn.LLen(ctx, c.outboxKey).Result()
}

var _ relayqueue.Outbox = (*client)(nil)
