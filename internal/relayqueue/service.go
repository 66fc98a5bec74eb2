// Package relayqueue defers the broadcast of relay extrinsics. Encoded
// extrinsics are pushed to an Outbox and later flushed, oldest first, through
// a Forwarder.
package relayqueue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/gabapcia/palletsapi/chain"
	"github.com/gabapcia/palletsapi/internal/pkg/logger"
	"github.com/gabapcia/palletsapi/internal/pkg/resilience/retry"
	"github.com/gabapcia/palletsapi/internal/pkg/validator"
)

// DefaultBatchSize is the number of entries a flush reads when none is given.
const DefaultBatchSize int64 = 50

// Service queues encoded relay extrinsics and broadcasts them on demand.
type Service interface {
	// Enqueue stores extrinsic for a later flush. operation names the relay
	// call it encodes and is only used for reporting.
	Enqueue(ctx context.Context, operation string, extrinsic []byte) (Entry, error)

	// Flush forwards up to batch entries, oldest first. Entries the node
	// rejects are dropped and reported; a transport failure stops the flush
	// and leaves the remaining entries queued.
	Flush(ctx context.Context, batch int64) (FlushReport, error)

	// Pending returns the number of queued entries.
	Pending(ctx context.Context) (int64, error)
}

// Forwarded is an entry the node accepted.
type Forwarded struct {
	Entry Entry
	Hash  chain.Hash
}

// Rejected is an entry the node refused.
type Rejected struct {
	Entry Entry
	Err   error
}

// FlushReport lists what a flush did.
type FlushReport struct {
	Forwarded []Forwarded
	Rejected  []Rejected
}

type service struct {
	outbox    Outbox
	forwarder Forwarder
	retry     retry.Retry
	now       func() time.Time
	flushed   metric.Int64Counter
}

var _ Service = (*service)(nil)

// New builds a Service. r is applied to every forward; node rejections stop
// the retries at once.
func New(outbox Outbox, forwarder Forwarder, r retry.Retry) *service {
	// Instrument creation only fails on invalid names.
	flushed, _ := otel.Meter("github.com/gabapcia/palletsapi/internal/relayqueue").Int64Counter(
		"palletsapi.relay.outbox.flushed",
		metric.WithDescription("Outbox entries processed by a flush"),
	)

	return &service{
		outbox:    outbox,
		forwarder: forwarder,
		retry:     r,
		now:       time.Now,
		flushed:   flushed,
	}
}

func (s *service) Enqueue(ctx context.Context, operation string, extrinsic []byte) (Entry, error) {
	entry := Entry{
		ID:        uuid.NewString(),
		Operation: operation,
		Extrinsic: extrinsic,
		CreatedAt: s.now().UTC(),
	}
	if err := validator.Validate(entry); err != nil {
		return Entry{}, err
	}

	if err := s.outbox.Push(ctx, entry); err != nil {
		return Entry{}, fmt.Errorf("push to outbox: %w", err)
	}

	logger.Info(ctx, "relay queued", "id", entry.ID, "operation", operation, "size", len(extrinsic))
	return entry, nil
}

func (s *service) Flush(ctx context.Context, batch int64) (FlushReport, error) {
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	entries, err := s.outbox.Peek(ctx, batch)
	if err != nil {
		return FlushReport{}, fmt.Errorf("read outbox: %w", err)
	}

	var report FlushReport
	for _, entry := range entries {
		ctx := logger.Derive(ctx, "id", entry.ID, "operation", entry.Operation)

		hash, err := s.forward(ctx, entry)

		var rejection *chain.TransactionError
		switch {
		case err == nil:
			report.Forwarded = append(report.Forwarded, Forwarded{Entry: entry, Hash: hash})
			s.count(ctx, "forwarded")
			logger.Info(ctx, "relay forwarded", "hash", hash.Hex())
		case errors.As(err, &rejection):
			report.Rejected = append(report.Rejected, Rejected{Entry: entry, Err: err})
			s.count(ctx, "rejected")
			logger.Warn(ctx, "relay rejected by node", "error", err)
		default:
			logger.Error(ctx, "relay forward failed", "error", err)
			return report, fmt.Errorf("forward %s: %w", entry.ID, err)
		}

		if err := s.outbox.Ack(ctx, entry); err != nil {
			return report, fmt.Errorf("ack %s: %w", entry.ID, err)
		}
	}

	return report, nil
}

func (s *service) forward(ctx context.Context, entry Entry) (chain.Hash, error) {
	var hash chain.Hash
	err := s.retry.Execute(ctx, func() error {
		var err error
		hash, err = s.forwarder.Forward(ctx, entry.Extrinsic)
		err = chain.AsTransactionError(err)

		var rejection *chain.TransactionError
		if errors.As(err, &rejection) {
			return retry.Unrecoverable(err)
		}
		return err
	})
	return hash, err
}

func (s *service) count(ctx context.Context, outcome string) {
	s.flushed.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (s *service) Pending(ctx context.Context) (int64, error) {
	return s.outbox.Len(ctx)
}
