// Package substrate implements chain.Client over a node's JSON-RPC websocket
// API using go-substrate-rpc-client: storage keys and calls are resolved
// against the node's V14 metadata, extrinsics are encoded here and signed with
// an Ethereum-style ECDSA key.
package substrate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	gsrpcclient "github.com/centrifuge/go-substrate-rpc-client/v4/client"
	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/retriever"
	"github.com/centrifuge/go-substrate-rpc-client/v4/rpc/state"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/palletsapi/chain"
	"github.com/gabapcia/palletsapi/internal/pkg/logger"
	"github.com/gabapcia/palletsapi/internal/pkg/resilience/retry"
	"github.com/gabapcia/palletsapi/internal/relayqueue"
)

const instrumentationName = "github.com/gabapcia/palletsapi/internal/infra/substrate"

// ErrNoSigner is returned by signed submissions on a client built without a
// signer.
var ErrNoSigner = errors.New("no signer configured")

// Client is a chain.Client backed by a node connection. It is safe for
// concurrent use; the runtime snapshot is swapped atomically on Refresh.
type Client struct {
	transport Transport
	events    EventSource
	signer    *Signer

	mu      sync.RWMutex
	runtime *runtime

	tracer    trace.Tracer
	submitted metric.Int64Counter
}

var (
	_ chain.Client         = (*Client)(nil)
	_ relayqueue.Forwarder = (*Client)(nil)
)

// Option configures a Client.
type Option func(*Client)

// WithSigner sets the key used by signed submissions.
func WithSigner(s *Signer) Option {
	return func(c *Client) {
		c.signer = s
	}
}

// WithEventSource overrides where dispatch outcomes are read from.
func WithEventSource(e EventSource) Option {
	return func(c *Client) {
		c.events = e
	}
}

// Dial connects to url, retrying with r, and loads the runtime.
func Dial(ctx context.Context, url string, r retry.Retry, opts ...Option) (*Client, error) {
	var conn gsrpcclient.Client
	err := r.Execute(ctx, func() error {
		var err error
		conn, err = gsrpcclient.Connect(url)
		if err != nil {
			logger.Warn(ctx, "connect to node failed", "url", url, "error", err)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", url, err)
	}

	stateRPC := state.NewState(conn)
	events, err := retriever.NewDefaultEventRetriever(state.NewEventProvider(stateRPC), stateRPC)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("build event retriever: %w", err)
	}

	transport, err := newRPCTransport(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	opts = append([]Option{WithEventSource(events)}, opts...)
	c, err := New(ctx, transport, opts...)
	if err != nil {
		conn.Close()
		return nil, err
	}

	logger.Info(ctx, "connected to node", "url", url)
	return c, nil
}

// New builds a Client over an established transport and loads the runtime.
func New(ctx context.Context, t Transport, opts ...Option) (*Client, error) {
	c := &Client{
		transport: t,
		tracer:    otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(c)
	}

	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"palletsapi.extrinsics.submitted",
		metric.WithDescription("Extrinsics handed to the node"),
	)
	if err != nil {
		return nil, err
	}
	c.submitted = counter

	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// Close releases the node connection.
func (c *Client) Close() {
	c.transport.Close()
}

// Refresh reloads metadata, runtime version and genesis hash, for use after
// a runtime upgrade.
func (c *Client) Refresh(ctx context.Context) error {
	var metaHex string
	if err := c.transport.Call(ctx, &metaHex, "state_getMetadata"); err != nil {
		return fmt.Errorf("fetch metadata: %w", err)
	}

	var meta types.Metadata
	if err := codec.DecodeFromHex(metaHex, &meta); err != nil {
		return fmt.Errorf("decode metadata: %w", err)
	}

	var version struct {
		SpecVersion        uint32 `json:"specVersion"`
		TransactionVersion uint32 `json:"transactionVersion"`
	}
	if err := c.transport.Call(ctx, &version, "state_getRuntimeVersion"); err != nil {
		return fmt.Errorf("fetch runtime version: %w", err)
	}

	var genesisHex string
	if err := c.transport.Call(ctx, &genesisHex, "chain_getBlockHash", 0); err != nil {
		return fmt.Errorf("fetch genesis hash: %w", err)
	}
	genesis, err := types.NewHashFromHexString(genesisHex)
	if err != nil {
		return fmt.Errorf("decode genesis hash: %w", err)
	}

	rt, err := newRuntime(&meta, version.SpecVersion, version.TransactionVersion, genesis)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.runtime = rt
	c.mu.Unlock()

	logger.Info(ctx, "runtime loaded", "spec_version", version.SpecVersion, "transaction_version", version.TransactionVersion)
	return nil
}

func (c *Client) currentRuntime() *runtime {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.runtime
}

func (c *Client) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "substrate."+name, trace.WithAttributes(attrs...))
}

// end records err on span and ends it.
func end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// withBlock appends the optional block hash argument of state and chain RPCs.
func withBlock(at *chain.Hash, args ...any) []any {
	if at == nil {
		return args
	}
	return append(args, at.Hex())
}
