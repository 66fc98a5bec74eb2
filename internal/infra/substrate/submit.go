package substrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/parser"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/gabapcia/palletsapi/chain"
	"github.com/gabapcia/palletsapi/internal/pkg/logger"
)

// Dispatch outcome events.
const (
	eventExtrinsicSuccess = "System.ExtrinsicSuccess"
	eventExtrinsicFailed  = "System.ExtrinsicFailed"
)

var (
	// ErrExtrinsicDropped is returned when the pool drops a watched extrinsic.
	ErrExtrinsicDropped = errors.New("extrinsic dropped")

	// ErrExtrinsicInvalid is returned when a watched extrinsic becomes invalid.
	ErrExtrinsicInvalid = errors.New("extrinsic invalid")

	// ErrExtrinsicUsurped is returned when another extrinsic replaced a
	// watched one.
	ErrExtrinsicUsurped = errors.New("extrinsic usurped")

	// ErrFinalityTimeout is returned when the extrinsic's block was not
	// finalized in time.
	ErrFinalityTimeout = errors.New("finality timeout")

	// ErrSubscriptionClosed is returned when the watch subscription ends
	// before a terminal status.
	ErrSubscriptionClosed = errors.New("watch subscription closed")

	// ErrExtrinsicNotInBlock is returned when a finalized block does not
	// contain the watched extrinsic.
	ErrExtrinsicNotInBlock = errors.New("extrinsic not found in block")

	// ErrDispatchFailed is returned when the runtime emitted ExtrinsicFailed.
	ErrDispatchFailed = errors.New("extrinsic dispatch failed")

	// ErrNoEventSource is returned by WaitForSuccess on a client with no
	// event source.
	ErrNoEventSource = errors.New("no event source configured")
)

// EventSource returns the decoded events of a block.
type EventSource interface {
	GetEvents(blockHash types.Hash) ([]*parser.Event, error)
}

func (c *Client) SubmitSigned(ctx context.Context, call chain.Call, nonce *uint32) (hash chain.Hash, err error) {
	ctx, span := c.startSpan(ctx, "SubmitSigned", attribute.String("call", call.String()))
	defer func() { end(span, err) }()
	defer func() { c.record(ctx, "signed", err) }()

	ext, err := c.signed(ctx, call, nonce)
	if err != nil {
		return chain.Hash{}, err
	}

	return c.submit(ctx, ext)
}

func (c *Client) SubmitSignedAndWatch(ctx context.Context, call chain.Call, nonce *uint32) (hash chain.Hash, err error) {
	ctx, span := c.startSpan(ctx, "SubmitSignedAndWatch", attribute.String("call", call.String()))
	defer func() { end(span, err) }()
	defer func() { c.record(ctx, "signed", err) }()

	ext, err := c.signed(ctx, call, nonce)
	if err != nil {
		return chain.Hash{}, err
	}

	w, err := c.watch(ctx, ext)
	if err != nil {
		return chain.Hash{}, err
	}
	defer w.sub.Unsubscribe()

	block, err := w.wait(ctx, func(s types.ExtrinsicStatus) (types.Hash, bool) {
		switch {
		case s.IsInBlock:
			return s.AsInBlock, true
		case s.IsFinalized:
			return s.AsFinalized, true
		}
		return types.Hash{}, false
	})
	if err != nil {
		return chain.Hash{}, err
	}

	logger.Debug(ctx, "extrinsic included", "call", call.String(), "extrinsic", w.hash.Hex(), "block", block.Hex())
	return w.hash, nil
}

func (c *Client) SubmitUnsigned(ctx context.Context, call chain.Call) (hash chain.Hash, err error) {
	ctx, span := c.startSpan(ctx, "SubmitUnsigned", attribute.String("call", call.String()))
	defer func() { end(span, err) }()
	defer func() { c.record(ctx, "unsigned", err) }()

	ext, err := c.unsigned(call)
	if err != nil {
		return chain.Hash{}, err
	}

	return c.submit(ctx, ext)
}

func (c *Client) SubmitUnsignedAndWatch(ctx context.Context, call chain.Call) (progress chain.Progress, err error) {
	ctx, span := c.startSpan(ctx, "SubmitUnsignedAndWatch", attribute.String("call", call.String()))
	defer func() { end(span, err) }()
	defer func() { c.record(ctx, "unsigned", err) }()

	ext, err := c.unsigned(call)
	if err != nil {
		return nil, err
	}

	return c.watch(ctx, ext)
}

// Forward submits an already encoded extrinsic to the connected node.
func (c *Client) Forward(ctx context.Context, extrinsic []byte) (hash chain.Hash, err error) {
	ctx, span := c.startSpan(ctx, "Forward", attribute.Int("size", len(extrinsic)))
	defer func() { end(span, err) }()
	defer func() { c.record(ctx, "forwarded", err) }()

	return c.submit(ctx, extrinsic)
}

func (c *Client) EncodeUnsigned(_ context.Context, call chain.Call) ([]byte, error) {
	return c.unsigned(call)
}

func (c *Client) unsigned(call chain.Call) ([]byte, error) {
	bz, err := c.currentRuntime().call(call)
	if err != nil {
		return nil, err
	}
	return unsignedExtrinsic(bz), nil
}

func (c *Client) signed(ctx context.Context, call chain.Call, nonce *uint32) ([]byte, error) {
	if c.signer == nil {
		return nil, ErrNoSigner
	}

	rt := c.currentRuntime()
	bz, err := rt.call(call)
	if err != nil {
		return nil, err
	}

	n, err := c.nonce(ctx, nonce)
	if err != nil {
		return nil, err
	}

	ext, err := rt.signedExtensions(n)
	if err != nil {
		return nil, err
	}

	return signedExtrinsic(c.signer, bz, ext)
}

func (c *Client) nonce(ctx context.Context, given *uint32) (uint32, error) {
	if given != nil {
		return *given, nil
	}

	var next uint32
	if err := c.transport.Call(ctx, &next, "system_accountNextIndex", c.signer.Account().Hex()); err != nil {
		return 0, fmt.Errorf("fetch nonce: %w", err)
	}
	return next, nil
}

func (c *Client) submit(ctx context.Context, ext []byte) (chain.Hash, error) {
	var hashHex string
	if err := c.transport.Call(ctx, &hashHex, "author_submitExtrinsic", hexutil.Encode(ext)); err != nil {
		return chain.Hash{}, chain.AsTransactionError(err)
	}

	return types.NewHashFromHexString(hashHex)
}

func (c *Client) record(ctx context.Context, kind string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		logger.Error(ctx, "submit extrinsic failed", "kind", kind, "error", err)
	}

	c.submitted.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	))
}

func (c *Client) watch(ctx context.Context, ext []byte) (*watch, error) {
	statuses := make(chan types.ExtrinsicStatus)
	sub, err := c.transport.Subscribe(ctx, "author", "submitAndWatchExtrinsic", "unwatchExtrinsic", "extrinsicUpdate", statuses, hexutil.Encode(ext))
	if err != nil {
		return nil, chain.AsTransactionError(err)
	}

	return &watch{
		client:   c,
		hash:     extrinsicHash(ext),
		sub:      sub,
		statuses: statuses,
	}, nil
}

// watch is a chain.Progress over an author_submitAndWatchExtrinsic
// subscription.
type watch struct {
	client   *Client
	hash     chain.Hash
	sub      Subscription
	statuses <-chan types.ExtrinsicStatus
}

func (w *watch) ExtrinsicHash() chain.Hash {
	return w.hash
}

func (w *watch) WaitForFinalized(ctx context.Context) (chain.FinalizedExtrinsic, error) {
	defer w.sub.Unsubscribe()

	block, err := w.wait(ctx, func(s types.ExtrinsicStatus) (types.Hash, bool) {
		return s.AsFinalized, s.IsFinalized
	})
	if err != nil {
		return nil, err
	}

	return &finalized{client: w.client, hash: w.hash, block: block}, nil
}

// wait consumes statuses until done reports a block or a terminal failure
// arrives.
func (w *watch) wait(ctx context.Context, done func(types.ExtrinsicStatus) (types.Hash, bool)) (types.Hash, error) {
	for {
		select {
		case <-ctx.Done():
			return types.Hash{}, ctx.Err()
		case err, ok := <-w.sub.Err():
			if !ok || err == nil {
				return types.Hash{}, ErrSubscriptionClosed
			}
			return types.Hash{}, fmt.Errorf("%w: %w", ErrSubscriptionClosed, err)
		case status, ok := <-w.statuses:
			if !ok {
				return types.Hash{}, ErrSubscriptionClosed
			}
			if block, ok := done(status); ok {
				return block, nil
			}

			switch {
			case status.IsDropped:
				return types.Hash{}, ErrExtrinsicDropped
			case status.IsInvalid:
				return types.Hash{}, ErrExtrinsicInvalid
			case status.IsUsurped:
				return types.Hash{}, fmt.Errorf("%w by %s", ErrExtrinsicUsurped, status.AsUsurped.Hex())
			case status.IsFinalityTimeout:
				return types.Hash{}, ErrFinalityTimeout
			}
		}
	}
}

type finalized struct {
	client *Client
	hash   chain.Hash
	block  chain.Hash
}

func (f *finalized) BlockHash() chain.Hash {
	return f.block
}

// WaitForSuccess locates the extrinsic in its block and checks the block's
// events for its dispatch outcome.
func (f *finalized) WaitForSuccess(ctx context.Context) (chain.Hash, error) {
	if f.client.events == nil {
		return chain.Hash{}, ErrNoEventSource
	}

	index, err := f.client.extrinsicIndex(ctx, f.block, f.hash)
	if err != nil {
		return chain.Hash{}, err
	}

	events, err := f.client.events.GetEvents(f.block)
	if err != nil {
		return chain.Hash{}, fmt.Errorf("fetch events of %s: %w", f.block.Hex(), err)
	}

	for _, event := range events {
		if event.Phase == nil || !event.Phase.IsApplyExtrinsic || uint32(event.Phase.AsApplyExtrinsic) != index {
			continue
		}

		switch event.Name {
		case eventExtrinsicSuccess:
			return f.hash, nil
		case eventExtrinsicFailed:
			return chain.Hash{}, fmt.Errorf("%w: %s", ErrDispatchFailed, f.hash.Hex())
		}
	}

	return chain.Hash{}, fmt.Errorf("%w: no outcome event for %s", ErrDispatchFailed, f.hash.Hex())
}

func (c *Client) extrinsicIndex(ctx context.Context, block, hash chain.Hash) (uint32, error) {
	var signedBlock struct {
		Block struct {
			Extrinsics []string `json:"extrinsics"`
		} `json:"block"`
	}
	if err := c.transport.Call(ctx, &signedBlock, "chain_getBlock", block.Hex()); err != nil {
		return 0, fmt.Errorf("fetch block %s: %w", block.Hex(), err)
	}

	for i, raw := range signedBlock.Block.Extrinsics {
		ext, err := decodeHex(raw)
		if err != nil {
			return 0, err
		}
		if extrinsicHash(ext) == hash {
			return uint32(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %s in %s", ErrExtrinsicNotInBlock, hash.Hex(), block.Hex())
}
