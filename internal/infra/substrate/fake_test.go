package substrate

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/parser"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/stretchr/testify/require"
)

var testGenesis = types.Hash{0: 0x91, 31: 0x19}

const (
	testSpecVersion        = 2_100
	testTransactionVersion = 3
)

type recordedCall struct {
	method string
	args   []any
}

// fakeTransport answers JSON-RPC calls from handlers, round-tripping results
// through JSON the way a node connection does.
type fakeTransport struct {
	mu       sync.Mutex
	handlers map[string]func(args []any) (any, error)
	calls    []recordedCall

	statuses   []types.ExtrinsicStatus
	subscribed []any
	subErr     chan error
	closed     bool
}

func newFakeTransport(t *testing.T) *fakeTransport {
	t.Helper()

	metaHex, err := codec.EncodeToHex(testMetadata())
	require.NoError(t, err)

	f := &fakeTransport{
		handlers: map[string]func([]any) (any, error){},
		subErr:   make(chan error, 1),
	}
	f.handle("state_getMetadata", metaHex)
	f.handle("state_getRuntimeVersion", map[string]any{
		"specVersion":        testSpecVersion,
		"transactionVersion": testTransactionVersion,
	})
	f.handle("chain_getBlockHash", testGenesis.Hex())
	return f
}

// handle answers method with a fixed result.
func (f *fakeTransport) handle(method string, result any) {
	f.handleFunc(method, func([]any) (any, error) { return result, nil })
}

func (f *fakeTransport) handleFunc(method string, fn func(args []any) (any, error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[method] = fn
}

func (f *fakeTransport) callsTo(method string) []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []recordedCall
	for _, c := range f.calls {
		if c.method == method {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeTransport) Call(_ context.Context, result any, method string, args ...any) error {
	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{method: method, args: args})
	fn, ok := f.handlers[method]
	f.mu.Unlock()

	if !ok {
		return fmt.Errorf("unexpected call %s", method)
	}

	v, err := fn(args)
	if err != nil {
		return err
	}

	bz, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(bz, result)
}

func (f *fakeTransport) Subscribe(_ context.Context, namespace, subscribeSuffix, _, _ string, channel any, args ...any) (Subscription, error) {
	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{method: namespace + "_" + subscribeSuffix, args: args})
	f.subscribed = append(f.subscribed, channel)
	statuses := f.statuses
	f.mu.Unlock()

	sub := &fakeSubscription{err: f.subErr, done: make(chan struct{})}
	ch := channel.(chan types.ExtrinsicStatus)
	go func() {
		for _, s := range statuses {
			select {
			case ch <- s:
			case <-sub.done:
				return
			}
		}
	}()
	return sub, nil
}

func (f *fakeTransport) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

type fakeSubscription struct {
	err  chan error
	done chan struct{}
	once sync.Once
}

func (s *fakeSubscription) Err() <-chan error { return s.err }

func (s *fakeSubscription) Unsubscribe() {
	s.once.Do(func() { close(s.done) })
}

type eventSourceFunc func(types.Hash) ([]*parser.Event, error)

func (f eventSourceFunc) GetEvents(h types.Hash) ([]*parser.Event, error) { return f(h) }

func newTestClient(t *testing.T, opts ...Option) (*Client, *fakeTransport) {
	t.Helper()

	f := newFakeTransport(t)
	c, err := New(t.Context(), f, opts...)
	require.NoError(t, err)
	return c, f
}

func lookupID(n uint64) types.Si1LookupTypeID {
	return types.NewSi1LookupTypeIDFromUInt(n)
}

// testMetadata describes a runtime with a System pallet (index 0) exposing a
// plain value, a Blake2_128Concat map, a constant and a remark call at
// index 1.
func testMetadata() types.Metadata {
	defaultModifier := types.StorageFunctionModifierV0{IsDefault: true}
	optionalModifier := types.StorageFunctionModifierV0{IsOptional: true}

	system := types.PalletMetadataV14{
		Name:       "System",
		HasStorage: true,
		Storage: types.StorageMetadataV14{
			Prefix: "System",
			Items: []types.StorageEntryMetadataV14{
				{
					Name:     "Number",
					Modifier: defaultModifier,
					Type: types.StorageEntryTypeV14{
						IsPlainType: true,
						AsPlainType: lookupID(0),
					},
					Fallback: types.Bytes{0x2a, 0, 0, 0},
				},
				{
					Name:     "Account",
					Modifier: optionalModifier,
					Type: types.StorageEntryTypeV14{
						IsMap: true,
						AsMap: types.MapTypeV14{
							Hashers: []types.StorageHasherV10{{IsBlake2_128Concat: true}},
							Key:     lookupID(0),
							Value:   lookupID(0),
						},
					},
					Fallback: types.Bytes{0x00},
				},
			},
		},
		HasCalls: true,
		Calls:    types.FunctionMetadataV14{Type: lookupID(0)},
		Constants: []types.ConstantMetadataV14{
			{Name: "BlockHashCount", Type: lookupID(0), Value: types.Bytes{0x60, 0x09, 0, 0}},
		},
		Index: 0,
	}

	return types.Metadata{
		MagicNumber:   types.MagicNumber,
		Version:       14,
		IsMetadataV14: true,
		AsMetadataV14: types.MetadataV14{
			Lookup: types.PortableRegistry{
				Types: []types.PortableTypeV14{
					{
						ID: lookupID(0),
						Type: types.Si1Type{
							Def: types.Si1TypeDef{
								IsVariant: true,
								Variant: types.Si1TypeDefVariant{
									Variants: []types.Si1Variant{
										{Name: "remark", Index: 1},
									},
								},
							},
						},
					},
				},
			},
			Pallets: []types.PalletMetadataV14{system},
			Extrinsic: types.ExtrinsicV14{
				Version: 4,
				SignedExtensions: []types.SignedExtensionMetadataV14{
					{Identifier: "CheckSpecVersion"},
					{Identifier: "CheckTxVersion"},
					{Identifier: "CheckGenesis"},
					{Identifier: "CheckMortality"},
					{Identifier: "CheckNonce"},
					{Identifier: "CheckWeight"},
					{Identifier: "ChargeTransactionPayment"},
				},
			},
		},
	}
}
