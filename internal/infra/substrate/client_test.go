package substrate

import (
	"context"
	"errors"
	"testing"

	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/parser"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/gabapcia/palletsapi/chain"
)

const testKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

var (
	numberKey  = chain.StorageKey{Pallet: "System", Item: "Number"}
	remarkCall = chain.NewCall("System", "remark", []byte{0xde, 0xad})

	// compact(6) ‖ 0x04 ‖ pallet 0, call 1 ‖ compact(2) 0xdead
	unsignedRemark = []byte{0x18, 0x04, 0x00, 0x01, 0x08, 0xde, 0xad}
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()

	bz, err := hexutil.Decode(s)
	require.NoError(t, err)
	return bz
}

// rpcError mimics the error values the node connection returns.
type rpcError struct {
	code int
	data any
}

func (e rpcError) Error() string { return "Invalid Transaction" }
func (e rpcError) ErrorCode() int { return e.code }
func (e rpcError) ErrorData() any { return e.data }

func TestNew(t *testing.T) {
	t.Run("loads the runtime", func(t *testing.T) {
		c, _ := newTestClient(t)

		rt := c.currentRuntime()
		require.NotNil(t, rt)
		assert.Equal(t, uint32(testSpecVersion), rt.specVersion)
		assert.Equal(t, uint32(testTransactionVersion), rt.transactionVersion)
		assert.Equal(t, testGenesis, rt.genesis)
	})

	t.Run("metadata fetch fails", func(t *testing.T) {
		f := newFakeTransport(t)
		expectedErr := errors.New("connection reset")
		f.handleFunc("state_getMetadata", func([]any) (any, error) { return nil, expectedErr })

		_, err := New(t.Context(), f)
		assert.ErrorIs(t, err, expectedErr)
	})

	t.Run("close releases the transport", func(t *testing.T) {
		c, f := newTestClient(t)
		c.Close()
		assert.True(t, f.closed)
	})
}

func TestStorageKey(t *testing.T) {
	c, _ := newTestClient(t)
	rt := c.currentRuntime()

	t.Run("plain value", func(t *testing.T) {
		key, err := rt.storageKey(numberKey)
		require.NoError(t, err)
		assert.Equal(t, "0x26aa394eea5630e07c48ae0c9558cef702a5c1b19ab7a04f536c519aca4983ac", hexutil.Encode(key))
	})

	t.Run("blake2_128concat map", func(t *testing.T) {
		arg := []byte{0x07, 0, 0, 0}
		key, err := rt.storageKey(chain.StorageKey{Pallet: "System", Item: "Account", Args: [][]byte{arg}})
		require.NoError(t, err)

		h, err := blake2b.New(16, nil)
		require.NoError(t, err)
		h.Write(arg)

		assert.Equal(t, mustHex(t, "0x26aa394eea5630e07c48ae0c9558cef7"), key[:16])
		assert.Equal(t, h.Sum(nil), key[32:48])
		assert.Equal(t, arg, key[48:])

		n, err := chain.KeyU32(key)
		require.NoError(t, err)
		assert.Equal(t, uint32(7), n)
	})

	t.Run("map prefix", func(t *testing.T) {
		key, err := rt.storageKey(chain.StorageKey{Pallet: "System", Item: "Account"})
		require.NoError(t, err)
		assert.Len(t, key, 32)
	})

	t.Run("too many arguments", func(t *testing.T) {
		_, err := rt.storageKey(chain.StorageKey{Pallet: "System", Item: "Number", Args: [][]byte{{1}}})
		assert.ErrorIs(t, err, ErrTooManyKeys)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := rt.storageKey(chain.StorageKey{Pallet: "System", Item: "Nope"})
		assert.ErrorIs(t, err, ErrUnknownStorage)
		assert.ErrorContains(t, err, "System.Nope")
	})

	t.Run("unknown pallet", func(t *testing.T) {
		_, err := rt.storageKey(chain.StorageKey{Pallet: "Mining", Item: "Challenges"})
		assert.ErrorIs(t, err, ErrUnknownStorage)
	})
}

func TestQueryStorage(t *testing.T) {
	t.Run("present value", func(t *testing.T) {
		c, f := newTestClient(t)
		f.handle("state_getStorage", "0xe2040000")

		value, ok, err := c.QueryStorage(t.Context(), numberKey, nil)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte{0xe2, 0x04, 0, 0}, value)

		calls := f.callsTo("state_getStorage")
		require.Len(t, calls, 1)
		assert.Equal(t, []any{"0x26aa394eea5630e07c48ae0c9558cef702a5c1b19ab7a04f536c519aca4983ac"}, calls[0].args)
	})

	t.Run("absent value", func(t *testing.T) {
		c, f := newTestClient(t)
		f.handle("state_getStorage", nil)

		value, ok, err := c.QueryStorage(t.Context(), numberKey, nil)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, value)
	})

	t.Run("at a block", func(t *testing.T) {
		c, f := newTestClient(t)
		f.handle("state_getStorage", "0x01")

		at := chain.Hash{31: 0x05}
		_, _, err := c.QueryStorage(t.Context(), numberKey, &at)
		require.NoError(t, err)

		calls := f.callsTo("state_getStorage")
		require.Len(t, calls, 1)
		require.Len(t, calls[0].args, 2)
		assert.Equal(t, at.Hex(), calls[0].args[1])
	})

	t.Run("node error", func(t *testing.T) {
		c, f := newTestClient(t)
		expectedErr := errors.New("boom")
		f.handleFunc("state_getStorage", func([]any) (any, error) { return nil, expectedErr })

		_, _, err := c.QueryStorage(t.Context(), numberKey, nil)
		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestQueryStorageOrDefault(t *testing.T) {
	t.Run("stored value wins", func(t *testing.T) {
		c, f := newTestClient(t)
		f.handle("state_getStorage", "0x01000000")

		value, err := c.QueryStorageOrDefault(t.Context(), numberKey, nil)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0, 0, 0}, value)
	})

	t.Run("falls back to metadata", func(t *testing.T) {
		c, f := newTestClient(t)
		f.handle("state_getStorage", nil)

		value, err := c.QueryStorageOrDefault(t.Context(), numberKey, nil)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x2a, 0, 0, 0}, value)
	})
}

func TestQueryStorageValueIter(t *testing.T) {
	c, f := newTestClient(t)

	prefix := chain.StorageKey{Pallet: "System", Item: "Account"}
	pages := [][]string{{"0x01", "0x02"}, {"0x03"}}
	f.handleFunc("state_getKeysPaged", func(args []any) (any, error) {
		if args[2].(*string) == nil {
			return pages[0], nil
		}
		return pages[1], nil
	})
	f.handleFunc("state_queryStorageAt", func(args []any) (any, error) {
		keys := args[0].([]string)
		changes := make([][2]*string, len(keys))
		for i := range keys {
			value := "0xff"
			changes[i] = [2]*string{&keys[i], &value}
		}
		return []storageChangeSet{{Block: "0x00", Changes: changes}}, nil
	})

	entries, err := c.QueryStorageValueIter(t.Context(), prefix, 2, nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, chain.KeyValue{Key: []byte{0x03}, Value: []byte{0xff}}, entries[2])

	calls := f.callsTo("state_getKeysPaged")
	require.Len(t, calls, 2)
	assert.Equal(t, uint32(2), calls[0].args[1])
	start := calls[1].args[2].(*string)
	require.NotNil(t, start)
	assert.Equal(t, "0x02", *start)
}

func TestQueryStorageValueIterEmpty(t *testing.T) {
	c, f := newTestClient(t)
	f.handle("state_getKeysPaged", []string{})

	entries, err := c.QueryStorageValueIter(t.Context(), chain.StorageKey{Pallet: "System", Item: "Account"}, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, entries)

	calls := f.callsTo("state_getKeysPaged")
	require.Len(t, calls, 1)
	assert.Equal(t, chain.DefaultPageSize, calls[0].args[1])
	assert.Empty(t, f.callsTo("state_queryStorageAt"))
}

func TestQueryConstant(t *testing.T) {
	c, _ := newTestClient(t)

	value, err := c.QueryConstant(t.Context(), chain.ConstantKey{Pallet: "System", Name: "BlockHashCount"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x09, 0, 0}, value)

	_, err = c.QueryConstant(t.Context(), chain.ConstantKey{Pallet: "System", Name: "Missing"})
	assert.ErrorIs(t, err, ErrUnknownConstant)
}

func TestBlockNumber(t *testing.T) {
	c, f := newTestClient(t)
	f.handle("chain_getHeader", map[string]any{"number": "0x4e2", "parentHash": "0x00"})

	n, err := c.BlockNumber(t.Context(), nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(1_250), n)

	at := chain.Hash{0: 0x01}
	_, err = c.BlockNumber(t.Context(), &at)
	require.NoError(t, err)

	calls := f.callsTo("chain_getHeader")
	require.Len(t, calls, 2)
	assert.Empty(t, calls[0].args)
	assert.Equal(t, []any{at.Hex()}, calls[1].args)
}

func TestEncodeUnsigned(t *testing.T) {
	c, _ := newTestClient(t)

	bz, err := c.EncodeUnsigned(t.Context(), remarkCall)
	require.NoError(t, err)
	assert.Equal(t, unsignedRemark, bz)

	_, err = c.EncodeUnsigned(t.Context(), chain.NewCall("System", "missing"))
	assert.Error(t, err)
}

func TestSubmitUnsigned(t *testing.T) {
	t.Run("returns the pool hash", func(t *testing.T) {
		c, f := newTestClient(t)
		hash := chain.Hash{31: 0x42}
		f.handle("author_submitExtrinsic", hash.Hex())

		got, err := c.SubmitUnsigned(t.Context(), remarkCall)
		require.NoError(t, err)
		assert.Equal(t, hash, got)

		calls := f.callsTo("author_submitExtrinsic")
		require.Len(t, calls, 1)
		assert.Equal(t, []any{hexutil.Encode(unsignedRemark)}, calls[0].args)
	})

	t.Run("pool rejection", func(t *testing.T) {
		c, f := newTestClient(t)
		f.handleFunc("author_submitExtrinsic", func([]any) (any, error) {
			return nil, rpcError{code: chain.CodeInvalidTransaction, data: "Custom error: 3"}
		})

		_, err := c.SubmitUnsigned(t.Context(), remarkCall)

		var txErr *chain.TransactionError
		require.ErrorAs(t, err, &txErr)
		assert.Equal(t, chain.CodeInvalidTransaction, txErr.Code)
		code, ok := txErr.CustomCode()
		assert.True(t, ok)
		assert.Equal(t, uint8(3), code)
	})
}

func TestForward(t *testing.T) {
	t.Run("submits the bytes as given", func(t *testing.T) {
		c, f := newTestClient(t)
		hash := chain.Hash{0: 0x07, 31: 0x42}
		f.handle("author_submitExtrinsic", hash.Hex())

		got, err := c.Forward(t.Context(), unsignedRemark)
		require.NoError(t, err)
		assert.Equal(t, hash, got)

		calls := f.callsTo("author_submitExtrinsic")
		require.Len(t, calls, 1)
		assert.Equal(t, []any{hexutil.Encode(unsignedRemark)}, calls[0].args)
	})

	t.Run("pool rejection", func(t *testing.T) {
		c, f := newTestClient(t)
		f.handleFunc("author_submitExtrinsic", func([]any) (any, error) {
			return nil, rpcError{code: chain.CodeAlreadyImported}
		})

		_, err := c.Forward(t.Context(), unsignedRemark)

		var txErr *chain.TransactionError
		require.ErrorAs(t, err, &txErr)
		assert.Equal(t, chain.CodeAlreadyImported, txErr.Code)
	})
}

func TestSubmitSigned(t *testing.T) {
	signer, err := NewSigner(testKey)
	require.NoError(t, err)

	t.Run("signs with the next nonce", func(t *testing.T) {
		c, f := newTestClient(t, WithSigner(signer))
		f.handle("system_accountNextIndex", 5)
		f.handle("author_submitExtrinsic", chain.Hash{}.Hex())

		_, err := c.SubmitSigned(t.Context(), remarkCall, nil)
		require.NoError(t, err)

		nonceCalls := f.callsTo("system_accountNextIndex")
		require.Len(t, nonceCalls, 1)
		assert.Equal(t, []any{signer.Account().Hex()}, nonceCalls[0].args)

		calls := f.callsTo("author_submitExtrinsic")
		require.Len(t, calls, 1)
		ext := mustHex(t, calls[0].args[0].(string))

		body := ext[2:] // two-byte compact length
		call := unsignedRemark[2:]
		assert.Equal(t, byte(0x84), body[0])
		assert.Equal(t, signer.Account().Address().Bytes(), body[1:21])
		signature := body[21:86]
		extra := body[86 : len(body)-len(call)]
		assert.Equal(t, []byte{0x00, 0x14, 0x00}, extra) // immortal, nonce 5, no tip
		assert.Equal(t, call, body[len(body)-len(call):])

		var payload []byte
		payload = append(payload, call...)
		payload = append(payload, extra...)
		payload = append(payload, u32(testSpecVersion)...)
		payload = append(payload, u32(testTransactionVersion)...)
		payload = append(payload, testGenesis[:]...)
		payload = append(payload, testGenesis[:]...)

		pub, err := crypto.SigToPub(crypto.Keccak256(payload), signature)
		require.NoError(t, err)
		assert.Equal(t, signer.Account().Address(), crypto.PubkeyToAddress(*pub))
	})

	t.Run("uses the given nonce", func(t *testing.T) {
		c, f := newTestClient(t, WithSigner(signer))
		f.handle("author_submitExtrinsic", chain.Hash{}.Hex())

		nonce := uint32(9)
		_, err := c.SubmitSigned(t.Context(), remarkCall, &nonce)
		require.NoError(t, err)
		assert.Empty(t, f.callsTo("system_accountNextIndex"))
	})

	t.Run("requires a signer", func(t *testing.T) {
		c, _ := newTestClient(t)

		_, err := c.SubmitSigned(t.Context(), remarkCall, nil)
		assert.ErrorIs(t, err, ErrNoSigner)
	})
}

func TestNewSigner(t *testing.T) {
	t.Run("derives the account", func(t *testing.T) {
		signer, err := NewSigner(testKey)
		require.NoError(t, err)

		key, err := crypto.HexToECDSA(testKey[2:])
		require.NoError(t, err)
		assert.Equal(t, chain.AccountID20(crypto.PubkeyToAddress(key.PublicKey)), signer.Account())
	})

	for name, key := range map[string]string{
		"missing 0x prefix": testKey[2:],
		"short key":         "0x4c08",
		"not hex":           "0xzz",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewSigner(key)
			assert.ErrorContains(t, err, "parse signer key")
		})
	}
}

func TestSignedExtensions(t *testing.T) {
	meta := testMetadata()
	meta.AsMetadataV14.Extrinsic.SignedExtensions = append(meta.AsMetadataV14.Extrinsic.SignedExtensions,
		types.SignedExtensionMetadataV14{Identifier: "CheckUnknown"})

	rt, err := newRuntime(&meta, 1, 1, testGenesis)
	require.NoError(t, err)

	_, err = rt.signedExtensions(0)
	assert.ErrorIs(t, err, ErrUnsupportedExtension)
	assert.ErrorContains(t, err, "CheckUnknown")
}

func TestNewRuntimeRejectsOldMetadata(t *testing.T) {
	_, err := newRuntime(&types.Metadata{Version: 13}, 1, 1, testGenesis)
	assert.ErrorIs(t, err, ErrUnsupportedMetadata)
}

func TestSignedExtrinsicHashesLongPayloads(t *testing.T) {
	signer, err := NewSigner(testKey)
	require.NoError(t, err)

	call := make([]byte, 300)
	ext, err := signedExtrinsic(signer, call, extensionData{})
	require.NoError(t, err)

	// compact(1+20+65+300) takes two bytes
	signature := ext[2+1+20 : 2+1+20+65]
	digest := blake2b.Sum256(call)
	pub, err := crypto.SigToPub(crypto.Keccak256(digest[:]), signature)
	require.NoError(t, err)
	assert.Equal(t, signer.Account().Address(), crypto.PubkeyToAddress(*pub))
}

func TestSubmitSignedAndWatch(t *testing.T) {
	signer, err := NewSigner(testKey)
	require.NoError(t, err)
	block := types.Hash{0: 0xbb}

	t.Run("returns once in a block", func(t *testing.T) {
		c, f := newTestClient(t, WithSigner(signer))
		f.handle("system_accountNextIndex", 0)
		f.statuses = []types.ExtrinsicStatus{{IsReady: true}, {IsInBlock: true, AsInBlock: block}}

		hash, err := c.SubmitSignedAndWatch(t.Context(), remarkCall, nil)
		require.NoError(t, err)

		calls := f.callsTo("author_submitAndWatchExtrinsic")
		require.Len(t, calls, 1)
		assert.Equal(t, extrinsicHash(mustHex(t, calls[0].args[0].(string))), hash)
	})

	t.Run("dropped", func(t *testing.T) {
		c, f := newTestClient(t, WithSigner(signer))
		f.handle("system_accountNextIndex", 0)
		f.statuses = []types.ExtrinsicStatus{{IsDropped: true}}

		_, err := c.SubmitSignedAndWatch(t.Context(), remarkCall, nil)
		assert.ErrorIs(t, err, ErrExtrinsicDropped)
	})
}

func TestSubmitUnsignedAndWatch(t *testing.T) {
	block := types.Hash{0: 0xbb}
	ours := hexutil.Encode(unsignedRemark)
	other := "0x0c0400ff"

	outcome := func(name string, index uint32) eventSourceFunc {
		return func(h types.Hash) ([]*parser.Event, error) {
			if h != block {
				return nil, errors.New("wrong block")
			}
			return []*parser.Event{
				{Name: "System.ExtrinsicSuccess", Phase: &types.Phase{IsApplyExtrinsic: true, AsApplyExtrinsic: 0}},
				{Name: name, Phase: &types.Phase{IsApplyExtrinsic: true, AsApplyExtrinsic: index}},
			}, nil
		}
	}

	watchFinalized := func(t *testing.T, events EventSource) (chain.FinalizedExtrinsic, error) {
		c, f := newTestClient(t, WithEventSource(events))
		f.statuses = []types.ExtrinsicStatus{
			{IsReady: true},
			{IsInBlock: true, AsInBlock: types.Hash{0: 0xaa}},
			{IsFinalized: true, AsFinalized: block},
		}
		f.handle("chain_getBlock", map[string]any{
			"block": map[string]any{"extrinsics": []string{other, ours}},
		})

		progress, err := c.SubmitUnsignedAndWatch(t.Context(), remarkCall)
		require.NoError(t, err)
		assert.Equal(t, extrinsicHash(unsignedRemark), progress.ExtrinsicHash())

		return progress.WaitForFinalized(t.Context())
	}

	t.Run("success", func(t *testing.T) {
		finalized, err := watchFinalized(t, outcome("System.ExtrinsicSuccess", 1))
		require.NoError(t, err)
		assert.Equal(t, block, finalized.BlockHash())

		hash, err := finalized.WaitForSuccess(t.Context())
		require.NoError(t, err)
		assert.Equal(t, extrinsicHash(unsignedRemark), hash)
	})

	t.Run("dispatch failed", func(t *testing.T) {
		finalized, err := watchFinalized(t, outcome("System.ExtrinsicFailed", 1))
		require.NoError(t, err)

		_, err = finalized.WaitForSuccess(t.Context())
		assert.ErrorIs(t, err, ErrDispatchFailed)
	})

	t.Run("invalid", func(t *testing.T) {
		c, f := newTestClient(t)
		f.statuses = []types.ExtrinsicStatus{{IsInvalid: true}}

		progress, err := c.SubmitUnsignedAndWatch(t.Context(), remarkCall)
		require.NoError(t, err)

		_, err = progress.WaitForFinalized(t.Context())
		assert.ErrorIs(t, err, ErrExtrinsicInvalid)
	})

	t.Run("usurped", func(t *testing.T) {
		c, f := newTestClient(t)
		f.statuses = []types.ExtrinsicStatus{{IsUsurped: true, AsUsurped: types.Hash{31: 0x01}}}

		progress, err := c.SubmitUnsignedAndWatch(t.Context(), remarkCall)
		require.NoError(t, err)

		_, err = progress.WaitForFinalized(t.Context())
		assert.ErrorIs(t, err, ErrExtrinsicUsurped)
	})

	t.Run("subscription error", func(t *testing.T) {
		c, f := newTestClient(t)
		expectedErr := errors.New("socket closed")
		f.subErr <- expectedErr

		progress, err := c.SubmitUnsignedAndWatch(t.Context(), remarkCall)
		require.NoError(t, err)

		_, err = progress.WaitForFinalized(t.Context())
		assert.ErrorIs(t, err, ErrSubscriptionClosed)
		assert.ErrorIs(t, err, expectedErr)
	})

	t.Run("cancelled", func(t *testing.T) {
		c, _ := newTestClient(t)

		progress, err := c.SubmitUnsignedAndWatch(t.Context(), remarkCall)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err = progress.WaitForFinalized(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("no event source", func(t *testing.T) {
		finalized, err := watchFinalized(t, nil)
		require.NoError(t, err)

		_, err = finalized.WaitForSuccess(t.Context())
		assert.ErrorIs(t, err, ErrNoEventSource)
	})

	t.Run("extrinsic missing from block", func(t *testing.T) {
		c, f := newTestClient(t, WithEventSource(outcome("System.ExtrinsicSuccess", 1)))
		f.statuses = []types.ExtrinsicStatus{{IsFinalized: true, AsFinalized: block}}
		f.handle("chain_getBlock", map[string]any{
			"block": map[string]any{"extrinsics": []string{other}},
		})

		progress, err := c.SubmitUnsignedAndWatch(t.Context(), remarkCall)
		require.NoError(t, err)
		finalized, err := progress.WaitForFinalized(t.Context())
		require.NoError(t, err)

		_, err = finalized.WaitForSuccess(t.Context())
		assert.ErrorIs(t, err, ErrExtrinsicNotInBlock)
	})
}
