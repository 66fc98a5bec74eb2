package substrate

import (
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/centrifuge/go-substrate-rpc-client/v4/xxhash"

	"github.com/gabapcia/palletsapi/chain"
)

var (
	// ErrUnsupportedMetadata is returned for runtimes not exposing V14 metadata.
	ErrUnsupportedMetadata = errors.New("unsupported metadata version")

	// ErrUnknownStorage is returned when a storage item is not in the metadata.
	ErrUnknownStorage = errors.New("unknown storage item")

	// ErrUnknownConstant is returned when a constant is not in the metadata.
	ErrUnknownConstant = errors.New("unknown constant")

	// ErrTooManyKeys is returned when a storage key has more arguments than
	// the item has hashers.
	ErrTooManyKeys = errors.New("too many storage key arguments")
)

// runtime is the node state extrinsics and storage keys are built against.
// It is replaced as a whole on refresh and never mutated.
type runtime struct {
	meta               *types.Metadata
	specVersion        uint32
	transactionVersion uint32
	genesis            types.Hash
}

func newRuntime(meta *types.Metadata, specVersion, transactionVersion uint32, genesis types.Hash) (*runtime, error) {
	if !meta.IsMetadataV14 {
		return nil, fmt.Errorf("%w: v%d", ErrUnsupportedMetadata, meta.Version)
	}

	return &runtime{
		meta:               meta,
		specVersion:        specVersion,
		transactionVersion: transactionVersion,
		genesis:            genesis,
	}, nil
}

func (r *runtime) pallet(name string) (types.PalletMetadataV14, bool) {
	for _, p := range r.meta.AsMetadataV14.Pallets {
		if string(p.Name) == name {
			return p, true
		}
	}
	return types.PalletMetadataV14{}, false
}

func (r *runtime) storageEntry(pallet, item string) (types.StorageEntryMetadataV14, error) {
	p, ok := r.pallet(pallet)
	if ok && p.HasStorage {
		for _, entry := range p.Storage.Items {
			if string(entry.Name) == item {
				return entry, nil
			}
		}
	}
	return types.StorageEntryMetadataV14{}, fmt.Errorf("%w: %s.%s", ErrUnknownStorage, pallet, item)
}

// storageKey returns twox128(pallet) ‖ twox128(item) followed by each
// argument hashed with the item's hasher at the same position. Fewer
// arguments than hashers yield a prefix for iteration.
func (r *runtime) storageKey(key chain.StorageKey) ([]byte, error) {
	entry, err := r.storageEntry(key.Pallet, key.Item)
	if err != nil {
		return nil, err
	}

	var hashers []types.StorageHasherV10
	if entry.Type.IsMap {
		hashers = entry.Type.AsMap.Hashers
	}
	if len(key.Args) > len(hashers) {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrTooManyKeys, key, len(hashers), len(key.Args))
	}

	out := storagePrefix(key.Pallet, key.Item)
	for i, arg := range key.Args {
		h, err := hashers[i].HashFunc()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		if _, err := h.Write(arg); err != nil {
			return nil, err
		}
		out = append(out, h.Sum(nil)...)
	}

	return out, nil
}

// fallback returns the value the metadata declares for an empty item.
func (r *runtime) fallback(key chain.StorageKey) ([]byte, error) {
	entry, err := r.storageEntry(key.Pallet, key.Item)
	if err != nil {
		return nil, err
	}
	return entry.Fallback, nil
}

func (r *runtime) constant(key chain.ConstantKey) ([]byte, error) {
	if p, ok := r.pallet(key.Pallet); ok {
		for _, c := range p.Constants {
			if string(c.Name) == key.Name {
				return c.Value, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownConstant, key)
}

// call encodes call as call index ‖ arguments.
func (r *runtime) call(call chain.Call) ([]byte, error) {
	c, err := types.NewCall(r.meta, call.String(), call.Args...)
	if err != nil {
		return nil, fmt.Errorf("build call %s: %w", call, err)
	}
	return codec.Encode(c)
}

func (r *runtime) signedExtensionIDs() []string {
	exts := r.meta.AsMetadataV14.Extrinsic.SignedExtensions
	ids := make([]string, len(exts))
	for i, ext := range exts {
		ids[i] = string(ext.Identifier)
	}
	return ids
}

func storagePrefix(pallet, item string) []byte {
	out := make([]byte, 0, 32)
	out = append(out, xxhash.New128([]byte(pallet)).Sum(nil)...)
	return append(out, xxhash.New128([]byte(item)).Sum(nil)...)
}
