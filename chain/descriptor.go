package chain

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

// StorageKey addresses a storage item. Args holds the SCALE-encoded map keys
// in declaration order; an empty Args addresses a plain value, or the whole
// map when used as an iteration prefix.
type StorageKey struct {
	Pallet string
	Item   string
	Args   [][]byte
}

// NewStorageKey builds a StorageKey, SCALE-encoding every arg.
func NewStorageKey(pallet, item string, args ...any) (StorageKey, error) {
	encoded := make([][]byte, len(args))
	for i, arg := range args {
		bz, err := codec.Encode(arg)
		if err != nil {
			return StorageKey{}, fmt.Errorf("encode %s.%s key %d: %w", pallet, item, i, err)
		}

		encoded[i] = bz
	}

	return StorageKey{
		Pallet: pallet,
		Item:   item,
		Args:   encoded,
	}, nil
}

// String renders the key as Pallet.Item.
func (k StorageKey) String() string {
	return k.Pallet + "." + k.Item
}

// ConstantKey addresses a pallet constant.
type ConstantKey struct {
	Pallet string
	Name   string
}

// String renders the key as Pallet.Name.
func (k ConstantKey) String() string {
	return k.Pallet + "." + k.Name
}

// Call is a dispatchable call descriptor. Args are encoded by the Client
// implementation against the runtime metadata, so they must be SCALE-encodable
// values in the order the call declares them.
type Call struct {
	Pallet string
	Name   string
	Args   []any
}

// NewCall builds a Call descriptor.
func NewCall(pallet, name string, args ...any) Call {
	return Call{
		Pallet: pallet,
		Name:   name,
		Args:   args,
	}
}

// String renders the call as Pallet.name, the form the metadata lookup expects.
func (c Call) String() string {
	return c.Pallet + "." + c.Name
}
