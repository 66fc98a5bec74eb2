package chain

import (
	"bytes"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/ethereum/go-ethereum/common"
)

// U128 is an unsigned 128-bit balance or score.
type U128 = types.U128

// U256 is an unsigned 256-bit integer.
type U256 = types.U256

// NewU128 returns a U128 holding v.
func NewU128(v uint64) U128 {
	return types.NewU128(*new(big.Int).SetUint64(v))
}

// AccountID20 is an Ethereum-style 20-byte account id.
type AccountID20 [20]byte

// AccountID20FromHex parses a 0x-prefixed (or bare) 20-byte hex address.
func AccountID20FromHex(s string) (AccountID20, error) {
	if !common.IsHexAddress(s) {
		return AccountID20{}, ErrInvalidAccountID
	}
	return AccountID20(common.HexToAddress(s)), nil
}

// Address returns the id as a go-ethereum address.
func (a AccountID20) Address() common.Address {
	return common.Address(a)
}

// Hex renders the id with EIP-55 checksum casing.
func (a AccountID20) Hex() string {
	return a.Address().Hex()
}

// Perbill is a fraction in parts per billion.
type Perbill uint32

// Percent returns the fraction as a percentage.
func (p Perbill) Percent() float64 {
	return float64(p) / 10_000_000
}

// Encoded is an opaque SCALE value. It is used for runtime types whose layout
// is defined by the node's metadata rather than by this library: as a query
// result it carries the raw stored bytes, and as a call argument it is written
// to the call data verbatim.
//
// Encoded only captures whole values; it cannot be nested inside a struct
// that is being decoded.
type Encoded []byte

// Encode writes the bytes verbatim.
func (e Encoded) Encode(encoder scale.Encoder) error {
	return encoder.Write(e)
}

// Into decodes the value into target using the SCALE codec.
func (e Encoded) Into(target any) error {
	return codec.Decode(e, target)
}

// Equal reports whether two encoded values hold the same bytes.
func (e Encoded) Equal(other Encoded) bool {
	return bytes.Equal(e, other)
}
