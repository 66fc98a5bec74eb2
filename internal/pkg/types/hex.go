// Package types holds small value types shared by the node adapters.
package types

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Hex is a 0x-prefixed hexadecimal quantity as node RPCs return it, such as
// the "0x4e2" number of a block header.
type Hex string

// HexFromUint returns the canonical quantity encoding of v.
func HexFromUint(v uint64) Hex {
	return Hex(hexutil.EncodeUint64(v))
}

// HexFromString validates s and returns it as a Hex.
func HexFromString(s string) (Hex, error) {
	if _, err := hexutil.DecodeUint64(s); err != nil {
		return "", fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return Hex(s), nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON accepts a JSON string holding a valid quantity.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	v, err := HexFromString(s)
	if err != nil {
		return err
	}

	*h = v
	return nil
}

// Uint64 decodes the quantity.
func (h Hex) Uint64() (uint64, error) {
	return hexutil.DecodeUint64(string(h))
}

// Uint32 decodes the quantity, failing when it does not fit 32 bits. Block
// numbers are u32 on the runtimes this module targets.
func (h Hex) Uint32() (uint32, error) {
	v, err := h.Uint64()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("quantity %s overflows uint32", h)
	}
	return uint32(v), nil
}
