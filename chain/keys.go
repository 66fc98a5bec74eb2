package chain

import (
	"encoding/binary"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

// Storage map keys are laid out as
//
//	twox128(pallet) ‖ twox128(item) ‖ hasher(key1) ‖ key1 ‖ hasher(key2) ‖ key2 ...
//
// Every map this library iterates uses Blake2_128Concat, so each hashed key
// is a 16-byte digest followed by the SCALE-encoded key itself.
const (
	prefixLen      = 32 // twox128(pallet) ‖ twox128(item)
	blake2128Len   = 16
	firstKeyOffset = prefixLen + blake2128Len // 48
)

// KeyU32 decodes the first map key of a Blake2_128Concat(u32) map: a
// little-endian u32 at bytes [48, 52).
func KeyU32(key []byte) (uint32, error) {
	if len(key) < firstKeyOffset+4 {
		return 0, fmt.Errorf("%w: u32 key needs %d bytes, got %d", ErrMalformedKey, firstKeyOffset+4, len(key))
	}

	return binary.LittleEndian.Uint32(key[firstKeyOffset : firstKeyOffset+4]), nil
}

// KeyBytes decodes the first map key of a Blake2_128Concat(Vec<u8>) map: a
// SCALE compact length at byte 48 followed by the bytes themselves. For keys
// shorter than 64 bytes the compact length is one byte and the data starts at
// byte 49.
func KeyBytes(key []byte) ([]byte, error) {
	if len(key) <= firstKeyOffset {
		return nil, fmt.Errorf("%w: bytes key needs more than %d bytes, got %d", ErrMalformedKey, firstKeyOffset, len(key))
	}

	var v []byte
	if err := codec.Decode(key[firstKeyOffset:], &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}

	return v, nil
}

// U32U8 is a (u32, u8) double-map key.
type U32U8 struct {
	A uint32
	B uint8
}

// KeyU32U8 decodes a Blake2_128Concat(u32) ‖ Blake2_128Concat(u8) double-map
// key: the u32 at bytes [48, 52) and the u8 at byte 68, after the second
// 16-byte digest.
func KeyU32U8(key []byte) (U32U8, error) {
	const secondKeyOffset = firstKeyOffset + 4 + blake2128Len // 68

	if len(key) < secondKeyOffset+1 {
		return U32U8{}, fmt.Errorf("%w: (u32, u8) key needs %d bytes, got %d", ErrMalformedKey, secondKeyOffset+1, len(key))
	}

	return U32U8{
		A: binary.LittleEndian.Uint32(key[firstKeyOffset : firstKeyOffset+4]),
		B: key[secondKeyOffset],
	}, nil
}
