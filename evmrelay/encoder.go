package evmrelay

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// EncodedCall is selector ‖ ABI-encoded argument tuple.
type EncodedCall []byte

// Selector returns the selector prefixing the call.
func (c EncodedCall) Selector() Selector {
	var s Selector
	copy(s[:], c)
	return s
}

// Args returns the ABI-encoded arguments following the selector.
func (c EncodedCall) Args() []byte {
	if len(c) < len(Selector{}) {
		return nil
	}
	return c[len(Selector{}):]
}

// Arg is one typed ABI argument.
type Arg struct {
	typ   abi.Type
	value any
}

// Bytes is a dynamic byte string argument.
func Bytes(b []byte) Arg {
	if b == nil {
		b = []byte{}
	}
	return Arg{typ: mustType("bytes"), value: b}
}

// Uint is an unsigned integer argument of the given bit width. v must fit.
func Uint(bits int, v *big.Int) Arg {
	if bits <= 0 || bits > 256 || bits%8 != 0 {
		panic(fmt.Sprintf("evmrelay: invalid uint width %d", bits))
	}
	if v.Sign() < 0 || v.BitLen() > bits {
		panic(fmt.Sprintf("evmrelay: %s overflows uint%d", v, bits))
	}

	var value any
	switch bits {
	case 8:
		value = uint8(v.Uint64())
	case 16:
		value = uint16(v.Uint64())
	case 32:
		value = uint32(v.Uint64())
	case 64:
		value = v.Uint64()
	default:
		value = new(big.Int).Set(v)
	}

	return Arg{typ: mustType(fmt.Sprintf("uint%d", bits)), value: value}
}

// Uint8 is a uint8 argument.
func Uint8(v uint8) Arg {
	return Arg{typ: mustType("uint8"), value: v}
}

// Uint256 is a uint256 argument.
func Uint256(v *big.Int) Arg {
	return Uint(256, v)
}

// FixedBytes32 is a bytes32 argument.
func FixedBytes32(b [32]byte) Arg {
	return Arg{typ: mustType("bytes32"), value: b}
}

// Address is an address argument.
func Address(a common.Address) Arg {
	return Arg{typ: mustType("address"), value: a}
}

// Encode returns selector followed by the contract ABI encoding of args.
// Encoding is deterministic. It panics when an argument does not match its
// declared type.
func Encode(selector Selector, args ...Arg) EncodedCall {
	arguments := make(abi.Arguments, len(args))
	values := make([]any, len(args))
	for i, a := range args {
		arguments[i] = abi.Argument{Type: a.typ}
		values[i] = a.value
	}

	packed, err := arguments.Pack(values...)
	if err != nil {
		panic(fmt.Sprintf("evmrelay: pack arguments: %v", err))
	}

	call := make(EncodedCall, 0, len(selector)+len(packed))
	call = append(call, selector[:]...)
	return append(call, packed...)
}

// ReportResultInput builds the reportResult call data:
// (bytes pk, bytes sig, uint256 cid, uint8 fork, bytes32 hash, bytes signature).
func ReportResultInput(pk, sig []byte, cid uint32, forkID uint8, hash [32]byte, signature []byte) EncodedCall {
	return Encode(Lookup(ReportResult).Selector,
		Bytes(pk),
		Bytes(sig),
		Uint256(new(big.Int).SetUint64(uint64(cid))),
		Uint8(forkID),
		FixedBytes32(hash),
		Bytes(signature),
	)
}

// JoinOrExitServiceInput builds the joinOrExitServiceUnsigned call data:
// (bytes id, uint8 purpose, bytes msg, bytes signature).
func JoinOrExitServiceInput(id []byte, purpose uint8, msg, signature []byte) EncodedCall {
	return Encode(Lookup(JoinOrExitServiceUnsigned).Selector,
		Bytes(id),
		Uint8(purpose),
		Bytes(msg),
		Bytes(signature),
	)
}

var abiTypes = map[string]abi.Type{}

func init() {
	for _, name := range []string{"bytes", "bytes32", "address"} {
		abiTypes[name] = newType(name)
	}
	for bits := 8; bits <= 256; bits += 8 {
		name := fmt.Sprintf("uint%d", bits)
		abiTypes[name] = newType(name)
	}
}

func newType(name string) abi.Type {
	t, err := abi.NewType(name, "", nil)
	if err != nil {
		panic(err)
	}
	return t
}

func mustType(name string) abi.Type {
	t, ok := abiTypes[name]
	if !ok {
		panic(fmt.Sprintf("evmrelay: unsupported abi type %q", name))
	}
	return t
}
