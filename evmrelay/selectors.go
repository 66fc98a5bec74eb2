// Package evmrelay turns watcher results into EVM precompile calls: it ABI
// encodes the call data behind a fixed selector, wraps it in an unsigned
// EIP-1559 envelope addressed at the owning precompile and hands the envelope
// to the ethereum pallet, either broadcasting it or returning the extrinsic
// bytes for another channel to submit.
//
// The envelope itself is never signed. The runtime authenticates the
// payload through the committee or device signature carried inside the ABI
// arguments.
package evmrelay

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Selector is the 4-byte function identifier prefixing ABI call data.
type Selector [4]byte

func (s Selector) String() string {
	return hexutil.Encode(s[:])
}

// Operation is a precompile entry point this package can relay to.
type Operation uint8

const (
	// ReportResult reports a committee signing result to the channel
	// precompile.
	ReportResult Operation = iota
	// SubmitTransaction imports a new cross-chain transaction through the
	// channel precompile.
	SubmitTransaction
	// JoinOrExitServiceUnsigned moves a device in or out of service through
	// the mining precompile.
	JoinOrExitServiceUnsigned
)

// Precompile addresses.
var (
	MiningPrecompile  = common.HexToAddress("0x000000000000000000000000000000000000044d") // 1101
	ChannelPrecompile = common.HexToAddress("0x0000000000000000000000000000000000000450") // 1104
)

// Entry describes one operation: its selector, the signature the selector
// was derived from and the precompile serving it.
type Entry struct {
	Name      string
	Selector  Selector
	Signature string
	Target    common.Address
}

// The selectors are keccak256(Signature)[:4], precomputed.
var table = map[Operation]Entry{
	ReportResult: {
		Name:      "reportResult",
		Selector:  Selector{0x76, 0x48, 0x86, 0xb2},
		Signature: "submitTxSignResult(bytes[],bytes[],uint256,uint256,bytes32,bytes[])",
		Target:    ChannelPrecompile,
	},
	SubmitTransaction: {
		Name:      "importNewTx",
		Selector:  Selector{0x3a, 0xa4, 0x3d, 0x02},
		Signature: "importNewTx(uint256,uint256,bytes[],uint256,bytes[],bytes[],bytes[],uint256)",
		Target:    ChannelPrecompile,
	},
	JoinOrExitServiceUnsigned: {
		Name:      "joinOrExitServiceUnsigned",
		Selector:  Selector{0x63, 0xfe, 0x46, 0x4c},
		Signature: "joinOrExitServiceUnsigned(bytes[],uint256,bytes[],bytes[])",
		Target:    MiningPrecompile,
	},
}

// Operations lists every supported operation.
func Operations() []Operation {
	return []Operation{ReportResult, SubmitTransaction, JoinOrExitServiceUnsigned}
}

// Lookup returns the table entry of op. The table is closed: every Operation
// constant has an entry.
func Lookup(op Operation) Entry {
	e, ok := table[op]
	if !ok {
		panic(fmt.Sprintf("evmrelay: unknown operation %d", op))
	}
	return e
}

func (op Operation) String() string {
	if e, ok := table[op]; ok {
		return e.Name
	}
	return fmt.Sprintf("Operation(%d)", uint8(op))
}
