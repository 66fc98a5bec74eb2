package ethereum

import (
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/gabapcia/palletsapi/chain"
)

// Variant indexes of the runtime's TransactionV2 enum.
const (
	variantLegacy  = 0
	variantEIP2930 = 1
	variantEIP1559 = 2
)

// Variant indexes of TransactionAction.
const (
	actionCall   = 0
	actionCreate = 1
)

// ErrUnsupportedTransaction is returned when decoding a legacy or EIP-2930
// transaction, which this package never produces.
var ErrUnsupportedTransaction = errors.New("unsupported transaction variant")

// Transaction is the EIP-1559 variant of the ethereum pallet's TransactionV2.
type Transaction struct {
	EIP1559 EIP1559Transaction
}

// EIP1559Transaction mirrors ethereum::EIP1559Transaction field for field.
type EIP1559Transaction struct {
	ChainID              uint64
	Nonce                chain.U256
	MaxPriorityFeePerGas chain.U256
	MaxFeePerGas         chain.U256
	GasLimit             chain.U256
	Action               TransactionAction
	Value                chain.U256
	Input                []byte
	AccessList           []AccessListItem
	OddYParity           bool
	R                    chain.Hash
	S                    chain.Hash
}

// TransactionAction is either a call to To or, when To is nil, a contract
// creation.
type TransactionAction struct {
	To *types.H160
}

// AccessListItem is one EIP-2930 access list entry.
type AccessListItem struct {
	Address     types.H160
	StorageKeys []chain.Hash
}

// Call returns the action calling to.
func Call(to types.H160) TransactionAction {
	return TransactionAction{To: &to}
}

func (a TransactionAction) Encode(encoder scale.Encoder) error {
	if a.To == nil {
		return encoder.PushByte(actionCreate)
	}

	if err := encoder.PushByte(actionCall); err != nil {
		return err
	}
	return encoder.Encode(*a.To)
}

func (a *TransactionAction) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	switch b {
	case actionCall:
		var to types.H160
		if err := decoder.Decode(&to); err != nil {
			return err
		}
		a.To = &to
	case actionCreate:
		a.To = nil
	default:
		return fmt.Errorf("unknown transaction action %d", b)
	}

	return nil
}

func (t Transaction) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(variantEIP1559); err != nil {
		return err
	}
	return encoder.Encode(t.EIP1559)
}

func (t *Transaction) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	switch b {
	case variantEIP1559:
		return decoder.Decode(&t.EIP1559)
	case variantLegacy, variantEIP2930:
		return fmt.Errorf("%w: %d", ErrUnsupportedTransaction, b)
	default:
		return fmt.Errorf("unknown transaction variant %d", b)
	}
}
