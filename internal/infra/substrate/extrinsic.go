package substrate

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/blake2b"

	"github.com/gabapcia/palletsapi/chain"
)

// Extrinsic format version 4.
const (
	extrinsicVersion = 4
	signedBit        = 0x80
)

// Payloads longer than this are blake2-256 hashed before signing.
const maxRawPayload = 256

// ErrUnsupportedExtension is returned when the runtime requires a signed
// extension this client cannot fill in.
var ErrUnsupportedExtension = errors.New("unsupported signed extension")

// Signer signs extrinsics for an Ethereum-style (AccountId20) account.
type Signer struct {
	key     *ecdsa.PrivateKey
	account chain.AccountID20
}

// NewSigner parses a 0x-prefixed hex secp256k1 private key.
func NewSigner(hexKey string) (*Signer, error) {
	raw, err := hexutil.Decode(hexKey)
	if err != nil {
		return nil, fmt.Errorf("parse signer key: %w", err)
	}

	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("parse signer key: %w", err)
	}

	return &Signer{
		key:     key,
		account: chain.AccountID20(crypto.PubkeyToAddress(key.PublicKey)),
	}, nil
}

// Account returns the account extrinsics are signed for.
func (s *Signer) Account() chain.AccountID20 {
	return s.account
}

// sign returns the 65-byte r ‖ s ‖ v signature of keccak256(payload).
func (s *Signer) sign(payload []byte) ([]byte, error) {
	return crypto.Sign(crypto.Keccak256(payload), s.key)
}

// extensionData is what each signed extension contributes: extra goes into
// the extrinsic, additional is only signed.
type extensionData struct {
	extra      []byte
	additional []byte
}

// signedExtensions fills in every extension the runtime declares, in order.
// Transactions are immortal and tipless.
func (r *runtime) signedExtensions(nonce uint32) (extensionData, error) {
	var data extensionData

	for _, id := range r.signedExtensionIDs() {
		switch id {
		case "CheckNonZeroSender", "CheckWeight":
		case "CheckSpecVersion":
			data.additional = append(data.additional, u32(r.specVersion)...)
		case "CheckTxVersion":
			data.additional = append(data.additional, u32(r.transactionVersion)...)
		case "CheckGenesis":
			data.additional = append(data.additional, r.genesis[:]...)
		case "CheckMortality", "CheckEra":
			data.extra = append(data.extra, 0x00)
			data.additional = append(data.additional, r.genesis[:]...)
		case "CheckNonce":
			data.extra = append(data.extra, compact(uint64(nonce))...)
		case "ChargeTransactionPayment":
			data.extra = append(data.extra, compact(0)...)
		case "ChargeAssetTxPayment":
			data.extra = append(data.extra, compact(0)...)
			data.extra = append(data.extra, 0x00)
		case "CheckMetadataHash":
			data.extra = append(data.extra, 0x00)
			data.additional = append(data.additional, 0x00)
		default:
			return extensionData{}, fmt.Errorf("%w: %s", ErrUnsupportedExtension, id)
		}
	}

	return data, nil
}

// unsignedExtrinsic wraps an encoded call as compact(len) ‖ 0x04 ‖ call.
func unsignedExtrinsic(call []byte) []byte {
	body := make([]byte, 0, 1+len(call))
	body = append(body, extrinsicVersion)
	body = append(body, call...)
	return withLength(body)
}

// signedExtrinsic returns compact(len) ‖ 0x84 ‖ account ‖ signature ‖ extra ‖ call.
func signedExtrinsic(signer *Signer, call []byte, ext extensionData) ([]byte, error) {
	payload := make([]byte, 0, len(call)+len(ext.extra)+len(ext.additional))
	payload = append(payload, call...)
	payload = append(payload, ext.extra...)
	payload = append(payload, ext.additional...)
	if len(payload) > maxRawPayload {
		sum := blake2b.Sum256(payload)
		payload = sum[:]
	}

	signature, err := signer.sign(payload)
	if err != nil {
		return nil, fmt.Errorf("sign extrinsic: %w", err)
	}

	account := signer.Account()
	body := make([]byte, 0, 1+len(account)+len(signature)+len(ext.extra)+len(call))
	body = append(body, extrinsicVersion|signedBit)
	body = append(body, account[:]...)
	body = append(body, signature...)
	body = append(body, ext.extra...)
	body = append(body, call...)
	return withLength(body), nil
}

// extrinsicHash is the blake2-256 hash of the full encoded extrinsic.
func extrinsicHash(extrinsic []byte) chain.Hash {
	return chain.Hash(blake2b.Sum256(extrinsic))
}

func withLength(body []byte) []byte {
	return append(compact(uint64(len(body))), body...)
}

func compact(v uint64) []byte {
	// Encoding a UCompact cannot fail.
	bz, _ := codec.Encode(types.NewUCompactFromUInt(v))
	return bz
}

func u32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}
