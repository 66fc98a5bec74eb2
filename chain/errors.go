package chain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrDecode is returned when a stored value does not decode into the
	// requested Go type.
	ErrDecode = errors.New("scale decode failed")

	// ErrMalformedKey is returned by the key decoders when a storage key is
	// too short for the shape being decoded.
	ErrMalformedKey = errors.New("malformed storage key")

	// ErrInvalidAccountID is returned when an account id is not 20 bytes long.
	ErrInvalidAccountID = errors.New("account id must be 20 bytes")
)

// Substrate author RPC error codes (sc-rpc-api author errors).
const (
	CodeInvalidTransaction = 1010
	CodeUnknownTransaction = 1011
	CodeTemporarilyBanned  = 1012
	CodeAlreadyImported    = 1013
	CodePriorityTooLow     = 1014
	CodeCyclicDependency   = 1015
	CodeImmediatelyDropped = 1016
	CodeUnactionable       = 1017
)

// customErrorPrefix precedes InvalidTransaction::Custom codes in RPC error data.
const customErrorPrefix = "Custom error: "

// TransactionError is a transaction rejected by the node's pool.
type TransactionError struct {
	Code    int    // RPC error code
	Message string // RPC error message
	Data    string // RPC error data, e.g. "Custom error: 3"
}

// Error implements error.
func (e *TransactionError) Error() string {
	if e.Data == "" {
		return fmt.Sprintf("transaction rejected: [%d] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("transaction rejected: [%d] %s: %s", e.Code, e.Message, e.Data)
}

// CustomCode returns the runtime's InvalidTransaction::Custom code, if the
// rejection carries one.
func (e *TransactionError) CustomCode() (uint8, bool) {
	idx := strings.Index(e.Data, customErrorPrefix)
	if idx < 0 {
		return 0, false
	}

	v, err := strconv.ParseUint(strings.TrimSpace(e.Data[idx+len(customErrorPrefix):]), 10, 8)
	if err != nil {
		return 0, false
	}

	return uint8(v), true
}

// rpcCodeError and rpcDataError match the error values produced by the
// node RPC client.
type (
	rpcCodeError interface {
		error
		ErrorCode() int
	}

	rpcDataError interface {
		error
		ErrorData() any
	}
)

// AsTransactionError converts an RPC error raised while submitting an
// extrinsic into a *TransactionError. Errors that did not come from the pool,
// including generic JSON-RPC errors such as -32601, are returned unchanged.
func AsTransactionError(err error) error {
	if err == nil {
		return nil
	}

	var codeErr rpcCodeError
	if !errors.As(err, &codeErr) || !isPoolCode(codeErr.ErrorCode()) {
		return err
	}

	txErr := &TransactionError{
		Code:    codeErr.ErrorCode(),
		Message: codeErr.Error(),
	}

	var dataErr rpcDataError
	if errors.As(err, &dataErr) {
		if data := dataErr.ErrorData(); data != nil {
			txErr.Data = fmt.Sprint(data)
		}
	}

	return txErr
}

func isPoolCode(code int) bool {
	return code >= CodeInvalidTransaction && code <= CodeUnactionable
}
