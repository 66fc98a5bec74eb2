// Package validator wraps go-playground/validator with a shared instance,
// chain-specific tags and multi-error formatting.
//
// Tags registered on top of the library's own:
//
//	hexbytes     0x-prefixed hex string with an even length
//	accountid20  20-byte hex account id, 0x prefix optional
//	privkey      0x-prefixed 32-byte hex secp256k1 private key
package validator

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain Validate returns.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	mustRegister("hexbytes", func(fl gvalidator.FieldLevel) bool {
		_, err := hexutil.Decode(fl.Field().String())
		return err == nil
	})
	mustRegister("accountid20", func(fl gvalidator.FieldLevel) bool {
		return common.IsHexAddress(fl.Field().String())
	})
	mustRegister("privkey", hexOfLen(32))
}

func mustRegister(tag string, fn gvalidator.Func) {
	if err := validator.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

func hexOfLen(n int) gvalidator.Func {
	return func(fl gvalidator.FieldLevel) bool {
		bz, err := hexutil.Decode(fl.Field().String())
		return err == nil && len(bz) == n
	}
}

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks v against its validate tags. On failure the returned error
// wraps ErrValidationFailed followed by one error per violated field.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
