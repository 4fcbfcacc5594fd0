// Package validation checks decoded request bodies with struct tags.
package validation

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	dErrors "verisbt/pkg/domain-errors"
)

// Request limits shared by the HTTP handlers.
const (
	// MaxBodySize bounds request bodies; proofs and query payloads are small.
	MaxBodySize = 256 * 1024

	MaxBatchEntries  = 100
	MaxMintItems     = 50
	MaxNameLength    = 128
	MaxPayloadLength = 64 * 1024
)

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// uint256 accepts a base-10 integer in [0, 2^256).
	_ = v.RegisterValidation("uint256", func(fl validator.FieldLevel) bool {
		n, ok := new(big.Int).SetString(fl.Field().String(), 10)
		return ok && n.Sign() >= 0 && n.BitLen() <= 256
	})
	return v
}

// Validate validates a struct using the default validator and returns a domain error.
func Validate(req any) error {
	if err := defaultValidator.Struct(req); err != nil {
		return dErrors.New(dErrors.CodeValidation, ErrorMessage(err))
	}
	return nil
}

// ErrorMessage converts a validator error into a human-readable message.
func ErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "invalid request body"
	}

	fe := validationErrs[0]
	field := fe.Field()
	if field == "" {
		field = fe.StructField()
	}

	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "eth_addr":
		return fmt.Sprintf("%s must be a hex address", field)
	case "uint256":
		return fmt.Sprintf("%s must be a decimal uint256", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
