package sweden

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	apperrors "github.com/olgasafonova/swedish-bank-account-mcp-server/internal/errors"
)

// maxInputLength bounds free-text arguments. Real inputs with separators stay
// well under it.
const maxInputLength = 64

// Validate checks the arguments before validation of the account itself.
func (a ValidateBankAccountArgs) Validate() error {
	return validateStruct(&a,
		validation.Field(&a.ClearingNumber, validation.Required, validation.RuneLength(0, maxInputLength)),
		validation.Field(&a.AccountNumber, validation.Required, validation.RuneLength(0, maxInputLength)),
	)
}

// Validate checks the arguments.
func (a ResolveClearingNumberArgs) Validate() error {
	return validateStruct(&a,
		validation.Field(&a.ClearingNumber, validation.Required, validation.RuneLength(0, maxInputLength)),
	)
}

// Validate checks the arguments.
func (a AccountLengthArgs) Validate() error {
	return validateStruct(&a,
		validation.Field(&a.ClearingNumber, validation.Required, validation.RuneLength(0, maxInputLength)),
	)
}

// Validate checks the optional filters.
func (a ListBanksArgs) Validate() error {
	return validateStruct(&a,
		validation.Field(&a.Category, validation.In("standard", "dataclearing_only", "historical").
			Error("must be standard, dataclearing_only or historical")),
		validation.Field(&a.Query, validation.RuneLength(0, maxInputLength)),
	)
}

// validateStruct runs ozzo validation and reports the first failing field,
// by field name, as a *apperrors.ValidationError.
func validateStruct(structPtr any, fields ...*validation.FieldRules) error {
	err := validation.ValidateStruct(structPtr, fields...)
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}

	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	field := keys[0]
	return apperrors.NewValidationError(field, "", errs[field].Error())
}
