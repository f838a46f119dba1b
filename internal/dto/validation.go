package dto

import (
	"github.com/SscSPs/livestock_ledger/internal/core/chart"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations adds the bookkeeping binding rules to v.
//
//	account_code: the d-ddddd shape of a chart of accounts code
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("account_code", func(fl validator.FieldLevel) bool {
		return chart.ValidCode(fl.Field().String())
	})
}
