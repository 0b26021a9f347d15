package web

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// NewValidator builds the validator used by the HTTP handlers. It registers a
// "notblank" rule (required-and-not-whitespace, which plain "required" does
// not cover) and teaches the validator to treat decimal.Decimal fields as
// numbers so rules like "gt=0" apply to prices.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})
	_ = v.RegisterValidation("notblank", notBlank)
	return v
}

// FirstViolation maps the first field error to its user-facing message.
// Validation is reported one violation at a time, name before price, matching
// the field declaration order of the DTOs.
func FirstViolation(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation failed"
	}
	fieldErr := errs[0]
	switch {
	case fieldErr.Field() == "Name" && fieldErr.Tag() == "notblank":
		return "Name is required"
	case fieldErr.Field() == "Price" && fieldErr.Tag() == "gt":
		return "Price must be greater than zero"
	default:
		return fieldErr.Field() + " failed on rule: " + fieldErr.Tag()
	}
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func decimalAsFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}
