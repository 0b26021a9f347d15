package web

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productPayload struct {
	Name  string          `validate:"notblank,max=100"`
	Price decimal.Decimal `validate:"gt=0"`
}

func violations(t *testing.T, payload productPayload) validator.ValidationErrors {
	t.Helper()
	err := NewValidator().Struct(payload)
	require.Error(t, err)
	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors))
	return validationErrors
}

func Test_Validator_AcceptsValidPayload(t *testing.T) {
	err := NewValidator().Struct(productPayload{Name: "Laptop", Price: decimal.NewFromInt(1200)})
	assert.NoError(t, err)
}

func Test_Validator_FirstViolation(t *testing.T) {
	testCases := []struct {
		name     string
		payload  productPayload
		expected string
	}{
		{
			name:     "Blank name",
			payload:  productPayload{Name: "  ", Price: decimal.NewFromInt(10)},
			expected: "Name is required",
		},
		{
			name:     "Zero price",
			payload:  productPayload{Name: "X", Price: decimal.Zero},
			expected: "Price must be greater than zero",
		},
		{
			name:     "Negative price",
			payload:  productPayload{Name: "X", Price: decimal.NewFromInt(-5)},
			expected: "Price must be greater than zero",
		},
		{
			name:     "Name violation wins over price violation",
			payload:  productPayload{Name: "", Price: decimal.Zero},
			expected: "Name is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FirstViolation(violations(t, tc.payload)))
		})
	}
}

func Test_Validator_DecimalFractions(t *testing.T) {
	// a small positive fraction passes, gt=0 applies to the numeric value
	err := NewValidator().Struct(productPayload{Name: "X", Price: decimal.RequireFromString("0.01")})
	assert.NoError(t, err)
}
