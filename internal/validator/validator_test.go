package validator_test

import (
	"testing"

	"tienda/internal/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsEmailLike(t *testing.T) {
	valid := []string{"a@b.com", "ana.garcia@tienda.com.ar", " con.espacios@b.com "}
	for _, s := range valid {
		assert.True(t, validator.IsEmailLike(s), "%q should be valid", s)
	}

	invalid := []string{"", "sin-arroba", "a@b", "a @b.com", "@b.com"}
	for _, s := range invalid {
		assert.False(t, validator.IsEmailLike(s), "%q should be invalid", s)
	}
}

func TestCheckPrice(t *testing.T) {
	cases := []struct {
		price string
		ok    bool
	}{
		{"10.00", true},
		{"0.01", true},
		{"1500", true},
		{"0", false},
		{"-5.00", false},
		{"1.999", false},
	}

	for _, tc := range cases {
		vs := validator.CheckPrice("precio", decimal.RequireFromString(tc.price), nil)
		if tc.ok {
			assert.Empty(t, vs, "price %s", tc.price)
		} else {
			assert.NotEmpty(t, vs, "price %s", tc.price)
		}
	}
}

func TestCheckRequiredString(t *testing.T) {
	vs := validator.CheckRequiredString("nombre", "  ", 10, nil)
	assert.Len(t, vs, 1)

	vs = validator.CheckRequiredString("nombre", "abcdefghijk", 10, nil)
	assert.Len(t, vs, 1)

	vs = validator.CheckRequiredString("nombre", "ok", 10, nil)
	assert.Empty(t, vs)
}

func TestJoin(t *testing.T) {
	vs := []validator.Violation{
		{Field: "a", Message: "a requerido"},
		{Field: "b", Message: "b inválido"},
	}
	assert.Equal(t, "a requerido; b inválido", validator.Join(vs))
}
