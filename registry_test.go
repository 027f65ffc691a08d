package money

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Lookup(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		want  string
		scale int
	}{
		{"alphabetic", "USD", "USD", 2},
		{"lowercase", "usd", "USD", 2},
		{"mixed case", "uSd", "USD", 2},
		{"whitespace", " USD ", "USD", 2},
		{"numeric", "840", "USD", 2},
		{"zero scale", "JPY", "JPY", 0},
		{"three digits", "BHD", "BHD", 3},
		{"four digits", "CLF", "CLF", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Default().Lookup(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Code())
			assert.Equal(t, tt.scale, c.Scale())
		})
	}
}

func TestDefault_Lookup_Unknown(t *testing.T) {
	for _, code := range []string{"XYZ", "ZZZ", "000", ""} {
		_, err := Default().Lookup(code)
		require.Error(t, err, "Lookup(%q)", code)
		assert.True(t, errors.Is(err, ErrUnknownCurrency), "Lookup(%q) = %v", code, err)
	}
}

func TestDefault_ForCountry(t *testing.T) {
	tests := []struct {
		country string
		want    string
	}{
		{"US", "USD"},
		{"us", "USD"},
		{"GB", "GBP"},
		{"DE", "EUR"},
		{"JP", "JPY"},
		{"SN", "XOF"},
	}
	for _, tt := range tests {
		c, err := Default().ForCountry(tt.country)
		require.NoError(t, err, "ForCountry(%q)", tt.country)
		assert.Equal(t, tt.want, c.Code(), "ForCountry(%q)", tt.country)
	}

	_, err := Default().ForCountry("ZZ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCountry))
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	c, err := r.Register("TOK", "999", "Test Token", 6)
	require.NoError(t, err)
	assert.Equal(t, "TOK", c.Code())
	assert.Equal(t, "999", c.Num())
	assert.Equal(t, "Test Token", c.Name())
	assert.Equal(t, 6, c.Scale())

	// The one-time load never mutates descriptors.
	got, err := r.Lookup("tok")
	require.NoError(t, err)
	assert.True(t, got.Equal(c))
}

func TestRegistry_Register_Errors(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register("TOK", "999", "Test Token", 6)
	require.NoError(t, err)

	t.Run("duplicate code", func(t *testing.T) {
		_, err := r.Register("TOK", "998", "Another Token", 2)
		assert.Error(t, err)
	})
	t.Run("duplicate numeric code", func(t *testing.T) {
		_, err := r.Register("TK2", "999", "Another Token", 2)
		assert.Error(t, err)
	})
	t.Run("negative scale", func(t *testing.T) {
		_, err := r.Register("NEG", "997", "Negative", -1)
		assert.True(t, errors.Is(err, ErrInvalidAmount), "got %v", err)
	})
	t.Run("empty code", func(t *testing.T) {
		_, err := r.Register("", "996", "Empty", 2)
		assert.True(t, errors.Is(err, ErrInvalidAmount), "got %v", err)
	})
}

func TestRegistry_RegisterCountry(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register("TOK", "999", "Test Token", 2)
	require.NoError(t, err)

	require.NoError(t, r.RegisterCountry("ZZ", "TOK"))
	c, err := r.ForCountry("zz")
	require.NoError(t, err)
	assert.Equal(t, "TOK", c.Code())

	err = r.RegisterCountry("YY", "ABS")
	assert.True(t, errors.Is(err, ErrUnknownCurrency), "got %v", err)
}

func TestRegistry_Currencies(t *testing.T) {
	r := NewRegistry()
	for _, code := range []string{"AAA", "BBB", "CCC"} {
		_, err := r.Register(code, "", code, 2)
		require.NoError(t, err)
	}

	currs := r.Currencies()
	require.Len(t, currs, 3)
	// Registration order is preserved.
	for i, code := range []string{"AAA", "BBB", "CCC"} {
		assert.Equal(t, code, currs[i].Code())
	}
}

func TestRegistry_Parse(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register("TOK", "999", "Test Token", 6)
	require.NoError(t, err)

	m, err := r.Parse("TOK", "1.5")
	require.NoError(t, err)
	assert.Equal(t, "1500000", m.MinorUnits().String())
	assert.Equal(t, "TOK 1.500000", m.String())

	// Currencies from the default table are not visible here.
	_, err = r.Parse("USD", "1")
	assert.True(t, errors.Is(err, ErrUnknownCurrency), "got %v", err)
}
