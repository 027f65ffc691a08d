package money

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_MarshalJSON(t *testing.T) {
	tests := []struct {
		curr, amount string
		want         string
	}{
		{"USD", "3.33", `{"money":true,"amount":"333","currency":"USD"}`},
		{"USD", "-3.33", `{"money":true,"amount":"-333","currency":"USD"}`},
		{"JPY", "333", `{"money":true,"amount":"333","currency":"JPY"}`},
		{"USD", "92233720368547758080.00", `{"money":true,"amount":"9223372036854775808000","currency":"USD"}`},
	}
	for _, tt := range tests {
		m := MustParse(tt.curr, tt.amount)
		got, err := json.Marshal(m)
		require.NoError(t, err, "json.Marshal(%q)", m)
		assert.Equal(t, tt.want, string(got), "json.Marshal(%q)", m)
	}
}

func TestMoney_UnmarshalJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var m Money
		err := json.Unmarshal([]byte(`{"money":true,"amount":"333","currency":"USD"}`), &m)
		require.NoError(t, err)
		assert.True(t, m.Equal(MustParse("USD", "3.33")), "got %q", m)
	})

	t.Run("errors", func(t *testing.T) {
		tests := map[string]struct {
			data string
			want error
		}{
			"no discriminator": {`{"amount":"333","currency":"USD"}`, ErrInvalidAmount},
			"false flag":       {`{"money":false,"amount":"333","currency":"USD"}`, ErrInvalidAmount},
			"bad amount":       {`{"money":true,"amount":"3.33","currency":"USD"}`, ErrInvalidAmount},
			"bad currency":     {`{"money":true,"amount":"333","currency":"XYZ"}`, ErrUnknownCurrency},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				var m Money
				err := json.Unmarshal([]byte(tt.data), &m)
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.want), "got %v", err)
			})
		}
	})
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	amounts := []string{"0.00", "0.01", "-0.01", "3.33", "-10.99", "1234567890123456789012345678.90"}
	for _, amount := range amounts {
		want := MustParse("USD", amount)
		data, err := json.Marshal(want)
		require.NoError(t, err)

		var got Money
		require.NoError(t, json.Unmarshal(data, &got))
		assert.True(t, got.Equal(want), "round trip of %q gave %q", want, got)
		assert.Equal(t, want.MinorUnits(), got.MinorUnits())
		assert.Equal(t, want.Curr().Code(), got.Curr().Code())
	}
}

// Money fields embedded in ordinary structs round-trip through the
// tagged form without any codec involvement.
func TestMoney_JSONStructEmbedding(t *testing.T) {
	type invoice struct {
		ID    string  `json:"id"`
		Total Money   `json:"total"`
		Taxes []Money `json:"taxes"`
	}

	want := invoice{
		ID:    "inv-1",
		Total: MustParse("USD", "107.50"),
		Taxes: []Money{MustParse("USD", "7.50"), MustParse("USD", "0.00")},
	}
	data, err := json.Marshal(want)
	require.NoError(t, err)

	var got invoice
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want.ID, got.ID)
	assert.True(t, got.Total.Equal(want.Total))
	require.Len(t, got.Taxes, 2)
	for i := range want.Taxes {
		assert.True(t, got.Taxes[i].Equal(want.Taxes[i]))
	}
}

func TestCodec_EncodeDecode(t *testing.T) {
	c := NewCodec(nil)

	tree := map[string]any{
		"id":    "order-7",
		"total": MustParse("USD", "107.50"),
		"lines": []any{
			map[string]any{"sku": "a", "price": MustParse("USD", "100.00")},
			map[string]any{"sku": "b", "price": MustParse("USD", "7.50")},
		},
		"count": 2,
	}

	enc, err := c.Encode(tree)
	require.NoError(t, err)

	// The encoded tree carries tagged objects instead of Money values.
	total, ok := enc.(map[string]any)["total"].(map[string]any)
	require.True(t, ok, "total should be a tagged object")
	assert.Equal(t, true, total["money"])
	assert.Equal(t, "10750", total["amount"])
	assert.Equal(t, "USD", total["currency"])

	dec, err := c.Decode(enc)
	require.NoError(t, err)
	got, ok := dec.(map[string]any)["total"].(Money)
	require.True(t, ok, "total should decode back to Money")
	assert.True(t, got.Equal(MustParse("USD", "107.50")))

	lines, ok := dec.(map[string]any)["lines"].([]any)
	require.True(t, ok)
	price, ok := lines[1].(map[string]any)["price"].(Money)
	require.True(t, ok)
	assert.True(t, price.Equal(MustParse("USD", "7.50")))
}

func TestCodec_MarshalUnmarshal(t *testing.T) {
	c := NewCodec(nil)

	tree := map[string]any{
		"balance": MustParse("BHD", "1.001"),
		"note":    "quarterly",
		"huge":    MustParse("USD", "1234567890123456789012345678.90"),
	}
	data, err := c.Marshal(tree)
	require.NoError(t, err)

	got, err := c.Unmarshal(data)
	require.NoError(t, err)
	obj, ok := got.(map[string]any)
	require.True(t, ok)

	balance, ok := obj["balance"].(Money)
	require.True(t, ok)
	assert.True(t, balance.Equal(MustParse("BHD", "1.001")))

	huge, ok := obj["huge"].(Money)
	require.True(t, ok)
	// The minor-unit integer survives the round trip exactly, although it
	// exceeds the range of double-precision integers.
	assert.Equal(t, "123456789012345678901234567890", huge.MinorUnits().String())

	assert.Equal(t, "quarterly", obj["note"])
}

func TestCodec_CustomRegistry(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register("TOK", "999", "Test Token", 6)
	require.NoError(t, err)
	c := NewCodec(r)

	m, err := r.Parse("TOK", "1.5")
	require.NoError(t, err)

	data, err := c.Marshal(map[string]any{"fee": m})
	require.NoError(t, err)

	got, err := c.Unmarshal(data)
	require.NoError(t, err)
	fee, ok := got.(map[string]any)["fee"].(Money)
	require.True(t, ok)
	assert.True(t, fee.Equal(m))
}

func TestCodec_Decode_Errors(t *testing.T) {
	c := NewCodec(nil)

	_, err := c.Unmarshal([]byte(`{"fee":{"money":true,"amount":"100","currency":"XYZ"}}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCurrency), "got %v", err)

	_, err = c.Unmarshal([]byte(`{"fee":{"money":true,"amount":"1.5","currency":"USD"}}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAmount), "got %v", err)
}

// Objects that merely resemble the tagged form pass through untouched.
func TestCodec_Decode_NotTagged(t *testing.T) {
	c := NewCodec(nil)

	got, err := c.Unmarshal([]byte(`{"money":"yes","amount":"100","currency":"USD"}`))
	require.NoError(t, err)
	obj, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "yes", obj["money"])
}
