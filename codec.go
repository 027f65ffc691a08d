package money

import (
	"bytes"
	"encoding/json"
	"math/big"

	"github.com/pkg/errors"
)

// moneyJSON is the tagged interchange form of a monetary amount.
// The minor-unit value travels as a numeral-safe string, so amounts beyond
// the range of double-precision integers round-trip exactly, and the boolean
// discriminator distinguishes the object from ordinary data during generic
// traversal.
type moneyJSON struct {
	Money    bool   `json:"money"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is encoded in its tagged interchange form:
//
//	{"money":true,"amount":"333","currency":"USD"}
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Money:    true,
		Amount:   m.units().String(),
		Currency: m.curr.Code(),
	})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts the tagged form produced by [Money.MarshalJSON] and resolves
// the currency against the [Default] registry.
// To decode against a custom registry, use a [Codec].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrapf(err, "unmarshaling %T", m)
	}
	v, err := Default().fromTagged(raw)
	if err != nil {
		return errors.Wrapf(err, "unmarshaling %T", m)
	}
	*m = v
	return nil
}

func (r *Registry) fromTagged(raw moneyJSON) (Money, error) {
	if !raw.Money {
		return Money{}, errors.Wrap(ErrInvalidAmount, "missing discriminator")
	}
	units, ok := new(big.Int).SetString(raw.Amount, 10)
	if !ok {
		return Money{}, errors.Wrapf(ErrInvalidAmount, "minor units %q", raw.Amount)
	}
	c, err := r.Lookup(raw.Currency)
	if err != nil {
		return Money{}, err
	}
	return Money{curr: c, value: units}, nil
}

// Codec encodes and decodes arbitrary JSON-like trees with embedded [Money]
// values.
//
// A tree consists of objects (map[string]any), arrays ([]any), and primitive
// leaves; Money is the one additional node kind the codec recognizes.
// On encode, Money nodes are replaced by their tagged interchange form;
// on decode, objects carrying the discriminator are turned back into Money
// values, resolved against the codec's registry.
// All other nodes pass through untouched.
type Codec struct {
	reg *Registry
}

// NewCodec returns a codec that resolves currencies against the given
// registry, or against [Default] if reg is nil.
func NewCodec(reg *Registry) *Codec {
	if reg == nil {
		reg = Default()
	}
	return &Codec{reg: reg}
}

// Encode walks the tree and replaces every [Money] node with its tagged
// interchange form.
// The input is not mutated; objects and arrays are copied as needed.
func (c *Codec) Encode(v any) (any, error) {
	switch v := v.(type) {
	case Money:
		return map[string]any{
			"money":    true,
			"amount":   v.units().String(),
			"currency": v.curr.Code(),
		}, nil
	case map[string]any:
		res := make(map[string]any, len(v))
		for k, e := range v {
			enc, err := c.Encode(e)
			if err != nil {
				return nil, errors.Wrapf(err, "encoding key %q", k)
			}
			res[k] = enc
		}
		return res, nil
	case []any:
		res := make([]any, len(v))
		for i, e := range v {
			enc, err := c.Encode(e)
			if err != nil {
				return nil, errors.Wrapf(err, "encoding index %v", i)
			}
			res[i] = enc
		}
		return res, nil
	default:
		return v, nil
	}
}

// Decode walks the tree and replaces every tagged interchange object with a
// [Money] value.
// The input is not mutated; objects and arrays are copied as needed.
func (c *Codec) Decode(v any) (any, error) {
	switch v := v.(type) {
	case map[string]any:
		if raw, ok := taggedObject(v); ok {
			m, err := c.reg.fromTagged(raw)
			if err != nil {
				return nil, errors.Wrap(err, "decoding tagged amount")
			}
			return m, nil
		}
		res := make(map[string]any, len(v))
		for k, e := range v {
			dec, err := c.Decode(e)
			if err != nil {
				return nil, errors.Wrapf(err, "decoding key %q", k)
			}
			res[k] = dec
		}
		return res, nil
	case []any:
		res := make([]any, len(v))
		for i, e := range v {
			dec, err := c.Decode(e)
			if err != nil {
				return nil, errors.Wrapf(err, "decoding index %v", i)
			}
			res[i] = dec
		}
		return res, nil
	default:
		return v, nil
	}
}

// taggedObject reports whether the object carries the interchange
// discriminator, and if so returns its raw form.
func taggedObject(v map[string]any) (moneyJSON, bool) {
	flag, ok := v["money"].(bool)
	if !ok || !flag {
		return moneyJSON{}, false
	}
	amount, ok := v["amount"].(string)
	if !ok {
		return moneyJSON{}, false
	}
	curr, ok := v["currency"].(string)
	if !ok {
		return moneyJSON{}, false
	}
	return moneyJSON{Money: true, Amount: amount, Currency: curr}, true
}

// Marshal encodes the tree and renders it as JSON.
// See also method [Codec.Encode].
func (c *Codec) Marshal(v any) ([]byte, error) {
	enc, err := c.Encode(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(enc)
}

// Unmarshal parses JSON into a tree and decodes every tagged interchange
// object into a [Money] value.
// Non-money numbers are returned as [json.Number] so that their numerals
// survive the round trip unaltered.
// See also method [Codec.Decode].
func (c *Codec) Unmarshal(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, "parsing JSON")
	}
	return c.Decode(v)
}
