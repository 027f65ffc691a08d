package money

import (
	"database/sql/driver"

	"github.com/pkg/errors"
)

// Currency type represents a currency in the global financial system.
// The zero value is the unknown currency [XXX], which has a scale of 0.
//
// Currency is an immutable descriptor holding the properties defined by
// [ISO 4217]: the alphabetic code, the numeric code, the display name, and
// the scale.
// Descriptors are produced by a [Registry] during its one-time load and are
// never mutated afterwards, which makes them safe for concurrent use by
// multiple goroutines.
//
// When persisting a currency value, use the alphabetic code returned by
// the [Currency.Code] method.
//
// [XXX]: https://en.wikipedia.org/wiki/ISO_4217#X_currencies_(funds,_precious_metals,_supranationals,_other)
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency struct {
	code  string
	num   string
	name  string
	scale int
}

// Code returns the [3-letter code] assigned to the currency by the ISO 4217
// standard.
// This code is a unique identifier of the currency and is used in
// international finance and commerce.
// For the zero value, Code returns "XXX".
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c Currency) Code() string {
	if c.code == "" {
		return "XXX"
	}
	return c.code
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217
// standard.
// If the currency does not have such a code, the method returns an empty string.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() string {
	return c.num
}

// Name returns the English display name of the currency, for example
// "US Dollar".
func (c Currency) Name() string {
	return c.name
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of a currency.
// The commonly used scales are 0, 2, or 3:
//   - A scale of 0 indicates currencies without minor units.
//     For example, the [Japanese Yen] does not have minor units.
//   - A scale of 2 indicates currencies that use 2 digits to represent their minor units.
//     For example, the [US Dollar] represents its minor unit, 1 cent, as 0.01 dollars.
//   - A scale of 3 indicates currencies with 3 digits in their minor units.
//     For instance, the minor unit of the [Omani Rial], 1 baisa, is represented as 0.001 rials.
//
// [Japanese Yen]: https://en.wikipedia.org/wiki/Japanese_yen
// [US Dollar]: https://en.wikipedia.org/wiki/United_States_dollar
// [Omani Rial]: https://en.wikipedia.org/wiki/Omani_rial
func (c Currency) Scale() int {
	return c.scale
}

// Equal reports whether two currencies are the same.
// Currencies are equal if and only if their alphabetic codes match.
func (c Currency) Equal(d Currency) bool {
	return c.Code() == d.Code()
}

// String method implements the [fmt.Stringer] interface and returns
// the alphabetic code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The currency is resolved against the [Default] registry.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = Default().Lookup(string(text))
	if err != nil {
		return errors.Wrapf(err, "unmarshaling %T", c)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a 3-letter code.
// See also method [Currency.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 5)
	text = append(text, '"')
	text = append(text, c.Code()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The currency is resolved against the [Default] registry.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = Default().Lookup(string(text))
	if err != nil {
		return errors.Wrapf(err, "unmarshaling %T", c)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
// See also method [Currency.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Scan implements the [sql.Scanner] interface.
// The currency is resolved against the [Default] registry.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = Default().Lookup(value)
	case []byte:
		*c, err = Default().Lookup(string(value))
	default:
		err = errors.Errorf("type %T is not supported", value)
	}
	if err != nil {
		return errors.Wrapf(err, "converting from %T to %T", value, c)
	}
	return nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}
