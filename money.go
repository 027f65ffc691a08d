package money

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Money type represents a monetary amount as an integer number of minor
// units of its currency (e.g. cents, pennies, fens).
// Its zero value corresponds to "XXX 0", where XXX indicates an unknown
// currency.
//
// The minor-unit integer has arbitrary precision, so amounts are bounded
// only by available memory, not by a fixed bit width.
// The implicit decimal point of the integer is fixed by the currency's
// scale at construction time and never changes for that value.
// Money values are immutable; every operation returns a new value, which
// makes them safe for concurrent use by multiple goroutines.
type Money struct {
	curr  Currency // ISO 4217 currency
	value *big.Int // amount in minor units
}

// units returns the minor-unit integer, tolerating the zero value.
// Callers must not mutate the result.
func (m Money) units() *big.Int {
	if m.value == nil {
		return new(big.Int)
	}
	return m.value
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// FromDecimal returns an amount with the specified currency and value.
// The value is converted to minor units by shifting it by the currency's
// scale and rounding half away from zero, the same policy [Parse] applies.
func FromDecimal(curr Currency, d decimal.Decimal) Money {
	units := d.Shift(int32(curr.Scale())).Round(0).BigInt()
	return Money{curr: curr, value: units}
}

// Parse converts currency and decimal strings to a (possibly rounded) amount.
// The decimal string is converted to minor units by multiplying it by
// 10^scale and rounding half away from zero, so "1.005" becomes 101 cents
// in a scale-2 currency.
// The currency is resolved against the [Default] registry;
// see also [Registry.Parse].
//
// Parse returns an error if:
//   - the currency is not registered ([ErrUnknownCurrency]);
//   - the string cannot be parsed as a finite decimal number ([ErrInvalidAmount]).
func Parse(curr, amount string) (Money, error) {
	return Default().Parse(curr, amount)
}

// Parse converts currency and decimal strings to a (possibly rounded) amount,
// resolving the currency against registry r.
// See also function [Parse].
func (r *Registry) Parse(curr, amount string) (Money, error) {
	c, err := r.Lookup(curr)
	if err != nil {
		return Money{}, errors.Wrap(err, "parsing currency")
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errors.Wrapf(ErrInvalidAmount, "parsing amount %q", amount)
	}
	return FromDecimal(c, d), nil
}

// MustParse is like [Parse] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding
// monetary amounts.
func MustParse(curr, amount string) Money {
	m, err := Parse(curr, amount)
	if err != nil {
		panic(errors.Wrapf(err, "Parse(%q, %q) failed", curr, amount))
	}
	return m
}

// FromFloat64 converts a float to a (possibly rounded) amount.
// The currency is resolved against the [Default] registry;
// see also [Registry.FromFloat64].
//
// FromFloat64 returns an error if:
//   - the currency is not registered ([ErrUnknownCurrency]);
//   - the float is a special value (NaN or Inf), in which case the error
//     wraps [ErrInvalidAmount].
func FromFloat64(curr string, amount float64) (Money, error) {
	return Default().FromFloat64(curr, amount)
}

// FromFloat64 converts a float to a (possibly rounded) amount, resolving the
// currency against registry r.
// See also function [FromFloat64].
func (r *Registry) FromFloat64(curr string, amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errors.Wrapf(ErrInvalidAmount, "converting float: special value %v", amount)
	}
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	m, err := r.Parse(curr, s)
	if err != nil {
		return Money{}, errors.Wrap(err, "converting float")
	}
	return m, nil
}

// FromMinorUnits converts an integer, representing minor units of currency
// (e.g. cents, pennies, fens), to an amount.
// The conversion is exact; no rounding is applied.
// The currency is resolved against the [Default] registry;
// see also [Registry.FromMinorUnits] and method [Money.MinorUnits].
func FromMinorUnits(curr string, units int64) (Money, error) {
	return Default().FromMinorUnits(curr, units)
}

// FromMinorUnits converts an integer, representing minor units of currency,
// to an amount, resolving the currency against registry r.
// See also function [FromMinorUnits].
func (r *Registry) FromMinorUnits(curr string, units int64) (Money, error) {
	c, err := r.Lookup(curr)
	if err != nil {
		return Money{}, errors.Wrap(err, "parsing currency")
	}
	return Money{curr: c, value: big.NewInt(units)}, nil
}

// FromBigMinorUnits converts an arbitrary-precision integer, representing
// minor units of currency, to an amount.
// The conversion is exact; the integer is copied, not aliased.
// The currency is resolved against the [Default] registry;
// see also [Registry.FromBigMinorUnits].
func FromBigMinorUnits(curr string, units *big.Int) (Money, error) {
	return Default().FromBigMinorUnits(curr, units)
}

// FromBigMinorUnits converts an arbitrary-precision integer, representing
// minor units of currency, to an amount, resolving the currency against
// registry r.
// See also function [FromBigMinorUnits].
func (r *Registry) FromBigMinorUnits(curr string, units *big.Int) (Money, error) {
	c, err := r.Lookup(curr)
	if err != nil {
		return Money{}, errors.Wrap(err, "parsing currency")
	}
	v := new(big.Int)
	if units != nil {
		v.Set(units)
	}
	return Money{curr: c, value: v}, nil
}

// Curr returns the currency of the amount.
func (m Money) Curr() Currency {
	return m.curr
}

// MinorUnits returns the amount in minor units of its currency as an
// arbitrary-precision integer.
// The result is a copy; mutating it does not affect the amount.
// See also constructor [FromMinorUnits].
func (m Money) MinorUnits() *big.Int {
	return new(big.Int).Set(m.units())
}

// Int64 returns the amount in minor units of its currency.
// If the result cannot be represented as an int64, then false is returned.
// See also method [Money.MinorUnits].
func (m Money) Int64() (units int64, ok bool) {
	u := m.units()
	if !u.IsInt64() {
		return 0, false
	}
	return u.Int64(), true
}

// Decimal returns the decimal representation of the amount.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(m.units(), -int32(m.curr.Scale()))
}

// Float64 returns the nearest binary floating-point number to the amount.
//
// This conversion may lose data, as float64 has a smaller precision than the
// minor-unit integer; it is intended for display purposes only, never for
// storage or arithmetic.
func (m Money) Float64() float64 {
	return m.Decimal().InexactFloat64()
}

// Amount returns the decimal rendering of the amount without the currency,
// zero-padding the fractional part to the currency's scale:
//
//	USD -5 minor units  =>  "-0.05"
//	USD 333 minor units =>  "3.33"
//	JPY 333 minor units =>  "333"
//	BHD 333 minor units =>  "0.333"
//
// Currencies with a scale of 0 render with no decimal point.
func (m Money) Amount() string {
	scale := m.curr.Scale()
	abs := new(big.Int).Abs(m.units())
	whole, frac := new(big.Int).QuoRem(abs, pow10(scale), new(big.Int))

	var b strings.Builder
	if m.units().Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(whole.String())
	if scale > 0 {
		b.WriteByte('.')
		fs := frac.String()
		for i := len(fs); i < scale; i++ {
			b.WriteByte('0')
		}
		b.WriteString(fs)
	}
	return b.String()
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the amount, such as "USD 3.33".
// See also methods [Money.Amount], [Money.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.curr.Code() + " " + m.Amount()
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.units().Sign()
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.units().Sign() == 0
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.units().Sign() > 0
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.units().Sign() < 0
}

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	return Money{curr: m.curr, value: new(big.Int).Abs(m.units())}
}

// Neg returns an amount with the opposite sign.
// The negation is exact; no rounding is applied.
func (m Money) Neg() Money {
	return Money{curr: m.curr, value: new(big.Int).Neg(m.units())}
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Money.Curr].
func (m Money) SameCurr(b Money) bool {
	return m.curr.Equal(b.curr)
}

// Add returns the sum of amounts m and b.
// The addition is exact; no rounding is applied.
//
// Add returns an error if the amounts are denominated in different currencies.
func (m Money) Add(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, errors.Wrapf(ErrCurrencyMismatch, "computing [%v + %v]", m, b)
	}
	return Money{curr: m.curr, value: new(big.Int).Add(m.units(), b.units())}, nil
}

// Sub returns the difference between amounts m and b.
// The subtraction is exact; no rounding is applied.
//
// Sub returns an error if the amounts are denominated in different currencies.
func (m Money) Sub(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, errors.Wrapf(ErrCurrencyMismatch, "computing [%v - %v]", m, b)
	}
	return Money{curr: m.curr, value: new(big.Int).Sub(m.units(), b.units())}, nil
}

// Mul returns the product of amount m and factor e.
//
// The factor is first converted to an integer scaled by 10^scale, rounding
// half away from zero; the minor-unit integer is multiplied by it and the
// result is divided by 10^scale using truncating integer division.
// Because of this order of operations the result can differ from
// round(m * e) by one minor unit; the behavior is deliberate and reproducible.
func (m Money) Mul(e decimal.Decimal) Money {
	scale := m.curr.Scale()
	f := e.Shift(int32(scale)).Round(0).BigInt()
	p := new(big.Int).Mul(m.units(), f)
	return Money{curr: m.curr, value: p.Quo(p, pow10(scale))}
}

// PercentageFormat selects how [Money.Percentage] interprets its input.
type PercentageFormat uint8

const (
	// AsFraction interprets the input as a decimal fraction, so 0.15 means 15%.
	AsFraction PercentageFormat = iota

	// AsPercentage interprets the input as a whole-number percentage,
	// so 15 means 15%.
	AsPercentage
)

// Percentage returns the given percentage of amount m.
// The format selects whether p is a decimal fraction (0.15) or a whole-number
// percentage (15); in the latter case p is divided by 100 first.
// The calculation is then delegated to [Money.Mul] and follows its
// multiply-then-truncate behavior.
func (m Money) Percentage(p decimal.Decimal, format PercentageFormat) Money {
	if format == AsPercentage {
		p = p.Shift(-2)
	}
	return m.Mul(p)
}

// Cmp compares amounts and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// See also method [Money.Equal].
//
// Cmp returns an error if amounts are denominated in different currencies.
func (m Money) Cmp(b Money) (int, error) {
	if !m.SameCurr(b) {
		return 0, errors.Wrapf(ErrCurrencyMismatch, "comparing [%v] and [%v]", m, b)
	}
	return m.units().Cmp(b.units()), nil
}

// GreaterThan returns true if m > b.
//
// GreaterThan returns an error if amounts are denominated in different currencies.
func (m Money) GreaterThan(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// GreaterThanOrEqual returns true if m >= b.
//
// GreaterThanOrEqual returns an error if amounts are denominated in different currencies.
func (m Money) GreaterThanOrEqual(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}

// LessThan returns true if m < b.
//
// LessThan returns an error if amounts are denominated in different currencies.
func (m Money) LessThan(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// LessThanOrEqual returns true if m <= b.
//
// LessThanOrEqual returns an error if amounts are denominated in different currencies.
func (m Money) LessThanOrEqual(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c <= 0, nil
}

// SameAmountAs returns true if the amounts are numerically equal.
//
// SameAmountAs returns an error if amounts are denominated in different currencies.
func (m Money) SameAmountAs(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// Equal reports whether the amounts are interchangeable: denominated in the
// same currency and numerically equal.
// Unlike [Money.Cmp] and the methods derived from it, Equal does not fail
// for differing currencies; it returns false, since amounts of different
// currencies are never interchangeable.
func (m Money) Equal(b Money) bool {
	return m.SameCurr(b) && m.units().Cmp(b.units()) == 0
}

// Min returns the smaller amount.
//
// Min returns an error if amounts are denominated in different currencies.
func (m Money) Min(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c <= 0: // m <= b
		return m, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
//
// Max returns an error if amounts are denominated in different currencies.
func (m Money) Max(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c >= 0: // m >= b
		return m, nil
	default:
		return b, nil
	}
}
