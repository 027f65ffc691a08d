package money

import (
	"math/big"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// RoundingMode selects the policy applied to the quotient of a division when
// the remainder is non-zero.
// Exact divisions return the quotient unmodified regardless of mode.
type RoundingMode uint8

const (
	// RoundUp rounds away from zero.
	RoundUp RoundingMode = iota

	// RoundDown rounds toward zero (truncation).
	RoundDown

	// RoundCeiling rounds toward positive infinity.
	RoundCeiling

	// RoundFloor rounds toward negative infinity.
	RoundFloor

	// RoundHalfUp rounds to the nearest neighbor, with a remainder of at
	// least half the divisor rounding away from zero.
	RoundHalfUp

	// RoundHalfDown rounds to the nearest neighbor, with a remainder of more
	// than half the divisor rounding away from zero.
	RoundHalfDown

	// RoundHalfEven rounds to the nearest neighbor, with an exact half
	// rounding to the even neighbor (banker's rounding).
	RoundHalfEven
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (mode RoundingMode) String() string {
	switch mode {
	case RoundUp:
		return "up"
	case RoundDown:
		return "down"
	case RoundCeiling:
		return "ceiling"
	case RoundFloor:
		return "floor"
	case RoundHalfUp:
		return "half-up"
	case RoundHalfDown:
		return "half-down"
	case RoundHalfEven:
		return "half-even"
	default:
		return "%!RoundingMode(" + strconv.Itoa(int(mode)) + ")"
	}
}

// Div returns the quotient of amount m and divisor e, rounded to the scale of
// the currency using the given rounding mode.
//
// The dividend is scaled up by 10^scale and the divisor is converted to an
// integer at the same precision, rounding half away from zero; the division
// is then carried out on integers, and the mode decides the direction of the
// final minor unit whenever the remainder is non-zero.
//
// Div returns an error if the divisor resolves to zero at the currency's scale.
func (m Money) Div(e decimal.Decimal, mode RoundingMode) (Money, error) {
	scale := m.curr.Scale()
	divisor := e.Shift(int32(scale)).Round(0).BigInt()
	if divisor.Sign() == 0 {
		return Money{}, errors.Wrapf(ErrDivisionByZero, "computing [%v / %v]", m, e)
	}
	dividend := new(big.Int).Mul(m.units(), pow10(scale))
	return Money{curr: m.curr, value: divRound(dividend, divisor, mode)}, nil
}

var bigOne = big.NewInt(1)

// divRound divides dividend by divisor and rounds the quotient according to
// the mode.
// The half point is the truncated divisor/2, compared against the remainder
// magnitude; both tie policies and the parity check operate on magnitudes,
// with the sign reapplied at the end.
func divRound(dividend, divisor *big.Int, mode RoundingMode) *big.Int {
	sign := dividend.Sign() * divisor.Sign()
	da := new(big.Int).Abs(dividend)
	db := new(big.Int).Abs(divisor)
	q, r := new(big.Int).QuoRem(da, db, new(big.Int))

	if r.Sign() != 0 {
		half := new(big.Int).Rsh(db, 1)
		bump := false
		switch mode {
		case RoundUp:
			bump = true
		case RoundDown:
			// truncate
		case RoundCeiling:
			bump = sign > 0
		case RoundFloor:
			bump = sign < 0
		case RoundHalfUp:
			bump = r.Cmp(half) >= 0
		case RoundHalfDown:
			bump = r.Cmp(half) > 0
		case RoundHalfEven:
			bump = r.Cmp(half) > 0 || (r.Cmp(half) == 0 && q.Bit(0) == 1)
		}
		if bump {
			q.Add(q, bigOne)
		}
	}

	if sign < 0 {
		q.Neg(q)
	}
	return q
}
