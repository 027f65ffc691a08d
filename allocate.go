package money

import (
	"math/big"

	"github.com/pkg/errors"
)

// Allocate distributes the amount proportionally to the given list of
// positive weights, losing no minor units: the shares always sum up to the
// original amount, and the number of shares equals the number of ratios.
//
// Each share is first computed as amount * ratio / total using truncating
// division, so its magnitude is a lower bound; the leftover minor units are
// then handed out one at a time to the shares in list order, starting from
// index 0.
// This order-dependent remainder distribution is deterministic; callers who
// want a fairer spread must shuffle the ratio order themselves.
// See also method [Money.Split].
//
// Allocate returns an error if the ratio list is empty or contains a ratio
// that is zero or negative.
func (m Money) Allocate(ratios ...int) ([]Money, error) {
	shares, err := m.allocate(ratios)
	if err != nil {
		return nil, errors.Wrapf(err, "allocating %v among %v", m, ratios)
	}
	return shares, nil
}

func (m Money) allocate(ratios []int) ([]Money, error) {
	if len(ratios) == 0 {
		return nil, errors.Wrap(ErrInvalidRatios, "empty ratio list")
	}
	var total int64
	for _, rt := range ratios {
		if rt <= 0 {
			return nil, errors.Wrapf(ErrInvalidRatios, "ratio %v", rt)
		}
		total += int64(rt)
	}
	bigTotal := big.NewInt(total)

	// Truncated shares
	shares := make([]Money, len(ratios))
	sum := new(big.Int)
	for i, rt := range ratios {
		sh := new(big.Int).Mul(m.units(), big.NewInt(int64(rt)))
		sh.Quo(sh, bigTotal)
		shares[i] = Money{curr: m.curr, value: sh}
		sum.Add(sum, sh)
	}

	// Remainder distribution
	rem := new(big.Int).Sub(m.units(), sum)
	unit := big.NewInt(int64(rem.Sign()))
	for i := 0; rem.Sign() != 0; i++ {
		shares[i] = Money{curr: m.curr, value: new(big.Int).Add(shares[i].value, unit)}
		rem.Sub(rem, unit)
	}
	return shares, nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// Split is equivalent to [Money.Allocate] with the given number of equal
// weights, so any remainder is distributed among the first parts of the slice.
//
// Split returns an error if the number of parts is not a positive integer.
func (m Money) Split(parts int) ([]Money, error) {
	if parts <= 0 {
		return nil, errors.Wrapf(ErrInvalidPartCount, "splitting %v into %v parts", m, parts)
	}
	ratios := make([]int, parts)
	for i := range ratios {
		ratios[i] = 1
	}
	shares, err := m.allocate(ratios)
	if err != nil {
		return nil, errors.Wrapf(err, "splitting %v into %v parts", m, parts)
	}
	return shares, nil
}
