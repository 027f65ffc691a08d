package money

import "github.com/pkg/errors"

// Errors returned by this package.
// All of them are raised synchronously at the point of violation and indicate
// a broken caller-side invariant rather than a transient condition, so there
// is nothing to retry.
// Use [errors.Is] to test for them, as most are returned wrapped with
// operation context.
//
// [errors.Is]: https://pkg.go.dev/errors#Is
var (
	// ErrInvalidAmount indicates a monetary value that cannot be parsed as a
	// finite decimal number, or a negative fraction-digit configuration.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrCurrencyMismatch indicates an operation between monetary values
	// denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrUnknownCurrency indicates a registry lookup for a currency code that
	// has not been registered.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrUnknownCountry indicates a registry lookup for a country that has no
	// registered currency.
	ErrUnknownCountry = errors.New("unknown country")

	// ErrDivisionByZero indicates a division whose divisor resolves to zero
	// at the currency's scale.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidRatios indicates an allocation with an empty ratio list or
	// with a ratio that is zero or negative.
	ErrInvalidRatios = errors.New("invalid ratios")

	// ErrInvalidPartCount indicates a split into a non-positive number of parts.
	ErrInvalidPartCount = errors.New("invalid part count")
)
