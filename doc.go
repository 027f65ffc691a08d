/*
Package money implements monetary values in various currencies as
scaled integers, avoiding binary floating-point error.
An amount is an arbitrary-precision integer number of the minor units of its
currency (e.g. cents), paired with an immutable [Currency] descriptor whose
scale fixes the implicit decimal point for the life of the value.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Currency descriptors resolved through an explicit, injectable [Registry]
  - Exact addition and subtraction; reproducible multiplication and division
  - Seven rounding modes for division, including banker's rounding
  - Lossless proportional allocation and equal splitting
  - A tagged JSON interchange form that survives amounts beyond the native
    safe-integer range

# Representation

The package consists of two main structs: [Money] and [Currency].
A Money holds a Currency and a math/big integer of minor units; the integer
has arbitrary precision, so amounts are bounded only by available memory.
A Currency is an immutable ISO 4217 descriptor (code, numeric code, name,
scale) produced by a [Registry] during its one-time load.

# Arithmetic

Addition and subtraction are exact and require identical currencies.
Multiplication scales the factor to an integer, multiplies, and then
truncates; division scales both operands and applies one of the seven
[RoundingMode] policies to the integer quotient.
[Money.Allocate] and [Money.Split] distribute an amount across weighted
shares without losing or inventing a single minor unit.

# Errors

Operations return errors when caller-side invariants are violated: mixing
currencies ([ErrCurrencyMismatch]), dividing by zero ([ErrDivisionByZero]),
unparseable input ([ErrInvalidAmount]), unregistered currencies or countries
([ErrUnknownCurrency], [ErrUnknownCountry]), and degenerate allocation
weights ([ErrInvalidRatios], [ErrInvalidPartCount]).
Errors are returned wrapped with operation context; test for them with
errors.Is.
*/
package money
