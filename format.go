package money

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example    | Description                |
//	| ------ | ---------- | -------------------------- |
//	| %s, %v | USD 3.33   | Currency and amount        |
//	| %q     | "USD 3.33" | Quoted currency and amount |
//	| %f     | 3.33       | Amount                     |
//	| %d     | 333        | Amount in minor units      |
//	| %c     | USD        | Currency                   |
//
// Width and the '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V':
		writePadded(state, m.String())
	case 'q', 'Q':
		writePadded(state, strconv.Quote(m.String()))
	case 'f', 'F':
		writePadded(state, m.Amount())
	case 'd', 'D':
		writePadded(state, m.units().String())
	case 'c', 'C':
		writePadded(state, m.curr.Code())
	default:
		fmt.Fprintf(state, "%%!%c(money.Money=%s)", verb, m.String())
	}
}

// writePadded writes s to the formatting state, honoring width and the
// '-' flag.
func writePadded(state fmt.State, s string) {
	w, ok := state.Width()
	if !ok || w <= len(s) {
		io.WriteString(state, s) //nolint:errcheck
		return
	}
	pad := strings.Repeat(" ", w-len(s))
	if state.Flag('-') {
		io.WriteString(state, s)   //nolint:errcheck
		io.WriteString(state, pad) //nolint:errcheck
		return
	}
	io.WriteString(state, pad) //nolint:errcheck
	io.WriteString(state, s)   //nolint:errcheck
}

// Display returns a locale-aware rendering of the amount for the given
// language tag, such as "$10.99" for English or "10,99 $" for French.
//
// The rendering is delegated to the CLDR-backed formatting facilities of
// [golang.org/x/text]; the package's only contribution is the conversion of
// the minor-unit integer to a floating-point number, which may lose
// precision for very large amounts.
// Display is therefore suitable for presentation only, never for storage or
// arithmetic; use [Money.Amount] or [Money.MinorUnits] for exact rendering.
// See also method [Money.DisplayWith].
func (m Money) Display(tag language.Tag) string {
	return m.DisplayWith(message.NewPrinter(tag))
}

// DisplayWith is like [Money.Display] but renders the amount with a
// caller-supplied printer, allowing printers to be reused across values.
func (m Money) DisplayWith(p *message.Printer) string {
	f := m.Float64()
	if u, err := xcurrency.ParseISO(m.curr.Code()); err == nil {
		return p.Sprintf("%v", xcurrency.Symbol(u.Amount(f)))
	}
	scale := m.curr.Scale()
	n := number.Decimal(f,
		number.MinFractionDigits(scale),
		number.MaxFractionDigits(scale))
	return p.Sprintf("%s %v", m.curr.Code(), n)
}
