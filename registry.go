package money

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Registry holds currency descriptors indexed by alphabetic code, numeric
// code, and country.
//
// A registry is meant to be loaded once, before any monetary value is
// constructed against it, and treated as read-only afterwards.
// It uses a slice to keep track of registered codes because iterating over a
// map to retrieve them would yield a different ordering each time.
type Registry struct {
	mtx       sync.RWMutex
	order     []string
	byCode    map[string]Currency
	byNum     map[string]Currency
	byCountry map[string]string
}

// NewRegistry returns an empty currency registry.
// See also function [Default].
func NewRegistry() *Registry {
	return &Registry{
		byCode:    make(map[string]Currency),
		byNum:     make(map[string]Currency),
		byCountry: make(map[string]string),
	}
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry preloaded with the [ISO 4217]
// currency table and a country-to-currency mapping.
// The registry is loaded on first use and must be treated as read-only;
// it persists for the life of the process.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		for _, c := range iso4217 {
			if _, err := r.Register(c.code, c.num, c.name, c.scale); err != nil {
				panic(errors.Wrapf(err, "loading built-in currency %q", c.code))
			}
		}
		for country, code := range iso3166Currency {
			if err := r.RegisterCountry(country, code); err != nil {
				panic(errors.Wrapf(err, "loading built-in country %q", country))
			}
		}
		defaultReg = r
	})
	return defaultReg
}

// Register adds a currency descriptor to the registry and returns it.
//
// Register returns an error if:
//   - the alphabetic code is empty;
//   - the scale is negative;
//   - a currency with the same alphabetic or numeric code is already registered.
func (r *Registry) Register(code, num, name string, scale int) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Currency{}, errors.Wrap(ErrInvalidAmount, "registering currency: empty code")
	}
	if scale < 0 {
		return Currency{}, errors.Wrapf(ErrInvalidAmount, "registering currency %q: negative scale %v", code, scale)
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.byCode[code]; ok {
		return Currency{}, errors.Errorf("currency %q is already registered", code)
	}
	if num != "" {
		if _, ok := r.byNum[num]; ok {
			return Currency{}, errors.Errorf("currency with numeric code %q is already registered", num)
		}
	}
	c := Currency{code: code, num: num, name: name, scale: scale}
	r.byCode[code] = c
	if num != "" {
		r.byNum[num] = c
	}
	r.order = append(r.order, code)
	return c, nil
}

// RegisterCountry maps an [ISO 3166] alpha-2 country code to the currency
// with the given alphabetic code.
//
// RegisterCountry returns an error if the currency is not registered.
//
// [ISO 3166]: https://en.wikipedia.org/wiki/ISO_3166-1_alpha-2
func (r *Registry) RegisterCountry(country, code string) error {
	country = strings.ToUpper(strings.TrimSpace(country))
	code = strings.ToUpper(strings.TrimSpace(code))

	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.byCode[code]; !ok {
		return errors.Wrapf(ErrUnknownCurrency, "registering country %q with currency %q", country, code)
	}
	r.byCountry[country] = code
	return nil
}

// Lookup returns the currency descriptor registered for the given code.
// The input string may be an alphabetic code in any case, or a numeric code:
//
//	USD
//	usd
//	840
//
// Lookup returns [ErrUnknownCurrency] if no such currency is registered.
func (r *Registry) Lookup(code string) (Currency, error) {
	s := strings.ToUpper(strings.TrimSpace(code))

	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if c, ok := r.byCode[s]; ok {
		return c, nil
	}
	if c, ok := r.byNum[s]; ok {
		return c, nil
	}
	return Currency{}, errors.Wrapf(ErrUnknownCurrency, "looking up %q", code)
}

// MustLookup is like [Registry.Lookup] but panics if the currency is not
// registered.
// It simplifies safe initialization of global variables holding currencies.
func (r *Registry) MustLookup(code string) Currency {
	c, err := r.Lookup(code)
	if err != nil {
		panic(errors.Wrapf(err, "Lookup(%q) failed", code))
	}
	return c
}

// ForCountry returns the currency descriptor registered for the given
// [ISO 3166] alpha-2 country code.
//
// ForCountry returns [ErrUnknownCountry] if the country has no registered
// currency.
//
// [ISO 3166]: https://en.wikipedia.org/wiki/ISO_3166-1_alpha-2
func (r *Registry) ForCountry(country string) (Currency, error) {
	s := strings.ToUpper(strings.TrimSpace(country))

	r.mtx.RLock()
	defer r.mtx.RUnlock()

	code, ok := r.byCountry[s]
	if !ok {
		return Currency{}, errors.Wrapf(ErrUnknownCountry, "looking up %q", country)
	}
	return r.byCode[code], nil
}

// Currencies returns the registered currency descriptors in registration order.
func (r *Registry) Currencies() []Currency {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	res := make([]Currency, len(r.order))
	for i, code := range r.order {
		res[i] = r.byCode[code]
	}
	return res
}
