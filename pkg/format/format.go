// Package format produces the display strings for card input fields:
// gap-grouped numbers, "MM/YY" expiry, truncated security codes, dashed
// postal codes and masked numbers. Every transform is a pure function of
// the raw value and (for number and code) an issuer descriptor.
package format

import (
	"strings"

	"github.com/allen13/tegridy-cards/pkg/cardnumber"
	"github.com/allen13/tegridy-cards/pkg/issuers"
)

const (
	expiryDigits     = 4
	postalCodeDigits = 9
	postalDashAfter  = 5
)

// Formatter formats field values using an issuer catalog's grouping rules.
type Formatter struct {
	catalog   *issuers.Catalog
	validator *cardnumber.Validator
}

// New returns a formatter over the given catalog. A nil catalog uses the
// shipped default.
func New(catalog *issuers.Catalog) *Formatter {
	if catalog == nil {
		catalog = issuers.Default()
	}
	return &Formatter{
		catalog:   catalog,
		validator: cardnumber.NewValidator(catalog),
	}
}

// Number formats raw card-number input, resolving the issuer from the
// digits themselves and falling back to generic 4/8/12 grouping while the
// issuer is undetermined.
func (f *Formatter) Number(raw string) string {
	d := f.validator.Verify(raw, 0).Issuer
	if d == nil {
		d = issuers.Fallback()
	}
	return f.NumberFor(raw, d)
}

// NumberFor formats raw card-number input under a known issuer: non-digits
// are stripped, the digits truncated to the issuer's maximum length, and a
// space inserted at each of the issuer's gap offsets.
func (f *Formatter) NumberFor(raw string, d *issuers.Descriptor) string {
	digits := truncate(digitsOf(raw), d.MaxLength())
	return groupByGaps(digits, d.Gaps)
}

// Pretty groups an already-complete digit string for display, looking the
// issuer up by id. Unknown ids pass the input through untouched. No
// truncation is applied.
func (f *Formatter) Pretty(digits, issuerID string) string {
	d, ok := f.catalog.Find(issuerID)
	if !ok {
		return digits
	}
	return groupByGaps(digits, d.Gaps)
}

// Expiry formats raw expiry input as it is typed: digits only, at most
// four, a lone 2-9 zero-padded to a month, and a "/" inserted once the
// month is complete.
func (f *Formatter) Expiry(raw string) string {
	digits := truncate(digitsOf(raw), expiryDigits)
	if len(digits) == 1 && digits[0] >= '2' && digits[0] <= '9' {
		return "0" + digits
	}
	if len(digits) > 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

// CVV formats raw security-code input for an issuer, truncating to the
// issuer's largest acceptable code size. A nil descriptor uses the
// fallback's size.
func (f *Formatter) CVV(raw string, d *issuers.Descriptor) string {
	if d == nil {
		d = issuers.Fallback()
	}
	max := 0
	for _, s := range d.Code.Sizes {
		if s > max {
			max = s
		}
	}
	return truncate(digitsOf(raw), max)
}

// PostalCode formats raw postal-code input: digits only, at most nine,
// with a dash after the fifth once a sixth digit appears.
func (f *Formatter) PostalCode(raw string) string {
	digits := truncate(digitsOf(raw), postalCodeDigits)
	if len(digits) < postalDashAfter+1 {
		return digits
	}
	return digits[:postalDashAfter] + "-" + digits[postalDashAfter:]
}

// Mask replaces the middle digits of a card number with asterisks, keeping
// the six-digit BIN and the last four. Shorter inputs pass through.
func Mask(digits string) string {
	if len(digits) <= 10 {
		return digits
	}
	var b strings.Builder
	b.Grow(len(digits))
	b.WriteString(digits[:6])
	for i := 6; i < len(digits)-4; i++ {
		b.WriteByte('*')
	}
	b.WriteString(digits[len(digits)-4:])
	return b.String()
}

// Last4 returns the trailing four digits of a card number, or the whole
// input when shorter.
func Last4(digits string) string {
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// groupByGaps slices digits at each gap offset and joins the segments with
// single spaces. Offsets count emitted characters; segments past the end
// of the input are dropped.
func groupByGaps(digits string, gaps []int) string {
	var parts []string
	prev := 0
	for _, g := range gaps {
		if g >= len(digits) {
			break
		}
		parts = append(parts, digits[prev:g])
		prev = g
	}
	parts = append(parts, digits[prev:])
	return strings.Join(parts, " ")
}

func digitsOf(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}

func truncate(digits string, max int) string {
	if max > 0 && len(digits) > max {
		return digits[:max]
	}
	return digits
}
