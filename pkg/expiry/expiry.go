// Package expiry parses and validates card expiration input. Raw strings
// arrive in several shapes ("MM/YY", "MM YY", "YYYY-MM", or a bare digit
// run like "1225"); parsing splits them into month and year components and
// validation checks each against the calendar.
package expiry

import (
	"fmt"
	"strconv"
	"time"

	"github.com/allen13/tegridy-cards/pkg/validity"
)

// DefaultMaxElapsedYears bounds how far in the future an expiration year is
// accepted.
const DefaultMaxElapsedYears = 19

// Parts is an expiry split into its month and year components, both kept as
// the raw digit strings the user typed.
type Parts struct {
	Month string
	Year  string
}

// InputError reports structured expiry input that cannot be coerced to a
// digit string. This is a caller bug, not a user-input failure, and is kept
// distinct from the verdict types so the two cannot be confused.
type InputError struct {
	Field string
	Value any
}

func (e *InputError) Error() string {
	return fmt.Sprintf("expiry: %s value of type %T is not coercible to a string", e.Field, e.Value)
}

// MonthVerdict is the verdict for a month component.
type MonthVerdict struct {
	validity.Verdict
	// ValidForCurrentYear additionally requires the month not to have
	// elapsed in the current calendar year.
	ValidForCurrentYear bool
}

// YearVerdict is the verdict for a year component.
type YearVerdict struct {
	validity.Verdict
	// CurrentYear reports whether the value names the current year.
	CurrentYear bool
}

// Validator validates expiry input against a clock.
type Validator struct {
	// Now supplies the reference time for currency checks. Defaults to
	// time.Now; tests pin it.
	Now func() time.Time
}

// NewValidator returns a validator using the wall clock.
func NewValidator() *Validator {
	return &Validator{Now: time.Now}
}

// Month validates a month component. Empty input and a lone "0" are
// transitional typing states, not errors.
func (v *Validator) Month(value string) MonthVerdict {
	if stripWhitespace(value) == "" || value == "0" {
		return MonthVerdict{Verdict: validity.Partial()}
	}
	if !digitsOnly(value) {
		return MonthVerdict{}
	}
	m, err := strconv.Atoi(value)
	if err != nil {
		return MonthVerdict{}
	}
	valid := m >= 1 && m <= 12
	return MonthVerdict{
		Verdict:             validity.Verdict{Valid: valid, PotentiallyValid: valid},
		ValidForCurrentYear: valid && m >= int(v.Now().Month()),
	}
}

// Year validates a year component with the default future bound.
func (v *Validator) Year(value string) YearVerdict {
	return v.YearWithin(value, DefaultMaxElapsedYears)
}

// YearWithin validates a year component, accepting the current year through
// maxElapsedYears years ahead. Two-digit and four-digit values are
// complete; one digit is a typing state, and three digits are potentially
// valid only while they extend the current century prefix (a three-digit
// year is never complete).
func (v *Validator) YearWithin(value string, maxElapsedYears int) YearVerdict {
	if stripWhitespace(value) == "" {
		return YearVerdict{Verdict: validity.Partial()}
	}
	if !digitsOnly(value) {
		return YearVerdict{}
	}
	if len(value) < 2 {
		return YearVerdict{Verdict: validity.Partial()}
	}

	currentYear := v.Now().Year()

	if len(value) == 3 {
		prefix := strconv.Itoa(currentYear)[:2]
		return YearVerdict{
			Verdict: validity.Verdict{PotentiallyValid: value[:2] == prefix},
		}
	}
	if len(value) > 4 {
		return YearVerdict{}
	}

	year, err := strconv.Atoi(value)
	if err != nil {
		return YearVerdict{}
	}

	reference := currentYear
	if len(value) == 2 {
		reference = currentYear % 100
	}
	valid := year >= reference && year <= reference+maxElapsedYears
	return YearVerdict{
		Verdict:     validity.Verdict{Valid: valid, PotentiallyValid: valid},
		CurrentYear: year == reference,
	}
}

// Date parses raw expiry input and validates the combined month and year.
func (v *Validator) Date(raw string) validity.Verdict {
	return v.date(v.Parse(raw))
}

// DateParts validates an expiry supplied as separate month and year values,
// as structured form state tends to hold them. Accepted types are string
// and the integer kinds; anything else returns an *InputError.
func (v *Validator) DateParts(month, year any) (validity.Verdict, error) {
	m, err := coerce("month", month)
	if err != nil {
		return validity.Rejected(), err
	}
	y, err := coerce("year", year)
	if err != nil {
		return validity.Rejected(), err
	}
	return v.date(Parts{Month: m, Year: y}), nil
}

func (v *Validator) date(p Parts) validity.Verdict {
	month := v.Month(p.Month)
	year := v.Year(p.Year)

	if month.Valid {
		if year.CurrentYear {
			// An in-range year is not enough when the month has already
			// elapsed this year.
			ok := month.ValidForCurrentYear
			return validity.Verdict{Valid: ok, PotentiallyValid: ok}
		}
		if year.Valid {
			return validity.Complete()
		}
	}
	if month.PotentiallyValid && year.PotentiallyValid {
		return validity.Partial()
	}
	return validity.Rejected()
}

func coerce(field string, value any) (string, error) {
	switch x := value.(type) {
	case string:
		return x, nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	default:
		return "", &InputError{Field: field, Value: value}
	}
}

func stripWhitespace(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
