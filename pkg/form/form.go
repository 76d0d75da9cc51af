// Package form aggregates the per-field validators into a single pass over
// a card form's values, producing a status per field and an overall form
// verdict. Which fields count is the caller's choice: regional variants
// require different subsets.
package form

import (
	"regexp"
	"strings"
	"time"

	"github.com/allen13/tegridy-cards/pkg/cardnumber"
	"github.com/allen13/tegridy-cards/pkg/cvv"
	"github.com/allen13/tegridy-cards/pkg/expiry"
	"github.com/allen13/tegridy-cards/pkg/issuers"
	"github.com/allen13/tegridy-cards/pkg/validity"
)

// Field names a card form field.
type Field string

const (
	FieldNumber     Field = "number"
	FieldExpiry     Field = "expiry"
	FieldCVC        Field = "cvc"
	FieldName       Field = "name"
	FieldPostalCode Field = "postalCode"
	// FieldIssuer is derived from the number, never typed, and always
	// present in results.
	FieldIssuer Field = "issuer"
)

// DefaultMaxNumberLength caps card-number digits unless overridden.
const DefaultMaxNumberLength = 20

// Values holds the raw, unsanitized field values as typed by the user.
type Values struct {
	Number     string
	Expiry     string
	CVC        string
	Name       string
	PostalCode string
}

// Result is one validation pass over a form.
type Result struct {
	// Statuses covers exactly the required fields plus the derived issuer.
	Statuses map[Field]validity.Status
	// Issuer is the resolved issuer id, or issuers.Placeholder while
	// undetermined.
	Issuer string
	// Valid reports whether every required field is satisfied.
	Valid bool
}

// Config configures an Aggregator. The zero value uses the shipped
// catalog, the default number cap and the wall clock.
type Config struct {
	Catalog         *issuers.Catalog
	MaxNumberLength int
	// Now overrides the expiry validator's clock.
	Now func() time.Time
}

// Aggregator validates a full card form.
type Aggregator struct {
	numbers         *cardnumber.Validator
	expiry          *expiry.Validator
	maxNumberLength int
}

// New returns an aggregator for the given configuration.
func New(cfg Config) *Aggregator {
	if cfg.MaxNumberLength <= 0 {
		cfg.MaxNumberLength = DefaultMaxNumberLength
	}
	ev := expiry.NewValidator()
	if cfg.Now != nil {
		ev.Now = cfg.Now
	}
	return &Aggregator{
		numbers:         cardnumber.NewValidator(cfg.Catalog),
		expiry:          ev,
		maxNumberLength: cfg.MaxNumberLength,
	}
}

var postalCodePattern = regexp.MustCompile(`^\d{5}(\d{4})?$`)

// Validate runs every validator over values and reports per-field statuses
// for the required fields. The security-code length rule follows the
// issuer resolved from the number, falling back to a generic three-digit
// code while the issuer is undetermined.
func (a *Aggregator) Validate(values Values, required ...Field) Result {
	number := a.numbers.Verify(values.Number, a.maxNumberLength)

	issuerID := issuers.Placeholder
	codeSizes := issuers.Fallback().Code.Sizes
	if number.Issuer != nil {
		issuerID = number.Issuer.ID
		codeSizes = number.Issuer.Code.Sizes
	}

	statuses := map[Field]validity.Status{
		FieldIssuer: validity.StatusValid,
	}
	for _, field := range required {
		statuses[field] = a.fieldStatus(field, values, number, codeSizes)
	}

	valid := true
	for _, field := range required {
		if statuses[field] != validity.StatusValid {
			valid = false
			break
		}
	}

	return Result{Statuses: statuses, Issuer: issuerID, Valid: valid}
}

func (a *Aggregator) fieldStatus(field Field, values Values, number cardnumber.Result, codeSizes []int) validity.Status {
	switch field {
	case FieldNumber:
		return validity.StatusOf(number.Verdict)
	case FieldExpiry:
		return validity.StatusOf(a.expiry.Date(values.Expiry))
	case FieldCVC:
		return validity.StatusOf(cvv.Verify(values.CVC, codeSizes...))
	case FieldName:
		if values.Name != "" {
			return validity.StatusValid
		}
		return validity.StatusIncomplete
	case FieldPostalCode:
		return postalCodeStatus(values.PostalCode)
	case FieldIssuer:
		return validity.StatusValid
	default:
		return validity.StatusInvalid
	}
}

func postalCodeStatus(raw string) validity.Status {
	digits := digitsOf(raw)
	if postalCodePattern.MatchString(digits) {
		return validity.StatusValid
	}
	if len(digits) == 5 || len(digits) == 9 {
		return validity.StatusInvalid
	}
	return validity.StatusIncomplete
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
