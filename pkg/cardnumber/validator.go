package cardnumber

import (
	"strings"

	"github.com/allen13/tegridy-cards/pkg/issuers"
	"github.com/allen13/tegridy-cards/pkg/validity"
)

// Result is the verdict for a card number plus the issuer it resolved to.
// Issuer is nil while the input is ambiguous or matches nothing.
type Result struct {
	validity.Verdict
	Issuer *issuers.Descriptor
}

// Validator validates raw card-number input.
type Validator struct {
	matcher *Matcher
}

// NewValidator returns a validator over the given catalog. A nil catalog
// uses the shipped default.
func NewValidator(catalog *issuers.Catalog) *Validator {
	return &Validator{matcher: NewMatcher(catalog)}
}

// Matcher exposes the underlying issuer matcher, for callers that want
// candidate lists for display.
func (v *Validator) Matcher() *Matcher {
	return v.matcher
}

// Verify validates raw keystroke input as a card number. Spaces and dashes
// are stripped; any other non-digit character rejects the value. maxLength
// caps the accepted digit count on top of the issuer's own lengths; pass 0
// for no caller-side cap.
//
// UnionPay numbers are treated as always checksum-valid: UnionPay issuance
// does not reliably follow Luhn, and rejecting real cards is worse than
// accepting a typo.
func (v *Validator) Verify(raw string, maxLength int) Result {
	digits := stripSeparators(raw)
	if !digitsOnly(digits) {
		return Result{Verdict: validity.Rejected()}
	}

	candidates := v.matcher.Candidates(digits)
	if len(candidates) == 0 {
		return Result{Verdict: validity.Rejected()}
	}

	issuer := resolve(candidates)
	if issuer == nil {
		// Plausibly a card, but the issuer is still undetermined.
		return Result{Verdict: validity.Partial()}
	}

	if maxLength > 0 && len(digits) > maxLength {
		return Result{Verdict: validity.Rejected(), Issuer: issuer}
	}

	checksumOK := issuer.ID == issuers.UnionPay || luhnValid(digits)

	effectiveMax := issuer.MaxLength()
	if maxLength > 0 && maxLength < effectiveMax {
		effectiveMax = maxLength
	}

	verdict := validity.Verdict{}
	if issuer.ValidLength(len(digits)) {
		verdict.Valid = checksumOK
		verdict.PotentiallyValid = len(digits) < effectiveMax || checksumOK
	} else {
		verdict.PotentiallyValid = len(digits) < effectiveMax
	}
	return Result{Verdict: verdict, Issuer: issuer}
}

// resolve picks the single issuer for a candidate set: a lone candidate
// wins outright, several candidates resolve only when all are confirmed.
func resolve(candidates []Candidate) *issuers.Descriptor {
	if len(candidates) == 1 {
		return candidates[0].Descriptor
	}
	return bestOf(candidates)
}

func stripSeparators(raw string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, raw)
}
