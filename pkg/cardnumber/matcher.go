// Package cardnumber classifies and validates payment-card numbers against
// an issuer catalog: candidate matching with match strength, best-match
// resolution, and the three-state number verdict including the Luhn check.
package cardnumber

import (
	"github.com/allen13/tegridy-cards/pkg/issuers"
)

// Candidate is one issuer a digit string could still belong to.
type Candidate struct {
	Descriptor *issuers.Descriptor
	// Strength is the digit width of the rule that matched, set only once
	// the input carries at least that many digits. Zero means the match is
	// possible but not yet confirmed.
	Strength int
}

// Confirmed reports whether enough digits were typed to be sure of the
// match.
func (c Candidate) Confirmed() bool {
	return c.Strength > 0
}

// Matcher matches digit strings against an issuer catalog.
type Matcher struct {
	descriptors []*issuers.Descriptor
}

// NewMatcher returns a matcher over the given catalog. A nil catalog uses
// the shipped default.
func NewMatcher(catalog *issuers.Catalog) *Matcher {
	if catalog == nil {
		catalog = issuers.Default()
	}
	return &Matcher{descriptors: catalog.All()}
}

// Candidates returns every issuer whose rules are prefix-compatible with
// digits, in catalog order. The first matching rule per issuer decides that
// issuer's strength. Empty input matches every issuer (nothing has been
// ruled out yet); input with a non-digit character matches none.
func (m *Matcher) Candidates(digits string) []Candidate {
	if !digitsOnly(digits) {
		return nil
	}

	var out []Candidate
	for _, d := range m.descriptors {
		for _, p := range d.Patterns {
			if !p.Matches(digits) {
				continue
			}
			c := Candidate{Descriptor: d}
			if len(digits) >= p.Width() {
				c.Strength = p.Width()
			}
			out = append(out, c)
			break
		}
	}
	return out
}

// BestMatch resolves a single issuer, or nil while the input is ambiguous.
// Resolution requires every candidate to be confirmed; the most specific
// rule (largest strength) then wins. Nil is returned both for empty input
// (all issuers still plausible) and for input matching no issuer; callers
// that need to tell those apart inspect Candidates.
func (m *Matcher) BestMatch(digits string) *issuers.Descriptor {
	return bestOf(m.Candidates(digits))
}

func bestOf(candidates []Candidate) *issuers.Descriptor {
	if len(candidates) == 0 {
		return nil
	}
	best := candidates[0]
	for _, c := range candidates {
		if !c.Confirmed() {
			return nil
		}
		if c.Strength > best.Strength {
			best = c
		}
	}
	return best.Descriptor
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
