// Package issuers holds the static catalog of card-issuer recognition rules:
// BIN patterns, display grouping gaps, acceptable number lengths and
// security-code sizes. The catalog is built once and never mutated, so it is
// safe to share across goroutines without synchronization.
package issuers

// Pattern is a single BIN match rule: either an exact numeric prefix or an
// inclusive numeric range whose bounds have equal digit width.
type Pattern struct {
	// Prefix is the exact-prefix form. Empty when the rule is a range.
	Prefix string
	// Low and High are the inclusive range bounds. Empty when the rule is
	// an exact prefix.
	Low, High string
}

// Exact returns an exact-prefix rule.
func Exact(prefix string) Pattern {
	return Pattern{Prefix: prefix}
}

// Range returns an inclusive range rule. Both bounds must have the same
// digit width.
func Range(low, high string) Pattern {
	return Pattern{Low: low, High: high}
}

// IsRange reports whether the rule is a range rule.
func (p Pattern) IsRange() bool {
	return p.Prefix == ""
}

// Width is the digit width of the rule, which doubles as its match strength
// once enough digits have been typed to confirm it.
func (p Pattern) Width() int {
	if p.IsRange() {
		return len(p.Low)
	}
	return len(p.Prefix)
}

// Matches reports whether digits is prefix-compatible with the rule. Short,
// still-typing inputs match long rules: an exact-prefix rule matches when
// either string is a prefix of the other, and a range rule compares the
// digits prefix against bounds truncated to the shorter width.
func (p Pattern) Matches(digits string) bool {
	if !p.IsRange() {
		n := len(digits)
		if len(p.Prefix) < n {
			n = len(p.Prefix)
		}
		return p.Prefix[:n] == digits[:n]
	}

	n := p.Width()
	if len(digits) < n {
		n = len(digits)
	}
	sub := digits[:n]
	// Equal-width digit strings order the same way numerically and
	// lexicographically, so no integer conversion is needed.
	return p.Low[:n] <= sub && sub <= p.High[:n]
}

// Code describes an issuer's security code: its display name (CVV, CVC,
// CID, ...) and the set of acceptable digit counts.
type Code struct {
	Name  string
	Sizes []int
}

// Descriptor is the immutable recognition record for one issuer.
type Descriptor struct {
	// ID is the stable issuer tag, e.g. "visa".
	ID string
	// Name is the human-readable issuer name.
	Name string
	// Patterns are the BIN rules, tested in declaration order; the first
	// rule that matches wins for this issuer.
	Patterns []Pattern
	// Gaps are the emitted-character offsets at which a space is inserted
	// when formatting, strictly increasing.
	Gaps []int
	// Lengths is the non-empty set of acceptable total digit counts.
	Lengths []int
	// Code is the issuer's security-code rule.
	Code Code
}

// MaxLength is the largest acceptable digit count for the issuer.
func (d *Descriptor) MaxLength() int {
	max := 0
	for _, l := range d.Lengths {
		if l > max {
			max = l
		}
	}
	return max
}

// ValidLength reports whether n is one of the issuer's acceptable digit
// counts.
func (d *Descriptor) ValidLength(n int) bool {
	for _, l := range d.Lengths {
		if n == l {
			return true
		}
	}
	return false
}
