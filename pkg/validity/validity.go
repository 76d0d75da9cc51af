// Package validity defines the three-state verdict shared by the card
// number, expiry and security-code validators, and its mapping onto the
// per-field status shown by an embedding form.
package validity

// Verdict is the result of validating a single in-progress input value.
//
// Valid means the value is complete and correct. PotentiallyValid means the
// value is a prefix of something that could still become valid, so a form
// should not flash an error while the user is typing. Neither flag set means
// the value is definitively wrong given its current content (non-digit
// characters, too long, failed checksum).
//
// Valid implies PotentiallyValid; constructors in this module maintain that
// invariant.
type Verdict struct {
	Valid            bool
	PotentiallyValid bool
}

// Complete is the verdict for a finished, correct value.
func Complete() Verdict {
	return Verdict{Valid: true, PotentiallyValid: true}
}

// Partial is the verdict for a plausible but unfinished value.
func Partial() Verdict {
	return Verdict{Valid: false, PotentiallyValid: true}
}

// Rejected is the verdict for a definitively wrong value.
func Rejected() Verdict {
	return Verdict{}
}

// Status is the per-field state an embedding form renders.
type Status string

const (
	// StatusIncomplete means the field could still become valid; show no error.
	StatusIncomplete Status = "incomplete"
	// StatusValid means the field is satisfied.
	StatusValid Status = "valid"
	// StatusInvalid means the field is definitively wrong; show an error.
	StatusInvalid Status = "invalid"
)

// StatusOf derives the field status from a verdict.
func StatusOf(v Verdict) Status {
	switch {
	case v.Valid:
		return StatusValid
	case v.PotentiallyValid:
		return StatusIncomplete
	default:
		return StatusInvalid
	}
}
