// Package cvv validates card security codes against one or more acceptable
// digit counts.
package cvv

import (
	"github.com/allen13/tegridy-cards/pkg/validity"
)

// DefaultSize is the security-code length assumed while no issuer has been
// resolved, matching the fallback descriptor.
const DefaultSize = 3

// Verify validates a raw security code against the acceptable sizes for
// the issuer at hand. With no sizes given, DefaultSize applies. Any
// non-digit character rejects the value; fewer digits than the smallest
// acceptable size is a typing state, more than the largest is terminal.
func Verify(raw string, sizes ...int) validity.Verdict {
	if len(sizes) == 0 {
		sizes = []int{DefaultSize}
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return validity.Rejected()
		}
	}

	min, max := sizes[0], sizes[0]
	for _, s := range sizes {
		if s == len(raw) {
			return validity.Complete()
		}
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	if len(raw) < min {
		return validity.Partial()
	}
	if len(raw) > max {
		return validity.Rejected()
	}
	// Between the smallest and largest acceptable size without hitting one
	// exactly; only reachable when sizes has gaps.
	return validity.Complete()
}
