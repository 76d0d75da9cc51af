package expiry

import (
	"regexp"
	"strings"
)

var isoLike = regexp.MustCompile(`^\d{4}-\d{1,2}$`)

// Parse splits raw expiry input into month and year. Four shapes are
// tolerated, in priority order: ISO-like "YYYY-M[M]", a "/" separator, a
// whitespace separator, and a bare digit run split by a month-width
// heuristic. Parse never fails; nonsense input yields parts that fail
// validation instead.
func (v *Validator) Parse(raw string) Parts {
	switch {
	case isoLike.MatchString(raw):
		year, month, _ := strings.Cut(raw, "-")
		return Parts{Month: month, Year: year}

	case strings.Contains(raw, "/"):
		month, year, _ := strings.Cut(raw, "/")
		return Parts{Month: strings.TrimSpace(month), Year: strings.TrimSpace(year)}

	case strings.ContainsAny(raw, " \t\n\r"):
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			return Parts{}
		}
		// More than two fields stays unsplittable garbage; the kept space
		// makes the year fail validation rather than silently merging.
		return Parts{Month: fields[0], Year: strings.Join(fields[1:], " ")}

	default:
		n := v.monthWidth(raw)
		if n > len(raw) {
			n = len(raw)
		}
		return Parts{Month: raw[:n], Year: raw[n:]}
	}
}

// monthWidth decides whether the leading month portion of a bare digit run
// is one or two digits wide.
func (v *Validator) monthWidth(raw string) int {
	if raw == "" {
		return 1
	}
	first := raw[0]
	switch {
	case first == '0':
		return 2
	case first >= '2' && first <= '9':
		return 1
	case first == '1':
		if len(raw) > 1 && raw[1] >= '3' && raw[1] <= '9' {
			// "13".."19" can only be month 1 followed by a year digit.
			return 1
		}
		// Assume a one-digit month and see whether the remainder could be
		// a year; if not, the month must be "10", "11" or "12".
		if v.Year(raw[1:]).PotentiallyValid {
			return 1
		}
		return 2
	}

	// Non-digit lead: fall back on total-width heuristics and let
	// validation reject the parts.
	if len(raw) == 5 {
		return 1
	}
	if len(raw) > 5 {
		return 2
	}
	return 1
}
