package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFixedValidator pins the clock to 2024-06-01.
func newFixedValidator() *Validator {
	v := NewValidator()
	v.Now = func() time.Time {
		return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
	return v
}

func TestMonth(t *testing.T) {
	v := newFixedValidator()

	testCases := []struct {
		name           string
		value          string
		valid          bool
		potential      bool
		forCurrentYear bool
	}{
		{"Empty", "", false, true, false},
		{"Whitespace", "  ", false, true, false},
		{"LoneZero", "0", false, true, false},
		{"DoubleZero", "00", false, false, false},
		{"NonDigit", "ju", false, false, false},
		{"January", "1", true, true, false},
		{"MayElapsedThisYear", "5", true, true, false},
		{"JuneIsCurrent", "6", true, true, true},
		{"December", "12", true, true, true},
		{"ZeroPadded", "06", true, true, true},
		{"Thirteen", "13", false, false, false},
		{"Huge", "99999999999999999999", false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := v.Month(tc.value)
			assert.Equal(t, tc.valid, got.Valid)
			assert.Equal(t, tc.potential, got.PotentiallyValid)
			assert.Equal(t, tc.forCurrentYear, got.ValidForCurrentYear)
		})
	}
}

func TestYear(t *testing.T) {
	v := newFixedValidator()

	testCases := []struct {
		name      string
		value     string
		valid     bool
		potential bool
		current   bool
	}{
		{"Empty", "", false, true, false},
		{"OneDigit", "2", false, true, false},
		{"NonDigit", "2a", false, false, false},
		{"TwoDigitCurrent", "24", true, true, true},
		{"TwoDigitFuture", "30", true, true, false},
		{"TwoDigitAtBound", "43", true, true, false},
		{"TwoDigitPastBound", "44", false, false, false},
		{"TwoDigitElapsed", "23", false, false, false},
		{"ThreeDigitCenturyPrefix", "202", false, true, false},
		{"ThreeDigitWrongPrefix", "212", false, false, false},
		{"FourDigitCurrent", "2024", true, true, true},
		{"FourDigitFuture", "2043", true, true, false},
		{"FourDigitPastBound", "2044", false, false, false},
		{"FourDigitElapsed", "2023", false, false, false},
		{"FiveDigits", "20245", false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := v.Year(tc.value)
			assert.Equal(t, tc.valid, got.Valid)
			assert.Equal(t, tc.potential, got.PotentiallyValid)
			assert.Equal(t, tc.current, got.CurrentYear)
		})
	}
}

func TestYearWithinCustomBound(t *testing.T) {
	v := newFixedValidator()
	assert.True(t, v.YearWithin("26", 2).Valid)
	assert.False(t, v.YearWithin("27", 2).Valid)
}

func TestThreeDigitYearIsNeverValid(t *testing.T) {
	v := newFixedValidator()
	for d := byte('0'); d <= '9'; d++ {
		got := v.Year("20" + string(d))
		assert.False(t, got.Valid)
		assert.True(t, got.PotentiallyValid, "20%c extends the current century", d)
	}
}

func TestParse(t *testing.T) {
	v := newFixedValidator()

	testCases := []struct {
		name  string
		raw   string
		month string
		year  string
	}{
		{"ISOFull", "2025-12", "12", "2025"},
		{"ISOSingleMonth", "2025-3", "3", "2025"},
		{"Slash", "12/25", "12", "25"},
		{"SlashWithSpaces", "12 / 25", "12", "25"},
		{"SlashFourDigitYear", "04/2026", "04", "2026"},
		{"SlashMissingYear", "1/", "1", ""},
		{"Whitespace", "12 25", "12", "25"},
		{"WhitespaceRuns", "12   25", "12", "25"},
		{"ZeroLeadsTwoDigitMonth", "0324", "03", "24"},
		{"HighDigitLeadsOneDigitMonth", "925", "9", "25"},
		{"ThirteenSplitsAfterOne", "1325", "1", "325"},
		{"OneTwentyFive", "125", "1", "25"},
		{"TenTwentyFive", "1025", "10", "25"},
		{"TwelveTwentyFive", "1225", "12", "25"},
		{"LoneOne", "1", "1", ""},
		{"Empty", "", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := v.Parse(tc.raw)
			assert.Equal(t, Parts{Month: tc.month, Year: tc.year}, got)
		})
	}
}

func TestDate(t *testing.T) {
	v := newFixedValidator()

	testCases := []struct {
		name      string
		raw       string
		valid     bool
		potential bool
	}{
		{"FutureYear", "12/25", true, true},
		{"ElapsedMonthThisYear", "04/24", false, false},
		{"CurrentMonthThisYear", "06/24", true, true},
		{"LaterMonthThisYear", "11/24", true, true},
		{"ISOFuture", "2026-04", true, true},
		{"ISOElapsedMonthThisYear", "2024-05", false, false},
		{"BareDigitsFuture", "1225", true, true},
		{"BareDigitsOneDigitMonth", "130", true, true},
		{"MonthOnly", "12", false, true},
		{"PartialYear", "12/2", false, true},
		{"Empty", "", false, true},
		{"InvalidMonth", "13/25", false, false},
		{"ElapsedYear", "12/20", false, false},
		{"Garbage", "garbage", false, false},
		{"SlashOnly", "/", false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := v.Date(tc.raw)
			assert.Equal(t, tc.valid, got.Valid, "valid")
			assert.Equal(t, tc.potential, got.PotentiallyValid, "potentially valid")
		})
	}
}

func TestDateParts(t *testing.T) {
	v := newFixedValidator()

	t.Run("Strings", func(t *testing.T) {
		verdict, err := v.DateParts("12", "25")
		require.NoError(t, err)
		assert.True(t, verdict.Valid)
	})

	t.Run("Ints", func(t *testing.T) {
		verdict, err := v.DateParts(12, 2025)
		require.NoError(t, err)
		assert.True(t, verdict.Valid)
	})

	t.Run("ElapsedMonthThisYear", func(t *testing.T) {
		verdict, err := v.DateParts(4, 24)
		require.NoError(t, err)
		assert.False(t, verdict.Valid)
		assert.False(t, verdict.PotentiallyValid)
	})

	t.Run("UnsupportedTypeIsACallerBug", func(t *testing.T) {
		_, err := v.DateParts(12.5, "25")
		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "month", inputErr.Field)

		_, err = v.DateParts("12", nil)
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "year", inputErr.Field)
	})
}

func TestValidatorIsTotal(t *testing.T) {
	v := newFixedValidator()
	inputs := []string{
		"", " ", "//", "////", "\x00", "12/\x0025",
		"999999999999999999999999", "1 2 3 4 5", "-5/-5", "2024-",
	}
	for _, raw := range inputs {
		assert.NotPanics(t, func() { v.Date(raw) }, "raw %q", raw)
	}
}
