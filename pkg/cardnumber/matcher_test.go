package cardnumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allen13/tegridy-cards/pkg/issuers"
)

func TestMatcherCandidates(t *testing.T) {
	m := NewMatcher(nil)

	t.Run("EmptyInputMatchesEveryIssuer", func(t *testing.T) {
		candidates := m.Candidates("")
		assert.Len(t, candidates, issuers.Default().Len())
		for _, c := range candidates {
			assert.False(t, c.Confirmed())
		}
	})

	t.Run("NonDigitInputMatchesNothing", func(t *testing.T) {
		assert.Empty(t, m.Candidates("4111a"))
		assert.Empty(t, m.Candidates("4111 1111"))
		assert.Empty(t, m.Candidates("41\x0011"))
	})

	t.Run("UnknownPrefixMatchesNothing", func(t *testing.T) {
		assert.Empty(t, m.Candidates("9999"))
	})

	t.Run("SingleDigitVisaIsConfirmed", func(t *testing.T) {
		candidates := m.Candidates("4")
		require.Len(t, candidates, 1)
		assert.Equal(t, issuers.Visa, candidates[0].Descriptor.ID)
		assert.Equal(t, 1, candidates[0].Strength)
	})

	t.Run("LeadingSixStaysAmbiguous", func(t *testing.T) {
		candidates := m.Candidates("6")
		ids := make(map[string]bool)
		for _, c := range candidates {
			ids[c.Descriptor.ID] = true
			// Even maestro is unconfirmed here: its "63" rule matches
			// first and is two digits wide.
			assert.False(t, c.Confirmed(), "issuer %s", c.Descriptor.ID)
		}
		assert.True(t, ids[issuers.Discover])
		assert.True(t, ids[issuers.Maestro])
		assert.True(t, ids[issuers.UnionPay])
	})

	t.Run("DiscoverOutranksMaestroOnStrength", func(t *testing.T) {
		candidates := m.Candidates("6011")
		strengths := make(map[string]int)
		for _, c := range candidates {
			strengths[c.Descriptor.ID] = c.Strength
		}
		assert.Equal(t, 4, strengths[issuers.Discover])
		assert.Equal(t, 1, strengths[issuers.Maestro])
	})

	t.Run("FirstRulePerIssuerWins", func(t *testing.T) {
		// 2131 is an exact JCB rule; nothing else in the catalog admits it.
		candidates := m.Candidates("2131")
		require.Len(t, candidates, 1)
		assert.Equal(t, issuers.JCB, candidates[0].Descriptor.ID)
		assert.Equal(t, 4, candidates[0].Strength)
	})
}

func TestMatcherBestMatch(t *testing.T) {
	m := NewMatcher(nil)

	testCases := []struct {
		name   string
		digits string
		want   string // "" means unresolved
	}{
		{"EmptyInputIsUnresolved", "", ""},
		{"VisaResolvesAtOneDigit", "4", issuers.Visa},
		{"FullVisaNumber", "4111111111111111", issuers.Visa},
		{"FortyNineIsVisaNotUnionPay", "49", issuers.Visa},
		{"MastercardLegacyRange", "51", issuers.Mastercard},
		{"MastercardNewRange", "2221", issuers.Mastercard},
		{"TwoTwoIsMastercardOrMir", "22", ""},
		{"MirRange", "2200", issuers.Mir},
		{"Amex", "34", issuers.AmericanExpress},
		{"ThreeAloneIsAmbiguous", "3", ""},
		{"DiscoverBeatsBareMaestro", "6011", issuers.Discover},
		{"HipercardBeatsBareMaestro", "606282", issuers.Hipercard},
		{"UnionPay", "620", issuers.UnionPay},
		{"SixTwoStillAmbiguous", "62", ""},
		{"MaestroFiftySix", "56", issuers.Maestro},
		{"NoIssuer", "9999", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := m.BestMatch(tc.digits)
			if tc.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got.ID)
		})
	}
}

func TestMatcherDistinguishesNoMatchFromEmpty(t *testing.T) {
	m := NewMatcher(nil)
	// Both return a nil best match; the candidate list tells them apart.
	assert.Nil(t, m.BestMatch(""))
	assert.NotEmpty(t, m.Candidates(""))
	assert.Nil(t, m.BestMatch("9999"))
	assert.Empty(t, m.Candidates("9999"))
}
