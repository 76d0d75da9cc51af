package cvv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allen13/tegridy-cards/pkg/validity"
)

func TestVerify(t *testing.T) {
	testCases := []struct {
		name  string
		raw   string
		sizes []int
		want  validity.Verdict
	}{
		{"Empty", "", nil, validity.Partial()},
		{"OneDigit", "1", nil, validity.Partial()},
		{"TwoDigits", "12", []int{3}, validity.Partial()},
		{"ExactThree", "123", []int{3}, validity.Complete()},
		{"FourAgainstThree", "1234", []int{3}, validity.Rejected()},
		{"AmexFourDigit", "1234", []int{4}, validity.Complete()},
		{"ThreeAgainstFour", "123", []int{4}, validity.Partial()},
		{"EitherSize", "123", []int{3, 4}, validity.Complete()},
		{"EitherSizeLonger", "1234", []int{3, 4}, validity.Complete()},
		{"BetweenGappedSizes", "1234", []int{3, 5}, validity.Complete()},
		{"AboveAllSizes", "123456", []int{3, 4}, validity.Rejected()},
		{"NonDigit", "12a", nil, validity.Rejected()},
		{"NulByte", "1\x003", nil, validity.Rejected()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Verify(tc.raw, tc.sizes...))
		})
	}
}
