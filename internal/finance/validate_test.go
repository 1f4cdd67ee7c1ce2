package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsDomain(t *testing.T) {
	for _, p := range []float64{0.01, 0.02, 0.4, 0.5, 0.98, 0.99} {
		for _, inv := range []float64{0.01, 1, 100, 1e9} {
			for _, fee := range []float64{0, 0.5, 1.99, 2} {
				require.Empty(t, Validate(p, inv, fee), "p=%v inv=%v fee=%v", p, inv, fee)
			}
		}
	}
}

func TestValidatePriceOutOfRange(t *testing.T) {
	for _, p := range []float64{0, 1, 1.5, -0.2, 0.0099, 0.991} {
		errs := Validate(p, 100, 0.5)
		require.Equal(t, []string{msgPrice}, errs, "p=%v", p)
	}
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	testCases := []struct {
		name       string
		price      float64
		investment float64
		fee        float64
		want       []string
	}{
		{name: "OK", price: 0.4, investment: 100, fee: 0.5},
		{name: "ZERO_INVESTMENT", price: 0.4, investment: 0, fee: 0.5, want: []string{msgInvestment}},
		{name: "NEGATIVE_FEE", price: 0.4, investment: 100, fee: -0.1, want: []string{msgFee}},
		{name: "FEE_TOO_HIGH", price: 0.4, investment: 100, fee: 2.01, want: []string{msgFee}},
		{name: "ALL_BAD", price: 2, investment: -5, fee: 3, want: []string{msgPrice, msgInvestment, msgFee}},
		{name: "ALL_NAN", price: math.NaN(), investment: math.NaN(), fee: math.NaN(), want: []string{msgPrice, msgInvestment, msgFee}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Validate(tc.price, tc.investment, tc.fee))
		})
	}
}

func TestParseInput(t *testing.T) {
	in := ParseInput(" 0.40 ", "1,000", "0.5%", "inr")
	require.Equal(t, 0.4, in.Price)
	require.Equal(t, 1000.0, in.Investment)
	require.Equal(t, 0.5, in.FeePercent)
	require.Equal(t, INR, in.Currency)

	bad := ParseInput("abc", "", "1e999", "EUR")
	require.True(t, math.IsNaN(bad.Price))
	require.True(t, math.IsNaN(bad.Investment))
	require.True(t, math.IsNaN(bad.FeePercent))
	require.Equal(t, USD, bad.Currency)
	require.Len(t, Validate(bad.Price, bad.Investment, bad.FeePercent), 3)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Problems: []string{msgPrice, msgFee}}
	require.Equal(t, msgPrice+" "+msgFee, err.Error())
}
