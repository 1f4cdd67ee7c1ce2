package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputePayoff(t *testing.T) {
	t.Run("DEFAULTS", func(t *testing.T) {
		r := ComputePayoff(0.40, 100, 0.005)
		require.InDelta(t, 250.0, r.Shares, 1e-9)
		require.InDelta(t, 100.50, r.CostTotal, 1e-9)
		require.InDelta(t, 248.75, r.MaxPayoutIfCorrect, 1e-9)
		require.InDelta(t, 148.25, r.ProfitIfCorrect, 1e-9)
		require.InDelta(t, -100.50, r.LossIfIncorrect, 1e-9)
		require.Equal(t, 0.40, r.BreakevenNoFees)
		require.InDelta(t, 100.50/(250*0.995), r.BreakevenWithFees, 1e-12)
		require.Equal(t, "40.40%", FormatPercent(r.BreakevenWithFees))
	})

	t.Run("HIGH_PRICE_NO_FEE", func(t *testing.T) {
		r := ComputePayoff(0.99, 50, 0)
		require.InDelta(t, 50.50505050, r.Shares, 1e-6)
		require.InDelta(t, 50.50505050, r.MaxPayoutIfCorrect, 1e-6)
		require.InDelta(t, 0.50505050, r.ProfitIfCorrect, 1e-6)
		require.InDelta(t, 0.99, r.BreakevenWithFees, 1e-12)
		require.Equal(t, "99.00%", FormatPercent(r.BreakevenWithFees))
	})

	t.Run("UNREACHABLE_BREAKEVEN_IS_CAPPED", func(t *testing.T) {
		r := ComputePayoff(0.99, 50, 0.02)
		// 0.99 * 1.02 / 0.98 > 1
		require.Equal(t, 1.0, r.BreakevenWithFees)
		require.Less(t, r.ProfitIfCorrect, 0.0)
		require.InDelta(t, -51.0, r.LossIfIncorrect, 1e-9)
	})

	t.Run("FINITE_ACROSS_DOMAIN", func(t *testing.T) {
		for _, p := range []float64{0.01, 0.33, 0.99} {
			for _, f := range []float64{0, 0.01, 0.02} {
				r := ComputePayoff(p, 10, f)
				for _, v := range []float64{r.Shares, r.MaxPayoutIfCorrect, r.ProfitIfCorrect, r.LossIfIncorrect, r.BreakevenWithFees} {
					require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
				}
				require.LessOrEqual(t, r.BreakevenWithFees, 1.0)
			}
		}
	})
}

func TestCurrencyRoundTrip(t *testing.T) {
	for _, x := range []float64{1, 0.01, 83, 100, 12345.678, 1e12, -42.5, 1e-9} {
		for _, c := range []Currency{USD, INR} {
			require.InEpsilon(t, x, ToDisplay(ToInternal(x, c), c), 1e-9, "x=%v c=%s", x, c)
		}
	}
	require.Equal(t, 0.0, ToDisplay(ToInternal(0, INR), INR))
	require.InDelta(t, 100.0, ToInternal(8300, INR), 1e-9)
	require.Equal(t, 8300.0, ToDisplay(100, INR))
	require.Equal(t, 100.0, ToInternal(100, USD))
}
