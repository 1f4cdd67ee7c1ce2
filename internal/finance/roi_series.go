package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	seriesHalfWindow = 0.15
	seriesStep       = 0.01
	seriesTolerance  = 1e-9

	minPriceCents = 1
	maxPriceCents = 99
)

// BuildROISeries samples ROI at settlement for entry prices within ±0.15 of price,
// clipped to [0.01, 0.99] with a 0.01 step.
func BuildROISeries(price, investment, fee float64) ChartSeries {
	lo := math.Max(MinPrice, price-seriesHalfWindow)
	hi := math.Min(MaxPrice, price+seriesHalfWindow)

	// whole cents counted from lo, rounded once
	steps := int(math.Floor((hi-lo)/seriesStep + seriesTolerance))
	loCents := decimal.NewFromFloat(lo).Shift(2).Round(0).IntPart()

	var out ChartSeries
	for k := 0; k <= steps; k++ {
		c := loCents + int64(k)
		if c < minPriceCents || c > maxPriceCents {
			continue
		}
		q := float64(c) / 100
		out = append(out, SeriesPoint{Price: q, ROI: roiAt(q, investment, fee)})
	}
	return out
}

// ROIRange returns the smallest and largest ROI of the series.
func (s ChartSeries) ROIRange() (lo, hi float64) {
	if len(s) == 0 {
		return 0, 0
	}
	lo, hi = s[0].ROI, s[0].ROI
	for _, p := range s[1:] {
		if p.ROI < lo {
			lo = p.ROI
		}
		if p.ROI > hi {
			hi = p.ROI
		}
	}
	return lo, hi
}

// MarkerIndex finds the point priced at price rounded to cents. When none
// matches it falls back to the middle of the series.
func (s ChartSeries) MarkerIndex(price float64) int {
	target := round2(price)
	for i, p := range s {
		if p.Price == target {
			return i
		}
	}
	return len(s) / 2
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
