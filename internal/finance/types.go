package finance

import (
	"strings"
	"time"
)

// Currency is the display currency of the calculator form.
type Currency string

const (
	USD Currency = "USD"
	INR Currency = "INR"
)

// ParseCurrency maps selector text to a Currency; anything that is not INR is USD.
func ParseCurrency(s string) Currency {
	if strings.EqualFold(strings.TrimSpace(s), string(INR)) {
		return INR
	}
	return USD
}

// Symbol returns the display symbol of the currency.
func (c Currency) Symbol() string {
	if c == INR {
		return "₹"
	}
	return "$"
}

// CalculatorInput is the form state read for one calculation. Investment is in
// display currency; Price and FeePercent are unit-less.
type CalculatorInput struct {
	Price      float64
	Investment float64
	FeePercent float64 // 0.5 means 0.5%
	Currency   Currency
}

// ComputationResult holds the payoff of one position, in internal units.
type ComputationResult struct {
	Shares             float64
	CostTotal          float64 // investment plus entry fee
	MaxPayoutIfCorrect float64
	ProfitIfCorrect    float64
	LossIfIncorrect    float64
	BreakevenNoFees    float64 // probability, 0..1
	BreakevenWithFees  float64 // probability, capped at 1
}

// SeriesPoint is one sample of ROI at settlement for a given entry price.
type SeriesPoint struct {
	Price float64
	ROI   float64
}

// ChartSeries is ordered by ascending price.
type ChartSeries []SeriesPoint

// Chart image cache entry
type chartCacheEntry struct {
	createdAt time.Time
	image     []byte
}

const defaultChartCacheTTL = 60 * time.Second
