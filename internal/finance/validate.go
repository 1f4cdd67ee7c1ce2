package finance

import (
	"math"
	"strconv"
	"strings"
)

const (
	MinPrice      = 0.01
	MaxPrice      = 0.99
	MaxFeePercent = 2.0
)

const (
	msgPrice      = "Price must be between 0.01 and 0.99."
	msgInvestment = "Investment must be greater than 0."
	msgFee        = "Fee % must be between 0 and 2."
)

// ValidationError carries every violated input constraint of one calculation.
type ValidationError struct {
	Problems []string
}

// Error joins the problems in the order they were found.
func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, " ")
}

// Validate checks all three inputs independently and returns every violation.
// The comparisons are negated so that NaN fails each of them.
func Validate(price, investment, feePercent float64) []string {
	var errs []string
	if !(price >= MinPrice && price <= MaxPrice) {
		errs = append(errs, msgPrice)
	}
	if !(investment > 0) {
		errs = append(errs, msgInvestment)
	}
	if !(feePercent >= 0 && feePercent <= MaxFeePercent) {
		errs = append(errs, msgFee)
	}
	return errs
}

// ParseInput reads raw form fields. A field that is not a number becomes NaN so
// Validate reports it.
func ParseInput(price, investment, feePercent, currency string) CalculatorInput {
	return CalculatorInput{
		Price:      parseField(price),
		Investment: parseField(investment),
		FeePercent: parseField(feePercent),
		Currency:   ParseCurrency(currency),
	}
}

func parseField(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}
