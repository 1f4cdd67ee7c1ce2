package finance

// FXRate is the fixed INR per USD rate used for display conversion.
const FXRate = 83.0

// ToInternal converts an amount entered in display currency to internal (USD) units.
func ToInternal(amount float64, c Currency) float64 {
	if c == INR {
		return amount / FXRate
	}
	return amount
}

// ToDisplay converts an internal amount to the display currency.
func ToDisplay(amount float64, c Currency) float64 {
	if c == INR {
		return amount * FXRate
	}
	return amount
}
