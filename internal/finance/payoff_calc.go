package finance

import "math"

// ComputePayoff evaluates a buy-and-hold "Yes" position held to settlement.
// price must already be validated; investment is in internal units and fee is a
// fraction (0.005 for 0.5%) charged on entry and again on the payout.
func ComputePayoff(price, investment, fee float64) ComputationResult {
	shares := investment / price
	costTotal := investment * (1 + fee)
	// settlement pays 1.0 per share
	payout := shares * 1.0 * (1 - fee)

	// required payout per share to break even; above 1 it cannot be reached
	required := costTotal / (shares * (1 - fee))

	return ComputationResult{
		Shares:             shares,
		CostTotal:          costTotal,
		MaxPayoutIfCorrect: payout,
		ProfitIfCorrect:    payout - costTotal,
		LossIfIncorrect:    -costTotal,
		BreakevenNoFees:    price,
		BreakevenWithFees:  math.Min(1, required),
	}
}

// roiAt is the return on total cost at settlement for an entry at price q.
func roiAt(q, investment, fee float64) float64 {
	shares := investment / q
	costTotal := investment * (1 + fee)
	profit := shares*(1-fee) - costTotal
	return profit / costTotal
}
