package finance

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatMoney renders v with the currency symbol, thousands grouping and two
// fraction digits, e.g. "$1,234.50". Amounts of any magnitude are grouped.
func FormatMoney(v float64, c Currency) string {
	return c.Symbol() + groupFixed2(v)
}

func groupFixed2(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return formatFixed2(v)
	}
	s := decimal.NewFromFloat(v).StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return sign + s
	}
	return sign + humanize.BigComma(n) + "." + frac
}

// FormatPercent renders a 0..1 fraction as a percentage with two decimals.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

func formatFixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Tone hints how a result value should be coloured.
type Tone string

const (
	ToneNeutral  Tone = "neutral"
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
)

type ResultRow struct {
	Label string
	Value string
	Tone  Tone
}

// ResultTable is the label/value payload shown after a successful calculation.
type ResultTable struct {
	Inputs string
	Rows   []ResultRow
	Note   string
}

// BuildResultTable formats a result for display. Monetary values are converted
// to the input currency here and nowhere else.
func BuildResultTable(in CalculatorInput, r ComputationResult) ResultTable {
	money := func(v float64) string { return FormatMoney(ToDisplay(v, in.Currency), in.Currency) }

	profitTone := TonePositive
	if r.ProfitIfCorrect < 0 {
		profitTone = ToneNegative
	}
	return ResultTable{
		Inputs: fmt.Sprintf("Price = %s, Investment = %s, Fees = %s%% (each side)",
			formatFixed2(in.Price), FormatMoney(in.Investment, in.Currency), formatFixed2(in.FeePercent)),
		Rows: []ResultRow{
			{Label: "Shares Purchased", Value: formatFixed2(r.Shares), Tone: ToneNeutral},
			{Label: "Max Payout if “Yes”", Value: money(r.MaxPayoutIfCorrect), Tone: ToneNeutral},
			{Label: "Profit if Correct (after fees)", Value: money(r.ProfitIfCorrect), Tone: profitTone},
			{Label: "Loss if Incorrect (after fees)", Value: money(r.LossIfIncorrect), Tone: ToneNegative},
			{Label: "Breakeven Probability (no fees)", Value: FormatPercent(r.BreakevenNoFees), Tone: ToneNeutral},
			{Label: "Breakeven (with fees, effective)", Value: FormatPercent(r.BreakevenWithFees), Tone: ToneNeutral},
		},
		Note: fmt.Sprintf("Assumption: fee%% charged on buy and on payout/sale. Display currency conversion uses a fixed FX of %.1f for INR; core math is in USD.", FXRate),
	}
}

// Text renders the table as plain text, one row per line.
func (t ResultTable) Text() string {
	s := "Inputs: " + t.Inputs + "\n\n"
	for _, r := range t.Rows {
		s += r.Label + ": " + r.Value + "\n"
	}
	if t.Note != "" {
		s += "\n" + t.Note
	}
	return s
}
