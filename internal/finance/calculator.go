package finance

// Calculation is the complete output of one calculate action.
type Calculation struct {
	Input  CalculatorInput
	Result ComputationResult
	Table  ResultTable
	Series ChartSeries
	Chart  Chart
}

// Calculate validates the input and, when it is valid, produces the result table
// and chart. Invalid input yields a *ValidationError and nothing else.
func Calculate(in CalculatorInput) (Calculation, error) {
	if errs := Validate(in.Price, in.Investment, in.FeePercent); len(errs) > 0 {
		return Calculation{}, &ValidationError{Problems: errs}
	}

	investment := ToInternal(in.Investment, in.Currency)
	fee := in.FeePercent / 100

	res := ComputePayoff(in.Price, investment, fee)
	series := BuildROISeries(in.Price, investment, fee)
	return Calculation{
		Input:  in,
		Result: res,
		Table:  BuildResultTable(in, res),
		Series: series,
		Chart:  BuildChart(series, in.Price),
	}, nil
}

// Default form values restored by Reset.
const (
	DefaultPrice      = "0.40"
	DefaultInvestment = "100"
	DefaultFeePercent = "0.5"
	DefaultCurrency   = USD
)

// Form is the calculator's input surface: raw field text plus the last output.
// It is owned by a single UI session.
type Form struct {
	Price      string
	Investment string
	FeePercent string
	Currency   Currency

	Last *Calculation
}

func NewForm() *Form {
	f := &Form{}
	f.Reset()
	return f
}

// Reset restores the default inputs and clears the displayed output.
func (f *Form) Reset() {
	f.Price = DefaultPrice
	f.Investment = DefaultInvestment
	f.FeePercent = DefaultFeePercent
	f.Currency = DefaultCurrency
	f.Last = nil
}

// Input parses the current field text.
func (f *Form) Input() CalculatorInput {
	return ParseInput(f.Price, f.Investment, f.FeePercent, string(f.Currency))
}

// Calculate runs the calculator on the current fields. A failed calculation
// clears the previous output.
func (f *Form) Calculate() (Calculation, error) {
	calc, err := Calculate(f.Input())
	if err != nil {
		f.Last = nil
		return Calculation{}, err
	}
	f.Last = &calc
	return calc, nil
}
