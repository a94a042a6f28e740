package models

var OtherInvestmentColumns = []string{"Investment", "Amount", "StartDate", "EndDate", "ExpectedReturn"}

// OtherInvestment covers fixed deposits, bonds and similar instruments valued
// from an expected annual return instead of a market price.
type OtherInvestment struct {
	Investment     string  `json:"Investment"`
	Amount         float64 `json:"Amount"`
	StartDate      string  `json:"StartDate"`
	EndDate        string  `json:"EndDate"`
	ExpectedReturn float64 `json:"ExpectedReturn"`
}

func (o OtherInvestment) Key() string { return "" }

func (o OtherInvestment) Record() []string {
	return []string{o.Investment, num(o.Amount), o.StartDate, o.EndDate, num(o.ExpectedReturn)}
}

func DecodeOtherInvestment(r Row) (OtherInvestment, error) {
	o := OtherInvestment{
		Investment: r.String("Investment"),
		StartDate:  r.String("StartDate"),
		EndDate:    r.String("EndDate"),
	}
	err := r.floats(map[string]*float64{
		"Amount":         &o.Amount,
		"ExpectedReturn": &o.ExpectedReturn,
	})
	return o, err
}
