package models

var SnapshotColumns = []string{"Date", "StocksInvested", "StocksValue", "FundsInvested", "FundsValue", "OtherValue", "SavingsBalance", "CardOutstanding", "LoanOutstanding", "NetWorth"}

// PortfolioSnapshot is one row of myPortfolioHistory.csv, written by the
// worker once per day.
type PortfolioSnapshot struct {
	Date            string  `json:"Date"`
	StocksInvested  float64 `json:"StocksInvested"`
	StocksValue     float64 `json:"StocksValue"`
	FundsInvested   float64 `json:"FundsInvested"`
	FundsValue      float64 `json:"FundsValue"`
	OtherValue      float64 `json:"OtherValue"`
	SavingsBalance  float64 `json:"SavingsBalance"`
	CardOutstanding float64 `json:"CardOutstanding"`
	LoanOutstanding float64 `json:"LoanOutstanding"`
	NetWorth        float64 `json:"NetWorth"`
}

func (p PortfolioSnapshot) Key() string { return p.Date }

func (p PortfolioSnapshot) Record() []string {
	return []string{p.Date, num(p.StocksInvested), num(p.StocksValue), num(p.FundsInvested), num(p.FundsValue), num(p.OtherValue), num(p.SavingsBalance), num(p.CardOutstanding), num(p.LoanOutstanding), num(p.NetWorth)}
}

func DecodePortfolioSnapshot(r Row) (PortfolioSnapshot, error) {
	p := PortfolioSnapshot{Date: r.String("Date")}
	err := r.floats(map[string]*float64{
		"StocksInvested":  &p.StocksInvested,
		"StocksValue":     &p.StocksValue,
		"FundsInvested":   &p.FundsInvested,
		"FundsValue":      &p.FundsValue,
		"OtherValue":      &p.OtherValue,
		"SavingsBalance":  &p.SavingsBalance,
		"CardOutstanding": &p.CardOutstanding,
		"LoanOutstanding": &p.LoanOutstanding,
		"NetWorth":        &p.NetWorth,
	})
	return p, err
}
