package models

var StockColumns = []string{"Stock", "SharesOwned", "AveragePrice", "NSE_Symbol"}

// Stock is one equity holding as stored in myPortfolio.csv.
type Stock struct {
	Stock        string  `json:"Stock"`
	SharesOwned  float64 `json:"SharesOwned"`
	AveragePrice float64 `json:"AveragePrice"`
	NSESymbol    string  `json:"NSE_Symbol"`
}

func (s Stock) Key() string { return s.NSESymbol }

func (s Stock) Record() []string {
	return []string{s.Stock, num(s.SharesOwned), num(s.AveragePrice), s.NSESymbol}
}

func DecodeStock(r Row) (Stock, error) {
	s := Stock{Stock: r.String("Stock"), NSESymbol: r.String("NSE_Symbol")}
	err := r.floats(map[string]*float64{
		"SharesOwned":  &s.SharesOwned,
		"AveragePrice": &s.AveragePrice,
	})
	return s, err
}
