package schemas

import "wallet/src/models"

// PriceSource tells where the price of an enriched row came from.
type PriceSource string

const (
	PriceLive     PriceSource = "live"
	PriceFallback PriceSource = "fallback"
	PriceMissing  PriceSource = "missing"
)

// StockRow is a stored stock with its derived valuation columns.
type StockRow struct {
	models.Stock
	CurrentPrice    float64     `json:"CurrentPrice"`
	PriceSource     PriceSource `json:"PriceSource"`
	TotalInvestment float64     `json:"TotalInvestment"`
	CurrentValue    float64     `json:"CurrentValue"`
	ProfitLoss      float64     `json:"ProfitLoss"`
	ReturnsPct      float64     `json:"ReturnsPct"`
}

type MutualFundRow struct {
	models.MutualFund
	CurrentNAV      float64     `json:"CurrentNAV"`
	PriceSource     PriceSource `json:"PriceSource"`
	TotalInvestment float64     `json:"TotalInvestment"`
	CurrentValue    float64     `json:"CurrentValue"`
	ProfitLoss      float64     `json:"ProfitLoss"`
	ReturnsPct      float64     `json:"ReturnsPct"`
}

// HoldingsSummary is shared by stocks and mutual funds. TotalReturns is
// computed from the sums, not averaged per row.
type HoldingsSummary struct {
	TotalInvestment     float64 `json:"total_investment"`
	CurrentValue        float64 `json:"current_value"`
	TotalReturns        float64 `json:"total_returns"`
	Count               int     `json:"count"`
	Profitable          int     `json:"profitable"`
	PercentInPerforming float64 `json:"percent_in_performing"`
}

// FallbackNotice reports an identifier whose live price could not be fetched.
type FallbackNotice struct {
	ID     string  `json:"id"`
	Value  float64 `json:"value"`
	Source string  `json:"source"`
	Reason string  `json:"reason"`
}

type StocksResponse struct {
	Holdings  []StockRow       `json:"holdings"`
	Summary   HoldingsSummary  `json:"summary"`
	Fallbacks []FallbackNotice `json:"fallbacks"`
	Message   string           `json:"message,omitempty"`
}

type MutualFundsResponse struct {
	Holdings  []MutualFundRow  `json:"holdings"`
	Summary   HoldingsSummary  `json:"summary"`
	Fallbacks []FallbackNotice `json:"fallbacks"`
	Message   string           `json:"message,omitempty"`
}

type AddStockRequest struct {
	Stock        string   `json:"Stock"`
	SharesOwned  *float64 `json:"SharesOwned"`
	AveragePrice *float64 `json:"AveragePrice"`
	NSESymbol    string   `json:"NSE_Symbol"`
}

type AddMutualFundRequest struct {
	Scheme     string   `json:"Scheme"`
	UnitsOwned *float64 `json:"UnitsOwned"`
	AverageNAV *float64 `json:"AverageNAV"`
	SchemeCode string   `json:"SchemeCode"`
}

// NameLookupResponse answers the autofill endpoints.
type NameLookupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
