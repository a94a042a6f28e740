package schemas

import "wallet/src/models"

type Overview struct {
	Stocks           HoldingsSummary        `json:"stocks"`
	MutualFunds      HoldingsSummary        `json:"mutual_funds"`
	Loans            LoanSummary            `json:"loans"`
	CreditCards      CreditCardSummary      `json:"credit_cards"`
	SavingsAccounts  SavingsSummary         `json:"savings_accounts"`
	OtherInvestments OtherInvestmentSummary `json:"other_investments"`
	NetWorth         float64                `json:"net_worth"`
	Fallbacks        []FallbackNotice       `json:"fallbacks"`
}

// Share is one slice of a distribution, in percent.
type Share struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

type MarketResponse struct {
	Sectors    []Share `json:"sectors"`
	Categories []Share `json:"categories"`
}

type HistoryResponse struct {
	Snapshots []models.PortfolioSnapshot `json:"snapshots"`
}

// ImportOptions controls how extracted holdings reach the mutual fund store.
type ImportOptions struct {
	FileName string
	Replace  bool
}

type ImportedHolding struct {
	Scheme     string  `json:"Scheme"`
	UnitsOwned float64 `json:"UnitsOwned"`
}

type ImportResponse struct {
	ImportID     string            `json:"import_id"`
	Sheet        string            `json:"sheet"`
	Tier         string            `json:"tier"`
	HeaderRow    int               `json:"header_row"`
	NameColumn   int               `json:"name_column"`
	QtyColumn    int               `json:"quantity_column"`
	Replaced     bool              `json:"replaced"`
	Holdings     []ImportedHolding `json:"holdings"`
	RecordsCount int               `json:"records_count"`
}
