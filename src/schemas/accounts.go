package schemas

import "wallet/src/models"

type LoanRow struct {
	models.Loan
	AmountPaid float64 `json:"AmountPaid"`
	Progress   float64 `json:"Progress"`
	// RemainingMonths is nil when EndDate does not parse.
	RemainingMonths *int `json:"RemainingMonths"`
}

type LoanSummary struct {
	TotalPrincipal   float64 `json:"total_principal"`
	TotalOutstanding float64 `json:"total_outstanding"`
	TotalPaid        float64 `json:"total_paid"`
	TotalEMI         float64 `json:"total_emi"`
	Count            int     `json:"count"`
}

type LoansResponse struct {
	Loans   []LoanRow   `json:"loans"`
	Summary LoanSummary `json:"summary"`
	Message string      `json:"message,omitempty"`
}

type CreditCardRow struct {
	models.CreditCard
	AvailableCredit float64 `json:"AvailableCredit"`
	Utilization     float64 `json:"Utilization"`
	DaysToPayment   *int    `json:"DaysToPayment"`
}

type CreditCardSummary struct {
	TotalLimit       float64 `json:"total_limit"`
	TotalOutstanding float64 `json:"total_outstanding"`
	TotalAvailable   float64 `json:"total_available"`
	Utilization      float64 `json:"utilization"`
	Count            int     `json:"count"`
}

type CreditCardsResponse struct {
	Cards   []CreditCardRow   `json:"cards"`
	Summary CreditCardSummary `json:"summary"`
	Message string            `json:"message,omitempty"`
}

type SavingsAccountRow struct {
	models.SavingsAccount
	AnnualInterest float64 `json:"AnnualInterest"`
}

type SavingsSummary struct {
	TotalBalance  float64 `json:"total_balance"`
	TotalInterest float64 `json:"total_interest"`
	AverageRate   float64 `json:"average_rate"`
	Count         int     `json:"count"`
}

type SavingsAccountsResponse struct {
	Accounts []SavingsAccountRow `json:"accounts"`
	Summary  SavingsSummary      `json:"summary"`
	Message  string              `json:"message,omitempty"`
}

type OtherInvestmentRow struct {
	models.OtherInvestment
	CurrentValue float64 `json:"CurrentValue"`
	ProfitLoss   float64 `json:"ProfitLoss"`
	ReturnsPct   float64 `json:"ReturnsPct"`
}

type OtherInvestmentSummary struct {
	TotalInvested float64 `json:"total_invested"`
	CurrentValue  float64 `json:"current_value"`
	TotalReturns  float64 `json:"total_returns"`
	Count         int     `json:"count"`
}

type OtherInvestmentsResponse struct {
	Investments []OtherInvestmentRow   `json:"investments"`
	Summary     OtherInvestmentSummary `json:"summary"`
	Message     string                 `json:"message,omitempty"`
}

type AddLoanRequest struct {
	LoanType          string   `json:"LoanType"`
	Lender            string   `json:"Lender"`
	Principal         *float64 `json:"Principal"`
	OutstandingAmount *float64 `json:"OutstandingAmount"`
	InterestRate      *float64 `json:"InterestRate"`
	EMI               *float64 `json:"EMI"`
	Tenure            *float64 `json:"Tenure"`
	StartDate         string   `json:"StartDate"`
	EndDate           string   `json:"EndDate"`
}

type AddCreditCardRequest struct {
	Bank               string   `json:"Bank"`
	CardType           string   `json:"CardType"`
	CardNumber         string   `json:"CardNumber"`
	CreditLimit        *float64 `json:"CreditLimit"`
	OutstandingBalance *float64 `json:"OutstandingBalance"`
	MinimumDue         *float64 `json:"MinimumDue"`
	DueDate            string   `json:"DueDate"`
	APR                *float64 `json:"APR"`
}

type AddSavingsAccountRequest struct {
	Bank          string   `json:"Bank"`
	AccountType   string   `json:"AccountType"`
	AccountNumber string   `json:"AccountNumber"`
	Balance       *float64 `json:"Balance"`
	InterestRate  *float64 `json:"InterestRate"`
}

type AddOtherInvestmentRequest struct {
	Investment     string   `json:"Investment"`
	Amount         *float64 `json:"Amount"`
	StartDate      string   `json:"StartDate"`
	EndDate        string   `json:"EndDate"`
	ExpectedReturn *float64 `json:"ExpectedReturn"`
}
