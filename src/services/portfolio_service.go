package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wallet/src/models"
	"wallet/src/repositories"
	"wallet/src/schemas"
	"wallet/src/utils"
)

const (
	msgFillAllFields   = "Please fill all fields."
	msgPositiveNumbers = "Please fill all the fields correctly."
)

// Stores groups the holdings files of every asset class.
type Stores struct {
	Stocks           repositories.Store[models.Stock]
	MutualFunds      repositories.Store[models.MutualFund]
	Loans            repositories.Store[models.Loan]
	CreditCards      repositories.Store[models.CreditCard]
	SavingsAccounts  repositories.Store[models.SavingsAccount]
	OtherInvestments repositories.Store[models.OtherInvestment]
}

type PortfolioServiceI interface {
	GetStocks(ctx context.Context) (*schemas.StocksResponse, error)
	GetMutualFunds(ctx context.Context) (*schemas.MutualFundsResponse, error)
	GetLoans(ctx context.Context) (*schemas.LoansResponse, error)
	GetCreditCards(ctx context.Context) (*schemas.CreditCardsResponse, error)
	GetSavingsAccounts(ctx context.Context) (*schemas.SavingsAccountsResponse, error)
	GetOtherInvestments(ctx context.Context) (*schemas.OtherInvestmentsResponse, error)
	GetOverview(ctx context.Context) (*schemas.Overview, error)

	AddStock(ctx context.Context, req schemas.AddStockRequest) (*schemas.StocksResponse, error)
	AddMutualFund(ctx context.Context, req schemas.AddMutualFundRequest) (*schemas.MutualFundsResponse, error)
	AddLoan(ctx context.Context, req schemas.AddLoanRequest) (*schemas.LoansResponse, error)
	AddCreditCard(ctx context.Context, req schemas.AddCreditCardRequest) (*schemas.CreditCardsResponse, error)
	AddSavingsAccount(ctx context.Context, req schemas.AddSavingsAccountRequest) (*schemas.SavingsAccountsResponse, error)
	AddOtherInvestment(ctx context.Context, req schemas.AddOtherInvestmentRequest) (*schemas.OtherInvestmentsResponse, error)

	LookupStockName(ctx context.Context, symbol string) schemas.NameLookupResponse
	LookupSchemeName(ctx context.Context, code string) schemas.NameLookupResponse
}

type PortfolioService struct {
	Stores        Stores
	Prices        PriceServiceI
	StockFallback FallbackPolicy
	NAVFallback   FallbackPolicy
	Now           func() time.Time
}

func NewPortfolioService(stores Stores, prices PriceServiceI) *PortfolioService {
	return &PortfolioService{
		Stores:        stores,
		Prices:        prices,
		StockFallback: StockFallbackPrices,
		NAVFallback:   NAVFallbacks,
		Now:           time.Now,
	}
}

func (s *PortfolioService) GetStocks(ctx context.Context) (*schemas.StocksResponse, error) {
	stocks, err := s.Stores.Stocks.Load(ctx)
	if err != nil {
		return nil, err
	}

	symbols := make([]string, len(stocks))
	for i, st := range stocks {
		symbols[i] = st.NSESymbol
	}
	prices, fallbacks := Resolve(s.Prices.FetchStockPrices(ctx, symbols), s.StockFallback)
	logFallbacks(ctx, "stock", fallbacks)

	rows := EnrichStocks(stocks, prices)
	return &schemas.StocksResponse{
		Holdings:  rows,
		Summary:   SummarizeStocks(rows),
		Fallbacks: fallbacks,
	}, nil
}

func (s *PortfolioService) GetMutualFunds(ctx context.Context) (*schemas.MutualFundsResponse, error) {
	funds, err := s.Stores.MutualFunds.Load(ctx)
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(funds))
	for i, f := range funds {
		codes[i] = f.SchemeCode
	}
	navs, fallbacks := Resolve(s.Prices.FetchNAVs(ctx, codes), s.NAVFallback)
	logFallbacks(ctx, "NAV", fallbacks)

	rows := EnrichMutualFunds(funds, navs)
	return &schemas.MutualFundsResponse{
		Holdings:  rows,
		Summary:   SummarizeMutualFunds(rows),
		Fallbacks: fallbacks,
	}, nil
}

func (s *PortfolioService) GetLoans(ctx context.Context) (*schemas.LoansResponse, error) {
	loans, err := s.Stores.Loans.Load(ctx)
	if err != nil {
		return nil, err
	}
	rows := EnrichLoans(loans, s.Now())
	return &schemas.LoansResponse{Loans: rows, Summary: SummarizeLoans(rows)}, nil
}

func (s *PortfolioService) GetCreditCards(ctx context.Context) (*schemas.CreditCardsResponse, error) {
	cards, err := s.Stores.CreditCards.Load(ctx)
	if err != nil {
		return nil, err
	}
	rows := EnrichCreditCards(cards, s.Now())
	return &schemas.CreditCardsResponse{Cards: rows, Summary: SummarizeCreditCards(rows)}, nil
}

func (s *PortfolioService) GetSavingsAccounts(ctx context.Context) (*schemas.SavingsAccountsResponse, error) {
	accounts, err := s.Stores.SavingsAccounts.Load(ctx)
	if err != nil {
		return nil, err
	}
	rows := EnrichSavingsAccounts(accounts)
	return &schemas.SavingsAccountsResponse{Accounts: rows, Summary: SummarizeSavingsAccounts(rows)}, nil
}

func (s *PortfolioService) GetOtherInvestments(ctx context.Context) (*schemas.OtherInvestmentsResponse, error) {
	investments, err := s.Stores.OtherInvestments.Load(ctx)
	if err != nil {
		return nil, err
	}
	rows := EnrichOtherInvestments(investments)
	return &schemas.OtherInvestmentsResponse{Investments: rows, Summary: SummarizeOtherInvestments(rows)}, nil
}

// GetOverview loads every asset class and computes net worth.
func (s *PortfolioService) GetOverview(ctx context.Context) (*schemas.Overview, error) {
	stocks, err := s.GetStocks(ctx)
	if err != nil {
		return nil, err
	}
	funds, err := s.GetMutualFunds(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := s.GetLoans(ctx)
	if err != nil {
		return nil, err
	}
	cards, err := s.GetCreditCards(ctx)
	if err != nil {
		return nil, err
	}
	savings, err := s.GetSavingsAccounts(ctx)
	if err != nil {
		return nil, err
	}
	others, err := s.GetOtherInvestments(ctx)
	if err != nil {
		return nil, err
	}

	overview := schemas.Overview{
		Stocks:           stocks.Summary,
		MutualFunds:      funds.Summary,
		Loans:            loans.Summary,
		CreditCards:      cards.Summary,
		SavingsAccounts:  savings.Summary,
		OtherInvestments: others.Summary,
		Fallbacks:        append(stocks.Fallbacks, funds.Fallbacks...),
	}
	overview.NetWorth = NetWorth(overview)
	return &overview, nil
}

func (s *PortfolioService) AddStock(ctx context.Context, req schemas.AddStockRequest) (*schemas.StocksResponse, error) {
	symbol := strings.ToUpper(strings.TrimSpace(req.NSESymbol))
	name := strings.TrimSpace(req.Stock)
	if name == "" || symbol == "" || req.SharesOwned == nil || req.AveragePrice == nil {
		return nil, utils.BadRequest(msgFillAllFields)
	}
	if *req.SharesOwned <= 0 || *req.AveragePrice <= 0 {
		return nil, utils.BadRequest(msgPositiveNumbers)
	}

	err := s.Stores.Stocks.Append(ctx, models.Stock{
		Stock:        name,
		SharesOwned:  *req.SharesOwned,
		AveragePrice: *req.AveragePrice,
		NSESymbol:    symbol,
	})
	if isDuplicate(err) {
		return nil, utils.Conflict(fmt.Sprintf("Stock with symbol %s already exists in portfolio.", symbol))
	}
	if err != nil {
		return nil, err
	}

	res, err := s.GetStocks(ctx)
	if err != nil {
		return nil, err
	}
	res.Message = "Stock added successfully!"
	return res, nil
}

func (s *PortfolioService) AddMutualFund(ctx context.Context, req schemas.AddMutualFundRequest) (*schemas.MutualFundsResponse, error) {
	code := strings.TrimSpace(req.SchemeCode)
	scheme := strings.TrimSpace(req.Scheme)
	if scheme == "" || code == "" || req.UnitsOwned == nil || req.AverageNAV == nil {
		return nil, utils.BadRequest(msgFillAllFields)
	}
	if *req.UnitsOwned <= 0 || *req.AverageNAV <= 0 {
		return nil, utils.BadRequest(msgPositiveNumbers)
	}

	err := s.Stores.MutualFunds.Append(ctx, models.MutualFund{
		Scheme:     scheme,
		UnitsOwned: *req.UnitsOwned,
		AverageNAV: *req.AverageNAV,
		SchemeCode: code,
	})
	if isDuplicate(err) {
		return nil, utils.Conflict(fmt.Sprintf("Scheme with code %s already exists in portfolio.", code))
	}
	if err != nil {
		return nil, err
	}

	res, err := s.GetMutualFunds(ctx)
	if err != nil {
		return nil, err
	}
	res.Message = "Mutual Fund added successfully!"
	return res, nil
}

func (s *PortfolioService) AddLoan(ctx context.Context, req schemas.AddLoanRequest) (*schemas.LoansResponse, error) {
	if blank(req.LoanType, req.Lender, req.StartDate, req.EndDate) ||
		missing(req.Principal, req.OutstandingAmount, req.InterestRate, req.EMI, req.Tenure) {
		return nil, utils.BadRequest(msgFillAllFields)
	}
	if negative(req.Principal, req.OutstandingAmount, req.InterestRate, req.EMI, req.Tenure) || *req.Principal == 0 {
		return nil, utils.BadRequest(msgPositiveNumbers)
	}
	if err := validDates(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	err := s.Stores.Loans.Append(ctx, models.Loan{
		LoanType:          strings.TrimSpace(req.LoanType),
		Lender:            strings.TrimSpace(req.Lender),
		Principal:         *req.Principal,
		OutstandingAmount: *req.OutstandingAmount,
		InterestRate:      *req.InterestRate,
		EMI:               *req.EMI,
		Tenure:            *req.Tenure,
		StartDate:         strings.TrimSpace(req.StartDate),
		EndDate:           strings.TrimSpace(req.EndDate),
	})
	if err != nil {
		return nil, err
	}

	res, err := s.GetLoans(ctx)
	if err != nil {
		return nil, err
	}
	res.Message = "Loan added successfully!"
	return res, nil
}

func (s *PortfolioService) AddCreditCard(ctx context.Context, req schemas.AddCreditCardRequest) (*schemas.CreditCardsResponse, error) {
	number := strings.TrimSpace(req.CardNumber)
	if blank(req.Bank, req.CardType, number, req.DueDate) ||
		missing(req.CreditLimit, req.OutstandingBalance, req.MinimumDue, req.APR) {
		return nil, utils.BadRequest(msgFillAllFields)
	}
	if negative(req.CreditLimit, req.OutstandingBalance, req.MinimumDue, req.APR) || *req.CreditLimit == 0 {
		return nil, utils.BadRequest(msgPositiveNumbers)
	}
	if err := validDates(req.DueDate); err != nil {
		return nil, err
	}

	err := s.Stores.CreditCards.Append(ctx, models.CreditCard{
		Bank:               strings.TrimSpace(req.Bank),
		CardType:           strings.TrimSpace(req.CardType),
		CardNumber:         number,
		CreditLimit:        *req.CreditLimit,
		OutstandingBalance: *req.OutstandingBalance,
		MinimumDue:         *req.MinimumDue,
		DueDate:            strings.TrimSpace(req.DueDate),
		APR:                *req.APR,
	})
	if isDuplicate(err) {
		return nil, utils.Conflict(fmt.Sprintf("Card with number %s already exists.", number))
	}
	if err != nil {
		return nil, err
	}

	res, err := s.GetCreditCards(ctx)
	if err != nil {
		return nil, err
	}
	res.Message = "Credit card added successfully!"
	return res, nil
}

func (s *PortfolioService) AddSavingsAccount(ctx context.Context, req schemas.AddSavingsAccountRequest) (*schemas.SavingsAccountsResponse, error) {
	number := strings.TrimSpace(req.AccountNumber)
	if blank(req.Bank, req.AccountType, number) || missing(req.Balance, req.InterestRate) {
		return nil, utils.BadRequest(msgFillAllFields)
	}
	if negative(req.Balance, req.InterestRate) {
		return nil, utils.BadRequest(msgPositiveNumbers)
	}

	err := s.Stores.SavingsAccounts.Append(ctx, models.SavingsAccount{
		Bank:          strings.TrimSpace(req.Bank),
		AccountType:   strings.TrimSpace(req.AccountType),
		AccountNumber: number,
		Balance:       *req.Balance,
		InterestRate:  *req.InterestRate,
		LastUpdated:   s.Now().Format(utils.ShortDashDateLayout),
	})
	if isDuplicate(err) {
		return nil, utils.Conflict(fmt.Sprintf("Account with number %s already exists.", number))
	}
	if err != nil {
		return nil, err
	}

	res, err := s.GetSavingsAccounts(ctx)
	if err != nil {
		return nil, err
	}
	res.Message = "Savings account added successfully!"
	return res, nil
}

func (s *PortfolioService) AddOtherInvestment(ctx context.Context, req schemas.AddOtherInvestmentRequest) (*schemas.OtherInvestmentsResponse, error) {
	if blank(req.Investment, req.StartDate, req.EndDate) || missing(req.Amount, req.ExpectedReturn) {
		return nil, utils.BadRequest(msgFillAllFields)
	}
	if *req.Amount <= 0 {
		return nil, utils.BadRequest(msgPositiveNumbers)
	}
	if err := validDates(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	err := s.Stores.OtherInvestments.Append(ctx, models.OtherInvestment{
		Investment:     strings.TrimSpace(req.Investment),
		Amount:         *req.Amount,
		StartDate:      strings.TrimSpace(req.StartDate),
		EndDate:        strings.TrimSpace(req.EndDate),
		ExpectedReturn: *req.ExpectedReturn,
	})
	if err != nil {
		return nil, err
	}

	res, err := s.GetOtherInvestments(ctx)
	if err != nil {
		return nil, err
	}
	res.Message = "Investment added successfully!"
	return res, nil
}

func (s *PortfolioService) LookupStockName(ctx context.Context, symbol string) schemas.NameLookupResponse {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	return schemas.NameLookupResponse{ID: symbol, Name: s.Prices.StockName(ctx, symbol)}
}

func (s *PortfolioService) LookupSchemeName(ctx context.Context, code string) schemas.NameLookupResponse {
	code = strings.TrimSpace(code)
	return schemas.NameLookupResponse{ID: code, Name: s.Prices.SchemeName(ctx, code)}
}

func logFallbacks(ctx context.Context, kind string, fallbacks []schemas.FallbackNotice) {
	logger := utils.LoggerFromContext(ctx)
	for _, f := range fallbacks {
		logger.Warnf("Using %s %s for %s: %v (%s)", f.Source, kind, f.ID, f.Value, f.Reason)
	}
}

func isDuplicate(err error) bool {
	var dup *repositories.DuplicateError
	return errors.As(err, &dup)
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

func missing(values ...*float64) bool {
	for _, v := range values {
		if v == nil {
			return true
		}
	}
	return false
}

func negative(values ...*float64) bool {
	for _, v := range values {
		if *v < 0 {
			return true
		}
	}
	return false
}

func validDates(values ...string) error {
	for _, v := range values {
		if _, err := utils.ParseDate(v); err != nil {
			return utils.BadRequest(fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD.", strings.TrimSpace(v)))
		}
	}
	return nil
}
