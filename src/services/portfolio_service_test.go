package services_test

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"wallet/src/schemas"
	"wallet/src/services"
	"wallet/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortfolio(t *testing.T, prices map[string]float64) (*services.PortfolioService, services.Stores) {
	t.Helper()
	client := newQuoteClientMock(prices)
	stores := tempStores(t)
	svc := services.NewPortfolioService(stores, services.NewPriceService(client, client, 0))
	svc.Now = func() time.Time { return now }
	return svc, stores
}

func requireHTTPError(t *testing.T, err error, code int, message string) {
	t.Helper()
	var httpErr *utils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, code, httpErr.Code)
	assert.Equal(t, message, httpErr.Message)
}

func TestAddStock(t *testing.T) {
	svc, _ := newPortfolio(t, map[string]float64{"SBIN": 800})

	res, err := svc.AddStock(context.Background(), schemas.AddStockRequest{
		Stock: "State Bank Of India", SharesOwned: ptr(10), AveragePrice: ptr(500), NSESymbol: "sbin",
	})
	require.NoError(t, err)

	assert.Equal(t, "Stock added successfully!", res.Message)
	require.Len(t, res.Holdings, 1)
	assert.Equal(t, "SBIN", res.Holdings[0].NSESymbol)
	assert.Equal(t, 8000.0, res.Holdings[0].CurrentValue)
	assert.Empty(t, res.Fallbacks)
}

func TestAddStockDuplicateLeavesFileUnchanged(t *testing.T) {
	svc, stores := newPortfolio(t, map[string]float64{"SBIN": 800})
	ctx := context.Background()

	_, err := svc.AddStock(ctx, schemas.AddStockRequest{Stock: "SBI", SharesOwned: ptr(1), AveragePrice: ptr(1), NSESymbol: "SBIN"})
	require.NoError(t, err)
	before, err := os.ReadFile(stores.Stocks.Path())
	require.NoError(t, err)

	_, err = svc.AddStock(ctx, schemas.AddStockRequest{Stock: "SBI again", SharesOwned: ptr(2), AveragePrice: ptr(2), NSESymbol: "SBIN"})
	requireHTTPError(t, err, http.StatusConflict, "Stock with symbol SBIN already exists in portfolio.")

	after, err := os.ReadFile(stores.Stocks.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAddStockValidation(t *testing.T) {
	svc, _ := newPortfolio(t, nil)
	ctx := context.Background()

	_, err := svc.AddStock(ctx, schemas.AddStockRequest{Stock: "SBI", SharesOwned: ptr(1), NSESymbol: "SBIN"})
	requireHTTPError(t, err, http.StatusBadRequest, "Please fill all fields.")

	_, err = svc.AddStock(ctx, schemas.AddStockRequest{Stock: "SBI", SharesOwned: ptr(0), AveragePrice: ptr(1), NSESymbol: "SBIN"})
	requireHTTPError(t, err, http.StatusBadRequest, "Please fill all the fields correctly.")
}

func TestGetStocksUsesFallbackPrices(t *testing.T) {
	svc, stores := newPortfolio(t, nil)
	ctx := context.Background()
	require.NoError(t, utils.WriteCSVRecords(stores.Stocks.Path(), [][]string{
		{"Stock", "SharesOwned", "AveragePrice", "NSE_Symbol"},
		{"GAIL (India)", "10", "150", "GAIL"},
		{"Unknown Co", "1", "10", "UNKNOWNCO"},
	}))

	res, err := svc.GetStocks(ctx)
	require.NoError(t, err)

	require.Len(t, res.Holdings, 2)
	assert.Equal(t, services.StockFallbackPrices["GAIL"], res.Holdings[0].CurrentPrice)
	assert.Equal(t, schemas.PriceFallback, res.Holdings[0].PriceSource)
	assert.Equal(t, 0.0, res.Holdings[1].CurrentPrice)
	assert.Equal(t, schemas.PriceMissing, res.Holdings[1].PriceSource)

	require.Len(t, res.Fallbacks, 2)
	assert.Equal(t, "GAIL", res.Fallbacks[0].ID)
	assert.Equal(t, "UNKNOWNCO", res.Fallbacks[1].ID)
}

func TestGetStocksCreatesMissingFile(t *testing.T) {
	svc, stores := newPortfolio(t, nil)

	res, err := svc.GetStocks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Holdings)
	assert.Equal(t, 0, res.Summary.Count)

	content, err := os.ReadFile(stores.Stocks.Path())
	require.NoError(t, err)
	assert.Equal(t, "Stock,SharesOwned,AveragePrice,NSE_Symbol\n", string(content))
}

func TestAddMutualFundDuplicate(t *testing.T) {
	svc, _ := newPortfolio(t, map[string]float64{"119598": 90})
	ctx := context.Background()
	req := schemas.AddMutualFundRequest{Scheme: "SBI Blue Chip", UnitsOwned: ptr(10), AverageNAV: ptr(80), SchemeCode: "119598"}

	res, err := svc.AddMutualFund(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Mutual Fund added successfully!", res.Message)
	assert.Equal(t, 900.0, res.Summary.CurrentValue)

	_, err = svc.AddMutualFund(ctx, req)
	requireHTTPError(t, err, http.StatusConflict, "Scheme with code 119598 already exists in portfolio.")
}

func TestAddLoanRejectsBadDate(t *testing.T) {
	svc, _ := newPortfolio(t, nil)

	_, err := svc.AddLoan(context.Background(), schemas.AddLoanRequest{
		LoanType: "Home", Lender: "HDFC", Principal: ptr(100000), OutstandingAmount: ptr(50000),
		InterestRate: ptr(8.5), EMI: ptr(1200), Tenure: ptr(120), StartDate: "2020-01-01", EndDate: "next year",
	})
	requireHTTPError(t, err, http.StatusBadRequest, `Invalid date "next year", expected YYYY-MM-DD.`)
}

func TestAddLoan(t *testing.T) {
	svc, _ := newPortfolio(t, nil)

	res, err := svc.AddLoan(context.Background(), schemas.AddLoanRequest{
		LoanType: "Home", Lender: "HDFC", Principal: ptr(100000), OutstandingAmount: ptr(50000),
		InterestRate: ptr(8.5), EMI: ptr(1200), Tenure: ptr(120), StartDate: "2020-01-01", EndDate: "2030-01-01",
	})
	require.NoError(t, err)
	require.Len(t, res.Loans, 1)
	assert.Equal(t, 50.0, res.Loans[0].Progress)
	assert.Equal(t, "Loan added successfully!", res.Message)
}

func TestAddCreditCardDuplicate(t *testing.T) {
	svc, _ := newPortfolio(t, nil)
	ctx := context.Background()
	req := schemas.AddCreditCardRequest{
		Bank: "HDFC", CardType: "Regalia", CardNumber: "4321", CreditLimit: ptr(100000),
		OutstandingBalance: ptr(1000), MinimumDue: ptr(100), DueDate: "2026-11-05", APR: ptr(42),
	}

	_, err := svc.AddCreditCard(ctx, req)
	require.NoError(t, err)

	_, err = svc.AddCreditCard(ctx, req)
	requireHTTPError(t, err, http.StatusConflict, "Card with number 4321 already exists.")
}

func TestAddSavingsAccountStampsDate(t *testing.T) {
	svc, _ := newPortfolio(t, nil)
	ctx := context.Background()
	req := schemas.AddSavingsAccountRequest{Bank: "SBI", AccountType: "Savings", AccountNumber: "0001", Balance: ptr(1000), InterestRate: ptr(3)}

	res, err := svc.AddSavingsAccount(ctx, req)
	require.NoError(t, err)
	require.Len(t, res.Accounts, 1)
	assert.Equal(t, "2026-10-19", res.Accounts[0].LastUpdated)

	_, err = svc.AddSavingsAccount(ctx, req)
	requireHTTPError(t, err, http.StatusConflict, "Account with number 0001 already exists.")
}

func TestAddOtherInvestmentAllowsRepeats(t *testing.T) {
	svc, _ := newPortfolio(t, nil)
	ctx := context.Background()
	req := schemas.AddOtherInvestmentRequest{Investment: "FD", Amount: ptr(10000), StartDate: "2025-01-01", EndDate: "2027-01-01", ExpectedReturn: ptr(7)}

	_, err := svc.AddOtherInvestment(ctx, req)
	require.NoError(t, err)
	res, err := svc.AddOtherInvestment(ctx, req)
	require.NoError(t, err)
	assert.Len(t, res.Investments, 2)
}

func TestGetOverview(t *testing.T) {
	svc, _ := newPortfolio(t, map[string]float64{"SBIN": 600})
	ctx := context.Background()

	_, err := svc.AddStock(ctx, schemas.AddStockRequest{Stock: "SBI", SharesOwned: ptr(10), AveragePrice: ptr(500), NSESymbol: "SBIN"})
	require.NoError(t, err)
	_, err = svc.AddSavingsAccount(ctx, schemas.AddSavingsAccountRequest{Bank: "SBI", AccountType: "Savings", AccountNumber: "1", Balance: ptr(2000), InterestRate: ptr(3)})
	require.NoError(t, err)
	_, err = svc.AddCreditCard(ctx, schemas.AddCreditCardRequest{
		Bank: "HDFC", CardType: "Millennia", CardNumber: "1", CreditLimit: ptr(10000),
		OutstandingBalance: ptr(500), MinimumDue: ptr(50), DueDate: "2026-11-01", APR: ptr(40),
	})
	require.NoError(t, err)

	overview, err := svc.GetOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6000.0, overview.Stocks.CurrentValue)
	assert.Equal(t, 7500.0, overview.NetWorth)
	assert.Empty(t, overview.Fallbacks)
}

func TestLookupNames(t *testing.T) {
	svc, _ := newPortfolio(t, nil)

	res := svc.LookupStockName(context.Background(), " sbin ")
	assert.Equal(t, schemas.NameLookupResponse{ID: "SBIN", Name: services.StockNames["SBIN"]}, res)

	res = svc.LookupSchemeName(context.Background(), "119598")
	assert.Equal(t, services.SchemeNames["119598"], res.Name)
}
