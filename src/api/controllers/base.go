package controllers

import (
	"context"
	"io"

	"wallet/src/config"
	"wallet/src/schemas"
	"wallet/src/services"

	"github.com/xuri/excelize/v2"
)

type IController interface {
	GetOverview(ctx context.Context) (*schemas.Overview, error)
	GetStocks(ctx context.Context) (*schemas.StocksResponse, error)
	AddStock(ctx context.Context, req schemas.AddStockRequest) (*schemas.StocksResponse, error)
	LookupStockName(ctx context.Context, symbol string) schemas.NameLookupResponse
	GetMutualFunds(ctx context.Context) (*schemas.MutualFundsResponse, error)
	AddMutualFund(ctx context.Context, req schemas.AddMutualFundRequest) (*schemas.MutualFundsResponse, error)
	LookupSchemeName(ctx context.Context, code string) schemas.NameLookupResponse
	ImportMutualFunds(ctx context.Context, r io.Reader, opts schemas.ImportOptions) (*schemas.ImportResponse, error)
	GetLoans(ctx context.Context) (*schemas.LoansResponse, error)
	AddLoan(ctx context.Context, req schemas.AddLoanRequest) (*schemas.LoansResponse, error)
	GetCreditCards(ctx context.Context) (*schemas.CreditCardsResponse, error)
	AddCreditCard(ctx context.Context, req schemas.AddCreditCardRequest) (*schemas.CreditCardsResponse, error)
	GetSavingsAccounts(ctx context.Context) (*schemas.SavingsAccountsResponse, error)
	AddSavingsAccount(ctx context.Context, req schemas.AddSavingsAccountRequest) (*schemas.SavingsAccountsResponse, error)
	GetOtherInvestments(ctx context.Context) (*schemas.OtherInvestmentsResponse, error)
	AddOtherInvestment(ctx context.Context, req schemas.AddOtherInvestmentRequest) (*schemas.OtherInvestmentsResponse, error)

	GenerateXLSX(ctx context.Context, class string) (*excelize.File, error)
	GeneratePDFReport(ctx context.Context) ([]byte, error)
	GetMarket(ctx context.Context) (*schemas.MarketResponse, error)
	GetHistory(ctx context.Context) (*schemas.HistoryResponse, error)
	SectorChartHTML(ctx context.Context) (string, error)
	HistoryChartHTML(ctx context.Context) (string, error)
}

type Controller struct {
	PortfolioService services.PortfolioServiceI
	ImportService    services.ImportServiceI
	ExportService    services.ExportServiceI
	ReportService    services.ReportServiceI
	MarketService    services.MarketServiceI
}

func NewController(cfg *config.Config) *Controller {
	stores := services.NewStores(cfg)
	prices := services.NewPriceServiceFromConfig(cfg)
	portfolio := services.NewPortfolioService(stores, prices)

	return &Controller{
		PortfolioService: portfolio,
		ImportService:    services.NewImportService(services.NewExtractor(cfg.Import), stores.MutualFunds),
		ExportService:    services.NewExportService(portfolio),
		ReportService:    services.NewReportService(portfolio),
		MarketService:    services.NewMarketService(stores.Stocks, services.NewHistoryStore(cfg), prices),
	}
}
