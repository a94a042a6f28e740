package controllers

import (
	"context"
	"io"

	"wallet/src/schemas"
)

func (c *Controller) GetOverview(ctx context.Context) (*schemas.Overview, error) {
	return c.PortfolioService.GetOverview(ctx)
}

func (c *Controller) GetStocks(ctx context.Context) (*schemas.StocksResponse, error) {
	return c.PortfolioService.GetStocks(ctx)
}

func (c *Controller) AddStock(ctx context.Context, req schemas.AddStockRequest) (*schemas.StocksResponse, error) {
	return c.PortfolioService.AddStock(ctx, req)
}

func (c *Controller) LookupStockName(ctx context.Context, symbol string) schemas.NameLookupResponse {
	return c.PortfolioService.LookupStockName(ctx, symbol)
}

func (c *Controller) GetMutualFunds(ctx context.Context) (*schemas.MutualFundsResponse, error) {
	return c.PortfolioService.GetMutualFunds(ctx)
}

func (c *Controller) AddMutualFund(ctx context.Context, req schemas.AddMutualFundRequest) (*schemas.MutualFundsResponse, error) {
	return c.PortfolioService.AddMutualFund(ctx, req)
}

func (c *Controller) LookupSchemeName(ctx context.Context, code string) schemas.NameLookupResponse {
	return c.PortfolioService.LookupSchemeName(ctx, code)
}

// ImportMutualFunds runs a workbook import against the mutual fund store.
func (c *Controller) ImportMutualFunds(ctx context.Context, r io.Reader, opts schemas.ImportOptions) (*schemas.ImportResponse, error) {
	return c.ImportService.ImportWorkbook(ctx, r, opts)
}
