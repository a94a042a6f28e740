package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"wallet/src/models"
	"wallet/src/repositories"
	"wallet/src/schemas"
	"wallet/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var marketStocks = []models.Stock{
	{Stock: "State Bank Of India", SharesOwned: 10, AveragePrice: 500, NSESymbol: "SBIN"},
	{Stock: "HDFC Bank", SharesOwned: 1, AveragePrice: 2500, NSESymbol: "HDFCBANK"},
	{Stock: "Tata Consultancy Services", SharesOwned: 1, AveragePrice: 2500, NSESymbol: "TCS"},
}

func TestSectorDistribution(t *testing.T) {
	shares := services.SectorDistribution(marketStocks, map[string]string{
		"SBIN":     "Financial Services",
		"HDFCBANK": "Financial Services",
	})

	assert.Equal(t, []schemas.Share{
		{Name: "Financial Services", Percent: 75},
		{Name: "Others", Percent: 25},
	}, shares)
}

func TestSectorDistributionEmpty(t *testing.T) {
	assert.Empty(t, services.SectorDistribution(nil, nil))
	assert.Empty(t, services.CategoryDistribution(nil))
}

func newMarketService(t *testing.T) (*services.MarketService, *quoteClientMock) {
	t.Helper()
	dir := t.TempDir()
	stocks := repositories.NewStockStore(filepath.Join(dir, "myPortfolio.csv"))
	require.NoError(t, stocks.Save(context.Background(), marketStocks))

	client := newQuoteClientMock(nil)
	client.profiles["SBIN"] = &yahooProfileSBIN
	history := repositories.NewSnapshotStore(filepath.Join(dir, "myPortfolioHistory.csv"))
	return services.NewMarketService(stocks, history, services.NewPriceService(client, client, 0)), client
}

func TestGetMarket(t *testing.T) {
	svc, client := newMarketService(t)

	market, err := svc.GetMarket(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"SBIN", "HDFCBANK", "TCS"}, client.Calls())
	assert.Equal(t, []schemas.Share{
		{Name: "Financial Services", Percent: 50},
		{Name: "Others", Percent: 50},
	}, market.Sectors)
	assert.Equal(t, []schemas.Share{{Name: "Equity", Percent: 100}}, market.Categories)
}

func TestGetHistorySortsByDate(t *testing.T) {
	svc, _ := newMarketService(t)
	ctx := context.Background()
	require.NoError(t, svc.History.Save(ctx, []models.PortfolioSnapshot{
		{Date: "2026-10-02", NetWorth: 200},
		{Date: "2026-10-01", NetWorth: 100},
	}))

	history, err := svc.GetHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history.Snapshots, 2)
	assert.Equal(t, "2026-10-01", history.Snapshots[0].Date)
}

func TestChartPages(t *testing.T) {
	svc, _ := newMarketService(t)
	ctx := context.Background()
	require.NoError(t, svc.History.Save(ctx, []models.PortfolioSnapshot{{Date: "2026-10-01", NetWorth: 100}}))

	sectors, err := svc.SectorChartHTML(ctx)
	require.NoError(t, err)
	assert.Contains(t, sectors, "Sector Distribution")
	assert.Contains(t, sectors, "echarts")

	history, err := svc.HistoryChartHTML(ctx)
	require.NoError(t, err)
	assert.Contains(t, history, "Portfolio History")
	assert.Contains(t, history, "2026-10-01")
}
