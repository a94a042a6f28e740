package services_test

import (
	"context"
	"net/http"
	"testing"

	"wallet/src/schemas"
	"wallet/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerateXLSXStocks(t *testing.T) {
	portfolio, _ := newPortfolio(t, map[string]float64{"SBIN": 800})
	ctx := context.Background()
	_, err := portfolio.AddStock(ctx, schemas.AddStockRequest{Stock: "State Bank Of India", SharesOwned: ptr(10), AveragePrice: ptr(500), NSESymbol: "SBIN"})
	require.NoError(t, err)

	file, err := services.NewExportService(portfolio).GenerateXLSX(ctx, services.ClassStocks)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{"Stocks", "Summary"}, file.GetSheetList())

	rows, err := file.GetRows("Stocks", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Stock", "NSE_Symbol", "SharesOwned", "AveragePrice", "Current Price",
		"TotalInvestment", "Current Value", "Profit/Loss", "Returns %"}, rows[0])
	assert.Equal(t, "SBIN", rows[1][1])
	assert.Equal(t, "8000", rows[1][6])

	summary, err := file.GetRows("Summary", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Metric", "Value"}, summary[0])
	assert.Equal(t, []string{"Total Investment", "5000"}, summary[1])
}

func TestGenerateXLSXEveryClass(t *testing.T) {
	portfolio, _ := newPortfolio(t, nil)
	svc := services.NewExportService(portfolio)

	for _, class := range []string{
		services.ClassStocks, services.ClassMutualFunds, services.ClassLoans,
		services.ClassCreditCards, services.ClassSavingsAccounts, services.ClassOtherInvestments,
	} {
		file, err := svc.GenerateXLSX(context.Background(), class)
		require.NoError(t, err, class)
		assert.Len(t, file.GetSheetList(), 2, class)
		file.Close()
	}
}

func TestGenerateXLSXUnknownClass(t *testing.T) {
	portfolio, _ := newPortfolio(t, nil)

	_, err := services.NewExportService(portfolio).GenerateXLSX(context.Background(), "crypto")
	requireHTTPError(t, err, http.StatusNotFound, `unknown asset class "crypto"`)
}
