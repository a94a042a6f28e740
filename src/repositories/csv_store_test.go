package repositories_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"wallet/src/models"
	"wallet/src/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "PersonalFiles", "myPortfolio.csv")
	store := repositories.NewStockStore(path)

	stocks, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stocks)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Stock,SharesOwned,AveragePrice,NSE_Symbol\n", string(content))
}

func TestLoadReadsColumnsByName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "myPortfolio.csv")
	content := "NSE_Symbol,Stock,AveragePrice,SharesOwned\nSBIN,State Bank Of India,500.5,10\n,,,\nTCS,Tata Consultancy Services,,2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	stocks, err := repositories.NewStockStore(path).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, stocks, 2)
	assert.Equal(t, models.Stock{Stock: "State Bank Of India", SharesOwned: 10, AveragePrice: 500.5, NSESymbol: "SBIN"}, stocks[0])
	assert.Equal(t, 0.0, stocks[1].AveragePrice)
}

func TestLoadReportsInvalidNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "myPortfolio.csv")
	content := "Stock,SharesOwned,AveragePrice,NSE_Symbol\nSBI,10,500,SBIN\nTCS,two,100,TCS\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := repositories.NewStockStore(path).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrInvalidRow)
	assert.ErrorIs(t, err, models.ErrInvalidNumber)
	assert.Contains(t, err.Error(), "line 3")
}

func TestAppendRejectsDuplicateKey(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "myCreditCards.csv")
	store := repositories.NewCreditCardStore(path)

	require.NoError(t, store.Append(ctx, models.CreditCard{Bank: "HDFC", CardNumber: "1111", CreditLimit: 1000}))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = store.Append(ctx, models.CreditCard{Bank: "HDFC", CardNumber: "1111", CreditLimit: 5000})
	var dup *repositories.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "CardNumber", dup.Column)
	assert.Equal(t, "1111", dup.Value)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAppendRejectsDuplicatesWithinBatch(t *testing.T) {
	store := repositories.NewSavingsAccountStore(filepath.Join(t.TempDir(), "mySavingsAccounts.csv"))

	err := store.Append(context.Background(),
		models.SavingsAccount{Bank: "SBI", AccountNumber: "1"},
		models.SavingsAccount{Bank: "SBI", AccountNumber: "1"},
	)
	var dup *repositories.DuplicateError
	require.ErrorAs(t, err, &dup)

	accounts, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAppendAllowsEmptyKeys(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMutualFundStore(filepath.Join(t.TempDir(), "myMFPortfolio.csv"))

	require.NoError(t, store.Append(ctx, models.NewImportedMutualFund("Fund A", 1), models.NewImportedMutualFund("Fund A", 1)))
	require.NoError(t, store.Append(ctx, models.NewImportedMutualFund("Fund A", 1)))

	funds, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, funds, 3)
}

func TestSaveKeepsBlankAverageNAV(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "myMFPortfolio.csv")
	store := repositories.NewMutualFundStore(path)

	require.NoError(t, store.Save(ctx, []models.MutualFund{models.NewImportedMutualFund("Fund A", 12.5)}))
	funds, err := store.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, funds))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Scheme,UnitsOwned,AverageNAV,SchemeCode\nFund A,12.5,,\n", string(content))
}

func TestUpsertReplacesByKey(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewSnapshotStore(filepath.Join(t.TempDir(), "myPortfolioHistory.csv"))

	require.NoError(t, store.Upsert(ctx, models.PortfolioSnapshot{Date: "2026-10-19", NetWorth: 1}))
	require.NoError(t, store.Upsert(ctx, models.PortfolioSnapshot{Date: "2026-10-20", NetWorth: 2}))
	require.NoError(t, store.Upsert(ctx, models.PortfolioSnapshot{Date: "2026-10-19", NetWorth: 3}))

	snapshots, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, 3.0, snapshots[0].NetWorth)
	assert.Equal(t, 2.0, snapshots[1].NetWorth)
}

func TestAppendKeepsUserColumnsAndCells(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "myPortfolio.csv")
	content := "Stock,SharesOwned,AveragePrice,NSE_Symbol,Notes\nState Bank,10,500.50,SBIN,long term\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := repositories.NewStockStore(path)
	require.NoError(t, store.Append(ctx, models.Stock{Stock: "Infosys", SharesOwned: 1, AveragePrice: 1500, NSESymbol: "INFY"}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content+"Infosys,1,1500,INFY,\n", string(got))
}

func TestAppendAddsMissingCanonicalColumns(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "myPortfolio.csv")
	content := "Notes,Stock,SharesOwned,NSE_Symbol\nkeep,State Bank,10,SBIN\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := repositories.NewStockStore(path)
	require.NoError(t, store.Append(ctx, models.Stock{Stock: "Infosys", SharesOwned: 1, AveragePrice: 1500, NSESymbol: "INFY"}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Notes,Stock,SharesOwned,NSE_Symbol,AveragePrice\nkeep,State Bank,10,SBIN,\n,Infosys,1,INFY,1500\n", string(got))

	stocks, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, stocks, 2)
	assert.Equal(t, 1500.0, stocks[1].AveragePrice)
}

func TestUpsertKeepsUserColumns(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "myPortfolioHistory.csv")
	header := "Date,StocksInvested,StocksValue,FundsInvested,FundsValue,OtherValue,SavingsBalance,CardOutstanding,LoanOutstanding,NetWorth,Comment\n"
	content := header +
		"2026-10-18,0,0,0,0,0,0,0,0,1.50,before trip\n" +
		"2026-10-19,0,0,0,0,0,0,0,0,1,first\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := repositories.NewSnapshotStore(path)
	require.NoError(t, store.Upsert(ctx, models.PortfolioSnapshot{Date: "2026-10-19", NetWorth: 3}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, header+
		"2026-10-18,0,0,0,0,0,0,0,0,1.50,before trip\n"+
		"2026-10-19,0,0,0,0,0,0,0,0,3,first\n", string(got))
}

func TestAppendRejectsDuplicateKeyIgnoringCase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "myPortfolio.csv")
	content := "Stock,SharesOwned,AveragePrice,NSE_Symbol\nState Bank,10,500,sbin \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	err := repositories.NewStockStore(path).Append(ctx, models.Stock{Stock: "SBI", SharesOwned: 1, AveragePrice: 1, NSESymbol: "SBIN"})
	var dup *repositories.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "SBIN", dup.Value)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}
