package services_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"wallet/src/clients/mfapi"
	"wallet/src/clients/yahoo"
	"wallet/src/repositories"
	"wallet/src/services"
)

var errUnavailable = errors.New("service unavailable")

// quoteClientMock answers prices from a fixed table and records every call.
type quoteClientMock struct {
	mu       sync.Mutex
	prices   map[string]float64
	names    map[string]string
	profiles map[string]*yahoo.AssetProfile
	calls    []string
}

func newQuoteClientMock(prices map[string]float64) *quoteClientMock {
	return &quoteClientMock{prices: prices, names: map[string]string{}, profiles: map[string]*yahoo.AssetProfile{}}
}

func (m *quoteClientMock) record(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, id)
}

func (m *quoteClientMock) price(id string) (float64, error) {
	m.record(id)
	p, ok := m.prices[id]
	if !ok {
		return 0, errUnavailable
	}
	return p, nil
}

func (m *quoteClientMock) GetChart(_ context.Context, symbol string) (*yahoo.ChartMeta, error) {
	p, err := m.price(symbol)
	if err != nil {
		return nil, err
	}
	return &yahoo.ChartMeta{Symbol: symbol, RegularMarketPrice: p}, nil
}

func (m *quoteClientMock) GetPrice(_ context.Context, symbol string) (float64, error) {
	return m.price(symbol)
}

func (m *quoteClientMock) GetName(_ context.Context, symbol string) (string, error) {
	m.record(symbol)
	if n, ok := m.names[symbol]; ok {
		return n, nil
	}
	return "", errUnavailable
}

func (m *quoteClientMock) GetAssetProfile(_ context.Context, symbol string) (*yahoo.AssetProfile, error) {
	m.record(symbol)
	if p, ok := m.profiles[symbol]; ok {
		return p, nil
	}
	return nil, errUnavailable
}

func (m *quoteClientMock) GetScheme(_ context.Context, code string) (*mfapi.SchemeResponse, error) {
	m.record(code)
	if n, ok := m.names[code]; ok {
		return &mfapi.SchemeResponse{Meta: mfapi.SchemeMeta{SchemeName: n}}, nil
	}
	return nil, errUnavailable
}

func (m *quoteClientMock) GetNAV(_ context.Context, code string) (float64, error) {
	return m.price(code)
}

func (m *quoteClientMock) GetSchemeName(_ context.Context, code string) (string, error) {
	return m.GetName(context.Background(), code)
}

func (m *quoteClientMock) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// tempStores points every asset class at a fresh directory.
func tempStores(t *testing.T) services.Stores {
	t.Helper()
	dir := t.TempDir()
	return services.Stores{
		Stocks:           repositories.NewStockStore(filepath.Join(dir, "myPortfolio.csv")),
		MutualFunds:      repositories.NewMutualFundStore(filepath.Join(dir, "myMFPortfolio.csv")),
		Loans:            repositories.NewLoanStore(filepath.Join(dir, "myLoans.csv")),
		CreditCards:      repositories.NewCreditCardStore(filepath.Join(dir, "myCreditCards.csv")),
		SavingsAccounts:  repositories.NewSavingsAccountStore(filepath.Join(dir, "mySavingsAccounts.csv")),
		OtherInvestments: repositories.NewOtherInvestmentStore(filepath.Join(dir, "myOtherInvestments.csv")),
	}
}

func ptr(v float64) *float64 { return &v }

var yahooProfileSBIN = yahoo.AssetProfile{
	Symbol:    "SBIN",
	Name:      "State Bank of India",
	Sector:    "Financial Services",
	Industry:  "Banks - Regional",
	MarketCap: 7.2e12,
}
