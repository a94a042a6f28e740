package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"wallet/src/config"
	"wallet/src/utils/requests"
)

var ErrNoResult = errors.New("no result")

type YahooServiceClientI interface {
	GetChart(ctx context.Context, symbol string) (*ChartMeta, error)
	GetPrice(ctx context.Context, symbol string) (float64, error)
	GetName(ctx context.Context, symbol string) (string, error)
	GetAssetProfile(ctx context.Context, symbol string) (*AssetProfile, error)
}

type YahooServiceClient struct {
	API            *requests.ExternalAPIService
	BaseURL        string
	ExchangeSuffix string
}

// NewClient creates a new instance of YahooServiceClient
func NewClient(cfg *config.Config) *YahooServiceClient {
	return &YahooServiceClient{
		API:            requests.NewExternalAPIService(cfg.ExternalClients.Timeout, cfg.ExternalClients.UserAgent),
		BaseURL:        strings.TrimRight(cfg.ExternalClients.Yahoo.BaseURL, "/"),
		ExchangeSuffix: cfg.ExternalClients.Yahoo.ExchangeSuffix,
	}
}

func (c *YahooServiceClient) ticker(symbol string) string {
	return url.PathEscape(strings.ToUpper(strings.TrimSpace(symbol)) + c.ExchangeSuffix)
}

// GetChart fetches the chart metadata of an exchange listed symbol.
func (c *YahooServiceClient) GetChart(ctx context.Context, symbol string) (*ChartMeta, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s", c.BaseURL, c.ticker(symbol))

	var chartResponse ChartResponse
	if err := c.API.GetJSON(ctx, endpoint, nil, &chartResponse); err != nil {
		return nil, err
	}
	if e := chartResponse.Chart.Error; e != nil {
		return nil, fmt.Errorf("%s: %s: %s", symbol, e.Code, e.Description)
	}
	if len(chartResponse.Chart.Result) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNoResult)
	}
	return &chartResponse.Chart.Result[0].Meta, nil
}

// GetPrice returns the regular market price. A missing or non-positive price
// is an error.
func (c *YahooServiceClient) GetPrice(ctx context.Context, symbol string) (float64, error) {
	meta, err := c.GetChart(ctx, symbol)
	if err != nil {
		return 0, err
	}
	if meta.RegularMarketPrice <= 0 {
		return 0, fmt.Errorf("%s: non-positive price %v", symbol, meta.RegularMarketPrice)
	}
	return meta.RegularMarketPrice, nil
}

func (c *YahooServiceClient) GetName(ctx context.Context, symbol string) (string, error) {
	meta, err := c.GetChart(ctx, symbol)
	if err != nil {
		return "", err
	}
	if meta.LongName != "" {
		return meta.LongName, nil
	}
	if meta.ShortName != "" {
		return meta.ShortName, nil
	}
	return "", fmt.Errorf("%s: %w", symbol, ErrNoResult)
}

// GetAssetProfile fetches sector, industry and market cap.
func (c *YahooServiceClient) GetAssetProfile(ctx context.Context, symbol string) (*AssetProfile, error) {
	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s", c.BaseURL, c.ticker(symbol))
	params := url.Values{}
	params.Add("modules", "assetProfile,price")

	var summary QuoteSummaryResponse
	if err := c.API.GetJSON(ctx, endpoint, params, &summary); err != nil {
		return nil, err
	}
	if e := summary.QuoteSummary.Error; e != nil {
		return nil, fmt.Errorf("%s: %s: %s", symbol, e.Code, e.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNoResult)
	}

	result := summary.QuoteSummary.Result[0]
	profile := &AssetProfile{Symbol: symbol}
	if result.AssetProfile != nil {
		profile.Sector = result.AssetProfile.Sector
		profile.Industry = result.AssetProfile.Industry
	}
	if result.Price != nil {
		profile.Name = result.Price.LongName
		if profile.Name == "" {
			profile.Name = result.Price.ShortName
		}
		profile.MarketCap = result.Price.MarketCap.Raw
	}
	return profile, nil
}
