package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"wallet/src/clients/mfapi"
	"wallet/src/clients/yahoo"
	"wallet/src/schemas"
	"wallet/src/utils"
)

const (
	ProviderYahoo = "yahoo"
	ProviderMFAPI = "mfapi"
)

// Quote is a successfully fetched price or NAV.
type Quote struct {
	ID    string
	Price float64
}

// FetchError records why the price of one identifier could not be fetched.
type FetchError struct {
	ID       string
	Provider string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s price for %q: %v", e.Provider, e.ID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// PriceResult holds exactly one of Quote or Err.
type PriceResult struct {
	Quote *Quote
	Err   *FetchError
}

// QuoteFunc fetches the current price of one identifier.
type QuoteFunc func(ctx context.Context, id string) (float64, error)

type PriceServiceI interface {
	FetchStockPrices(ctx context.Context, symbols []string) map[string]PriceResult
	FetchNAVs(ctx context.Context, codes []string) map[string]PriceResult
	StockName(ctx context.Context, symbol string) string
	SchemeName(ctx context.Context, code string) string
	AssetProfiles(ctx context.Context, symbols []string) map[string]*yahoo.AssetProfile
}

type PriceService struct {
	Yahoo yahoo.YahooServiceClientI
	MFAPI mfapi.MFAPIServiceClientI
	Delay time.Duration
}

func NewPriceService(yahooClient yahoo.YahooServiceClientI, mfapiClient mfapi.MFAPIServiceClientI, delay time.Duration) *PriceService {
	return &PriceService{Yahoo: yahooClient, MFAPI: mfapiClient, Delay: delay}
}

func (s *PriceService) FetchStockPrices(ctx context.Context, symbols []string) map[string]PriceResult {
	return s.FetchAll(ctx, symbols, ProviderYahoo, s.Yahoo.GetPrice)
}

func (s *PriceService) FetchNAVs(ctx context.Context, codes []string) map[string]PriceResult {
	return s.FetchAll(ctx, codes, ProviderMFAPI, s.MFAPI.GetNAV)
}

// FetchAll issues one request per unique identifier, in first-seen order,
// waiting Delay between consecutive requests. Failed requests are not
// retried. Empty identifiers are reported as failures without a request.
func (s *PriceService) FetchAll(ctx context.Context, ids []string, provider string, fetch QuoteFunc) map[string]PriceResult {
	logger := utils.LoggerFromContext(ctx)
	results := make(map[string]PriceResult, len(ids))

	requested := 0
	for _, raw := range ids {
		id := strings.TrimSpace(raw)
		if _, done := results[id]; done {
			continue
		}
		if id == "" {
			results[id] = PriceResult{Err: &FetchError{ID: id, Provider: provider, Err: fmt.Errorf("empty identifier")}}
			continue
		}

		if requested > 0 && s.Delay > 0 {
			if err := sleepContext(ctx, s.Delay); err != nil {
				results[id] = PriceResult{Err: &FetchError{ID: id, Provider: provider, Err: err}}
				continue
			}
		}
		if err := ctx.Err(); err != nil {
			results[id] = PriceResult{Err: &FetchError{ID: id, Provider: provider, Err: err}}
			continue
		}
		requested++

		price, err := fetch(ctx, id)
		if err == nil && price <= 0 {
			err = fmt.Errorf("non-positive price %v", price)
		}
		if err != nil {
			logger.Warnf("Error fetching %s price for %s: %v", provider, id, err)
			results[id] = PriceResult{Err: &FetchError{ID: id, Provider: provider, Err: err}}
			continue
		}
		results[id] = PriceResult{Quote: &Quote{ID: id, Price: price}}
	}
	return results
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// FallbackPolicy supplies a replacement price for an identifier whose fetch
// failed.
type FallbackPolicy interface {
	Fallback(id string) (float64, bool)
}

// StaticFallback is a fixed identifier to price table.
type StaticFallback map[string]float64

func (f StaticFallback) Fallback(id string) (float64, bool) {
	price, ok := f[id]
	return price, ok
}

// NoFallback never supplies a price.
type NoFallback struct{}

func (NoFallback) Fallback(string) (float64, bool) { return 0, false }

// Resolution is the price used for one identifier after the fallback policy
// has been applied.
type Resolution struct {
	Price  float64
	Source schemas.PriceSource
}

// Resolve turns fetch results into prices. Failures take the policy's value
// when it has one and price 0 otherwise; every failure is listed in the
// returned notices, sorted by identifier.
func Resolve(results map[string]PriceResult, policy FallbackPolicy) (map[string]Resolution, []schemas.FallbackNotice) {
	if policy == nil {
		policy = NoFallback{}
	}
	prices := make(map[string]Resolution, len(results))
	notices := make([]schemas.FallbackNotice, 0)

	for id, result := range results {
		if result.Quote != nil {
			prices[id] = Resolution{Price: result.Quote.Price, Source: schemas.PriceLive}
			continue
		}

		reason := "no result"
		provider := ""
		if result.Err != nil {
			reason = result.Err.Err.Error()
			provider = result.Err.Provider
		}
		if price, ok := policy.Fallback(id); ok {
			prices[id] = Resolution{Price: price, Source: schemas.PriceFallback}
			notices = append(notices, schemas.FallbackNotice{ID: id, Value: price, Source: string(schemas.PriceFallback), Reason: reason})
			continue
		}
		prices[id] = Resolution{Price: 0, Source: schemas.PriceMissing}
		notices = append(notices, schemas.FallbackNotice{ID: id, Value: 0, Source: string(schemas.PriceMissing), Reason: fmt.Sprintf("%s %s", provider, reason)})
	}

	sort.Slice(notices, func(i, j int) bool { return notices[i].ID < notices[j].ID })
	return prices, notices
}

// StockName resolves the display name of an NSE symbol: known names first,
// then the provider, then the symbol itself.
func (s *PriceService) StockName(ctx context.Context, symbol string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if name, ok := StockNames[symbol]; ok {
		return name
	}
	name, err := s.Yahoo.GetName(ctx, symbol)
	if err != nil || name == "" {
		utils.LoggerFromContext(ctx).Warnf("Error fetching stock name for %s: %v", symbol, err)
		return symbol
	}
	return name
}

// SchemeName resolves the display name of a scheme code the same way.
func (s *PriceService) SchemeName(ctx context.Context, code string) string {
	code = strings.TrimSpace(code)
	if name, ok := SchemeNames[code]; ok {
		return name
	}
	name, err := s.MFAPI.GetSchemeName(ctx, code)
	if err != nil || name == "" {
		utils.LoggerFromContext(ctx).Warnf("Error fetching scheme name for %s: %v", code, err)
		return code
	}
	return name
}

// AssetProfiles fetches company profiles sequentially with the same delay as
// price requests. Symbols whose profile cannot be fetched are absent.
func (s *PriceService) AssetProfiles(ctx context.Context, symbols []string) map[string]*yahoo.AssetProfile {
	logger := utils.LoggerFromContext(ctx)
	profiles := make(map[string]*yahoo.AssetProfile, len(symbols))
	seen := make(map[string]bool, len(symbols))

	for _, raw := range symbols {
		symbol := strings.TrimSpace(raw)
		if symbol == "" || seen[symbol] {
			continue
		}
		if len(seen) > 0 && s.Delay > 0 {
			if err := sleepContext(ctx, s.Delay); err != nil {
				return profiles
			}
		}
		seen[symbol] = true

		profile, err := s.Yahoo.GetAssetProfile(ctx, symbol)
		if err != nil {
			logger.Warnf("Error fetching profile for %s: %v", symbol, err)
			continue
		}
		profiles[symbol] = profile
	}
	return profiles
}
