package services

import (
	"context"
	"sort"
	"strings"

	"wallet/src/models"
	"wallet/src/repositories"
	"wallet/src/schemas"
	"wallet/src/utils"
	"wallet/src/utils/render"
)

const otherSector = "Others"

type MarketServiceI interface {
	GetMarket(ctx context.Context) (*schemas.MarketResponse, error)
	GetHistory(ctx context.Context) (*schemas.HistoryResponse, error)
	SectorChartHTML(ctx context.Context) (string, error)
	HistoryChartHTML(ctx context.Context) (string, error)
}

type MarketService struct {
	Stocks  repositories.Store[models.Stock]
	History repositories.Store[models.PortfolioSnapshot]
	Prices  PriceServiceI
}

func NewMarketService(stocks repositories.Store[models.Stock], history repositories.Store[models.PortfolioSnapshot], prices PriceServiceI) *MarketService {
	return &MarketService{Stocks: stocks, History: history, Prices: prices}
}

// GetMarket returns the share of invested amount per sector, largest first,
// and the category split of the stock portfolio.
func (s *MarketService) GetMarket(ctx context.Context) (*schemas.MarketResponse, error) {
	stocks, err := s.Stocks.Load(ctx)
	if err != nil {
		return nil, err
	}

	symbols := make([]string, len(stocks))
	for i, st := range stocks {
		symbols[i] = st.NSESymbol
	}
	profiles := s.Prices.AssetProfiles(ctx, symbols)

	sectorOf := make(map[string]string, len(symbols))
	for symbol, p := range profiles {
		if p != nil && strings.TrimSpace(p.Sector) != "" {
			sectorOf[symbol] = p.Sector
		}
	}
	return &schemas.MarketResponse{
		Sectors:    SectorDistribution(stocks, sectorOf),
		Categories: CategoryDistribution(stocks),
	}, nil
}

// SectorDistribution computes percent of invested amount per sector.
// Symbols without a known sector count as Others.
func SectorDistribution(stocks []models.Stock, sectorOf map[string]string) []schemas.Share {
	acc := make(map[string]float64)
	var total float64
	for _, st := range stocks {
		invested := st.SharesOwned * st.AveragePrice
		sector, ok := sectorOf[strings.TrimSpace(st.NSESymbol)]
		if !ok {
			sector = otherSector
		}
		acc[sector] += invested
		total += invested
	}

	shares := make([]schemas.Share, 0, len(acc))
	if total == 0 {
		return shares
	}
	for name, v := range acc {
		shares = append(shares, schemas.Share{Name: name, Percent: utils.Percent(v, total)})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Percent != shares[j].Percent {
			return shares[i].Percent > shares[j].Percent
		}
		return shares[i].Name < shares[j].Name
	})
	return shares
}

// CategoryDistribution reports the stock portfolio as pure equity.
func CategoryDistribution(stocks []models.Stock) []schemas.Share {
	for _, st := range stocks {
		if st.SharesOwned*st.AveragePrice > 0 {
			return []schemas.Share{{Name: "Equity", Percent: 100}}
		}
	}
	return []schemas.Share{}
}

func (s *MarketService) GetHistory(ctx context.Context) (*schemas.HistoryResponse, error) {
	snapshots, err := s.History.Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(snapshots, func(i, j int) bool { return snapshots[i].Date < snapshots[j].Date })
	return &schemas.HistoryResponse{Snapshots: snapshots}, nil
}

func (s *MarketService) SectorChartHTML(ctx context.Context) (string, error) {
	market, err := s.GetMarket(ctx)
	if err != nil {
		return "", err
	}
	slices := make([]render.Slice, len(market.Sectors))
	for i, sh := range market.Sectors {
		slices[i] = render.Slice{Name: sh.Name, Value: sh.Percent}
	}
	return render.RenderPage("Sector Distribution", render.RenderPieChart("Sector Distribution", slices, true))
}

func (s *MarketService) HistoryChartHTML(ctx context.Context) (string, error) {
	history, err := s.GetHistory(ctx)
	if err != nil {
		return "", err
	}
	labels, lines := historyLines(history.Snapshots)
	return render.RenderPage("Portfolio History", render.RenderLineChart("Portfolio History", labels, lines))
}

func historyLines(snapshots []models.PortfolioSnapshot) ([]string, []render.Line) {
	labels := make([]string, len(snapshots))
	netWorth := render.Line{Name: "Net Worth", Values: make([]float64, len(snapshots))}
	invested := render.Line{Name: "Invested", Values: make([]float64, len(snapshots))}
	value := render.Line{Name: "Market Value", Values: make([]float64, len(snapshots))}
	for i, sn := range snapshots {
		labels[i] = sn.Date
		netWorth.Values[i] = sn.NetWorth
		invested.Values[i] = sn.StocksInvested + sn.FundsInvested
		value.Values[i] = sn.StocksValue + sn.FundsValue
	}
	return labels, []render.Line{netWorth, invested, value}
}
