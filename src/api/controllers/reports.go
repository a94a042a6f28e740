package controllers

import (
	"context"

	"wallet/src/schemas"

	"github.com/xuri/excelize/v2"
)

func (c *Controller) GenerateXLSX(ctx context.Context, class string) (*excelize.File, error) {
	return c.ExportService.GenerateXLSX(ctx, class)
}

func (c *Controller) GeneratePDFReport(ctx context.Context) ([]byte, error) {
	return c.ReportService.GeneratePDFReport(ctx)
}

func (c *Controller) GetMarket(ctx context.Context) (*schemas.MarketResponse, error) {
	return c.MarketService.GetMarket(ctx)
}

func (c *Controller) GetHistory(ctx context.Context) (*schemas.HistoryResponse, error) {
	return c.MarketService.GetHistory(ctx)
}

func (c *Controller) SectorChartHTML(ctx context.Context) (string, error) {
	return c.MarketService.SectorChartHTML(ctx)
}

func (c *Controller) HistoryChartHTML(ctx context.Context) (string, error) {
	return c.MarketService.HistoryChartHTML(ctx)
}
