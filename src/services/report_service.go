package services

import (
	"context"
	"fmt"

	"wallet/src/utils/render"
)

type ReportServiceI interface {
	GenerateOverviewHTML(ctx context.Context) ([]string, error)
	GeneratePDFReport(ctx context.Context) ([]byte, error)
}

type ReportService struct {
	Portfolio PortfolioServiceI
}

func NewReportService(portfolio PortfolioServiceI) *ReportService {
	return &ReportService{Portfolio: portfolio}
}

// GenerateOverviewHTML renders one page for the overview and one per asset
// class.
func (rs *ReportService) GenerateOverviewHTML(ctx context.Context) ([]string, error) {
	overview, err := rs.Portfolio.GetOverview(ctx)
	if err != nil {
		return nil, err
	}

	tables := []holdingsTable{overviewTable(overview)}
	stocks, err := rs.Portfolio.GetStocks(ctx)
	if err != nil {
		return nil, err
	}
	tables = append(tables, stocksTable(stocks))
	funds, err := rs.Portfolio.GetMutualFunds(ctx)
	if err != nil {
		return nil, err
	}
	tables = append(tables, mutualFundsTable(funds))
	loans, err := rs.Portfolio.GetLoans(ctx)
	if err != nil {
		return nil, err
	}
	tables = append(tables, loansTable(loans))
	cards, err := rs.Portfolio.GetCreditCards(ctx)
	if err != nil {
		return nil, err
	}
	tables = append(tables, creditCardsTable(cards))
	savings, err := rs.Portfolio.GetSavingsAccounts(ctx)
	if err != nil {
		return nil, err
	}
	tables = append(tables, savingsAccountsTable(savings))
	others, err := rs.Portfolio.GetOtherInvestments(ctx)
	if err != nil {
		return nil, err
	}
	tables = append(tables, otherInvestmentsTable(others))

	pages := make([]string, 0, len(tables))
	for i, t := range tables {
		body, err := render.GetTableHTML(t.DataFrame())
		if err != nil {
			return nil, fmt.Errorf("failed to generate table for %s: %w", t.Sheet, err)
		}
		summary, err := render.GetTableHTML(summaryDataframe(t.Summary))
		if err != nil {
			return nil, fmt.Errorf("failed to generate summary for %s: %w", t.Sheet, err)
		}
		body += summary
		if i == 0 {
			body += render.RenderPieChart("Allocation", []render.Slice{
				{Name: "Stocks", Value: overview.Stocks.CurrentValue},
				{Name: "Mutual Funds", Value: overview.MutualFunds.CurrentValue},
				{Name: "Other Investments", Value: overview.OtherInvestments.CurrentValue},
				{Name: "Savings", Value: overview.SavingsAccounts.TotalBalance},
			}, false)
		}
		page, err := render.RenderPage(t.Sheet, body)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func (rs *ReportService) GeneratePDFReport(ctx context.Context) ([]byte, error) {
	pages, err := rs.GenerateOverviewHTML(ctx)
	if err != nil {
		return nil, err
	}
	pdfBuffer, err := render.GeneratePDF(pages)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return pdfBuffer.Bytes(), nil
}
