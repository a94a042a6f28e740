package main

import (
	"testing"

	"wallet/src/schemas"

	"github.com/stretchr/testify/assert"
)

func TestSummaryMarkdown(t *testing.T) {
	overview := &schemas.Overview{
		Stocks:      schemas.HoldingsSummary{TotalInvestment: 5000, CurrentValue: 6000, TotalReturns: 20, Count: 1},
		MutualFunds: schemas.HoldingsSummary{TotalInvestment: 1234.5, CurrentValue: 1500, TotalReturns: 21.51, Count: 2},
		Loans:       schemas.LoanSummary{TotalOutstanding: 250000, Count: 1},
		NetWorth:    -242500,
	}

	md := summaryMarkdown(overview)

	assert.Contains(t, md, "**Net worth:** -₹242,500.00")
	assert.Contains(t, md, "| Stocks | 1 | ₹5,000.00 | ₹6,000.00 | 20.00% |")
	assert.Contains(t, md, "| Mutual funds | 2 | ₹1,234.50 | ₹1,500.00 | 21.51% |")
	assert.Contains(t, md, "| Loan outstanding | 1 | ₹250,000.00 |")
	assert.NotContains(t, md, "Prices not fetched")
}

func TestSummaryMarkdownListsFallbacks(t *testing.T) {
	overview := &schemas.Overview{
		Fallbacks: []schemas.FallbackNotice{{ID: "SBIN", Value: 600, Source: "fallback", Reason: "yahoo: timeout"}},
	}

	md := summaryMarkdown(overview)

	assert.Contains(t, md, "## Prices not fetched")
	assert.Contains(t, md, "- `SBIN`: fallback 600.00 (yahoo: timeout)")
}
