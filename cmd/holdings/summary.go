package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"wallet/src/schemas"
	"wallet/src/services"
	"wallet/src/utils"
	"wallet/src/utils/render"

	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "print the portfolio overview" }
func (*summaryCmd) Usage() string {
	return `holdings summary

  Loads every holdings file, prices stocks and funds, and prints totals per
  asset class and the net worth.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, logger, err := loadConfig()
	if err != nil {
		return fail(err, subcommands.ExitFailure)
	}
	portfolio := services.NewPortfolioService(services.NewStores(cfg), services.NewPriceServiceFromConfig(cfg))
	overview, err := portfolio.GetOverview(utils.WithLogger(ctx, logger))
	if err != nil {
		return fail(err, subcommands.ExitFailure)
	}
	printMarkdown(summaryMarkdown(overview))
	return subcommands.ExitSuccess
}

func summaryMarkdown(o *schemas.Overview) string {
	money := render.FormatMonetaryValue
	pct := render.FormatPercentageValue
	var b strings.Builder

	b.WriteString("# Portfolio overview\n\n")
	fmt.Fprintf(&b, "**Net worth:** %s\n\n", money(o.NetWorth))

	b.WriteString("| Class | Count | Invested | Current value | Returns |\n")
	b.WriteString("|---|---:|---:|---:|---:|\n")
	fmt.Fprintf(&b, "| Stocks | %d | %s | %s | %s |\n", o.Stocks.Count,
		money(o.Stocks.TotalInvestment), money(o.Stocks.CurrentValue), pct(o.Stocks.TotalReturns))
	fmt.Fprintf(&b, "| Mutual funds | %d | %s | %s | %s |\n", o.MutualFunds.Count,
		money(o.MutualFunds.TotalInvestment), money(o.MutualFunds.CurrentValue), pct(o.MutualFunds.TotalReturns))
	fmt.Fprintf(&b, "| Other investments | %d | %s | %s | %s |\n", o.OtherInvestments.Count,
		money(o.OtherInvestments.TotalInvested), money(o.OtherInvestments.CurrentValue), pct(o.OtherInvestments.TotalReturns))
	b.WriteString("\n")

	b.WriteString("| Accounts | Count | Total |\n|---|---:|---:|\n")
	fmt.Fprintf(&b, "| Savings balance | %d | %s |\n", o.SavingsAccounts.Count, money(o.SavingsAccounts.TotalBalance))
	fmt.Fprintf(&b, "| Card outstanding | %d | %s |\n", o.CreditCards.Count, money(o.CreditCards.TotalOutstanding))
	fmt.Fprintf(&b, "| Loan outstanding | %d | %s |\n", o.Loans.Count, money(o.Loans.TotalOutstanding))

	if len(o.Fallbacks) > 0 {
		b.WriteString("\n## Prices not fetched\n\n")
		for _, fb := range o.Fallbacks {
			fmt.Fprintf(&b, "- `%s`: %s %s (%s)\n", fb.ID, fb.Source, render.FormatFloat(fb.Value), fb.Reason)
		}
	}
	return b.String()
}
