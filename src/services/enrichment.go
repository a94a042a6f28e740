package services

import (
	"strings"
	"time"

	"wallet/src/models"
	"wallet/src/schemas"
	"wallet/src/utils"
)

// valuation is the shared arithmetic of stocks and mutual funds.
type valuation struct {
	invested   float64
	value      float64
	profitLoss float64
	returns    float64
}

func valuate(qty, avgPrice, currentPrice float64) valuation {
	invested := qty * avgPrice
	value := qty * currentPrice
	pl := value - invested
	return valuation{
		invested:   invested,
		value:      value,
		profitLoss: pl,
		returns:    utils.Percent(pl, invested),
	}
}

func EnrichStocks(stocks []models.Stock, prices map[string]Resolution) []schemas.StockRow {
	rows := make([]schemas.StockRow, 0, len(stocks))
	for _, s := range stocks {
		price := resolutionFor(prices, s.NSESymbol)
		v := valuate(s.SharesOwned, s.AveragePrice, price.Price)
		rows = append(rows, schemas.StockRow{
			Stock:           s,
			CurrentPrice:    price.Price,
			PriceSource:     price.Source,
			TotalInvestment: v.invested,
			CurrentValue:    v.value,
			ProfitLoss:      v.profitLoss,
			ReturnsPct:      v.returns,
		})
	}
	return rows
}

func EnrichMutualFunds(funds []models.MutualFund, navs map[string]Resolution) []schemas.MutualFundRow {
	rows := make([]schemas.MutualFundRow, 0, len(funds))
	for _, f := range funds {
		nav := resolutionFor(navs, f.SchemeCode)
		v := valuate(f.UnitsOwned, f.AverageNAV, nav.Price)
		rows = append(rows, schemas.MutualFundRow{
			MutualFund:      f,
			CurrentNAV:      nav.Price,
			PriceSource:     nav.Source,
			TotalInvestment: v.invested,
			CurrentValue:    v.value,
			ProfitLoss:      v.profitLoss,
			ReturnsPct:      v.returns,
		})
	}
	return rows
}

func resolutionFor(prices map[string]Resolution, id string) Resolution {
	if r, ok := prices[strings.TrimSpace(id)]; ok {
		return r
	}
	return Resolution{Source: schemas.PriceMissing}
}

func summarizeHoldings(values []valuation) schemas.HoldingsSummary {
	var summary schemas.HoldingsSummary
	var performing float64
	for _, v := range values {
		summary.TotalInvestment += v.invested
		summary.CurrentValue += v.value
		if v.returns > 0 {
			summary.Profitable++
			performing += v.value
		}
	}
	summary.Count = len(values)
	summary.TotalReturns = utils.Percent(summary.CurrentValue-summary.TotalInvestment, summary.TotalInvestment)
	if summary.CurrentValue > 0 {
		summary.PercentInPerforming = utils.Percent(performing, summary.CurrentValue)
	}
	return summary
}

func SummarizeStocks(rows []schemas.StockRow) schemas.HoldingsSummary {
	values := make([]valuation, len(rows))
	for i, r := range rows {
		values[i] = valuation{invested: r.TotalInvestment, value: r.CurrentValue, returns: r.ReturnsPct}
	}
	return summarizeHoldings(values)
}

func SummarizeMutualFunds(rows []schemas.MutualFundRow) schemas.HoldingsSummary {
	values := make([]valuation, len(rows))
	for i, r := range rows {
		values[i] = valuation{invested: r.TotalInvestment, value: r.CurrentValue, returns: r.ReturnsPct}
	}
	return summarizeHoldings(values)
}

// EnrichLoans derives repayment progress. RemainingMonths counts calendar
// months from now to EndDate and stays nil when EndDate does not parse.
func EnrichLoans(loans []models.Loan, now time.Time) []schemas.LoanRow {
	rows := make([]schemas.LoanRow, 0, len(loans))
	for _, l := range loans {
		paid := l.Principal - l.OutstandingAmount
		row := schemas.LoanRow{
			Loan:       l,
			AmountPaid: paid,
			Progress:   utils.Percent(paid, l.Principal),
		}
		if end, err := utils.ParseDate(l.EndDate); err == nil {
			months := utils.MonthsBetween(now, end)
			row.RemainingMonths = &months
		}
		rows = append(rows, row)
	}
	return rows
}

func SummarizeLoans(rows []schemas.LoanRow) schemas.LoanSummary {
	var summary schemas.LoanSummary
	for _, r := range rows {
		summary.TotalPrincipal += r.Principal
		summary.TotalOutstanding += r.OutstandingAmount
		summary.TotalPaid += r.AmountPaid
		summary.TotalEMI += r.EMI
	}
	summary.Count = len(rows)
	return summary
}

func EnrichCreditCards(cards []models.CreditCard, now time.Time) []schemas.CreditCardRow {
	rows := make([]schemas.CreditCardRow, 0, len(cards))
	for _, c := range cards {
		row := schemas.CreditCardRow{
			CreditCard:      c,
			AvailableCredit: c.CreditLimit - c.OutstandingBalance,
			Utilization:     utils.Percent(c.OutstandingBalance, c.CreditLimit),
		}
		if due, err := utils.ParseDate(c.DueDate); err == nil {
			days := utils.DaysBetween(now, due)
			row.DaysToPayment = &days
		}
		rows = append(rows, row)
	}
	return rows
}

func SummarizeCreditCards(rows []schemas.CreditCardRow) schemas.CreditCardSummary {
	var summary schemas.CreditCardSummary
	for _, r := range rows {
		summary.TotalLimit += r.CreditLimit
		summary.TotalOutstanding += r.OutstandingBalance
		summary.TotalAvailable += r.AvailableCredit
	}
	summary.Count = len(rows)
	summary.Utilization = utils.Percent(summary.TotalOutstanding, summary.TotalLimit)
	return summary
}

func EnrichSavingsAccounts(accounts []models.SavingsAccount) []schemas.SavingsAccountRow {
	rows := make([]schemas.SavingsAccountRow, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, schemas.SavingsAccountRow{
			SavingsAccount: a,
			AnnualInterest: utils.RoundFloat(a.Balance * a.InterestRate / 100),
		})
	}
	return rows
}

func SummarizeSavingsAccounts(rows []schemas.SavingsAccountRow) schemas.SavingsSummary {
	var summary schemas.SavingsSummary
	var rates float64
	for _, r := range rows {
		summary.TotalBalance += r.Balance
		summary.TotalInterest += r.AnnualInterest
		rates += r.InterestRate
	}
	summary.Count = len(rows)
	if summary.Count > 0 {
		summary.AverageRate = utils.RoundFloat(rates / float64(summary.Count))
	}
	return summary
}

func EnrichOtherInvestments(investments []models.OtherInvestment) []schemas.OtherInvestmentRow {
	rows := make([]schemas.OtherInvestmentRow, 0, len(investments))
	for _, o := range investments {
		value := o.Amount * (1 + o.ExpectedReturn/100)
		pl := value - o.Amount
		rows = append(rows, schemas.OtherInvestmentRow{
			OtherInvestment: o,
			CurrentValue:    value,
			ProfitLoss:      pl,
			ReturnsPct:      utils.Percent(pl, o.Amount),
		})
	}
	return rows
}

func SummarizeOtherInvestments(rows []schemas.OtherInvestmentRow) schemas.OtherInvestmentSummary {
	var summary schemas.OtherInvestmentSummary
	for _, r := range rows {
		summary.TotalInvested += r.Amount
		summary.CurrentValue += r.CurrentValue
	}
	summary.Count = len(rows)
	summary.TotalReturns = utils.Percent(summary.CurrentValue-summary.TotalInvested, summary.TotalInvested)
	return summary
}

// NetWorth is assets minus card and loan balances.
func NetWorth(o schemas.Overview) float64 {
	return o.Stocks.CurrentValue + o.MutualFunds.CurrentValue + o.OtherInvestments.CurrentValue +
		o.SavingsAccounts.TotalBalance - o.CreditCards.TotalOutstanding - o.Loans.TotalOutstanding
}

// Snapshot flattens an overview into one history row.
func Snapshot(o schemas.Overview, date time.Time) models.PortfolioSnapshot {
	return models.PortfolioSnapshot{
		Date:            date.Format(utils.ShortDashDateLayout),
		StocksInvested:  utils.RoundFloat(o.Stocks.TotalInvestment),
		StocksValue:     utils.RoundFloat(o.Stocks.CurrentValue),
		FundsInvested:   utils.RoundFloat(o.MutualFunds.TotalInvestment),
		FundsValue:      utils.RoundFloat(o.MutualFunds.CurrentValue),
		OtherValue:      utils.RoundFloat(o.OtherInvestments.CurrentValue),
		SavingsBalance:  utils.RoundFloat(o.SavingsAccounts.TotalBalance),
		CardOutstanding: utils.RoundFloat(o.CreditCards.TotalOutstanding),
		LoanOutstanding: utils.RoundFloat(o.Loans.TotalOutstanding),
		NetWorth:        utils.RoundFloat(o.NetWorth),
	}
}
