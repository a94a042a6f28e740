package services

import (
	"wallet/src/schemas"
	"wallet/src/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

type tableColumn struct {
	Name string
	Type series.Type
}

// holdingsTable is an enriched asset class laid out for export.
type holdingsTable struct {
	Sheet   string
	Columns []tableColumn
	Rows    [][]string
	Summary [][2]string
}

// DataFrame converts the table to a gota dataframe. Float columns parse their
// cells, blank cells become NaN.
func (t holdingsTable) DataFrame() dataframe.DataFrame {
	cols := make([]series.Series, len(t.Columns))
	for j, c := range t.Columns {
		values := make([]string, len(t.Rows))
		for i, r := range t.Rows {
			if j < len(r) {
				values[i] = r[j]
			}
		}
		if c.Type == series.Float {
			for i, v := range values {
				if v == "" {
					values[i] = "NaN"
				}
			}
		}
		cols[j] = series.New(values, c.Type, c.Name)
	}
	return dataframe.New(cols...)
}

func textColumn(name string) tableColumn  { return tableColumn{Name: name, Type: series.String} }
func floatColumn(name string) tableColumn { return tableColumn{Name: name, Type: series.Float} }

func num(v float64) string { return utils.FormatNumber(v) }

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return utils.FormatNumber(float64(*v))
}

func stocksTable(res *schemas.StocksResponse) holdingsTable {
	t := holdingsTable{
		Sheet: "Stocks",
		Columns: []tableColumn{
			textColumn("Stock"), textColumn("NSE_Symbol"), floatColumn("SharesOwned"), floatColumn("AveragePrice"),
			floatColumn("Current Price"), floatColumn("TotalInvestment"), floatColumn("Current Value"),
			floatColumn("Profit/Loss"), floatColumn("Returns %"),
		},
	}
	for _, r := range res.Holdings {
		t.Rows = append(t.Rows, []string{
			r.Stock.Stock, r.NSESymbol, num(r.SharesOwned), num(r.AveragePrice), num(r.CurrentPrice),
			num(r.TotalInvestment), num(r.CurrentValue), num(r.ProfitLoss), num(r.ReturnsPct),
		})
	}
	t.Summary = holdingsSummaryRows(res.Summary)
	return t
}

func mutualFundsTable(res *schemas.MutualFundsResponse) holdingsTable {
	t := holdingsTable{
		Sheet: "Mutual Funds",
		Columns: []tableColumn{
			textColumn("Scheme"), textColumn("SchemeCode"), floatColumn("UnitsOwned"), floatColumn("AverageNAV"),
			floatColumn("Current NAV"), floatColumn("TotalInvestment"), floatColumn("Current Value"),
			floatColumn("Profit/Loss"), floatColumn("Returns %"),
		},
	}
	for _, r := range res.Holdings {
		t.Rows = append(t.Rows, []string{
			r.Scheme, r.SchemeCode, num(r.UnitsOwned), num(r.AverageNAV), num(r.CurrentNAV),
			num(r.TotalInvestment), num(r.CurrentValue), num(r.ProfitLoss), num(r.ReturnsPct),
		})
	}
	t.Summary = holdingsSummaryRows(res.Summary)
	return t
}

func holdingsSummaryRows(s schemas.HoldingsSummary) [][2]string {
	return [][2]string{
		{"Total Investment", num(utils.RoundFloat(s.TotalInvestment))},
		{"Current Value", num(utils.RoundFloat(s.CurrentValue))},
		{"Total Returns %", num(s.TotalReturns)},
		{"Holdings", num(float64(s.Count))},
		{"Profitable", num(float64(s.Profitable))},
		{"% In Performing", num(s.PercentInPerforming)},
	}
}

func loansTable(res *schemas.LoansResponse) holdingsTable {
	t := holdingsTable{
		Sheet: "Loans",
		Columns: []tableColumn{
			textColumn("LoanType"), textColumn("Lender"), floatColumn("Principal"), floatColumn("OutstandingAmount"),
			floatColumn("InterestRate"), floatColumn("EMI"), floatColumn("Tenure"), textColumn("StartDate"), textColumn("EndDate"),
			floatColumn("AmountPaid"), floatColumn("Progress %"), floatColumn("RemainingMonths"),
		},
	}
	for _, r := range res.Loans {
		t.Rows = append(t.Rows, []string{
			r.LoanType, r.Lender, num(r.Principal), num(r.OutstandingAmount), num(r.InterestRate), num(r.EMI),
			num(r.Tenure), r.StartDate, r.EndDate, num(r.AmountPaid), num(r.Progress), optionalInt(r.RemainingMonths),
		})
	}
	s := res.Summary
	t.Summary = [][2]string{
		{"Total Principal", num(s.TotalPrincipal)},
		{"Total Outstanding", num(s.TotalOutstanding)},
		{"Amount Paid", num(s.TotalPaid)},
		{"Monthly EMI", num(s.TotalEMI)},
		{"Loans", num(float64(s.Count))},
	}
	return t
}

func creditCardsTable(res *schemas.CreditCardsResponse) holdingsTable {
	t := holdingsTable{
		Sheet: "Credit Cards",
		Columns: []tableColumn{
			textColumn("Bank"), textColumn("CardType"), textColumn("CardNumber"), floatColumn("CreditLimit"),
			floatColumn("OutstandingBalance"), floatColumn("AvailableCredit"), floatColumn("Utilization %"),
			floatColumn("MinimumDue"), textColumn("DueDate"), floatColumn("DaysToPayment"), floatColumn("APR"),
		},
	}
	for _, r := range res.Cards {
		t.Rows = append(t.Rows, []string{
			r.Bank, r.CardType, r.CardNumber, num(r.CreditLimit), num(r.OutstandingBalance), num(r.AvailableCredit),
			num(r.Utilization), num(r.MinimumDue), r.DueDate, optionalInt(r.DaysToPayment), num(r.APR),
		})
	}
	s := res.Summary
	t.Summary = [][2]string{
		{"Total Credit Limit", num(s.TotalLimit)},
		{"Total Outstanding", num(s.TotalOutstanding)},
		{"Available Credit", num(s.TotalAvailable)},
		{"Utilization %", num(s.Utilization)},
		{"Cards", num(float64(s.Count))},
	}
	return t
}

func savingsAccountsTable(res *schemas.SavingsAccountsResponse) holdingsTable {
	t := holdingsTable{
		Sheet: "Savings Accounts",
		Columns: []tableColumn{
			textColumn("Bank"), textColumn("AccountType"), textColumn("AccountNumber"), floatColumn("Balance"),
			floatColumn("InterestRate"), floatColumn("AnnualInterest"), textColumn("LastUpdated"),
		},
	}
	for _, r := range res.Accounts {
		t.Rows = append(t.Rows, []string{
			r.Bank, r.AccountType, r.AccountNumber, num(r.Balance), num(r.InterestRate), num(r.AnnualInterest), r.LastUpdated,
		})
	}
	s := res.Summary
	t.Summary = [][2]string{
		{"Total Balance", num(s.TotalBalance)},
		{"Annual Interest", num(s.TotalInterest)},
		{"Avg. Interest Rate", num(s.AverageRate)},
		{"Accounts", num(float64(s.Count))},
	}
	return t
}

func otherInvestmentsTable(res *schemas.OtherInvestmentsResponse) holdingsTable {
	t := holdingsTable{
		Sheet: "Other Investments",
		Columns: []tableColumn{
			textColumn("Investment"), floatColumn("Amount"), textColumn("StartDate"), textColumn("EndDate"),
			floatColumn("ExpectedReturn"), floatColumn("CurrentValue"), floatColumn("Profit/Loss"), floatColumn("Returns %"),
		},
	}
	for _, r := range res.Investments {
		t.Rows = append(t.Rows, []string{
			r.Investment, num(r.Amount), r.StartDate, r.EndDate, num(r.ExpectedReturn),
			num(r.CurrentValue), num(r.ProfitLoss), num(r.ReturnsPct),
		})
	}
	s := res.Summary
	t.Summary = [][2]string{
		{"Total Invested", num(s.TotalInvested)},
		{"Current Value", num(s.CurrentValue)},
		{"Total Returns %", num(s.TotalReturns)},
		{"Investments", num(float64(s.Count))},
	}
	return t
}

func overviewTable(o *schemas.Overview) holdingsTable {
	return holdingsTable{
		Sheet:   "Overview",
		Columns: []tableColumn{textColumn("Asset Class"), floatColumn("Invested"), floatColumn("Value"), floatColumn("Returns %")},
		Rows: [][]string{
			{"Stocks", num(o.Stocks.TotalInvestment), num(o.Stocks.CurrentValue), num(o.Stocks.TotalReturns)},
			{"Mutual Funds", num(o.MutualFunds.TotalInvestment), num(o.MutualFunds.CurrentValue), num(o.MutualFunds.TotalReturns)},
			{"Other Investments", num(o.OtherInvestments.TotalInvested), num(o.OtherInvestments.CurrentValue), num(o.OtherInvestments.TotalReturns)},
			{"Savings", "", num(o.SavingsAccounts.TotalBalance), ""},
			{"Credit Cards", "", num(-o.CreditCards.TotalOutstanding), ""},
			{"Loans", "", num(-o.Loans.TotalOutstanding), ""},
		},
		Summary: [][2]string{{"Net Worth", num(utils.RoundFloat(o.NetWorth))}},
	}
}
