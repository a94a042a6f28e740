package services

import (
	"context"
	"fmt"
	"math"

	"wallet/src/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// Asset class identifiers as they appear in export URLs.
const (
	ClassStocks           = "stocks"
	ClassMutualFunds      = "mutual-funds"
	ClassLoans            = "loans"
	ClassCreditCards      = "credit-cards"
	ClassSavingsAccounts  = "savings-accounts"
	ClassOtherInvestments = "other-investments"
)

type ExportServiceI interface {
	GenerateXLSX(ctx context.Context, class string) (*excelize.File, error)
}

type ExportService struct {
	Portfolio PortfolioServiceI
}

func NewExportService(portfolio PortfolioServiceI) *ExportService {
	return &ExportService{Portfolio: portfolio}
}

// GenerateXLSX builds a workbook with the enriched table of one asset class
// and a sheet with its summary.
func (s *ExportService) GenerateXLSX(ctx context.Context, class string) (*excelize.File, error) {
	table, err := s.table(ctx, class)
	if err != nil {
		return nil, err
	}

	file, err := convertDataframeToExcel(nil, table.DataFrame(), table.Sheet)
	if err != nil {
		return nil, err
	}
	file, err = convertDataframeToExcel(file, summaryDataframe(table.Summary), "Summary")
	if err != nil {
		return nil, err
	}
	if err := applyStylesToAllSheets(file); err != nil {
		return nil, err
	}
	return file, nil
}

func (s *ExportService) table(ctx context.Context, class string) (holdingsTable, error) {
	switch class {
	case ClassStocks:
		res, err := s.Portfolio.GetStocks(ctx)
		if err != nil {
			return holdingsTable{}, err
		}
		return stocksTable(res), nil
	case ClassMutualFunds:
		res, err := s.Portfolio.GetMutualFunds(ctx)
		if err != nil {
			return holdingsTable{}, err
		}
		return mutualFundsTable(res), nil
	case ClassLoans:
		res, err := s.Portfolio.GetLoans(ctx)
		if err != nil {
			return holdingsTable{}, err
		}
		return loansTable(res), nil
	case ClassCreditCards:
		res, err := s.Portfolio.GetCreditCards(ctx)
		if err != nil {
			return holdingsTable{}, err
		}
		return creditCardsTable(res), nil
	case ClassSavingsAccounts:
		res, err := s.Portfolio.GetSavingsAccounts(ctx)
		if err != nil {
			return holdingsTable{}, err
		}
		return savingsAccountsTable(res), nil
	case ClassOtherInvestments:
		res, err := s.Portfolio.GetOtherInvestments(ctx)
		if err != nil {
			return holdingsTable{}, err
		}
		return otherInvestmentsTable(res), nil
	}
	return holdingsTable{}, utils.NotFound(fmt.Sprintf("unknown asset class %q", class))
}

func summaryDataframe(rows [][2]string) dataframe.DataFrame {
	metrics := make([]string, len(rows))
	values := make([]string, len(rows))
	for i, r := range rows {
		metrics[i], values[i] = r[0], r[1]
	}
	return dataframe.New(
		series.New(metrics, series.String, "Metric"),
		series.New(values, series.Float, "Value"),
	)
}

// convertDataframeToExcel writes df into a new sheet, creating the workbook
// when f is nil. The header goes in row 1.
func convertDataframeToExcel(f *excelize.File, df dataframe.DataFrame, sheetName string) (*excelize.File, error) {
	if f == nil {
		f = excelize.NewFile()
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			return nil, err
		}
	} else if _, err := f.NewSheet(sheetName); err != nil {
		return nil, err
	}

	for j, name := range df.Names() {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return nil, err
		}

		col := df.Col(name)
		for i := 0; i < df.Nrow(); i++ {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			var value interface{}
			if col.Type() == series.Float {
				v := col.Elem(i).Float()
				if math.IsNaN(v) {
					continue
				}
				value = v
			} else {
				value = col.Elem(i).String()
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func applyStylesToAllSheets(f *excelize.File) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6E6"},
			Pattern: 1,
		},
		Border: cellBorders(),
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		Border:    cellBorders(),
		NumFmt:    4, // #,##0.00
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			continue
		}

		lastRow := len(rows)
		lastCol := len(rows[0])
		lastColName, err := excelize.ColumnNumberToName(lastCol)
		if err != nil {
			return err
		}

		if err := f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", lastColName), headerStyle); err != nil {
			return err
		}
		if lastRow > 1 {
			if err := f.SetCellStyle(sheetName, "A2", fmt.Sprintf("%s%d", lastColName, lastRow), dataStyle); err != nil {
				return err
			}
		}
		if err := f.SetColWidth(sheetName, "A", lastColName, 18); err != nil {
			return err
		}
	}
	return nil
}

func cellBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
}
