package services_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wallet/src/repositories"
	"wallet/src/schemas"
	"wallet/src/services"
	"wallet/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// statementRows mimics a registrar statement: a title, a blank line, the
// header and n holdings.
func statementRows(n int) [][]interface{} {
	rows := [][]interface{}{
		{"Consolidated Account Statement"},
		{},
		{"Folio", "Scheme Name", "Units Balance", "NAV"},
	}
	for i := 1; i <= n; i++ {
		rows = append(rows, []interface{}{fmt.Sprintf("F%03d", i), fmt.Sprintf("Scheme %02d Direct Growth", i), float64(i) + 0.5, 10.0})
	}
	return rows
}

func writeSheet(t *testing.T, f *excelize.File, sheet string, rows [][]interface{}) {
	t.Helper()
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
}

func workbookBytes(t *testing.T, f *excelize.File) *bytes.Buffer {
	t.Helper()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func newImportService(t *testing.T) (*services.ImportService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "myMFPortfolio.csv")
	return services.NewImportService(services.DefaultExtractor(), repositories.NewMutualFundStore(path)), path
}

func TestImportWorkbookAppendsCanonicalRows(t *testing.T) {
	svc, path := newImportService(t)
	f := excelize.NewFile()
	writeSheet(t, f, "Sheet1", statementRows(12))

	res, err := svc.ImportWorkbook(context.Background(), workbookBytes(t, f), schemas.ImportOptions{FileName: "cas.xlsx"})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ImportID)
	assert.Equal(t, "Sheet1", res.Sheet)
	assert.Equal(t, string(services.TierDirectHeader), res.Tier)
	assert.Equal(t, 2, res.HeaderRow)
	assert.Equal(t, 1, res.NameColumn)
	assert.Equal(t, 2, res.QtyColumn)
	assert.Equal(t, 12, res.RecordsCount)
	assert.Equal(t, schemas.ImportedHolding{Scheme: "Scheme 01 Direct Growth", UnitsOwned: 1.5}, res.Holdings[0])

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "Scheme,UnitsOwned,AverageNAV,SchemeCode", lines[0])
	assert.Equal(t, "Scheme 01 Direct Growth,1.5,,", lines[1])
}

func TestImportWorkbookReplace(t *testing.T) {
	svc, path := newImportService(t)
	ctx := context.Background()
	f := excelize.NewFile()
	writeSheet(t, f, "Sheet1", statementRows(10))

	_, err := svc.ImportWorkbook(ctx, workbookBytes(t, f), schemas.ImportOptions{FileName: "cas.xlsx"})
	require.NoError(t, err)
	_, err = svc.ImportWorkbook(ctx, workbookBytes(t, f), schemas.ImportOptions{FileName: "cas.xlsx"})
	require.NoError(t, err)

	funds, err := repositories.NewMutualFundStore(path).Load(ctx)
	require.NoError(t, err)
	assert.Len(t, funds, 20)

	res, err := svc.ImportWorkbook(ctx, workbookBytes(t, f), schemas.ImportOptions{FileName: "cas.xlsx", Replace: true})
	require.NoError(t, err)
	assert.True(t, res.Replaced)

	funds, err = repositories.NewMutualFundStore(path).Load(ctx)
	require.NoError(t, err)
	assert.Len(t, funds, 10)
}

func TestImportWorkbookFailureWritesNothing(t *testing.T) {
	svc, path := newImportService(t)
	ctx := context.Background()
	existing := "Scheme,UnitsOwned,AverageNAV,SchemeCode\nKept Fund,5,10,119598\n"
	require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))

	f := excelize.NewFile()
	writeSheet(t, f, "Sheet1", statementRows(4))

	_, err := svc.ImportWorkbook(ctx, workbookBytes(t, f), schemas.ImportOptions{FileName: "cas.xlsx", Replace: true})
	var extractionErr *services.ExtractionError
	require.ErrorAs(t, err, &extractionErr)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, existing, string(content))
}

func TestImportCSVFile(t *testing.T) {
	svc, _ := newImportService(t)
	var b strings.Builder
	b.WriteString("Scheme Name,Units\n")
	for i := 1; i <= 10; i++ {
		fmt.Fprintf(&b, "Fund %d,%d\n", i, i*3)
	}

	res, err := svc.ImportWorkbook(context.Background(), strings.NewReader(b.String()), schemas.ImportOptions{FileName: "holdings.csv"})
	require.NoError(t, err)
	assert.Equal(t, "holdings", res.Sheet)
	assert.Equal(t, 10, res.RecordsCount)
	assert.Equal(t, 30.0, res.Holdings[9].UnitsOwned)
}

func TestImportRejectsUnreadableWorkbook(t *testing.T) {
	svc, _ := newImportService(t)

	_, err := svc.ImportWorkbook(context.Background(), strings.NewReader("not a zip"), schemas.ImportOptions{FileName: "cas.xlsx"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not open workbook")
	var httpErr *utils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestSelectHoldingsSheetPrefersFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	writeSheet(t, f, "Sheet1", [][]interface{}{{"Anything"}})
	writeSheet(t, f, "Holdings", statementRows(10))

	name, rows, err := services.SelectHoldingsSheet(f)
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", name)
	assert.Len(t, rows, 1)
}

func TestSelectHoldingsSheetFallsBackToHoldings(t *testing.T) {
	f := excelize.NewFile()
	writeSheet(t, f, "Notes", [][]interface{}{{"Nothing to see"}})
	writeSheet(t, f, "Holdings", statementRows(10))

	name, _, err := services.SelectHoldingsSheet(f)
	require.NoError(t, err)
	assert.Equal(t, "Holdings", name)
}

func TestSelectHoldingsSheetByKeyword(t *testing.T) {
	f := excelize.NewFile()
	writeSheet(t, f, "Notes", [][]interface{}{{"Nothing to see"}})
	writeSheet(t, f, "MF Data", statementRows(10))

	name, rows, err := services.SelectHoldingsSheet(f)
	require.NoError(t, err)
	assert.Equal(t, "MF Data", name)
	assert.Len(t, rows, 13)
}

func TestSelectHoldingsSheetNothingFound(t *testing.T) {
	f := excelize.NewFile()

	_, _, err := services.SelectHoldingsSheet(f)
	var extractionErr *services.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}
