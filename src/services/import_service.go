package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"wallet/src/models"
	"wallet/src/repositories"
	"wallet/src/schemas"
	"wallet/src/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	holdingsSheetName = "Holdings"
	sheetProbeRows    = 20
)

var sheetKeywords = []string{"scheme", "fund", "mutual"}

type ImportServiceI interface {
	ImportWorkbook(ctx context.Context, r io.Reader, opts schemas.ImportOptions) (*schemas.ImportResponse, error)
}

type ImportService struct {
	Extractor *Extractor
	Store     repositories.Store[models.MutualFund]
}

func NewImportService(extractor *Extractor, store repositories.Store[models.MutualFund]) *ImportService {
	return &ImportService{Extractor: extractor, Store: store}
}

// ImportWorkbook extracts mutual fund holdings from an uploaded workbook (or
// CSV file) and writes them to the mutual fund store. Nothing is written when
// extraction fails.
func (s *ImportService) ImportWorkbook(ctx context.Context, r io.Reader, opts schemas.ImportOptions) (*schemas.ImportResponse, error) {
	importID := uuid.NewString()
	logger := utils.LoggerFromContext(ctx).WithField("import_id", importID)

	sheet, rows, err := ReadHoldingsSheet(r, opts.FileName)
	if err != nil {
		logger.Warnf("Could not read %s: %v", opts.FileName, err)
		return nil, err
	}
	logger.Infof("Using sheet %q (%d rows)", sheet, len(rows))

	extraction, err := s.Extractor.Extract(rows)
	if err != nil {
		logger.Warn(err)
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"tier":            extraction.Tier,
		"header_row":      extraction.HeaderRow,
		"name_column":     extraction.NameColumn,
		"quantity_column": extraction.QuantityColumn,
	}).Infof("Found %d mutual fund schemes", len(extraction.Holdings))

	funds := make([]models.MutualFund, 0, len(extraction.Holdings))
	holdings := make([]schemas.ImportedHolding, 0, len(extraction.Holdings))
	for _, h := range extraction.Holdings {
		funds = append(funds, models.NewImportedMutualFund(h.Name, h.Quantity))
		holdings = append(holdings, schemas.ImportedHolding{Scheme: h.Name, UnitsOwned: h.Quantity})
	}

	if opts.Replace {
		err = s.Store.Save(ctx, funds)
	} else {
		err = s.Store.Append(ctx, funds...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to store imported holdings: %w", err)
	}
	logger.Infof("Imported holdings written to %s", s.Store.Path())

	return &schemas.ImportResponse{
		ImportID:     importID,
		Sheet:        sheet,
		Tier:         string(extraction.Tier),
		HeaderRow:    extraction.HeaderRow,
		NameColumn:   extraction.NameColumn,
		QtyColumn:    extraction.QuantityColumn,
		Replaced:     opts.Replace,
		Holdings:     holdings,
		RecordsCount: len(holdings),
	}, nil
}

// ReadHoldingsSheet returns the rows of the sheet most likely to hold mutual
// fund data. CSV files are a single sheet named after the file.
func ReadHoldingsSheet(r io.Reader, fileName string) (string, [][]string, error) {
	if strings.EqualFold(filepath.Ext(fileName), ".csv") {
		rows, err := utils.ReadCSV(r)
		if err != nil {
			return "", nil, utils.BadRequest(fmt.Sprintf("could not read CSV file: %v", err))
		}
		return strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName)), rows, nil
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", nil, utils.BadRequest(fmt.Sprintf("could not open workbook: %v", err))
	}
	defer f.Close()

	return SelectHoldingsSheet(f)
}

// SelectHoldingsSheet picks the first sheet when it has rows, else the sheet
// named Holdings, else the first sheet whose early rows mention scheme, fund
// or mutual.
func SelectHoldingsSheet(f *excelize.File) (string, [][]string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil, &ExtractionError{Reason: "workbook has no sheets"}
	}

	if rows, err := sheetRows(f, sheets[0]); err == nil && len(rows) > 0 {
		return sheets[0], rows, nil
	}

	for _, name := range sheets {
		if name != holdingsSheetName {
			continue
		}
		if rows, err := sheetRows(f, name); err == nil && len(rows) > 0 {
			return name, rows, nil
		}
	}

	for _, name := range sheets {
		rows, err := sheetRows(f, name)
		if err != nil {
			continue
		}
		for i := 0; i < min(sheetProbeRows, len(rows)); i++ {
			text := strings.ToLower(strings.Join(rows[i], " "))
			if containsAny(text, sheetKeywords) {
				return name, rows, nil
			}
		}
	}
	return "", nil, &ExtractionError{Reason: "could not find any sheet with mutual fund data"}
}

func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	return f.GetRows(sheet, excelize.Options{RawCellValue: true})
}
