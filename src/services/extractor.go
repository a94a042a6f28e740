package services

import (
	"fmt"
	"math"
	"strings"

	"wallet/src/config"
	"wallet/src/utils"

	"github.com/go-gota/gota/series"
)

type ExtractionTier string

const (
	TierDirectHeader   ExtractionTier = "direct_header"
	TierLooseHeader    ExtractionTier = "loose_header"
	TierScoredFallback ExtractionTier = "scored_fallback"
)

const knownNameLabel = "scheme name"

var (
	headerNameKeywords  = []string{"scheme", "fund"}
	headerQtyKeywords   = []string{"unit", "balance", "holdings"}
	directNameKeywords  = []string{"scheme", "fund name", "name"}
	looseHeaderKeywords = []string{"scheme", "fund"}
	scoredNameKeywords  = []string{"scheme", "name", "fund"}
	scoredQtyKeywords   = []string{"unit", "balance", "holding", "quantity"}
)

// ExtractionError is returned when no tier can locate a sufficiently
// populated pair of name and quantity columns.
type ExtractionError struct {
	Rows   int
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not identify mutual fund holdings in %d rows: %s", e.Rows, e.Reason)
}

type ExtractedHolding struct {
	Name     string
	Quantity float64
}

// Extraction describes where the holdings were found. Row and column indexes
// are zero based.
type Extraction struct {
	Tier           ExtractionTier
	HeaderRow      int
	DataStart      int
	NameColumn     int
	QuantityColumn int
	Holdings       []ExtractedHolding
}

// Records renders the holdings as the canonical two column table.
func (e *Extraction) Records() [][]string {
	records := make([][]string, 0, len(e.Holdings)+1)
	records = append(records, []string{"Scheme", "UnitsOwned"})
	for _, h := range e.Holdings {
		records = append(records, []string{h.Name, utils.FormatNumber(h.Quantity)})
	}
	return records
}

// Extractor locates scheme names and unit balances in a sheet of unknown
// layout. The zero value is not usable; see NewExtractor.
type Extractor struct {
	HeaderScanRows     int
	FallbackHeaderRows int
	FallbackOffsets    int
	MinPopulatedRows   int
}

func NewExtractor(cfg config.ImportConfig) *Extractor {
	e := DefaultExtractor()
	if cfg.HeaderScanRows > 0 {
		e.HeaderScanRows = cfg.HeaderScanRows
	}
	if cfg.FallbackHeaderRows > 0 {
		e.FallbackHeaderRows = cfg.FallbackHeaderRows
	}
	if cfg.FallbackOffsets > 0 {
		e.FallbackOffsets = cfg.FallbackOffsets
	}
	if cfg.MinPopulatedRows > 0 {
		e.MinPopulatedRows = cfg.MinPopulatedRows
	}
	return e
}

func DefaultExtractor() *Extractor {
	return &Extractor{
		HeaderScanRows:     30,
		FallbackHeaderRows: 10,
		FallbackOffsets:    5,
		MinPopulatedRows:   10,
	}
}

// Extract runs the direct header scan, the loose header scan and the scored
// fallback in that order. The first tier whose cleaned output has at least
// MinPopulatedRows holdings wins.
func (x *Extractor) Extract(rows [][]string) (*Extraction, error) {
	if e := x.directHeader(rows); e != nil {
		return e, nil
	}
	if e := x.looseHeader(rows); e != nil {
		return e, nil
	}
	if e := x.scoredFallback(rows); e != nil {
		return e, nil
	}
	return nil, &ExtractionError{
		Rows:   len(rows),
		Reason: fmt.Sprintf("no header and column pair with at least %d populated rows", x.MinPopulatedRows),
	}
}

func (x *Extractor) directHeader(rows [][]string) *Extraction {
	for h := 0; h < min(x.HeaderScanRows, len(rows)); h++ {
		cells := lowerCells(rows[h])
		text := strings.Join(cells, " ")

		qualifies := containsAny(text, headerNameKeywords) && containsAny(text, headerQtyKeywords)
		for _, c := range cells {
			if c == knownNameLabel {
				qualifies = true
			}
		}
		if !qualifies {
			continue
		}

		nameCol := firstMatch(cells, directNameKeywords, -1)
		qtyCol := firstMatch(cells, headerQtyKeywords, nameCol)
		if nameCol < 0 || qtyCol < 0 {
			continue
		}
		return x.accept(rows, TierDirectHeader, h, h+1, nameCol, qtyCol)
	}
	return nil
}

func (x *Extractor) looseHeader(rows [][]string) *Extraction {
	for h := 0; h < min(x.HeaderScanRows, len(rows)); h++ {
		cells := lowerCells(rows[h])
		if firstMatch(cells, looseHeaderKeywords, -1) < 0 {
			continue
		}
		nameCol := firstMatch(cells, scoredNameKeywords, -1)
		qtyCol := firstMatch(cells, scoredQtyKeywords, nameCol)
		if nameCol < 0 || qtyCol < 0 {
			return nil
		}
		return x.accept(rows, TierLooseHeader, h, h+1, nameCol, qtyCol)
	}
	return nil
}

func (x *Extractor) scoredFallback(rows [][]string) *Extraction {
	for h := 0; h < min(x.FallbackHeaderRows, len(rows)); h++ {
		header := lowerCells(rows[h])
		for o := 0; o < x.FallbackOffsets; o++ {
			start := h + o + 1
			if start >= len(rows) {
				break
			}

			nameCol, nameQuality := -1, -1
			qtyCol, qtyQuality := -1, -1
			for j, label := range header {
				if label == "" {
					continue
				}
				switch {
				case containsAny(label, scoredNameKeywords):
					if q := populatedCount(columnValues(rows, start, j)); q > nameQuality {
						nameCol, nameQuality = j, q
					}
				case containsAny(label, scoredQtyKeywords):
					if q := numericCount(columnValues(rows, start, j)); q > qtyQuality {
						qtyCol, qtyQuality = j, q
					}
				}
			}
			if nameCol < 0 || qtyCol < 0 {
				continue
			}
			if nameQuality < x.MinPopulatedRows || qtyQuality < x.MinPopulatedRows {
				continue
			}
			if e := x.accept(rows, TierScoredFallback, h, start, nameCol, qtyCol); e != nil {
				return e
			}
		}
	}
	return nil
}

// accept cleans the candidate columns and returns nil when too few holdings
// survive.
func (x *Extractor) accept(rows [][]string, tier ExtractionTier, header, start, nameCol, qtyCol int) *Extraction {
	holdings := cleanHoldings(rows, start, nameCol, qtyCol)
	if len(holdings) < x.MinPopulatedRows {
		return nil
	}
	return &Extraction{
		Tier:           tier,
		HeaderRow:      header,
		DataStart:      start,
		NameColumn:     nameCol,
		QuantityColumn: qtyCol,
		Holdings:       holdings,
	}
}

// cleanHoldings keeps rows with a non-blank name and a numeric quantity.
func cleanHoldings(rows [][]string, start, nameCol, qtyCol int) []ExtractedHolding {
	holdings := make([]ExtractedHolding, 0)
	for i := start; i < len(rows); i++ {
		name := strings.TrimSpace(cell(rows[i], nameCol))
		if name == "" {
			continue
		}
		qty, ok := utils.ParseNumber(cell(rows[i], qtyCol))
		if !ok {
			continue
		}
		holdings = append(holdings, ExtractedHolding{Name: name, Quantity: qty})
	}
	return holdings
}

func columnValues(rows [][]string, start, col int) []string {
	values := make([]string, 0, len(rows)-start)
	for i := start; i < len(rows); i++ {
		values = append(values, strings.TrimSpace(cell(rows[i], col)))
	}
	return values
}

func populatedCount(values []string) int {
	s := series.New(values, series.String, "name")
	count := 0
	for _, v := range s.Records() {
		if v != "" {
			count++
		}
	}
	return count
}

func numericCount(values []string) int {
	s := series.New(values, series.Float, "quantity")
	count := 0
	for _, f := range s.Float() {
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			count++
		}
	}
	return count
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

func lowerCells(row []string) []string {
	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = strings.ToLower(strings.TrimSpace(c))
	}
	return cells
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// firstMatch returns the index of the first cell containing any keyword,
// skipping the cell at skip, or -1.
func firstMatch(cells []string, keywords []string, skip int) int {
	for i, c := range cells {
		if i == skip || c == "" {
			continue
		}
		if containsAny(c, keywords) {
			return i
		}
	}
	return -1
}
