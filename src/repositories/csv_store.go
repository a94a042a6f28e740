package repositories

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"wallet/src/models"
	"wallet/src/utils"
)

var ErrInvalidRow = errors.New("invalid row")

// DuplicateError is returned by Append when a record's identifier is already
// stored, or repeated within the appended batch.
type DuplicateError struct {
	Column string
	Value  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Column, e.Value)
}

// Schema describes how one asset class is laid out in its CSV file.
type Schema[T any] struct {
	Name      string
	Columns   []string
	KeyColumn string
	Key       func(T) string
	Encode    func(T) []string
	Decode    func(models.Row) (T, error)
}

// Store is the persistence contract the services depend on.
type Store[T any] interface {
	Path() string
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, records []T) error
	Append(ctx context.Context, records ...T) error
	Upsert(ctx context.Context, record T) error
}

// CSVStore keeps one asset class in a flat CSV file. The file is always read
// and rewritten whole; mu serializes writers within the process.
type CSVStore[T any] struct {
	path   string
	schema Schema[T]
	mu     sync.Mutex
}

func NewCSVStore[T any](path string, schema Schema[T]) *CSVStore[T] {
	return &CSVStore[T]{path: path, schema: schema}
}

func (s *CSVStore[T]) Path() string {
	return s.path
}

func (s *CSVStore[T]) Schema() Schema[T] {
	return s.schema
}

// Load returns every record of the file. A missing file is created with the
// header only and yields an empty table.
func (s *CSVStore[T]) Load(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *CSVStore[T]) load(ctx context.Context) ([]T, error) {
	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}
	return table.items, nil
}

// table is a loaded file: the header as written, the raw cells of every
// non-blank data row and the records decoded from them, index aligned.
type table[T any] struct {
	header []string
	rows   [][]string
	items  []T
}

func (s *CSVStore[T]) loadTable(ctx context.Context) (*table[T], error) {
	logger := utils.LoggerFromContext(ctx)

	rows, err := utils.ReadCSVRecords(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Infof("%s file %s not found, creating it", s.schema.Name, s.path)
		if err := utils.WriteCSVRecords(s.path, [][]string{s.schema.Columns}); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", s.path, err)
		}
		return &table[T]{header: s.schema.Columns, items: []T{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", s.path, err)
	}
	if len(rows) == 0 {
		return &table[T]{header: s.schema.Columns, items: []T{}}, nil
	}

	t := &table[T]{
		header: rows[0],
		rows:   make([][]string, 0, len(rows)-1),
		items:  make([]T, 0, len(rows)-1),
	}
	for i, record := range rows[1:] {
		if isBlank(record) {
			continue
		}
		item, err := s.schema.Decode(models.NewRow(t.header, record))
		if err != nil {
			// i+2: 1-based line number after the header
			return nil, fmt.Errorf("%s line %d: %w: %w", s.path, i+2, ErrInvalidRow, err)
		}
		t.rows = append(t.rows, record)
		t.items = append(t.items, item)
	}
	return t, nil
}

// Save rewrites the whole file with records, in the canonical columns only.
func (s *CSVStore[T]) Save(ctx context.Context, records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(records)
}

func (s *CSVStore[T]) save(records []T) error {
	out := make([][]string, 0, len(records)+1)
	out = append(out, s.schema.Columns)
	for _, r := range records {
		out = append(out, s.schema.Encode(r))
	}
	return s.write(out)
}

func (s *CSVStore[T]) write(out [][]string) error {
	if err := utils.WriteCSVRecords(s.path, out); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.path, err)
	}
	return nil
}

// writeBack rewrites t keeping the file's own header, extra columns and the
// cells of untouched rows as they were read. Canonical columns missing from
// the header are added after the existing ones. replaced maps a row index to
// the record that overwrites its canonical cells; added rows go at the end.
func (s *CSVStore[T]) writeBack(t *table[T], replaced map[int]T, added []T) error {
	header := make([]string, len(t.header), len(t.header)+len(s.schema.Columns))
	copy(header, t.header)
	index := make(map[string]int, len(header))
	for i, col := range header {
		col = strings.TrimSpace(col)
		if _, ok := index[col]; !ok {
			index[col] = i
		}
	}
	for _, col := range s.schema.Columns {
		if _, ok := index[col]; !ok {
			index[col] = len(header)
			header = append(header, col)
		}
	}

	encode := func(r T, base []string) []string {
		row := make([]string, len(header))
		copy(row, base)
		for j, cell := range s.schema.Encode(r) {
			row[index[s.schema.Columns[j]]] = cell
		}
		return row
	}

	out := make([][]string, 0, len(t.rows)+len(added)+1)
	out = append(out, header)
	for i, raw := range t.rows {
		if r, ok := replaced[i]; ok {
			out = append(out, encode(r, raw))
			continue
		}
		row := make([]string, len(header))
		copy(row, raw)
		out = append(out, row)
	}
	for _, r := range added {
		out = append(out, encode(r, nil))
	}
	return s.write(out)
}

// Append adds records at the end of the file. Nothing is written when any of
// them has a non-empty identifier that is already taken. Identifiers compare
// case-insensitively.
func (s *CSVStore[T]) Append(ctx context.Context, records ...T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.loadTable(ctx)
	if err != nil {
		return err
	}

	if s.schema.Key != nil {
		seen := make(map[string]bool, len(t.items)+len(records))
		for _, e := range t.items {
			if k := normalizeKey(s.schema.Key(e)); k != "" {
				seen[k] = true
			}
		}
		for _, r := range records {
			k := normalizeKey(s.schema.Key(r))
			if k == "" {
				continue
			}
			if seen[k] {
				return &DuplicateError{Column: s.schema.KeyColumn, Value: s.schema.Key(r)}
			}
			seen[k] = true
		}
	}

	return s.writeBack(t, nil, records)
}

// Upsert replaces the record sharing r's identifier, or appends r.
func (s *CSVStore[T]) Upsert(ctx context.Context, r T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.loadTable(ctx)
	if err != nil {
		return err
	}
	key := normalizeKey(s.schema.Key(r))
	for i, e := range t.items {
		if normalizeKey(s.schema.Key(e)) == key {
			return s.writeBack(t, map[int]T{i: r}, nil)
		}
	}
	return s.writeBack(t, nil, []T{r})
}

func normalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}

func keyless[T any](T) string { return "" }

func NewStockStore(path string) *CSVStore[models.Stock] {
	return NewCSVStore(path, Schema[models.Stock]{
		Name:      "stocks",
		Columns:   models.StockColumns,
		KeyColumn: "NSE_Symbol",
		Key:       models.Stock.Key,
		Encode:    models.Stock.Record,
		Decode:    models.DecodeStock,
	})
}

func NewMutualFundStore(path string) *CSVStore[models.MutualFund] {
	return NewCSVStore(path, Schema[models.MutualFund]{
		Name:      "mutual funds",
		Columns:   models.MutualFundColumns,
		KeyColumn: "SchemeCode",
		Key:       models.MutualFund.Key,
		Encode:    models.MutualFund.Record,
		Decode:    models.DecodeMutualFund,
	})
}

func NewLoanStore(path string) *CSVStore[models.Loan] {
	return NewCSVStore(path, Schema[models.Loan]{
		Name:    "loans",
		Columns: models.LoanColumns,
		Key:     keyless[models.Loan],
		Encode:  models.Loan.Record,
		Decode:  models.DecodeLoan,
	})
}

func NewCreditCardStore(path string) *CSVStore[models.CreditCard] {
	return NewCSVStore(path, Schema[models.CreditCard]{
		Name:      "credit cards",
		Columns:   models.CreditCardColumns,
		KeyColumn: "CardNumber",
		Key:       models.CreditCard.Key,
		Encode:    models.CreditCard.Record,
		Decode:    models.DecodeCreditCard,
	})
}

func NewSavingsAccountStore(path string) *CSVStore[models.SavingsAccount] {
	return NewCSVStore(path, Schema[models.SavingsAccount]{
		Name:      "savings accounts",
		Columns:   models.SavingsAccountColumns,
		KeyColumn: "AccountNumber",
		Key:       models.SavingsAccount.Key,
		Encode:    models.SavingsAccount.Record,
		Decode:    models.DecodeSavingsAccount,
	})
}

func NewOtherInvestmentStore(path string) *CSVStore[models.OtherInvestment] {
	return NewCSVStore(path, Schema[models.OtherInvestment]{
		Name:    "other investments",
		Columns: models.OtherInvestmentColumns,
		Key:     keyless[models.OtherInvestment],
		Encode:  models.OtherInvestment.Record,
		Decode:  models.DecodeOtherInvestment,
	})
}

func NewSnapshotStore(path string) *CSVStore[models.PortfolioSnapshot] {
	return NewCSVStore(path, Schema[models.PortfolioSnapshot]{
		Name:      "portfolio history",
		Columns:   models.SnapshotColumns,
		KeyColumn: "Date",
		Key:       models.PortfolioSnapshot.Key,
		Encode:    models.PortfolioSnapshot.Record,
		Decode:    models.DecodePortfolioSnapshot,
	})
}
