package models

import (
	"errors"
	"fmt"
	"strings"

	"wallet/src/utils"
)

var ErrInvalidNumber = errors.New("invalid number")

// Row gives access to one CSV record by column name.
type Row map[string]string

// NewRow pairs a record with its header. Missing trailing cells read as "".
func NewRow(header, record []string) Row {
	row := make(Row, len(header))
	for i, col := range header {
		if i < len(record) {
			row[strings.TrimSpace(col)] = record[i]
		} else {
			row[strings.TrimSpace(col)] = ""
		}
	}
	return row
}

func (r Row) String(col string) string {
	return strings.TrimSpace(r[col])
}

// Float reads a numeric column. Blank cells are 0.
func (r Row) Float(col string) (float64, error) {
	value := r.String(col)
	if value == "" {
		return 0, nil
	}
	f, ok := utils.ParseNumber(value)
	if !ok {
		return 0, fmt.Errorf("column %s: %w: %q", col, ErrInvalidNumber, value)
	}
	return f, nil
}

// floats reads several numeric columns into the given pointers, stopping at
// the first invalid one.
func (r Row) floats(targets map[string]*float64) error {
	for col, target := range targets {
		v, err := r.Float(col)
		if err != nil {
			return err
		}
		*target = v
	}
	return nil
}

func num(v float64) string {
	return utils.FormatNumber(v)
}
