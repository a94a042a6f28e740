package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReadCSVRecords reads every record of a CSV file, header included.
func ReadCSVRecords(filePath string) ([][]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read the file: %w", err)
	}
	return rows, nil
}

// ReadCSV reads every record from r. Rows may have different lengths.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

// WriteCSVRecords replaces filePath with records. The content is written to a
// temporary file in the same directory and renamed over the target, so readers
// never observe a half written file.
func WriteCSVRecords(filePath string, records [][]string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	if err := writer.WriteAll(records); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filePath)
}
