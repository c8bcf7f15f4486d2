// Package tabular provides shared CSV input/output across the pipeline:
// raw source files with arbitrary headers are read into Tables, and
// canonical transactions are read and written through gocsv.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"campusfin/procure-csv/internal/logging"
	"campusfin/procure-csv/internal/models"

	"github.com/gocarina/gocsv"
)

// Table is a raw tabular file: a header row plus data rows. No schema is
// assumed beyond what the source's alias table declares.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ReadRawTable reads a delimited file with arbitrary headers into a Table.
// Short rows are padded and long rows truncated to the header width so
// downstream indexing is always safe.
func ReadRawTable(r io.Reader, logger logging.Logger) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return Table{}, fmt.Errorf("empty input: no header row")
		}
		return Table{}, fmt.Errorf("error reading header row: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			logger.WithError(err).Warn("Skipping malformed CSV row")
			continue
		}
		if len(record) < len(header) {
			padded := make([]string, len(header))
			copy(padded, record)
			record = padded
		} else if len(record) > len(header) {
			record = record[:len(header)]
		}
		rows = append(rows, record)
	}

	return Table{Headers: header, Rows: rows}, nil
}

// ReadRawTableFile opens and reads a raw source file.
func ReadRawTableFile(path string, logger logging.Logger) (Table, error) {
	logger.Info("Reading raw source file", logging.Field{Key: logging.FieldFile, Value: path})

	file, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("error opening raw file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	table, err := ReadRawTable(file, logger)
	if err != nil {
		return Table{}, err
	}
	logger.Info("Read raw rows", logging.Field{Key: logging.FieldCount, Value: len(table.Rows)})
	return table, nil
}

// WriteTransactionsCSV writes canonical transactions to a CSV file in the
// fixed canonical column order. All cleaners use this to guarantee a
// consistent output shape.
func WriteTransactionsCSV(transactions []models.CanonicalTransaction, csvFile string, logger logging.Logger) error {
	logger.Info("Writing canonical transactions",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	if err := os.MkdirAll(filepath.Dir(csvFile), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]models.TransactionCSVRow, 0, len(transactions))
	for i := range transactions {
		rows = append(rows, transactions[i].ToCSVRow())
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

// ReadTransactionsCSV reads a canonical transaction CSV written by
// WriteTransactionsCSV back into memory.
func ReadTransactionsCSV(path string, logger logging.Logger) ([]models.CanonicalTransaction, error) {
	logger.Info("Reading canonical transactions", logging.Field{Key: logging.FieldFile, Value: path})

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []models.TransactionCSVRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	transactions := make([]models.CanonicalTransaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, rows[i].ToTransaction())
	}
	return transactions, nil
}
