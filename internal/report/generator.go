// Package report renders pipeline output tables for export.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mohamed-68/pnl-report/internal/common"
	"github.com/Mohamed-68/pnl-report/internal/logging"
)

var log logging.Logger = logging.NewLogrusAdapter("info", "text")

// SetLogger allows setting a custom logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Supported output formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ValidateFormat checks that a format name is supported.
func ValidateFormat(format string) error {
	switch format {
	case FormatCSV, FormatJSON:
		return nil
	}
	return fmt.Errorf("unsupported report format: %s (must be 'csv' or 'json')", format)
}

// Render serializes a report table in the requested format.
func Render[TRow any](rows []TRow, format string) ([]byte, error) {
	switch format {
	case FormatCSV:
		return common.MarshalCSVBytes(rows)
	case FormatJSON:
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unsupported report format: %s", format)
}

// Write renders a report table to a file, creating the parent directory if
// needed.
func Write[TRow any](rows []TRow, filePath, format string) error {
	if format == FormatCSV {
		return common.WriteCSVFile(rows, filePath)
	}

	data, err := Render(rows, format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("error writing report file: %w", err)
	}

	log.Info("Wrote report",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldFormat, format),
		logging.F(logging.FieldCount, len(rows)))
	return nil
}
