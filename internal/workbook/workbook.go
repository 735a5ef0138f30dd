// Package workbook extracts raw P&L fact rows from Excel workbooks.
//
// Two layouts are supported: a clean long-form fact sheet
// ("FactPnL_Monthly"), and the hand-maintained wide P&L sheets named like
// "Actual P&L 2024", where months run across the columns and section titles
// and subtotals are interleaved with the account rows.
package workbook

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Mohamed-68/pnl-report/internal/dateutils"
	"github.com/Mohamed-68/pnl-report/internal/logging"
	"github.com/Mohamed-68/pnl-report/internal/models"
	"github.com/Mohamed-68/pnl-report/internal/parsererror"
)

var log logging.Logger = logging.NewLogrusAdapter("info", "text")

// SetLogger allows setting a custom logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// FactSheetName is the sheet holding the clean long-form fact table, when
// the workbook has one.
const FactSheetName = "FactPnL_Monthly"

var (
	pnlSheetPattern    = regexp.MustCompile(`^(Actual|Budget)\s+P&L\s+(\d{4})$`)
	accountCodePattern = regexp.MustCompile(`^\d{3,6}$`)
)

// monthColumns maps the month header tokens of the wide sheets.
var monthColumns = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// PnLSheet identifies one scenario-year wide sheet within a workbook.
type PnLSheet struct {
	Name     string
	Scenario string
	Year     int
}

// DetectPnLSheets returns the wide P&L sheets found in the workbook, in
// workbook order.
func DetectPnLSheets(f *excelize.File) []PnLSheet {
	var sheets []PnLSheet
	for _, name := range f.GetSheetList() {
		m := pnlSheetPattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		sheets = append(sheets, PnLSheet{Name: name, Scenario: m[1], Year: year})
	}
	return sheets
}

// Extract reads every recognizable fact row out of a workbook. When the
// clean fact sheet is present it wins; otherwise all detected wide P&L
// sheets are unpivoted and concatenated.
func Extract(filePath string) ([]models.RawFact, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	for _, name := range f.GetSheetList() {
		if name == FactSheetName {
			return extractFactSheet(f, name)
		}
	}

	sheets := DetectPnLSheets(f)
	if len(sheets) == 0 {
		return nil, &parsererror.ValidationError{
			Source: filePath,
			Reason: fmt.Sprintf("no %s sheet and no 'Actual|Budget P&L <year>' sheets found", FactSheetName),
		}
	}

	var raws []models.RawFact
	for _, sheet := range sheets {
		rows, err := extractWideSheet(f, sheet)
		if err != nil {
			return nil, err
		}
		raws = append(raws, rows...)
	}
	return raws, nil
}

// ExtractSheet reads one named sheet, unpivoting it when it matches the wide
// P&L naming scheme and reading it as a fact table otherwise.
func ExtractSheet(filePath, sheetName string) ([]models.RawFact, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if m := pnlSheetPattern.FindStringSubmatch(sheetName); m != nil {
		year, _ := strconv.Atoi(m[2])
		return extractWideSheet(f, PnLSheet{Name: sheetName, Scenario: m[1], Year: year})
	}
	return extractFactSheet(f, sheetName)
}

// extractFactSheet reads a clean long-form sheet with a header row naming
// the four fact columns.
func extractFactSheet(f *excelize.File, sheetName string) ([]models.RawFact, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}
	if len(rows) < 2 {
		return nil, &parsererror.ValidationError{
			Source: sheetName,
			Reason: "sheet has no data rows",
		}
	}

	cols := map[string]int{}
	for i, header := range rows[0] {
		cols[normalizeHeader(header)] = i
	}
	for _, required := range []string{"monthenddate", "scenario", "accountcode", "amount"} {
		if _, ok := cols[required]; !ok {
			return nil, &parsererror.ValidationError{
				Source: sheetName,
				Reason: fmt.Sprintf("missing column %s", required),
			}
		}
	}

	raws := make([]models.RawFact, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		raws = append(raws, models.RawFact{
			MonthEndDate: cell(row, cols["monthenddate"]),
			Scenario:     cell(row, cols["scenario"]),
			AccountCode:  cell(row, cols["accountcode"]),
			Amount:       cell(row, cols["amount"]),
		})
	}

	log.Info("Extracted fact sheet",
		logging.F(logging.FieldSheet, sheetName),
		logging.F(logging.FieldCount, len(raws)))
	return raws, nil
}

// extractWideSheet unpivots one scenario-year sheet laid out as
// Account | Line Item | Jan..Dec | Total, with title rows above the header
// and section/subtotal rows interleaved with the account rows.
func extractWideSheet(f *excelize.File, sheet PnLSheet) ([]models.RawFact, error) {
	rows, err := f.GetRows(sheet.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet.Name, err)
	}

	months := findMonthColumns(rows)
	if len(months) == 0 {
		return nil, &parsererror.ValidationError{
			Source: sheet.Name,
			Reason: "no month header row found",
		}
	}

	// Walk the month columns in sheet order so repeated extractions of the
	// same workbook emit rows in the same order.
	cols := make([]int, 0, len(months))
	for col := range months {
		cols = append(cols, col)
	}
	sort.Ints(cols)

	var raws []models.RawFact
	for _, row := range rows {
		// Only rows whose first column looks like an account code carry
		// facts; section titles and subtotal rows are skipped so derived
		// lines are never double counted.
		code := strings.TrimSpace(cell(row, 0))
		if !accountCodePattern.MatchString(code) {
			continue
		}
		for _, col := range cols {
			month := months[col]
			value := strings.TrimSpace(cell(row, col))
			// Blank and "-" cells are absent values, not zeros.
			if value == "" || value == "-" {
				continue
			}
			raws = append(raws, models.RawFact{
				MonthEndDate: dateutils.ToISODate(dateutils.MonthEnd(sheet.Year, month)),
				Scenario:     sheet.Scenario,
				AccountCode:  code,
				Amount:       value,
			})
		}
	}

	log.Info("Extracted wide P&L sheet",
		logging.F(logging.FieldSheet, sheet.Name),
		logging.F(logging.FieldCount, len(raws)))
	return raws, nil
}

// findMonthColumns locates the header row and maps column index to month.
// The header row is the first one carrying at least three month tokens,
// which keeps a "Total" column or a stray title row from matching.
func findMonthColumns(rows [][]string) map[int]time.Month {
	for _, row := range rows {
		months := make(map[int]time.Month)
		for i, header := range row {
			token := strings.ToLower(strings.TrimSpace(header))
			if len(token) > 3 {
				token = token[:3]
			}
			if month, ok := monthColumns[token]; ok {
				months[i] = month
			}
		}
		if len(months) >= 3 {
			return months
		}
	}
	return nil
}

// normalizeHeader lowers a header cell and strips everything but letters
// and digits, so "Month End Date", "month_end_date" and "MonthEndDate" all
// resolve to the same key.
func normalizeHeader(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(header) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
