// Package normalizer canonicalizes raw fact rows into the fixed shapes the
// rest of the pipeline works on.
package normalizer

import (
	"fmt"
	"strings"

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

// DefaultCodeWidth is the fixed width account codes are padded to when no
// width is configured.
const DefaultCodeWidth = 4

// Normalize coerces a batch of raw fact rows into canonical facts:
// dates truncated to day precision, scenarios upper-cased and trimmed,
// account codes zero-padded to codeWidth, amounts rounded to 2 fractional
// digits with banker's rounding.
//
// The whole batch fails on the first malformed row. Partial aggregation
// would silently under-report, so no facts are returned alongside an error.
func Normalize(raws []models.RawFact, codeWidth int) ([]models.Fact, error) {
	if codeWidth <= 0 {
		codeWidth = DefaultCodeWidth
	}

	facts := make([]models.Fact, 0, len(raws))
	for i, raw := range raws {
		fact, err := normalizeRow(raw, codeWidth)
		if err != nil {
			if m, ok := err.(*parsererror.MalformedRowError); ok {
				m.Row = i + 1
				return nil, m
			}
			return nil, &parsererror.MalformedRowError{Row: i + 1, Err: err}
		}
		facts = append(facts, fact)
	}

	log.Debug("Normalized fact rows", logging.F(logging.FieldCount, len(facts)))
	return facts, nil
}

// normalizeRow coerces a single raw row. The row number on any returned
// MalformedRowError is filled in by the caller.
func normalizeRow(raw models.RawFact, codeWidth int) (models.Fact, error) {
	parsedDate, err := dateutils.ParseDateString(raw.MonthEndDate)
	if err != nil {
		return models.Fact{}, &parsererror.MalformedRowError{
			Field: "month_end_date", Value: raw.MonthEndDate, Err: err,
		}
	}

	scenario, err := models.ParseScenario(raw.Scenario)
	if err != nil {
		return models.Fact{}, &parsererror.MalformedRowError{
			Field: "scenario", Value: raw.Scenario, Err: err,
		}
	}

	code, err := NormalizeAccountCode(raw.AccountCode, codeWidth)
	if err != nil {
		return models.Fact{}, &parsererror.MalformedRowError{
			Field: "account_code", Value: raw.AccountCode, Err: err,
		}
	}

	amount, err := models.ParseAmount(raw.Amount)
	if err != nil {
		return models.Fact{}, &parsererror.MalformedRowError{
			Field: "amount", Value: raw.Amount, Err: err,
		}
	}

	return models.Fact{
		MonthEndDate: models.NewDate(parsedDate),
		Scenario:     scenario,
		AccountCode:  code,
		Amount:       amount.RoundBank(models.AmountScale),
	}, nil
}

// NormalizeAccountCode coerces an account code to its fixed-width form:
// trimmed, digits only, left-padded with zeros. A code longer than the
// configured width is malformed rather than truncated, since truncation
// could merge distinct accounts.
func NormalizeAccountCode(code string, width int) (string, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "", fmt.Errorf("empty account code")
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("account code %q is not numeric", code)
		}
	}
	if len(trimmed) > width {
		return "", fmt.Errorf("account code %q exceeds configured width %d", code, width)
	}
	return strings.Repeat("0", width-len(trimmed)) + trimmed, nil
}
