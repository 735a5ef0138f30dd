// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical date format used in all CSV and JSON output.
const DateLayout = "2006-01-02"

// Scenario identifies the data version a fact row belongs to.
type Scenario string

const (
	ScenarioActual Scenario = "ACTUAL"
	ScenarioBudget Scenario = "BUDGET"
)

// Scenarios lists the valid scenarios in reporting order.
var Scenarios = []Scenario{ScenarioActual, ScenarioBudget}

// ParseScenario normalizes a raw scenario string (upper-case, trimmed of
// surrounding whitespace) and checks it against the known scenario set.
// Raw extracts typically carry "Actual"/"Budget" in title case.
func ParseScenario(raw string) (Scenario, error) {
	s := Scenario(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case ScenarioActual, ScenarioBudget:
		return s, nil
	}
	return "", fmt.Errorf("unknown scenario %q", raw)
}

// Date is a day-precision date normalized to UTC midnight.
// Values built through NewDate are comparable with == and usable as map keys.
type Date struct {
	time.Time
}

// NewDate truncates t to day precision in UTC.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// DateOf builds a Date from its components.
func DateOf(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO date string (YYYY-MM-DD) into a Date.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return NewDate(t), nil
}

// String returns the date in ISO format.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalCSV implements gocsv marshalling.
func (d Date) MarshalCSV() (string, error) {
	return d.Format(DateLayout), nil
}

// UnmarshalCSV implements gocsv unmarshalling.
func (d *Date) UnmarshalCSV(value string) error {
	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON renders the date as an ISO date string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON parses an ISO date string.
func (d *Date) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDate(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// RawFact is a fact row as read from an extract, all fields still strings.
// The normalizer coerces it into a Fact.
type RawFact struct {
	MonthEndDate string `csv:"month_end_date"`
	Scenario     string `csv:"scenario"`
	AccountCode  string `csv:"account_code"`
	Amount       string `csv:"amount"`
}

// Fact is a canonical P&L fact row. Grain is one row per
// (month_end_date, scenario, account_code); the quality checker verifies
// that uniqueness, the pipeline does not enforce it.
type Fact struct {
	MonthEndDate Date            `csv:"month_end_date"`
	Scenario     Scenario        `csv:"scenario"`
	AccountCode  string          `csv:"account_code"`
	Amount       decimal.Decimal `csv:"amount"`
}

// FactKey identifies the grain of the fact table.
type FactKey struct {
	MonthEndDate Date
	Scenario     Scenario
	AccountCode  string
}

// Key returns the grain key of the fact.
func (f Fact) Key() FactKey {
	return FactKey{MonthEndDate: f.MonthEndDate, Scenario: f.Scenario, AccountCode: f.AccountCode}
}

// MonthScenario identifies one reporting month within one scenario.
type MonthScenario struct {
	MonthEndDate Date
	Scenario     Scenario
}
