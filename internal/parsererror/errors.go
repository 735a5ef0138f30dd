// Package parsererror defines the typed errors surfaced by the reporting
// pipeline.
package parsererror

import "fmt"

// MalformedRowError reports a raw fact row with a field that could not be
// coerced into its canonical form. The normalizer fails the whole batch on
// the first malformed row: a reporting run that silently drops rows would
// under-count, which is worse than failing loudly.
type MalformedRowError struct {
	Row   int    // 1-based position of the row within the batch
	Field string // name of the offending field
	Value string // raw value as received
	Err   error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("row %d: malformed %s=%q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// UnclassifiedAccountError reports an account code that matches none of the
// configured P&L groups. Raised only in strict mode; the default policy is
// to warn and treat the account as Other, which is legitimately excluded
// from the KPI sums.
type UnclassifiedAccountError struct {
	AccountCode string
}

func (e *UnclassifiedAccountError) Error() string {
	return fmt.Sprintf("account %s matches no configured P&L group", e.AccountCode)
}

// ValidationError reports an input artifact (config file, workbook,
// calendar) that failed a structural check before processing started.
type ValidationError struct {
	Source string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Source, e.Reason)
}
