package models

// DuplicateGroup reports a (month, scenario, account) key that appears more
// than once in the fact table. The checker only reports; it never repairs.
type DuplicateGroup struct {
	MonthEndDate Date     `csv:"month_end_date" json:"month_end_date"`
	Scenario     Scenario `csv:"scenario" json:"scenario"`
	AccountCode  string   `csv:"account_code" json:"account_code"`
	Count        int      `csv:"count" json:"count"`
}

// CoverageGap reports a (month, scenario) pair expected by the calendar but
// absent from the fact table.
type CoverageGap struct {
	MonthEndDate Date     `csv:"month_end_date" json:"month_end_date"`
	Scenario     Scenario `csv:"scenario" json:"scenario"`
}
