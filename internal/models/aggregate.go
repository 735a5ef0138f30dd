package models

import (
	"github.com/shopspring/decimal"
)

// MonthlyAggregate is the KPI rollup for one (month, scenario) pair.
// Buckets with no contributing rows carry zero, not null; "nothing booked"
// aggregates to 0.00 within a period that exists.
//
// Sign convention: COGS and Opex are carried as negative amounts, so the
// derived lines are plain sums with no sign flipping:
//
//	GrossProfit = Revenue + COGS
//	EBITDA      = GrossProfit + Opex
//	NetIncome   = EBITDA + Other
type MonthlyAggregate struct {
	MonthEndDate Date            `csv:"month_end_date"`
	Scenario     Scenario        `csv:"scenario"`
	Revenue      decimal.Decimal `csv:"revenue"`
	COGS         decimal.Decimal `csv:"cogs"`
	Opex         decimal.Decimal `csv:"opex"`
	Other        decimal.Decimal `csv:"other"`
	GrossProfit  decimal.Decimal `csv:"gross_profit"`
	EBITDA       decimal.Decimal `csv:"ebitda"`
	NetIncome    decimal.Decimal `csv:"net_income"`
}

// AccountBalance is a trial-balance style rollup for one account within one
// (month, scenario) pair. Debit and Credit are split from the sign of the
// net amount; both are reported as non-negative values.
type AccountBalance struct {
	MonthEndDate Date            `csv:"month_end_date"`
	Scenario     Scenario        `csv:"scenario"`
	AccountCode  string          `csv:"account_code"`
	Debit        decimal.Decimal `csv:"debit"`
	Credit       decimal.Decimal `csv:"credit"`
	Net          decimal.Decimal `csv:"net"`
}
