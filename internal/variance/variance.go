// Package variance pivots monthly aggregates into Actual-vs-Budget rows.
package variance

import (
	"sort"

	"github.com/Mohamed-68/pnl-report/internal/logging"
	"github.com/Mohamed-68/pnl-report/internal/models"
)

var log logging.Logger = logging.NewLogrusAdapter("info", "text")

// SetLogger allows setting a custom logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// kpi is one pivoted KPI cell pair before variance derivation.
type kpi struct {
	actual models.NullAmount
	budget models.NullAmount
}

// derive fills a VarianceRow's four columns for one KPI.
// Variance is actual − budget with null propagation; the percentage is
// variance ÷ budget and stays null for a null or zero budget.
func (k kpi) derive() (actual, budget, variance, pct models.NullAmount) {
	variance = k.actual.Sub(k.budget)
	pct = variance.DivBy(k.budget)
	return k.actual, k.budget, variance, pct
}

// Report pivots the aggregates from (month, scenario) long form into one row
// per month with Actual and Budget side by side. A month present in only one
// scenario gets nulls for the other — never zeros, since an absent submission
// is a different fact from a zero submission. Rows are sorted ascending by
// month.
func Report(aggs []models.MonthlyAggregate) []models.VarianceRow {
	byMonth := make(map[models.Date]map[models.Scenario]models.MonthlyAggregate)
	for _, agg := range aggs {
		scenarios, ok := byMonth[agg.MonthEndDate]
		if !ok {
			scenarios = make(map[models.Scenario]models.MonthlyAggregate, len(models.Scenarios))
			byMonth[agg.MonthEndDate] = scenarios
		}
		scenarios[agg.Scenario] = agg
	}

	months := make([]models.Date, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Before(months[j].Time)
	})

	rows := make([]models.VarianceRow, 0, len(months))
	for _, month := range months {
		rows = append(rows, pivotMonth(month, byMonth[month]))
	}

	log.Debug("Built variance report", logging.F(logging.FieldCount, len(rows)))
	return rows
}

func pivotMonth(month models.Date, scenarios map[models.Scenario]models.MonthlyAggregate) models.VarianceRow {
	row := models.VarianceRow{MonthEndDate: month}

	pick := func(s models.Scenario, field func(models.MonthlyAggregate) models.NullAmount) models.NullAmount {
		agg, ok := scenarios[s]
		if !ok {
			return models.NoAmount()
		}
		return field(agg)
	}

	pair := func(field func(models.MonthlyAggregate) models.NullAmount) kpi {
		return kpi{
			actual: pick(models.ScenarioActual, field),
			budget: pick(models.ScenarioBudget, field),
		}
	}

	row.RevenueActual, row.RevenueBudget, row.RevenueVariance, row.RevenueVariancePct =
		pair(func(a models.MonthlyAggregate) models.NullAmount { return models.SomeAmount(a.Revenue) }).derive()
	row.COGSActual, row.COGSBudget, row.COGSVariance, row.COGSVariancePct =
		pair(func(a models.MonthlyAggregate) models.NullAmount { return models.SomeAmount(a.COGS) }).derive()
	row.OpexActual, row.OpexBudget, row.OpexVariance, row.OpexVariancePct =
		pair(func(a models.MonthlyAggregate) models.NullAmount { return models.SomeAmount(a.Opex) }).derive()
	row.GrossProfitActual, row.GrossProfitBudget, row.GrossProfitVariance, row.GrossProfitVariancePct =
		pair(func(a models.MonthlyAggregate) models.NullAmount { return models.SomeAmount(a.GrossProfit) }).derive()
	row.EBITDAActual, row.EBITDABudget, row.EBITDAVariance, row.EBITDAVariancePct =
		pair(func(a models.MonthlyAggregate) models.NullAmount { return models.SomeAmount(a.EBITDA) }).derive()

	return row
}
