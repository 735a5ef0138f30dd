// Package quality implements the data-quality checks run over normalized
// facts: duplicate grain keys and missing month/scenario coverage.
//
// Both checks are pure functions that only report; nothing is repaired or
// deduplicated on behalf of the caller.
package quality

import (
	"sort"

	"github.com/Mohamed-68/pnl-report/internal/calendar"
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

// Duplicates reports every (month, scenario, account) key that appears more
// than once. Results are sorted by count descending; ties are broken by
// month ascending, then scenario, then account code, which keeps the order
// stable across runs.
func Duplicates(facts []models.Fact) []models.DuplicateGroup {
	counts := make(map[models.FactKey]int)
	for _, fact := range facts {
		counts[fact.Key()]++
	}

	var groups []models.DuplicateGroup
	for key, count := range counts {
		if count > 1 {
			groups = append(groups, models.DuplicateGroup{
				MonthEndDate: key.MonthEndDate,
				Scenario:     key.Scenario,
				AccountCode:  key.AccountCode,
				Count:        count,
			})
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		if !groups[i].MonthEndDate.Equal(groups[j].MonthEndDate.Time) {
			return groups[i].MonthEndDate.Before(groups[j].MonthEndDate.Time)
		}
		if groups[i].Scenario != groups[j].Scenario {
			return groups[i].Scenario < groups[j].Scenario
		}
		return groups[i].AccountCode < groups[j].AccountCode
	})

	if len(groups) > 0 {
		log.Warn("Duplicate fact keys detected", logging.F(logging.FieldCount, len(groups)))
	}
	return groups
}

// Coverage reports every (month, scenario) pair from the calendar ×
// {ACTUAL, BUDGET} cross-product that has no fact rows at all. One row of
// any account marks the pair as covered; this mirrors a left anti-join of
// the expected pairs against the facts. Results are sorted by month then
// scenario.
func Coverage(facts []models.Fact, cal calendar.Calendar) []models.CoverageGap {
	covered := make(map[models.MonthScenario]bool)
	for _, fact := range facts {
		covered[models.MonthScenario{MonthEndDate: fact.MonthEndDate, Scenario: fact.Scenario}] = true
	}

	var gaps []models.CoverageGap
	for _, month := range cal.Months() {
		for _, scenario := range models.Scenarios {
			if !covered[models.MonthScenario{MonthEndDate: month, Scenario: scenario}] {
				gaps = append(gaps, models.CoverageGap{MonthEndDate: month, Scenario: scenario})
			}
		}
	}

	sort.Slice(gaps, func(i, j int) bool {
		if !gaps[i].MonthEndDate.Equal(gaps[j].MonthEndDate.Time) {
			return gaps[i].MonthEndDate.Before(gaps[j].MonthEndDate.Time)
		}
		return gaps[i].Scenario < gaps[j].Scenario
	})

	if len(gaps) > 0 {
		log.Warn("Coverage gaps detected", logging.F(logging.FieldCount, len(gaps)))
	}
	return gaps
}
