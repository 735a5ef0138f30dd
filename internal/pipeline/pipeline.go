// Package pipeline composes the full reporting run: normalize, aggregate,
// pivot, and quality-check.
package pipeline

import (
	"github.com/Mohamed-68/pnl-report/internal/accounts"
	"github.com/Mohamed-68/pnl-report/internal/aggregator"
	"github.com/Mohamed-68/pnl-report/internal/calendar"
	"github.com/Mohamed-68/pnl-report/internal/models"
	"github.com/Mohamed-68/pnl-report/internal/normalizer"
	"github.com/Mohamed-68/pnl-report/internal/quality"
	"github.com/Mohamed-68/pnl-report/internal/variance"
)

// Options control a pipeline run.
type Options struct {
	// CodeWidth is the fixed width account codes are padded to.
	CodeWidth int
	// Strict fails the run on the first unclassified account code instead
	// of treating it as Other.
	Strict bool
}

// Result carries every derived table of one reporting run. All tables are
// recomputed from the full input on every run; nothing is incremental.
type Result struct {
	Facts      []models.Fact
	Aggregates []models.MonthlyAggregate
	Variances  []models.VarianceRow
	Duplicates []models.DuplicateGroup
	Gaps       []models.CoverageGap
}

// Run executes the full pipeline over a raw batch. The calendar feeds only
// the coverage check; passing an empty calendar skips it. Runs are
// deterministic: the same input always yields byte-identical output tables.
func Run(raws []models.RawFact, classifier *accounts.Classifier, cal calendar.Calendar, opts Options) (*Result, error) {
	facts, err := normalizer.Normalize(raws, opts.CodeWidth)
	if err != nil {
		return nil, err
	}

	var aggs []models.MonthlyAggregate
	if opts.Strict {
		aggs, err = aggregator.AggregateStrict(facts, classifier)
	} else {
		aggs, err = aggregator.Aggregate(facts, classifier)
	}
	if err != nil {
		return nil, err
	}

	result := &Result{
		Facts:      facts,
		Aggregates: aggs,
		Variances:  variance.Report(aggs),
		Duplicates: quality.Duplicates(facts),
	}
	if cal.Len() > 0 {
		result.Gaps = quality.Coverage(facts, cal)
	}
	return result, nil
}
