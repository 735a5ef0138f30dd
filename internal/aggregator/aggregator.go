// Package aggregator rolls normalized facts up into monthly KPI aggregates.
package aggregator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Mohamed-68/pnl-report/internal/accounts"
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

// Aggregate groups facts by (month, scenario) and sums amounts into the
// Revenue, COGS, Opex and Other buckets per the classifier, deriving
// GrossProfit, EBITDA and NetIncome. Unclassified accounts are treated as
// Other with a warning.
//
// Amounts keep their sign convention (COGS and Opex negative); no absolute
// values are taken anywhere. Buckets with no contributing rows are zero.
// Output is sorted by month then scenario so repeated runs over the same
// input produce identical tables.
func Aggregate(facts []models.Fact, classifier *accounts.Classifier) ([]models.MonthlyAggregate, error) {
	return aggregate(facts, classifier, false)
}

// AggregateStrict is Aggregate with the strict classification policy:
// the first unclassified account code fails the run with an
// UnclassifiedAccountError instead of falling back to Other.
func AggregateStrict(facts []models.Fact, classifier *accounts.Classifier) ([]models.MonthlyAggregate, error) {
	return aggregate(facts, classifier, true)
}

func aggregate(facts []models.Fact, classifier *accounts.Classifier, strict bool) ([]models.MonthlyAggregate, error) {
	groups := make(map[models.MonthScenario]*models.MonthlyAggregate)

	for _, fact := range facts {
		var group accounts.Group
		if strict {
			g, err := classifier.ClassifyStrict(fact.AccountCode)
			if err != nil {
				return nil, err
			}
			group = g
		} else {
			group = classifier.Classify(fact.AccountCode)
		}

		key := models.MonthScenario{MonthEndDate: fact.MonthEndDate, Scenario: fact.Scenario}
		agg, ok := groups[key]
		if !ok {
			agg = &models.MonthlyAggregate{MonthEndDate: fact.MonthEndDate, Scenario: fact.Scenario}
			groups[key] = agg
		}

		switch group {
		case accounts.GroupRevenue:
			agg.Revenue = agg.Revenue.Add(fact.Amount)
		case accounts.GroupCOGS:
			agg.COGS = agg.COGS.Add(fact.Amount)
		case accounts.GroupOpex:
			agg.Opex = agg.Opex.Add(fact.Amount)
		case accounts.GroupOther:
			agg.Other = agg.Other.Add(fact.Amount)
		}
	}

	result := make([]models.MonthlyAggregate, 0, len(groups))
	for _, agg := range groups {
		agg.GrossProfit = agg.Revenue.Add(agg.COGS)
		agg.EBITDA = agg.GrossProfit.Add(agg.Opex)
		agg.NetIncome = agg.EBITDA.Add(agg.Other)
		result = append(result, *agg)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].MonthEndDate.Equal(result[j].MonthEndDate.Time) {
			return result[i].MonthEndDate.Before(result[j].MonthEndDate.Time)
		}
		return result[i].Scenario < result[j].Scenario
	})

	log.Debug("Aggregated monthly KPIs", logging.F(logging.FieldCount, len(result)))
	return result, nil
}

// AccountBalances rolls facts up into a trial-balance style table, one row
// per (month, scenario, account), with the net amount split into debit and
// credit columns by sign. Sorted by month, scenario, account.
func AccountBalances(facts []models.Fact) []models.AccountBalance {
	nets := make(map[models.FactKey]decimal.Decimal)
	for _, fact := range facts {
		key := fact.Key()
		nets[key] = nets[key].Add(fact.Amount)
	}

	balances := make([]models.AccountBalance, 0, len(nets))
	for key, net := range nets {
		balance := models.AccountBalance{
			MonthEndDate: key.MonthEndDate,
			Scenario:     key.Scenario,
			AccountCode:  key.AccountCode,
			Net:          net,
		}
		if net.IsNegative() {
			balance.Debit = net.Neg()
		} else {
			balance.Credit = net
		}
		balances = append(balances, balance)
	}

	sort.Slice(balances, func(i, j int) bool {
		if !balances[i].MonthEndDate.Equal(balances[j].MonthEndDate.Time) {
			return balances[i].MonthEndDate.Before(balances[j].MonthEndDate.Time)
		}
		if balances[i].Scenario != balances[j].Scenario {
			return balances[i].Scenario < balances[j].Scenario
		}
		return balances[i].AccountCode < balances[j].AccountCode
	})

	return balances
}
