package aggregator

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohamed-68/pnl-report/internal/accounts"
	"github.com/Mohamed-68/pnl-report/internal/models"
	"github.com/Mohamed-68/pnl-report/internal/parsererror"
)

func testClassifier() *accounts.Classifier {
	return accounts.NewClassifier(map[string]accounts.Group{
		"4001": accounts.GroupRevenue,
		"4002": accounts.GroupRevenue,
		"5001": accounts.GroupCOGS,
		"6001": accounts.GroupOpex,
		"7001": accounts.GroupOther,
	})
}

func fact(date models.Date, scenario models.Scenario, code, amount string) models.Fact {
	return models.Fact{
		MonthEndDate: date,
		Scenario:     scenario,
		AccountCode:  code,
		Amount:       decimal.RequireFromString(amount),
	}
}

func TestAggregateBucketsAndDerivedLines(t *testing.T) {
	jan := models.DateOf(2024, time.January, 31)
	facts := []models.Fact{
		fact(jan, models.ScenarioActual, "4001", "1000.00"),
		fact(jan, models.ScenarioActual, "4002", "500.00"),
		fact(jan, models.ScenarioActual, "5001", "-400.00"),
		fact(jan, models.ScenarioActual, "6001", "-250.00"),
		fact(jan, models.ScenarioActual, "7001", "-50.00"),
	}

	aggs, err := Aggregate(facts, testClassifier())
	require.NoError(t, err)
	require.Len(t, aggs, 1)

	agg := aggs[0]
	assert.Equal(t, "1500", agg.Revenue.String())
	assert.Equal(t, "-400", agg.COGS.String())
	assert.Equal(t, "-250", agg.Opex.String())
	assert.Equal(t, "-50", agg.Other.String())
	assert.Equal(t, "1100", agg.GrossProfit.String())
	assert.Equal(t, "850", agg.EBITDA.String())
	assert.Equal(t, "800", agg.NetIncome.String())
}

func TestAggregateEBITDAIdentity(t *testing.T) {
	jan := models.DateOf(2024, time.January, 31)
	feb := models.DateOf(2024, time.February, 29)
	facts := []models.Fact{
		fact(jan, models.ScenarioActual, "4001", "1234.56"),
		fact(jan, models.ScenarioActual, "5001", "-222.22"),
		fact(jan, models.ScenarioBudget, "4001", "1100.01"),
		fact(feb, models.ScenarioActual, "6001", "-0.03"),
		fact(feb, models.ScenarioBudget, "5001", "-99.99"),
	}

	aggs, err := Aggregate(facts, testClassifier())
	require.NoError(t, err)

	for _, agg := range aggs {
		expected := agg.Revenue.Add(agg.COGS).Add(agg.Opex)
		assert.True(t, agg.EBITDA.Equal(expected),
			"%s %s: ebitda %s != revenue+cogs+opex %s",
			agg.MonthEndDate, agg.Scenario, agg.EBITDA, expected)
	}
}

func TestAggregateEmptyBucketsAreZero(t *testing.T) {
	jan := models.DateOf(2024, time.January, 31)
	facts := []models.Fact{
		fact(jan, models.ScenarioActual, "4001", "100.00"),
	}

	aggs, err := Aggregate(facts, testClassifier())
	require.NoError(t, err)
	require.Len(t, aggs, 1)

	assert.True(t, aggs[0].COGS.IsZero())
	assert.True(t, aggs[0].Opex.IsZero())
	assert.True(t, aggs[0].EBITDA.Equal(decimal.NewFromInt(100)))
}

func TestAggregateKeepsSignConvention(t *testing.T) {
	// COGS arrives negative and must stay negative; the aggregator never
	// takes absolute values.
	jan := models.DateOf(2024, time.January, 31)
	facts := []models.Fact{
		fact(jan, models.ScenarioActual, "5001", "-300.00"),
	}

	aggs, err := Aggregate(facts, testClassifier())
	require.NoError(t, err)
	assert.True(t, aggs[0].COGS.IsNegative())
	assert.True(t, aggs[0].EBITDA.IsNegative())
}

func TestAggregateSortedByMonthThenScenario(t *testing.T) {
	jan := models.DateOf(2024, time.January, 31)
	feb := models.DateOf(2024, time.February, 29)
	facts := []models.Fact{
		fact(feb, models.ScenarioBudget, "4001", "1"),
		fact(jan, models.ScenarioBudget, "4001", "1"),
		fact(feb, models.ScenarioActual, "4001", "1"),
		fact(jan, models.ScenarioActual, "4001", "1"),
	}

	aggs, err := Aggregate(facts, testClassifier())
	require.NoError(t, err)
	require.Len(t, aggs, 4)

	assert.Equal(t, jan, aggs[0].MonthEndDate)
	assert.Equal(t, models.ScenarioActual, aggs[0].Scenario)
	assert.Equal(t, jan, aggs[1].MonthEndDate)
	assert.Equal(t, models.ScenarioBudget, aggs[1].Scenario)
	assert.Equal(t, feb, aggs[2].MonthEndDate)
	assert.Equal(t, models.ScenarioActual, aggs[2].Scenario)
}

func TestAggregateUnclassified(t *testing.T) {
	jan := models.DateOf(2024, time.January, 31)
	facts := []models.Fact{
		fact(jan, models.ScenarioActual, "9999", "10.00"),
	}

	t.Run("default policy treats as Other", func(t *testing.T) {
		aggs, err := Aggregate(facts, testClassifier())
		require.NoError(t, err)
		assert.True(t, aggs[0].Other.Equal(decimal.NewFromInt(10)))
		assert.True(t, aggs[0].Revenue.IsZero())
	})

	t.Run("strict policy fails", func(t *testing.T) {
		_, err := AggregateStrict(facts, testClassifier())
		require.Error(t, err)
		var unclassified *parsererror.UnclassifiedAccountError
		assert.ErrorAs(t, err, &unclassified)
	})
}

func TestAccountBalances(t *testing.T) {
	jan := models.DateOf(2024, time.January, 31)
	facts := []models.Fact{
		fact(jan, models.ScenarioActual, "4001", "600.00"),
		fact(jan, models.ScenarioActual, "4001", "400.00"),
		fact(jan, models.ScenarioActual, "5001", "-150.00"),
	}

	balances := AccountBalances(facts)
	require.Len(t, balances, 2)

	assert.Equal(t, "4001", balances[0].AccountCode)
	assert.True(t, balances[0].Credit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, balances[0].Debit.IsZero())
	assert.True(t, balances[0].Net.Equal(decimal.NewFromInt(1000)))

	assert.Equal(t, "5001", balances[1].AccountCode)
	assert.True(t, balances[1].Debit.Equal(decimal.NewFromInt(150)))
	assert.True(t, balances[1].Credit.IsZero())
	assert.True(t, balances[1].Net.Equal(decimal.NewFromInt(-150)))
}
