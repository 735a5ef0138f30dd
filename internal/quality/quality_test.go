package quality

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohamed-68/pnl-report/internal/calendar"
	"github.com/Mohamed-68/pnl-report/internal/models"
)

func fact(date models.Date, scenario models.Scenario, code string) models.Fact {
	return models.Fact{
		MonthEndDate: date,
		Scenario:     scenario,
		AccountCode:  code,
		Amount:       decimal.NewFromInt(1),
	}
}

func TestDuplicatesCleanDataset(t *testing.T) {
	jan := models.DateOf(2024, time.January, 31)
	facts := []models.Fact{
		fact(jan, models.ScenarioActual, "4001"),
		fact(jan, models.ScenarioActual, "4002"),
		fact(jan, models.ScenarioBudget, "4001"),
	}

	assert.Empty(t, Duplicates(facts))
}

func TestDuplicatesSingleExtraRow(t *testing.T) {
	jan := models.DateOf(2024, time.January, 31)
	facts := []models.Fact{
		fact(jan, models.ScenarioActual, "4001"),
		fact(jan, models.ScenarioActual, "4002"),
		fact(jan, models.ScenarioActual, "4001"), // repeated key
	}

	groups := Duplicates(facts)
	require.Len(t, groups, 1)
	assert.Equal(t, jan, groups[0].MonthEndDate)
	assert.Equal(t, models.ScenarioActual, groups[0].Scenario)
	assert.Equal(t, "4001", groups[0].AccountCode)
	assert.Equal(t, 2, groups[0].Count)
}

func TestDuplicatesSortedByCountDescending(t *testing.T) {
	jan := models.DateOf(2024, time.January, 31)
	feb := models.DateOf(2024, time.February, 29)
	facts := []models.Fact{
		// 4001 in January twice, 5001 in February three times.
		fact(jan, models.ScenarioActual, "4001"),
		fact(jan, models.ScenarioActual, "4001"),
		fact(feb, models.ScenarioActual, "5001"),
		fact(feb, models.ScenarioActual, "5001"),
		fact(feb, models.ScenarioActual, "5001"),
	}

	groups := Duplicates(facts)
	require.Len(t, groups, 2)
	assert.Equal(t, 3, groups[0].Count)
	assert.Equal(t, "5001", groups[0].AccountCode)
	assert.Equal(t, 2, groups[1].Count)
}

func TestDuplicatesTieBreakStable(t *testing.T) {
	jan := models.DateOf(2024, time.January, 31)
	feb := models.DateOf(2024, time.February, 29)
	facts := []models.Fact{
		fact(feb, models.ScenarioBudget, "5001"),
		fact(feb, models.ScenarioBudget, "5001"),
		fact(jan, models.ScenarioBudget, "4001"),
		fact(jan, models.ScenarioBudget, "4001"),
		fact(jan, models.ScenarioActual, "4001"),
		fact(jan, models.ScenarioActual, "4001"),
	}

	// All counts tie at 2: order falls back to month asc, scenario asc,
	// account asc.
	groups := Duplicates(facts)
	require.Len(t, groups, 3)
	assert.Equal(t, models.ScenarioActual, groups[0].Scenario)
	assert.Equal(t, jan, groups[0].MonthEndDate)
	assert.Equal(t, models.ScenarioBudget, groups[1].Scenario)
	assert.Equal(t, jan, groups[1].MonthEndDate)
	assert.Equal(t, feb, groups[2].MonthEndDate)
}

func TestCoverageMissingScenarioMonth(t *testing.T) {
	jan := models.DateOf(2024, time.January, 31)
	feb := models.DateOf(2024, time.February, 29)
	mar := models.DateOf(2024, time.March, 31)

	cal, err := calendar.FromDates([]models.Date{jan, feb, mar})
	require.NoError(t, err)

	// Three-month calendar, ACTUAL missing for month 2 only.
	var facts []models.Fact
	for _, month := range []models.Date{jan, feb, mar} {
		for _, scenario := range models.Scenarios {
			if month == feb && scenario == models.ScenarioActual {
				continue
			}
			facts = append(facts, fact(month, scenario, "4001"))
		}
	}

	gaps := Coverage(facts, cal)
	require.Len(t, gaps, 1)
	assert.Equal(t, feb, gaps[0].MonthEndDate)
	assert.Equal(t, models.ScenarioActual, gaps[0].Scenario)
}

func TestCoverageAnyAccountCounts(t *testing.T) {
	jan := models.DateOf(2024, time.January, 31)
	cal, err := calendar.FromDates([]models.Date{jan})
	require.NoError(t, err)

	// A single row of any account covers the pair.
	facts := []models.Fact{fact(jan, models.ScenarioActual, "9999")}

	gaps := Coverage(facts, cal)
	require.Len(t, gaps, 1)
	assert.Equal(t, models.ScenarioBudget, gaps[0].Scenario)
}

func TestCoverageSortedByMonthThenScenario(t *testing.T) {
	jan := models.DateOf(2024, time.January, 31)
	feb := models.DateOf(2024, time.February, 29)
	cal, err := calendar.FromDates([]models.Date{jan, feb})
	require.NoError(t, err)

	gaps := Coverage(nil, cal)
	require.Len(t, gaps, 4)
	assert.Equal(t, jan, gaps[0].MonthEndDate)
	assert.Equal(t, models.ScenarioActual, gaps[0].Scenario)
	assert.Equal(t, jan, gaps[1].MonthEndDate)
	assert.Equal(t, models.ScenarioBudget, gaps[1].Scenario)
	assert.Equal(t, feb, gaps[2].MonthEndDate)
}

func TestCoverageFullDataset(t *testing.T) {
	jan := models.DateOf(2024, time.January, 31)
	cal, err := calendar.FromDates([]models.Date{jan})
	require.NoError(t, err)

	facts := []models.Fact{
		fact(jan, models.ScenarioActual, "4001"),
		fact(jan, models.ScenarioBudget, "4001"),
	}
	assert.Empty(t, Coverage(facts, cal))
}
