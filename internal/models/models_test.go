package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenario(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Scenario
		ok       bool
	}{
		{"Upper actual", "ACTUAL", ScenarioActual, true},
		{"Title case budget", "Budget", ScenarioBudget, true},
		{"Surrounding whitespace", "  actual \t", ScenarioActual, true},
		{"Mixed case", "bUdGeT", ScenarioBudget, true},
		{"Unknown", "FORECAST", "", false},
		{"Empty", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scenario, err := ParseScenario(tc.raw)
			if tc.ok {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, scenario)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewDateTruncatesTime(t *testing.T) {
	withTime := time.Date(2024, time.January, 31, 14, 45, 12, 99, time.FixedZone("CET", 3600))
	date := NewDate(withTime)

	assert.Equal(t, "2024-01-31", date.String())
	assert.Equal(t, 0, date.Hour())
	assert.Equal(t, time.UTC, date.Location())
}

func TestDateComparableAsMapKey(t *testing.T) {
	a := NewDate(time.Date(2024, time.March, 31, 9, 0, 0, 0, time.UTC))
	b := DateOf(2024, time.March, 31)

	seen := map[Date]int{a: 1}
	seen[b]++
	assert.Len(t, seen, 1)
	assert.Equal(t, 2, seen[a])
}

func TestDateCSVRoundTrip(t *testing.T) {
	date := DateOf(2024, time.February, 29)

	out, err := date.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", out)

	var parsed Date
	require.NoError(t, parsed.UnmarshalCSV(out))
	assert.Equal(t, date, parsed)

	assert.Error(t, parsed.UnmarshalCSV("not a date"))
}

func TestDateJSON(t *testing.T) {
	date := DateOf(2024, time.January, 31)

	data, err := date.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-31"`, string(data))

	var parsed Date
	require.NoError(t, parsed.UnmarshalJSON(data))
	assert.Equal(t, date, parsed)
}

func TestFactKey(t *testing.T) {
	fact := Fact{
		MonthEndDate: DateOf(2024, time.January, 31),
		Scenario:     ScenarioActual,
		AccountCode:  "4001",
	}

	key := fact.Key()
	assert.Equal(t, fact.MonthEndDate, key.MonthEndDate)
	assert.Equal(t, ScenarioActual, key.Scenario)
	assert.Equal(t, "4001", key.AccountCode)
}
