package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"Plain", "1000.00", "1000", true},
		{"Negative", "-250.50", "-250.5", true},
		{"Thousands commas", "2,119,020", "2119020", true},
		{"Parens negative", "(1,234.50)", "-1234.5", true},
		{"Parens without separators", "(42)", "-42", true},
		{"Apostrophe separators", "1'234'567.89", "1234567.89", true},
		{"Currency prefix", "CHF 99.95", "99.95", true},
		{"Dollar symbol", "$1,000", "1000", true},
		{"Surrounding whitespace", "  12.30  ", "12.3", true},
		{"Empty", "", "", false},
		{"Dash placeholder", "-", "", false},
		{"Non numeric", "abc", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dec, err := ParseAmount(tc.input)
			if tc.ok {
				require.NoError(t, err)
				expected, _ := decimal.NewFromString(tc.expected)
				assert.True(t, dec.Equal(expected), "got %s, want %s", dec, expected)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNullAmountSub(t *testing.T) {
	hundred := SomeAmount(decimal.NewFromInt(100))
	forty := SomeAmount(decimal.NewFromInt(40))

	diff := hundred.Sub(forty)
	require.True(t, diff.Valid)
	assert.True(t, diff.Decimal.Equal(decimal.NewFromInt(60)))

	assert.False(t, hundred.Sub(NoAmount()).Valid)
	assert.False(t, NoAmount().Sub(forty).Valid)
	assert.False(t, NoAmount().Sub(NoAmount()).Valid)
}

func TestNullAmountDivBy(t *testing.T) {
	hundred := SomeAmount(decimal.NewFromInt(100))
	nineHundred := SomeAmount(decimal.NewFromInt(900))

	pct := hundred.DivBy(nineHundred)
	require.True(t, pct.Valid)
	assert.Equal(t, "0.1111", pct.Decimal.Round(4).String())

	t.Run("null when divisor is zero", func(t *testing.T) {
		assert.False(t, hundred.DivBy(SomeAmount(decimal.Zero)).Valid)
	})
	t.Run("null when divisor is null", func(t *testing.T) {
		assert.False(t, hundred.DivBy(NoAmount()).Valid)
	})
	t.Run("null when dividend is null", func(t *testing.T) {
		assert.False(t, NoAmount().DivBy(nineHundred).Valid)
	})
}

func TestNullAmountEqual(t *testing.T) {
	assert.True(t, NoAmount().Equal(NoAmount()))
	assert.True(t, SomeAmount(decimal.NewFromInt(5)).Equal(SomeAmount(decimal.NewFromInt(5))))
	assert.False(t, SomeAmount(decimal.Zero).Equal(NoAmount()))
	assert.False(t, SomeAmount(decimal.NewFromInt(1)).Equal(SomeAmount(decimal.NewFromInt(2))))
}

func TestNullAmountCSV(t *testing.T) {
	out, err := NoAmount().MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = SomeAmount(decimal.RequireFromString("12.34")).MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "12.34", out)

	var parsed NullAmount
	require.NoError(t, parsed.UnmarshalCSV(""))
	assert.False(t, parsed.Valid)

	require.NoError(t, parsed.UnmarshalCSV("7.50"))
	require.True(t, parsed.Valid)
	assert.True(t, parsed.Decimal.Equal(decimal.RequireFromString("7.5")))

	assert.Error(t, parsed.UnmarshalCSV("oops"))
}
