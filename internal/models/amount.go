package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of fractional digits all canonical amounts carry.
const AmountScale = 2

// currencyTokens are stripped from amount strings before parsing.
// Finance extracts occasionally carry a currency marker in the cell.
var currencyTokens = []string{"CHF", "EUR", "USD", "GBP", "$", "€", "£"}

// ParseAmount parses a string amount into a decimal, tolerating the
// formatting found in finance extracts: thousands separators ("," and "'"),
// currency symbols, embedded spaces, and accounting-style parentheses for
// negatives ("(1,234.50)" is -1234.50). The decimal separator is ".".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amountStr)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	for _, token := range currencyTokens {
		s = strings.ReplaceAll(s, token, "")
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "'", "")

	dec, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", amountStr, err)
	}
	if negative {
		dec = dec.Neg()
	}
	return dec, nil
}

// NullAmount is a decimal value that distinguishes "absent" from zero.
// A month with no budget submitted pivots to a null budget, not 0.00;
// the two mean different things in a variance report.
type NullAmount struct {
	decimal.NullDecimal
}

// SomeAmount wraps a present decimal value.
func SomeAmount(d decimal.Decimal) NullAmount {
	return NullAmount{decimal.NullDecimal{Decimal: d, Valid: true}}
}

// NoAmount returns the null value.
func NoAmount() NullAmount {
	return NullAmount{}
}

// Sub returns n - o. Null propagates: any null operand yields null.
func (n NullAmount) Sub(o NullAmount) NullAmount {
	if !n.Valid || !o.Valid {
		return NoAmount()
	}
	return SomeAmount(n.Decimal.Sub(o.Decimal))
}

// DivBy returns n / o, null when either operand is null or o is zero.
// The zero case is deliberate: a variance percentage against a zero
// budget is undefined, not an error.
func (n NullAmount) DivBy(o NullAmount) NullAmount {
	if !n.Valid || !o.Valid || o.Decimal.IsZero() {
		return NoAmount()
	}
	return SomeAmount(n.Decimal.Div(o.Decimal))
}

// Equal reports whether two NullAmounts are both null or both the same value.
func (n NullAmount) Equal(o NullAmount) bool {
	if n.Valid != o.Valid {
		return false
	}
	if !n.Valid {
		return true
	}
	return n.Decimal.Equal(o.Decimal)
}

// String renders the value, or "null" when absent.
func (n NullAmount) String() string {
	if !n.Valid {
		return "null"
	}
	return n.Decimal.String()
}

// MarshalCSV renders a present value as its decimal string and null as
// an empty cell.
func (n NullAmount) MarshalCSV() (string, error) {
	if !n.Valid {
		return "", nil
	}
	return n.Decimal.String(), nil
}

// UnmarshalCSV treats an empty cell as null.
func (n *NullAmount) UnmarshalCSV(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		*n = NoAmount()
		return nil
	}
	dec, err := decimal.NewFromString(trimmed)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", value, err)
	}
	*n = SomeAmount(dec)
	return nil
}
