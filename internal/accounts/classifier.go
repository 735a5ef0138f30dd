// Package accounts maps account codes to P&L groups.
//
// The mapping is external configuration, not code: a YAML file lists exact
// codes per group and, optionally, inclusive numeric code ranges. Unknown
// codes fall into Other, which the KPI sums exclude.
package accounts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mohamed-68/pnl-report/internal/logging"
	"github.com/Mohamed-68/pnl-report/internal/parsererror"
)

var log logging.Logger = logging.NewLogrusAdapter("info", "text")

// SetLogger allows setting a custom logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Group is a P&L classification bucket.
type Group string

const (
	GroupRevenue Group = "Revenue"
	GroupCOGS    Group = "COGS"
	GroupOpex    Group = "Opex"
	GroupOther   Group = "Other"
)

// ParseGroup parses a group name from configuration, case-insensitively.
func ParseGroup(raw string) (Group, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "revenue":
		return GroupRevenue, nil
	case "cogs":
		return GroupCOGS, nil
	case "opex":
		return GroupOpex, nil
	case "other":
		return GroupOther, nil
	}
	return "", fmt.Errorf("unknown P&L group %q", raw)
}

// rangeRule classifies every numeric code in [From, To].
type rangeRule struct {
	Group Group
	From  int
	To    int
}

// Classifier resolves account codes to P&L groups. Exact code matches take
// precedence over range rules; range rules are evaluated in file order.
type Classifier struct {
	exact  map[string]Group
	ranges []rangeRule
}

// NewClassifier builds a classifier from an exact code mapping.
func NewClassifier(mapping map[string]Group) *Classifier {
	exact := make(map[string]Group, len(mapping))
	for code, group := range mapping {
		exact[strings.TrimSpace(code)] = group
	}
	return &Classifier{exact: exact}
}

// Lookup resolves a code to its configured group. The second return value
// is false when the code matches neither an exact entry nor a range.
func (c *Classifier) Lookup(code string) (Group, bool) {
	if group, ok := c.exact[code]; ok {
		return group, true
	}
	// Range rules compare the numeric value, so leading zeros from
	// fixed-width padding do not matter.
	if n, err := strconv.Atoi(code); err == nil {
		for _, r := range c.ranges {
			if n >= r.From && n <= r.To {
				return r.Group, true
			}
		}
	}
	return GroupOther, false
}

// Classify resolves a code to its group, treating unclassified codes as
// Other with a warning. This is the default warn-and-continue policy.
func (c *Classifier) Classify(code string) Group {
	group, ok := c.Lookup(code)
	if !ok {
		log.Warn("Account matches no configured P&L group, treating as Other",
			logging.F(logging.FieldAccount, code))
	}
	return group
}

// ClassifyStrict resolves a code to its group, failing on unclassified codes.
func (c *Classifier) ClassifyStrict(code string) (Group, error) {
	group, ok := c.Lookup(code)
	if !ok {
		return GroupOther, &parsererror.UnclassifiedAccountError{AccountCode: code}
	}
	return group, nil
}
